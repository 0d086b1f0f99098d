package handlers

import (
	"log/slog"
	"os"

	"github.com/IshitaGujarathi/ercisetracker-main/internal/config"
	"github.com/IshitaGujarathi/ercisetracker-main/internal/models"
	"github.com/IshitaGujarathi/ercisetracker-main/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func setupTestHandler() (*Handler, *gorm.DB) {
	db, _ := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	db.AutoMigrate(&models.User{}, &models.Exercise{}, &models.AuditLog{})

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	cfg := config.Config{}

	audit := services.NewAuditService(db, logger)
	users := services.NewUserService(db, audit)
	exercises := services.NewExerciseService(db, audit)

	// Use a dummy redis client (not connected) with no retries
	rdb := redis.NewClient(&redis.Options{
		Addr:       "localhost:1",
		MaxRetries: -1,
	})

	h := NewHandler(cfg, logger, db, rdb, users, exercises, audit)
	return h, db
}

func setupTestRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return h.SetupRouter(nil)
}
