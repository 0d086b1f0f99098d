package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/IshitaGujarathi/ercisetracker-main/internal/config"
	"github.com/IshitaGujarathi/ercisetracker-main/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Handler struct {
	cfg             config.Config
	logger          *slog.Logger
	db              *gorm.DB
	rdb             *redis.Client
	userService     *services.UserService
	exerciseService *services.ExerciseService
	auditService    *services.AuditService
}

func NewHandler(
	cfg config.Config,
	logger *slog.Logger,
	db *gorm.DB,
	rdb *redis.Client,
	userService *services.UserService,
	exerciseService *services.ExerciseService,
	auditService *services.AuditService,
) *Handler {
	return &Handler{
		cfg:             cfg,
		logger:          logger,
		db:              db,
		rdb:             rdb,
		userService:     userService,
		exerciseService: exerciseService,
		auditService:    auditService,
	}
}

// respondError is the single choke point translating service errors to
// wire responses. Every endpoint uses the same JSON {"error": ...} shape.
func (h *Handler) respondError(c *gin.Context, err error) {
	var vErr *services.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error()})
	case errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrDuplicateUsername):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		h.logger.Error("Request failed", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
	}
}
