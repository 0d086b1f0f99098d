package handlers

import (
	"path/filepath"

	"github.com/IshitaGujarathi/ercisetracker-main/internal/services"

	"github.com/gin-gonic/gin"
)

func (h *Handler) SetupRouter(rateLimiter *services.IPRateLimiter) *gin.Engine {
	r := gin.Default()

	// Middleware
	r.Use(h.RequestIDMiddleware())
	if rateLimiter != nil {
		r.Use(h.RateLimitMiddleware(rateLimiter))
	}

	// Static landing page
	if h.cfg.StaticDir != "" {
		r.StaticFile("/", filepath.Join(h.cfg.StaticDir, "index.html"))
		r.Static("/static", h.cfg.StaticDir)
	}

	r.GET("/health", h.Health)

	// API Routes
	api := r.Group("/api")
	{
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.POST("/users/:_id/exercises", h.AddExercise)
		api.GET("/users/:_id/logs", h.GetLog)
	}

	return r
}
