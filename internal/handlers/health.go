package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health reports degraded dependencies without failing the request.
func (h *Handler) Health(c *gin.Context) {
	status := gin.H{"status": "healthy"}

	sqlDB, err := h.db.DB()
	if err != nil || sqlDB.Ping() != nil {
		status["database"] = "unreachable"
	}

	if h.rdb != nil {
		if err := h.rdb.Ping(c.Request.Context()).Err(); err != nil {
			status["cache"] = "unreachable"
		}
	}

	c.JSON(http.StatusOK, status)
}
