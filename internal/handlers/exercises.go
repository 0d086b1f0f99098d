package handlers

import (
	"net/http"

	"github.com/IshitaGujarathi/ercisetracker-main/internal/services"

	"github.com/gin-gonic/gin"
)

// Duration and date bind as strings; coercion happens in the service with
// an explicit fail path (form data always arrives as strings anyway).
type AddExerciseRequest struct {
	Description string `form:"description" json:"description"`
	Duration    string `form:"duration" json:"duration"`
	Date        string `form:"date" json:"date"`
}

// AddExercise handles POST /api/users/:_id/exercises.
func (h *Handler) AddExercise(c *gin.Context) {
	var req AddExerciseRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.exerciseService.Add(c.Param("_id"), services.ExerciseInput{
		Description: req.Description,
		Duration:    req.Duration,
		Date:        req.Date,
		IPAddress:   c.ClientIP(),
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// GetLog handles GET /api/users/:_id/logs.
func (h *Handler) GetLog(c *gin.Context) {
	result, err := h.exerciseService.Log(c.Param("_id"), services.LogFilter{
		From:  c.Query("from"),
		To:    c.Query("to"),
		Limit: c.Query("limit"),
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
