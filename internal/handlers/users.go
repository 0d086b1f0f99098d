package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

type CreateUserRequest struct {
	Username string `form:"username" json:"username"`
}

type UserResponse struct {
	Username string `json:"username"`
	ID       string `json:"_id"`
}

// CreateUser handles POST /api/users, from an urlencoded form or JSON body.
func (h *Handler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userService.Create(req.Username, c.ClientIP())
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.invalidateUserListCache(c.Request.Context())

	c.JSON(http.StatusCreated, UserResponse{Username: user.Username, ID: user.ID})
}

// ListUsers handles GET /api/users.
func (h *Handler) ListUsers(c *gin.Context) {
	ctx := c.Request.Context()

	if cached, ok := h.cachedUserList(ctx); ok {
		c.Data(http.StatusOK, "application/json; charset=utf-8", cached)
		return
	}

	users, err := h.userService.List()
	if err != nil {
		h.respondError(c, err)
		return
	}

	resp := make([]UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, UserResponse{Username: u.Username, ID: u.ID})
	}

	data, err := json.Marshal(resp)
	if err != nil {
		c.JSON(http.StatusOK, resp)
		return
	}

	h.storeUserList(ctx, data)
	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
}
