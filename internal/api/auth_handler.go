package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitfx-backend-go/internal/core"
)

// AuthHandler handles the post-login profile bootstrap endpoint.
type AuthHandler struct {
	userService core.UserService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(us core.UserService) *AuthHandler {
	return &AuthHandler{userService: us}
}

// InitializeUserProfile handles POST /users/initialize.
// Called by the client after Firebase sign-in to make sure a backend profile
// exists. Returns 201 when a profile was created, 200 when it already existed.
func (h *AuthHandler) InitializeUserProfile(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User ID not found in context"})
		return
	}

	email := c.GetString("userEmail")
	displayName := c.GetString("userDisplayName")

	user, created, err := h.userService.GetOrCreate(c.Request.Context(), userID.(string), email, displayName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to initialize user profile", Details: err.Error()})
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, user)
}
