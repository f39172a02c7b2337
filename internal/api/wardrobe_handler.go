package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"fitfx-backend-go/internal/core"
	"fitfx-backend-go/internal/entitlement"
	"fitfx-backend-go/internal/models"
)

// WardrobeHandler handles API endpoints for wardrobe items.
type WardrobeHandler struct {
	wardrobeService core.WardrobeService
}

// NewWardrobeHandler creates a new WardrobeHandler.
func NewWardrobeHandler(ws core.WardrobeService) *WardrobeHandler {
	return &WardrobeHandler{wardrobeService: ws}
}

// wardrobeListResponse pairs the visible items with the entitlement status so
// the client can render the upgrade banner without a second call.
type wardrobeListResponse struct {
	Items  []models.Garment           `json:"items"`
	Status entitlement.WardrobeStatus `json:"status"`
}

// mapWardrobeErrorToStatus maps errors from core.WardrobeService to HTTP
// status codes.
func mapWardrobeErrorToStatus(c *gin.Context, err error) {
	switch {
	case errors.Is(err, core.ErrUserNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "User profile not found. Call /users/initialize first."})
	case errors.Is(err, core.ErrGarmentNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: core.ErrGarmentNotFound.Error()})
	case errors.Is(err, core.ErrWardrobeLimitReached):
		// 402 signals the client to show the upgrade prompt.
		c.JSON(http.StatusPaymentRequired, ErrorResponse{Error: core.ErrWardrobeLimitReached.Error(), Details: err.Error()})
	default:
		log.Printf("Internal Server Error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "An unexpected internal server error occurred."})
	}
}

// ListWardrobe handles GET /wardrobe
func (h *WardrobeHandler) ListWardrobe(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User ID not found in context"})
		return
	}

	items, status, err := h.wardrobeService.List(c.Request.Context(), userID.(string))
	if err != nil {
		mapWardrobeErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, wardrobeListResponse{Items: items, Status: status})
}

// GetWardrobeStatus handles GET /wardrobe/status
func (h *WardrobeHandler) GetWardrobeStatus(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User ID not found in context"})
		return
	}

	status, err := h.wardrobeService.Status(c.Request.Context(), userID.(string))
	if err != nil {
		mapWardrobeErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// AddGarment handles POST /wardrobe
func (h *WardrobeHandler) AddGarment(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User ID not found in context"})
		return
	}

	var req models.AddGarmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	garment, err := h.wardrobeService.Add(c.Request.Context(), userID.(string), req)
	if err != nil {
		mapWardrobeErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusCreated, garment)
}

// UpdateGarment handles PUT /wardrobe/:garmentId
func (h *WardrobeHandler) UpdateGarment(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User ID not found in context"})
		return
	}
	garmentID := c.Param("garmentId")
	if garmentID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Garment ID is required"})
		return
	}

	var req models.UpdateGarmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	garment, err := h.wardrobeService.UpdateItem(c.Request.Context(), userID.(string), garmentID, req)
	if err != nil {
		mapWardrobeErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, garment)
}

// DeleteGarment handles DELETE /wardrobe/:garmentId
func (h *WardrobeHandler) DeleteGarment(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User ID not found in context"})
		return
	}
	garmentID := c.Param("garmentId")
	if garmentID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Garment ID is required"})
		return
	}

	if err := h.wardrobeService.DeleteItem(c.Request.Context(), userID.(string), garmentID); err != nil {
		mapWardrobeErrorToStatus(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
