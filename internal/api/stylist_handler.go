package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"fitfx-backend-go/internal/ai"
	"fitfx-backend-go/internal/core"
	"fitfx-backend-go/internal/models"
)

// StylistHandler handles API endpoints backed by the generative stylist.
type StylistHandler struct {
	stylistService core.StylistService
}

// NewStylistHandler creates a new StylistHandler.
func NewStylistHandler(ss core.StylistService) *StylistHandler {
	return &StylistHandler{stylistService: ss}
}

// mapStylistErrorToStatus maps errors from core.StylistService to HTTP status
// codes. Model failures are surfaced as 502 since the fault is upstream.
func mapStylistErrorToStatus(c *gin.Context, err error) {
	switch {
	case errors.Is(err, core.ErrUserNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: core.ErrUserNotFound.Error()})
	case errors.Is(err, core.ErrFeatureLocked):
		// 402 signals the client to show the upgrade prompt.
		c.JSON(http.StatusPaymentRequired, ErrorResponse{Error: core.ErrFeatureLocked.Error(), Details: err.Error()})
	case errors.Is(err, ai.ErrEmptyResponse), errors.Is(err, ai.ErrNoJSON):
		log.Printf("Stylist model returned an unusable response: %v", err)
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "The stylist is unavailable right now. Please try again."})
	default:
		log.Printf("Internal Server Error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "An unexpected internal server error occurred."})
	}
}

// GetPersonalizedOutfits handles POST /stylist/outfits
func (h *StylistHandler) GetPersonalizedOutfits(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User ID not found in context"})
		return
	}

	outfits, err := h.stylistService.PersonalizedOutfits(c.Request.Context(), userID.(string))
	if err != nil {
		mapStylistErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, outfits)
}

// GetColorSuggestions handles POST /stylist/colors
func (h *StylistHandler) GetColorSuggestions(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User ID not found in context"})
		return
	}

	var req models.ColorSuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	suggestions, err := h.stylistService.ColorSuggestions(c.Request.Context(), userID.(string), req)
	if err != nil {
		mapStylistErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, suggestions)
}
