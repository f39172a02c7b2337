package api

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"fitfx-backend-go/internal/core"
	"fitfx-backend-go/internal/models"
)

// CalendarHandler handles API endpoints for the outfit calendar.
type CalendarHandler struct {
	calendarService core.CalendarService
}

// NewCalendarHandler creates a new CalendarHandler.
func NewCalendarHandler(cs core.CalendarService) *CalendarHandler {
	return &CalendarHandler{calendarService: cs}
}

// GetMonth handles GET /calendar/:year/:month
func (h *CalendarHandler) GetMonth(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User ID not found in context"})
		return
	}

	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 1970 || year > 9999 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Year must be a four digit number"})
		return
	}
	monthNum, err := strconv.Atoi(c.Param("month"))
	if err != nil || monthNum < 1 || monthNum > 12 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Month must be between 1 and 12"})
		return
	}

	view, err := h.calendarService.MonthView(c.Request.Context(), userID.(string), year, time.Month(monthNum))
	if err != nil {
		log.Printf("Internal Server Error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build calendar month"})
		return
	}
	c.JSON(http.StatusOK, view)
}

// SaveOverride handles PUT /calendar/days/:date
func (h *CalendarHandler) SaveOverride(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User ID not found in context"})
		return
	}
	dateKey := c.Param("date")

	var req models.SaveCalendarOverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	saved, err := h.calendarService.SaveOverride(c.Request.Context(), userID.(string), dateKey, req)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrInvalidDate):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: core.ErrInvalidDate.Error(), Details: err.Error()})
		case errors.Is(err, core.ErrOverrideSaveFailed):
			log.Printf("Internal Server Error: %v", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: core.ErrOverrideSaveFailed.Error()})
		default:
			log.Printf("Internal Server Error: %v", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "An unexpected internal server error occurred."})
		}
		return
	}
	c.JSON(http.StatusOK, saved)
}
