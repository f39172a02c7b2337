package core

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"fitfx-backend-go/internal/calendar"
	"fitfx-backend-go/internal/db"
	"fitfx-backend-go/internal/models"
)

// Errors returned by the CalendarService.
var (
	// ErrInvalidDate means the date key is not a valid YYYY-MM-DD value.
	ErrInvalidDate = errors.New("invalid calendar date")
	// ErrOverrideSaveFailed means the override store rejected the write.
	ErrOverrideSaveFailed = errors.New("failed to save calendar override")
)

// calendarService implements the CalendarService interface. Month views are
// regenerated on every read from the outfit catalog and then patched with the
// user's saved overrides. Override reads are best effort: a failed or corrupt
// read degrades to the generated month, a failed write is reported.
type calendarService struct {
	overrideRepo db.OverrideRepository
	catalog      calendar.Catalog
	logger       *zap.Logger
	seedFn       func() int64
}

// NewCalendarService creates a new CalendarService instance backed by the
// given override store and outfit catalog.
func NewCalendarService(overrideRepo db.OverrideRepository, catalog calendar.Catalog, logger *zap.Logger) CalendarService {
	return &calendarService{
		overrideRepo: overrideRepo,
		catalog:      catalog,
		logger:       logger,
		seedFn:       func() int64 { return time.Now().UnixNano() },
	}
}

// MonthView regenerates the month's suggestions and applies any saved
// overrides for its dates. Overrides always win over generated rows.
func (s *calendarService) MonthView(ctx context.Context, userID string, year int, month time.Month) (map[string]models.CalendarSuggestion, error) {
	rng := rand.New(rand.NewSource(s.seedFn()))
	generated := calendar.GenerateMonth(year, month, s.catalog, rng)

	overrides, err := s.overrideRepo.Get(ctx, userID)
	if err != nil {
		s.logger.Warn("Failed to read calendar overrides, serving generated month",
			zap.String("userId", userID), zap.Error(err))
		overrides = map[string]models.CalendarSuggestion{}
	}

	return calendar.MergeOverrides(generated, overrides), nil
}

// SaveOverride persists one day's replacement record verbatim. The stored
// map for the user is read, patched and written back whole.
func (s *calendarService) SaveOverride(ctx context.Context, userID, dateKey string, req models.SaveCalendarOverrideRequest) (*models.CalendarSuggestion, error) {
	if _, _, _, err := calendar.ParseDateKey(dateKey); err != nil {
		return nil, fmt.Errorf("%w: '%s'", ErrInvalidDate, dateKey)
	}

	overrides, err := s.overrideRepo.Get(ctx, userID)
	if err != nil {
		s.logger.Warn("Failed to read calendar overrides before save, starting fresh",
			zap.String("userId", userID), zap.Error(err))
		overrides = map[string]models.CalendarSuggestion{}
	}

	suggestion := models.CalendarSuggestion{
		DateString: dateKey,
		Occasion:   req.Occasion,
		Style:      req.Style,
		Outfit: models.Outfit{
			ColorCombination: req.ColorCombination,
			Top:              req.Top,
			Bottom:           req.Bottom,
			Layer:            req.Layer,
			Shoes:            req.Shoes,
		},
	}
	overrides[dateKey] = suggestion

	if err := s.overrideRepo.Set(ctx, userID, overrides); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOverrideSaveFailed, err)
	}
	return &suggestion, nil
}
