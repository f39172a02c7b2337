package core

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"fitfx-backend-go/internal/calendar"
	"fitfx-backend-go/internal/models"
)

func newTestCalendarService(repo *fakeOverrideRepository) *calendarService {
	return &calendarService{
		overrideRepo: repo,
		catalog:      calendar.DefaultCatalog(),
		logger:       zap.NewNop(),
		seedFn:       func() int64 { return 42 },
	}
}

func TestMonthViewCoversEveryDay(t *testing.T) {
	svc := newTestCalendarService(newFakeOverrideRepository())

	view, err := svc.MonthView(context.Background(), "u1", 2026, time.March)
	require.NoError(t, err)
	assert.Len(t, view, calendar.DaysIn(2026, time.March))
	assert.Contains(t, view, "2026-03-01")
	assert.Contains(t, view, "2026-03-31")
}

func TestMonthViewAppliesOverrides(t *testing.T) {
	repo := newFakeOverrideRepository()
	repo.overrides["u1"] = map[string]models.CalendarSuggestion{
		"2026-03-14": {
			DateString: "2026-03-14",
			Occasion:   "Party",
			Style:      "Fusion",
			Outfit:     models.Outfit{Top: "Bandhgala", Bottom: "Dark jeans"},
		},
	}
	svc := newTestCalendarService(repo)

	view, err := svc.MonthView(context.Background(), "u1", 2026, time.March)
	require.NoError(t, err)

	day := view["2026-03-14"]
	assert.Equal(t, "Fusion", day.Style)
	assert.Equal(t, "Bandhgala", day.Top)
}

func TestMonthViewOverridesAreScopedPerUser(t *testing.T) {
	repo := newFakeOverrideRepository()
	repo.overrides["u1"] = map[string]models.CalendarSuggestion{
		"2026-03-14": {DateString: "2026-03-14", Occasion: "Party", Style: "Fusion", Outfit: models.Outfit{Top: "Bandhgala"}},
	}
	svc := newTestCalendarService(repo)

	view, err := svc.MonthView(context.Background(), "u2", 2026, time.March)
	require.NoError(t, err)
	assert.NotEqual(t, "Fusion", view["2026-03-14"].Style, "another user's override must not leak in")
}

func TestMonthViewDegradesWhenOverrideStoreFails(t *testing.T) {
	repo := newFakeOverrideRepository()
	repo.getErr = errors.New("redis connection refused")
	svc := newTestCalendarService(repo)

	view, err := svc.MonthView(context.Background(), "u1", 2026, time.March)
	require.NoError(t, err, "a failed override read serves the generated month")
	assert.Len(t, view, calendar.DaysIn(2026, time.March))
}

func TestSaveOverrideRoundTrip(t *testing.T) {
	repo := newFakeOverrideRepository()
	svc := newTestCalendarService(repo)

	saved, err := svc.SaveOverride(context.Background(), "u1", "2026-03-14", models.SaveCalendarOverrideRequest{
		Occasion:         "Party",
		Style:            "Other",
		ColorCombination: "Black and Gold",
		Top:              "Silk shirt",
		Bottom:           "Tailored trousers",
		Shoes:            "Loafers",
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-03-14", saved.DateString)
	assert.Equal(t, "Other", saved.Style)

	view, err := svc.MonthView(context.Background(), "u1", 2026, time.March)
	require.NoError(t, err)
	assert.Equal(t, "Silk shirt", view["2026-03-14"].Top)
}

func TestSaveOverridePreservesOtherDays(t *testing.T) {
	repo := newFakeOverrideRepository()
	svc := newTestCalendarService(repo)

	_, err := svc.SaveOverride(context.Background(), "u1", "2026-03-14", models.SaveCalendarOverrideRequest{Occasion: "Party", Style: "Indian"})
	require.NoError(t, err)
	_, err = svc.SaveOverride(context.Background(), "u1", "2026-03-15", models.SaveCalendarOverrideRequest{Occasion: "Casual", Style: "American"})
	require.NoError(t, err)

	stored, _ := repo.Get(context.Background(), "u1")
	assert.Len(t, stored, 2)
	assert.Equal(t, "Indian", stored["2026-03-14"].Style)
	assert.Equal(t, "American", stored["2026-03-15"].Style)
}

func TestSaveOverrideRejectsBadDate(t *testing.T) {
	svc := newTestCalendarService(newFakeOverrideRepository())

	for _, key := range []string{"14-03-2026", "2026-3-14", "2026-03-32", "not-a-date", ""} {
		_, err := svc.SaveOverride(context.Background(), "u1", key, models.SaveCalendarOverrideRequest{Occasion: "Party", Style: "Indian"})
		assert.ErrorIs(t, err, ErrInvalidDate, "key %q", key)
	}
}

func TestSaveOverrideReportsStoreFailure(t *testing.T) {
	repo := newFakeOverrideRepository()
	repo.setErr = errors.New("redis write timeout")
	svc := newTestCalendarService(repo)

	_, err := svc.SaveOverride(context.Background(), "u1", "2026-03-14", models.SaveCalendarOverrideRequest{Occasion: "Party", Style: "Indian"})
	assert.ErrorIs(t, err, ErrOverrideSaveFailed)
}
