package calendar

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"fitfx-backend-go/internal/models"
)

// DateKey formats the canonical YYYY-MM-DD key for a day.
func DateKey(year int, month time.Month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
}

// ParseDateKey validates a YYYY-MM-DD key and returns its components.
func ParseDateKey(key string) (int, time.Month, int, error) {
	t, err := time.Parse("2006-01-02", key)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid date key %q: %w", key, err)
	}
	return t.Year(), t.Month(), t.Day(), nil
}

// DaysIn returns the number of days in a month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, -1).Day()
}

// occasionFor maps a weekday to its occasion bucket: weekdays are
// Professional, Saturday is Party, Sunday is Casual. This rule is fixed, not
// configurable.
func occasionFor(weekday time.Weekday) string {
	switch weekday {
	case time.Saturday:
		return OccasionParty
	case time.Sunday:
		return OccasionCasual
	default:
		return OccasionProfessional
	}
}

// GenerateMonth builds one suggestion per calendar day of the given month.
//
// For every day the occasion comes from the weekday rule and the style is a
// coin flip between American and Indian. The catalog row for that bucket is
// drawn without repetition until the bucket is exhausted, at which point the
// used-set resets so months longer than a bucket never starve. Days whose
// bucket is empty are omitted rather than erroring.
//
// The random source is injected so a fixed seed reproduces a month exactly.
func GenerateMonth(year int, month time.Month, catalog Catalog, rng *rand.Rand) map[string]models.CalendarSuggestion {
	suggestions := make(map[string]models.CalendarSuggestion)
	used := make(map[string]map[int]bool)

	for day := 1; day <= DaysIn(year, month); day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		occasion := occasionFor(date.Weekday())

		style := StyleAmerican
		if rng.Intn(2) == 1 {
			style = StyleIndian
		}

		occKey := strings.ToLower(occasion)
		styleKey := strings.ToLower(style)
		bucket := catalog.Bucket(occKey, styleKey)
		if len(bucket) == 0 {
			continue
		}

		bucketKey := occKey + "-" + styleKey
		if used[bucketKey] == nil || len(used[bucketKey]) >= len(bucket) {
			used[bucketKey] = make(map[int]bool)
		}

		remaining := make([]int, 0, len(bucket))
		for i := range bucket {
			if !used[bucketKey][i] {
				remaining = append(remaining, i)
			}
		}
		pick := remaining[rng.Intn(len(remaining))]
		used[bucketKey][pick] = true

		key := DateKey(year, month, day)
		suggestions[key] = models.CalendarSuggestion{
			Outfit:     bucket[pick],
			DateString: key,
			Occasion:   occasion,
			Style:      style,
		}
	}

	return suggestions
}

// MergeOverrides unions generated suggestions with saved overrides, the
// override replacing the entire day's record for any shared key. Neither
// input map is mutated.
func MergeOverrides(generated, overrides map[string]models.CalendarSuggestion) map[string]models.CalendarSuggestion {
	merged := make(map[string]models.CalendarSuggestion, len(generated)+len(overrides))
	for key, s := range generated {
		merged[key] = s
	}
	for key, s := range overrides {
		merged[key] = s
	}
	return merged
}
