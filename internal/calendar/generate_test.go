package calendar

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitfx-backend-go/internal/models"
)

func newRng(seed int64) *rand.Rand { return rand.New(rand.NewSource(seed)) }

func TestDefaultCatalogParses(t *testing.T) {
	c := DefaultCatalog()
	for _, occ := range []string{"professional", "party", "casual"} {
		for _, style := range []string{"american", "indian"} {
			assert.NotEmptyf(t, c.Bucket(occ, style), "bucket %s/%s", occ, style)
		}
	}
}

func TestGenerateMonthCoversEveryDay(t *testing.T) {
	got := GenerateMonth(2025, time.March, DefaultCatalog(), newRng(1))
	assert.Len(t, got, DaysIn(2025, time.March))
}

func TestGenerateMonthWeekdayRule(t *testing.T) {
	got := GenerateMonth(2025, time.March, DefaultCatalog(), newRng(1))

	for key, s := range got {
		_, _, _, err := ParseDateKey(key)
		require.NoError(t, err)
		day, err := time.Parse("2006-01-02", key)
		require.NoError(t, err)

		switch day.Weekday() {
		case time.Saturday:
			assert.Equal(t, OccasionParty, s.Occasion, key)
		case time.Sunday:
			assert.Equal(t, OccasionCasual, s.Occasion, key)
		default:
			assert.Equal(t, OccasionProfessional, s.Occasion, key)
		}
		assert.Contains(t, []string{StyleAmerican, StyleIndian}, s.Style)
		assert.Equal(t, key, s.DateString)
	}
}

func TestGenerateMonthReproducibleUnderFixedSeed(t *testing.T) {
	first := GenerateMonth(2025, time.July, DefaultCatalog(), newRng(42))
	second := GenerateMonth(2025, time.July, DefaultCatalog(), newRng(42))
	assert.Equal(t, first, second)
}

func TestGenerateMonthSingleRowBucketsDoNotStarve(t *testing.T) {
	// One row per bucket: the used-set reset must let every day draw the
	// same row again instead of stalling or skipping days.
	navySuit := models.Outfit{ColorCombination: "Navy & White", Top: "White shirt", Bottom: "Navy trousers", Shoes: "Brown oxfords"}
	single := Catalog{
		"professional": {"american": {navySuit}, "indian": {navySuit}},
		"party":        {"american": {navySuit}, "indian": {navySuit}},
		"casual":       {"american": {navySuit}, "indian": {navySuit}},
	}

	got := GenerateMonth(2025, time.January, single, newRng(7)) // 31 days
	require.Len(t, got, 31)
	for _, s := range got {
		assert.Equal(t, navySuit, s.Outfit)
	}
}

func TestGenerateMonthSkipsEmptyBuckets(t *testing.T) {
	// Only professional/american rows exist: weekend days and every weekday
	// that flips Indian are omitted, without error.
	partial := Catalog{
		"professional": {"american": DefaultCatalog().Bucket("professional", "american")},
	}

	got := GenerateMonth(2025, time.March, partial, newRng(3))
	assert.Less(t, len(got), DaysIn(2025, time.March))
	for key, s := range got {
		assert.Equal(t, OccasionProfessional, s.Occasion, key)
		assert.Equal(t, StyleAmerican, s.Style, key)
	}
}

func TestGenerateMonthNoImmediateExhaustionRepeats(t *testing.T) {
	// Within one pass over a bucket, no row may repeat until the bucket is
	// exhausted. Count occurrences per row: max and min must differ by at
	// most one.
	got := GenerateMonth(2025, time.March, DefaultCatalog(), newRng(11))

	perBucket := make(map[string]map[models.Outfit]int)
	for _, s := range got {
		key := s.Occasion + "-" + s.Style
		if perBucket[key] == nil {
			perBucket[key] = make(map[models.Outfit]int)
		}
		perBucket[key][s.Outfit]++
	}
	for bucket, counts := range perBucket {
		minCount, maxCount := int(^uint(0)>>1), 0
		for _, n := range counts {
			if n < minCount {
				minCount = n
			}
			if n > maxCount {
				maxCount = n
			}
		}
		assert.LessOrEqualf(t, maxCount-minCount, 1, "bucket %s draws are uneven: %v", bucket, counts)
	}
}

func TestMergeOverrides(t *testing.T) {
	generated := GenerateMonth(2025, time.March, DefaultCatalog(), newRng(5))
	require.Contains(t, generated, "2025-03-10")

	override := models.CalendarSuggestion{
		Outfit:     models.Outfit{ColorCombination: "Fuchsia & Silver", Top: "Sequin top", Bottom: "Silver skirt", Shoes: "Heels"},
		DateString: "2025-03-10",
		Occasion:   "Other", // the editor allows values the generator never produces
		Style:      "Fusion",
	}
	overrides := map[string]models.CalendarSuggestion{"2025-03-10": override}

	merged := MergeOverrides(generated, overrides)
	assert.Equal(t, override, merged["2025-03-10"])
	for key, s := range generated {
		if key == "2025-03-10" {
			continue
		}
		assert.Equal(t, s, merged[key])
	}

	// Inputs stay untouched.
	assert.NotEqual(t, override, generated["2025-03-10"])
}

func TestDateKeyRoundTrip(t *testing.T) {
	key := DateKey(2025, time.March, 5)
	assert.Equal(t, "2025-03-05", key)

	y, m, d, err := ParseDateKey(key)
	require.NoError(t, err)
	assert.Equal(t, 2025, y)
	assert.Equal(t, time.March, m)
	assert.Equal(t, 5, d)

	_, _, _, err = ParseDateKey("2025-3-5")
	assert.Error(t, err)
	_, _, _, err = ParseDateKey("2025-13-01")
	assert.Error(t, err)
}

func TestDaysIn(t *testing.T) {
	assert.Equal(t, 31, DaysIn(2025, time.January))
	assert.Equal(t, 28, DaysIn(2025, time.February))
	assert.Equal(t, 29, DaysIn(2024, time.February))
	assert.Equal(t, 30, DaysIn(2025, time.April))
}
