// Package entitlement decides what a user's subscription allows: the tier in
// force after expiry, wardrobe item limits, and per-feature access. Every
// function here is a total, side-effect-free computation over already-fetched
// data; fetching (and the fail-open fallback to a free-tier record when a
// fetch fails) is the caller's job.
package entitlement

import (
	"time"

	"fitfx-backend-go/internal/models"
)

// Tier is a subscription rank. Ranks are ordered free < style_plus < style_x
// via an explicit rank table; never compare tier strings directly.
type Tier string

const (
	TierFree      Tier = "free"
	TierStylePlus Tier = "style_plus"
	TierStyleX    Tier = "style_x"
)

var tierRank = map[Tier]int{
	TierFree:      0,
	TierStylePlus: 1,
	TierStyleX:    2,
}

var tierNames = map[Tier]string{
	TierFree:      "Free",
	TierStylePlus: "Style+",
	TierStyleX:    "StyleX",
}

// ParseTier maps a stored tier string to a Tier, defaulting to free for
// anything unrecognized.
func ParseTier(s string) Tier {
	t := Tier(s)
	if _, ok := tierRank[t]; !ok {
		return TierFree
	}
	return t
}

// Rank returns the tier's position in the ordering. Unknown tiers rank as free.
func (t Tier) Rank() int {
	if r, ok := tierRank[t]; ok {
		return r
	}
	return tierRank[TierFree]
}

// DisplayName returns the user-facing tier name.
func (t Tier) DisplayName() string {
	if n, ok := tierNames[t]; ok {
		return n
	}
	return tierNames[TierFree]
}

// Limit is a wardrobe item cap. Unlimited is a distinguished state, not a
// sentinel count, so it can never leak into arithmetic.
type Limit struct {
	Unlimited bool
	Count     int
}

// FiniteLimit returns a bounded limit of n items.
func FiniteLimit(n int) Limit { return Limit{Count: n} }

// NoLimit returns the unlimited limit.
func NoLimit() Limit { return Limit{Unlimited: true} }

var wardrobeLimits = map[Tier]Limit{
	TierFree:      FiniteLimit(5),
	TierStylePlus: FiniteLimit(50),
	TierStyleX:    NoLimit(),
}

// WardrobeLimit returns the wardrobe item cap for a tier.
func WardrobeLimit(tier Tier) Limit {
	if l, ok := wardrobeLimits[tier]; ok {
		return l
	}
	return wardrobeLimits[TierFree]
}

// IsExpired reports whether the record carries an end date that has passed.
// A missing record, a missing end date, or an unparseable end date all count
// as not expired.
func IsExpired(sub *models.Subscription, now time.Time) bool {
	if sub == nil || sub.EndDate == "" {
		return false
	}
	end, err := time.Parse(time.RFC3339, sub.EndDate)
	if err != nil {
		return false
	}
	return now.After(end)
}

// EffectiveTier returns the tier actually in force: free when the record is
// absent, free when a paid tier has lapsed, the stored tier otherwise.
func EffectiveTier(sub *models.Subscription, now time.Time) Tier {
	if sub == nil {
		return TierFree
	}
	if IsExpired(sub, now) {
		return TierFree
	}
	return ParseTier(sub.Tier)
}

// WardrobeStatus summarizes how much of a stored wardrobe is visible under
// the current effective tier. Limit is the stored tier's cap (zero when
// unlimited); accessibility is computed from the effective tier, so an
// expired paid tier reports its paid limit but free-tier access.
type WardrobeStatus struct {
	Accessible  int    `json:"accessible"`
	Total       int    `json:"total"`
	Limit       int    `json:"limit"`
	IsUnlimited bool   `json:"isUnlimited"`
	IsExpired   bool   `json:"isExpired"`
	HiddenCount int    `json:"hiddenCount"`
	Tier        Tier   `json:"tier"`
	TierName    string `json:"tierName"`
}

// Status derives the wardrobe visibility counts for a stored item count.
// Invariants: Accessible <= Total, HiddenCount >= 0, Accessible+HiddenCount == Total.
func Status(sub *models.Subscription, total int, now time.Time) WardrobeStatus {
	tier := TierFree
	if sub != nil {
		tier = ParseTier(sub.Tier)
	}
	expired := IsExpired(sub, now)
	limit := WardrobeLimit(tier)

	accessible := total
	if expired && tier != TierFree {
		accessible = min(total, WardrobeLimit(TierFree).Count)
	} else if !limit.Unlimited {
		accessible = min(total, limit.Count)
	}

	return WardrobeStatus{
		Accessible:  accessible,
		Total:       total,
		Limit:       limit.Count,
		IsUnlimited: limit.Unlimited,
		IsExpired:   expired,
		HiddenCount: total - accessible,
		Tier:        tier,
		TierName:    tier.DisplayName(),
	}
}

// CanAddItem reports whether one more wardrobe item fits under the effective
// tier's limit.
func CanAddItem(sub *models.Subscription, currentCount int, now time.Time) bool {
	limit := WardrobeLimit(EffectiveTier(sub, now))
	if limit.Unlimited {
		return true
	}
	return currentCount < limit.Count
}
