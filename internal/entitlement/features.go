package entitlement

import (
	"time"

	"fitfx-backend-go/internal/models"
)

// Feature is an AI capability gated by subscription tier.
type Feature string

const (
	FeatureAIEdit          Feature = "ai-edit"
	FeatureColorSuggestion Feature = "color-suggestion"
	FeatureVirtualTryOn    Feature = "virtual-tryon"
	FeatureFabricMixer     Feature = "fabric-mixer"
)

// featureRequirements maps each feature to the minimum tier that unlocks it.
var featureRequirements = map[Feature]Tier{
	FeatureAIEdit:          TierFree,
	FeatureColorSuggestion: TierFree,
	FeatureVirtualTryOn:    TierStylePlus,
	FeatureFabricMixer:     TierStyleX,
}

// Access is the answer to "may this user use this feature", carrying the
// required tier's display name so callers can render an upgrade prompt
// without a second lookup.
type Access struct {
	Accessible   bool   `json:"accessible"`
	RequiredTier Tier   `json:"requiredTier"`
	TierName     string `json:"tierName"`
}

// RequiredTier returns the minimum tier for a feature. Unknown features
// require the top tier, so a feature added without a table entry fails closed.
func RequiredTier(feature Feature) Tier {
	if t, ok := featureRequirements[feature]; ok {
		return t
	}
	return TierStyleX
}

// FeatureAccess reports whether the effective tier's rank meets the
// feature's required rank.
func FeatureAccess(sub *models.Subscription, feature Feature, now time.Time) Access {
	required := RequiredTier(feature)
	current := EffectiveTier(sub, now)
	return Access{
		Accessible:   current.Rank() >= required.Rank(),
		RequiredTier: required,
		TierName:     required.DisplayName(),
	}
}

// FeaturesStatus is the full access matrix for one user, shaped for the
// subscription screen.
type FeaturesStatus struct {
	AIEdit          Access `json:"aiEdit"`
	ColorSuggestion Access `json:"colorSuggestion"`
	VirtualTryOn    Access `json:"virtualTryOn"`
	FabricMixer     Access `json:"fabricMixer"`
	CurrentTier     Tier   `json:"currentTier"`
}

// AllFeatures evaluates every known feature against one subscription record.
func AllFeatures(sub *models.Subscription, now time.Time) FeaturesStatus {
	return FeaturesStatus{
		AIEdit:          FeatureAccess(sub, FeatureAIEdit, now),
		ColorSuggestion: FeatureAccess(sub, FeatureColorSuggestion, now),
		VirtualTryOn:    FeatureAccess(sub, FeatureVirtualTryOn, now),
		FabricMixer:     FeatureAccess(sub, FeatureFabricMixer, now),
		CurrentTier:     EffectiveTier(sub, now),
	}
}
