package core

import (
	"context"
	"time"

	"fitfx-backend-go/internal/entitlement"
	"fitfx-backend-go/internal/models"
)

// UserService defines the interface for user profile operations.
type UserService interface {
	// GetOrCreate retrieves a user by ID, creating a fresh profile with a
	// free subscription when none exists. The bool reports creation.
	GetOrCreate(ctx context.Context, userID, email, displayName string) (*models.UserProfile, bool, error)
	GetByID(ctx context.Context, userID string) (*models.UserProfile, error)
	UpdateProfile(ctx context.Context, userID string, req models.UpdateProfileRequest) (*models.UserProfile, error)
}

// SubscriptionService defines the interface for subscription reads and
// lifecycle transitions.
type SubscriptionService interface {
	// Get returns the user's subscription record. It never returns nil: a
	// missing record or a failed fetch yields a free-tier default, so
	// entitlement checks always fail open to the most restrictive tier.
	Get(ctx context.Context, userID string) *models.Subscription
	Status(ctx context.Context, userID string) SubscriptionStatus
	Features(ctx context.Context, userID string) entitlement.FeaturesStatus
	ActivatePaid(ctx context.Context, userID string, tier entitlement.Tier, paymentID, orderID, endDate string) (*models.Subscription, error)
	Cancel(ctx context.Context, userID string) error
}

// WardrobeService defines the interface for wardrobe item operations. Items
// are addressed by their stable garment ID everywhere; positions are resolved
// only at the storage-write boundary.
type WardrobeService interface {
	// List returns the items visible under the effective tier plus the full
	// visibility status.
	List(ctx context.Context, userID string) ([]models.Garment, entitlement.WardrobeStatus, error)
	Add(ctx context.Context, userID string, req models.AddGarmentRequest) (*models.Garment, error)
	UpdateItem(ctx context.Context, userID, garmentID string, req models.UpdateGarmentRequest) (*models.Garment, error)
	DeleteItem(ctx context.Context, userID, garmentID string) error
	Status(ctx context.Context, userID string) (entitlement.WardrobeStatus, error)
}

// CalendarService defines the interface for the outfit calendar.
type CalendarService interface {
	// MonthView regenerates the month's suggestions and applies any saved
	// overrides for its dates.
	MonthView(ctx context.Context, userID string, year int, month time.Month) (map[string]models.CalendarSuggestion, error)
	// SaveOverride persists one day's replacement record verbatim.
	SaveOverride(ctx context.Context, userID, dateKey string, req models.SaveCalendarOverrideRequest) (*models.CalendarSuggestion, error)
}

// StylistService defines the interface for generative-AI styling features.
type StylistService interface {
	PersonalizedOutfits(ctx context.Context, userID string) ([]models.PersonalizedOutfit, error)
	ColorSuggestions(ctx context.Context, userID string, req models.ColorSuggestionRequest) ([]models.ColorSuggestion, error)
}

// BillingService defines the interface for plan listing and payment-provider
// callbacks.
type BillingService interface {
	Plans() []Plan
	ConfirmPayment(ctx context.Context, req models.PaymentWebhookRequest) error
	CancelSubscription(ctx context.Context, userID string) error
}

// AuditService defines the interface for audit logging operations.
type AuditService interface {
	CreateAuditLog(ctx context.Context, logEntry models.AuditLog) error
}
