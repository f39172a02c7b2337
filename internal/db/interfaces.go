package db

import (
	"context"

	"fitfx-backend-go/internal/models"
)

// UserRepository defines the interface for per-user document storage.
type UserRepository interface {
	GetByID(ctx context.Context, userID string) (*models.UserProfile, error)
	Create(ctx context.Context, user *models.UserProfile) error
	// Update merges the given profile into the stored document.
	Update(ctx context.Context, user *models.UserProfile) error
	// UpdateSubscription replaces only the subscription field of the document.
	UpdateSubscription(ctx context.Context, userID string, sub *models.Subscription) error
	// SetWardrobe replaces the whole wardrobe array. Callers resolve garment
	// IDs to positions before calling; no positional index crosses this
	// boundary from the outside.
	SetWardrobe(ctx context.Context, userID string, wardrobe []models.Garment) error
}

// OverrideRepository defines the interface for per-user calendar override
// storage. The map is read and written whole; a missing or corrupt stored map
// reads as empty.
type OverrideRepository interface {
	Get(ctx context.Context, userID string) (map[string]models.CalendarSuggestion, error)
	Set(ctx context.Context, userID string, overrides map[string]models.CalendarSuggestion) error
}

// AuditRepository defines the interface for audit log storage.
type AuditRepository interface {
	Create(ctx context.Context, logEntry models.AuditLog) error
}
