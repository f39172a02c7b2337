package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"fitfx-backend-go/internal/db"
	"fitfx-backend-go/internal/entitlement"
	"fitfx-backend-go/internal/models"
)

// Errors returned by the WardrobeService.
var (
	// ErrWardrobeLimitReached means the effective tier's item cap is full.
	ErrWardrobeLimitReached = errors.New("wardrobe limit reached for the current tier")
	// ErrGarmentNotFound means no item with the given ID exists in the
	// user's wardrobe.
	ErrGarmentNotFound = errors.New("wardrobe item not found")
)

// wardrobeService implements the WardrobeService interface. All reads and
// writes go through the user document; items are located by garment ID and
// resolved to a position only here, immediately before the storage write.
type wardrobeService struct {
	userRepo     db.UserRepository
	auditService AuditService
	logger       *zap.Logger
	nowFn        func() time.Time
}

// NewWardrobeService creates a new WardrobeService instance.
func NewWardrobeService(userRepo db.UserRepository, auditService AuditService, logger *zap.Logger) WardrobeService {
	return &wardrobeService{
		userRepo:     userRepo,
		auditService: auditService,
		logger:       logger,
		nowFn:        time.Now,
	}
}

// load fetches the user document. A missing document means the account never
// called the profile bootstrap; surfacing that beats letting a later write
// fail with a storage NotFound.
func (s *wardrobeService) load(ctx context.Context, userID string) (*models.UserProfile, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: user with ID '%s'", ErrUserNotFound, userID)
		}
		return nil, fmt.Errorf("failed to load wardrobe for user '%s': %w", userID, err)
	}
	return user, nil
}

// List returns the items visible under the effective tier plus the full
// visibility status. Hidden items (beyond the tier window) are not returned.
func (s *wardrobeService) List(ctx context.Context, userID string) ([]models.Garment, entitlement.WardrobeStatus, error) {
	user, err := s.load(ctx, userID)
	if err != nil {
		return nil, entitlement.WardrobeStatus{}, err
	}
	status := entitlement.Status(user.Subscription, len(user.Wardrobe), s.nowFn())
	return user.Wardrobe[:status.Accessible], status, nil
}

// Status reports the visibility counts without returning items.
func (s *wardrobeService) Status(ctx context.Context, userID string) (entitlement.WardrobeStatus, error) {
	user, err := s.load(ctx, userID)
	if err != nil {
		return entitlement.WardrobeStatus{}, err
	}
	return entitlement.Status(user.Subscription, len(user.Wardrobe), s.nowFn()), nil
}

// Add appends a new wardrobe item if the effective tier's limit allows it.
// The garment ID and upload timestamp are assigned here.
func (s *wardrobeService) Add(ctx context.Context, userID string, req models.AddGarmentRequest) (*models.Garment, error) {
	user, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.nowFn()
	if !entitlement.CanAddItem(user.Subscription, len(user.Wardrobe), now) {
		tier := entitlement.EffectiveTier(user.Subscription, now)
		limit := entitlement.WardrobeLimit(tier)
		return nil, fmt.Errorf("%w: tier %s allows %d item(s), current count %d",
			ErrWardrobeLimitReached, tier.DisplayName(), limit.Count, len(user.Wardrobe))
	}

	garment := models.Garment{
		ID:         uuid.NewString(),
		Color:      req.Color,
		Material:   req.Material,
		Type:       req.Type,
		Size:       req.Size,
		Occasion:   req.Occasion,
		Season:     req.Season,
		Condition:  req.Condition,
		Notes:      req.Notes,
		Image:      req.Image,
		ImageURL:   req.ImageURL,
		UploadedAt: now.UTC().Format(time.RFC3339),
	}

	wardrobe := append(user.Wardrobe, garment)
	if err := s.userRepo.SetWardrobe(ctx, userID, wardrobe); err != nil {
		return nil, fmt.Errorf("failed to add wardrobe item for user '%s': %w", userID, err)
	}

	s.audit(ctx, models.AuditLog{UserID: userID, Action: "WARDROBE_ADD", TargetID: garment.ID})
	return &garment, nil
}

// UpdateItem replaces the fields of the item with the given ID, preserving
// its ID, position and upload timestamp.
func (s *wardrobeService) UpdateItem(ctx context.Context, userID, garmentID string, req models.UpdateGarmentRequest) (*models.Garment, error) {
	user, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	idx := indexOfGarment(user.Wardrobe, garmentID)
	if idx < 0 {
		return nil, fmt.Errorf("%w: id '%s'", ErrGarmentNotFound, garmentID)
	}

	existing := user.Wardrobe[idx]
	updated := models.Garment{
		ID:         existing.ID,
		Color:      req.Color,
		Material:   req.Material,
		Type:       req.Type,
		Size:       req.Size,
		Occasion:   req.Occasion,
		Season:     req.Season,
		Condition:  req.Condition,
		Notes:      req.Notes,
		Image:      req.Image,
		ImageURL:   req.ImageURL,
		UploadedAt: existing.UploadedAt,
	}

	wardrobe := make([]models.Garment, len(user.Wardrobe))
	copy(wardrobe, user.Wardrobe)
	wardrobe[idx] = updated

	if err := s.userRepo.SetWardrobe(ctx, userID, wardrobe); err != nil {
		return nil, fmt.Errorf("failed to update wardrobe item '%s' for user '%s': %w", garmentID, userID, err)
	}

	s.audit(ctx, models.AuditLog{UserID: userID, Action: "WARDROBE_UPDATE", TargetID: garmentID})
	return &updated, nil
}

// DeleteItem removes the item with the given ID, keeping the order of the
// remaining items.
func (s *wardrobeService) DeleteItem(ctx context.Context, userID, garmentID string) error {
	user, err := s.load(ctx, userID)
	if err != nil {
		return err
	}

	idx := indexOfGarment(user.Wardrobe, garmentID)
	if idx < 0 {
		return fmt.Errorf("%w: id '%s'", ErrGarmentNotFound, garmentID)
	}

	wardrobe := make([]models.Garment, 0, len(user.Wardrobe)-1)
	wardrobe = append(wardrobe, user.Wardrobe[:idx]...)
	wardrobe = append(wardrobe, user.Wardrobe[idx+1:]...)

	if err := s.userRepo.SetWardrobe(ctx, userID, wardrobe); err != nil {
		return fmt.Errorf("failed to delete wardrobe item '%s' for user '%s': %w", garmentID, userID, err)
	}

	s.audit(ctx, models.AuditLog{UserID: userID, Action: "WARDROBE_DELETE", TargetID: garmentID})
	return nil
}

func indexOfGarment(wardrobe []models.Garment, garmentID string) int {
	for i, g := range wardrobe {
		if g.ID == garmentID {
			return i
		}
	}
	return -1
}

func (s *wardrobeService) audit(ctx context.Context, entry models.AuditLog) {
	if s.auditService == nil {
		return
	}
	if err := s.auditService.CreateAuditLog(ctx, entry); err != nil {
		s.logger.Warn("Failed to write audit log", zap.String("action", entry.Action), zap.Error(err))
	}
}
