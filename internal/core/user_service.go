package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"fitfx-backend-go/internal/db"
	"fitfx-backend-go/internal/entitlement"
	"fitfx-backend-go/internal/models"
)

// ErrUserNotFound is returned when a user profile does not exist.
var ErrUserNotFound = errors.New("user not found")

// NewFreeSubscription builds the subscription record every account starts
// with.
func NewFreeSubscription(now time.Time) *models.Subscription {
	return &models.Subscription{
		Tier:      string(entitlement.TierFree),
		Status:    "active",
		StartDate: now.UTC().Format(time.RFC3339),
	}
}

// userService implements the UserService interface.
type userService struct {
	userRepo db.UserRepository
	logger   *zap.Logger
	nowFn    func() time.Time
}

// NewUserService creates a new UserService instance.
func NewUserService(userRepo db.UserRepository, logger *zap.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		logger:   logger,
		nowFn:    time.Now,
	}
}

// GetOrCreate retrieves a user by ID, creating a fresh profile with a free
// subscription when none exists.
func (s *userService) GetOrCreate(ctx context.Context, userID, email, displayName string) (*models.UserProfile, bool, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			newUser := &models.UserProfile{
				ID:           userID, // Firebase Auth UID is the document ID
				Email:        email,
				Name:         displayName,
				Subscription: NewFreeSubscription(s.nowFn()),
				Wardrobe:     []models.Garment{},
			}
			if createErr := s.userRepo.Create(ctx, newUser); createErr != nil {
				return nil, false, fmt.Errorf("failed to create user (id: %s) after not found: %w", userID, createErr)
			}
			return newUser, true, nil
		}
		return nil, false, fmt.Errorf("failed to get user by ID '%s' from repository: %w", userID, err)
	}

	// Accounts written by old client versions may predate the subscription
	// field; backfill a free record so downstream checks never see nil.
	if user.Subscription == nil {
		user.Subscription = NewFreeSubscription(s.nowFn())
		if updateErr := s.userRepo.UpdateSubscription(ctx, userID, user.Subscription); updateErr != nil {
			s.logger.Warn("Failed to backfill free subscription", zap.String("userID", userID), zap.Error(updateErr))
		}
	}
	return user, false, nil
}

// GetByID retrieves a user by their ID.
func (s *userService) GetByID(ctx context.Context, userID string) (*models.UserProfile, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: user with ID '%s'", ErrUserNotFound, userID)
		}
		return nil, fmt.Errorf("failed to get user by ID '%s' from repository: %w", userID, err)
	}
	return user, nil
}

// UpdateProfile applies the fields present in the request to the stored
// profile and returns the updated document.
func (s *userService) UpdateProfile(ctx context.Context, userID string, req models.UpdateProfileRequest) (*models.UserProfile, error) {
	user, err := s.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Age != nil {
		user.Age = *req.Age
	}
	if req.Gender != nil {
		user.Gender = *req.Gender
	}
	if req.BodyType != nil {
		user.BodyType = *req.BodyType
	}
	if req.PreferredStyles != nil {
		user.PreferredStyles = *req.PreferredStyles
	}
	if req.FavoriteColors != nil {
		user.FavoriteColors = *req.FavoriteColors
	}
	if req.PreferredOccasions != nil {
		user.PreferredOccasions = *req.PreferredOccasions
	}
	if req.PreferredFabrics != nil {
		user.PreferredFabrics = *req.PreferredFabrics
	}
	if req.FashionIcons != nil {
		user.FashionIcons = *req.FashionIcons
	}
	if req.HasSeenPlanModal != nil {
		user.HasSeenPlanModal = *req.HasSeenPlanModal
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update profile for user '%s': %w", userID, err)
	}
	return user, nil
}
