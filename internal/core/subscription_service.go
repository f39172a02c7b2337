package core

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"fitfx-backend-go/internal/db"
	"fitfx-backend-go/internal/entitlement"
	"fitfx-backend-go/internal/models"
)

// Errors returned by the SubscriptionService.
var (
	// ErrInvalidTier means a lifecycle transition named a tier that does not
	// exist or is not a paid tier.
	ErrInvalidTier = errors.New("invalid subscription tier")
)

// SubscriptionStatus is the computed view of a subscription for the client:
// the stored record plus the tier actually in force.
type SubscriptionStatus struct {
	Subscription  *models.Subscription `json:"subscription"`
	EffectiveTier entitlement.Tier     `json:"effectiveTier"`
	TierName      string               `json:"tierName"`
	IsExpired     bool                 `json:"isExpired"`
	DaysRemaining *int                 `json:"daysRemaining,omitempty"`
}

// subscriptionService implements the SubscriptionService interface.
type subscriptionService struct {
	userRepo     db.UserRepository
	auditService AuditService
	logger       *zap.Logger
	nowFn        func() time.Time
}

// NewSubscriptionService creates a new SubscriptionService instance.
func NewSubscriptionService(userRepo db.UserRepository, auditService AuditService, logger *zap.Logger) SubscriptionService {
	return &subscriptionService{
		userRepo:     userRepo,
		auditService: auditService,
		logger:       logger,
		nowFn:        time.Now,
	}
}

// Get returns the user's subscription record, never nil. A missing record or
// a failed fetch yields a free-tier default so every entitlement check fails
// open to the most restrictive tier instead of crashing on absent data.
func (s *subscriptionService) Get(ctx context.Context, userID string) *models.Subscription {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, db.ErrNotFound) {
			s.logger.Warn("Subscription fetch failed, falling back to free tier",
				zap.String("userID", userID), zap.Error(err))
		}
		return &models.Subscription{Tier: string(entitlement.TierFree), Status: "unknown"}
	}
	if user.Subscription == nil {
		return &models.Subscription{Tier: string(entitlement.TierFree), Status: "unknown"}
	}
	return user.Subscription
}

// Status computes the effective view of the user's subscription.
func (s *subscriptionService) Status(ctx context.Context, userID string) SubscriptionStatus {
	sub := s.Get(ctx, userID)
	now := s.nowFn()
	effective := entitlement.EffectiveTier(sub, now)

	status := SubscriptionStatus{
		Subscription:  sub,
		EffectiveTier: effective,
		TierName:      effective.DisplayName(),
		IsExpired:     entitlement.IsExpired(sub, now),
	}
	if sub.EndDate != "" {
		if end, err := time.Parse(time.RFC3339, sub.EndDate); err == nil {
			days := int(math.Ceil(end.Sub(now).Hours() / 24))
			if days < 0 {
				days = 0
			}
			status.DaysRemaining = &days
		}
	}
	return status
}

// Features evaluates the full AI feature access matrix for the user.
func (s *subscriptionService) Features(ctx context.Context, userID string) entitlement.FeaturesStatus {
	return entitlement.AllFeatures(s.Get(ctx, userID), s.nowFn())
}

// ActivatePaid upgrades the user to a paid tier after a confirmed payment.
// When the provider supplies no end date the subscription runs 30 days.
func (s *subscriptionService) ActivatePaid(ctx context.Context, userID string, tier entitlement.Tier, paymentID, orderID, endDate string) (*models.Subscription, error) {
	if tier != entitlement.TierStylePlus && tier != entitlement.TierStyleX {
		return nil, fmt.Errorf("%w: %q is not a paid tier", ErrInvalidTier, tier)
	}

	now := s.nowFn().UTC()
	if endDate == "" {
		endDate = now.AddDate(0, 0, 30).Format(time.RFC3339)
	} else if _, err := time.Parse(time.RFC3339, endDate); err != nil {
		return nil, fmt.Errorf("%w: end date %q is not RFC 3339", ErrInvalidTier, endDate)
	}

	sub := &models.Subscription{
		Tier:           string(tier),
		Status:         "active",
		StartDate:      now.Format(time.RFC3339),
		EndDate:        endDate,
		PaymentID:      paymentID,
		PaymentOrderID: orderID,
	}
	if err := s.userRepo.UpdateSubscription(ctx, userID, sub); err != nil {
		return nil, fmt.Errorf("failed to activate %s subscription for user '%s': %w", tier, userID, err)
	}

	s.audit(ctx, models.AuditLog{
		UserID:  userID,
		Action:  "SUBSCRIPTION_UPGRADE",
		Details: map[string]interface{}{"tier": string(tier), "paymentId": paymentID},
	})
	return sub, nil
}

// Cancel resets the user to the free tier with a cancelled status.
func (s *subscriptionService) Cancel(ctx context.Context, userID string) error {
	sub := &models.Subscription{
		Tier:      string(entitlement.TierFree),
		Status:    "cancelled",
		StartDate: s.nowFn().UTC().Format(time.RFC3339),
	}
	if err := s.userRepo.UpdateSubscription(ctx, userID, sub); err != nil {
		return fmt.Errorf("failed to cancel subscription for user '%s': %w", userID, err)
	}

	s.audit(ctx, models.AuditLog{UserID: userID, Action: "SUBSCRIPTION_CANCEL"})
	return nil
}

// audit records an entry best-effort; audit failures never fail the
// subscription operation itself.
func (s *subscriptionService) audit(ctx context.Context, entry models.AuditLog) {
	if s.auditService == nil {
		return
	}
	if err := s.auditService.CreateAuditLog(ctx, entry); err != nil {
		s.logger.Warn("Failed to write audit log", zap.String("action", entry.Action), zap.Error(err))
	}
}
