package core

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"fitfx-backend-go/internal/config"
	"fitfx-backend-go/internal/models"
)

func newTestBillingService(repo *fakeUserRepository, now time.Time) *billingService {
	return &billingService{
		subscriptionService: newTestSubscriptionService(repo, &fakeAuditService{}, now),
		appConfig: &config.Config{
			PaymentLinkStylePlus: "https://pay.example/style-plus",
			PaymentLinkStyleX:    "https://pay.example/style-x",
		},
		logger: zap.NewNop(),
	}
}

func TestPlansListsAllTiers(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	svc := newTestBillingService(newFakeUserRepository(), now)

	plans := svc.Plans()
	require.Len(t, plans, 3)

	assert.Equal(t, "free", plans[0].Tier)
	assert.Equal(t, 5, plans[0].ItemLimit)
	assert.Empty(t, plans[0].PaymentLink)

	assert.Equal(t, "style_plus", plans[1].Tier)
	assert.Equal(t, "Style+", plans[1].Name)
	assert.Equal(t, 50, plans[1].ItemLimit)
	assert.Equal(t, "https://pay.example/style-plus", plans[1].PaymentLink)

	assert.Equal(t, "style_x", plans[2].Tier)
	assert.Equal(t, "StyleX", plans[2].Name)
	assert.True(t, plans[2].Unlimited)
}

func TestConfirmPaymentUpgradesUser(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	repo := newFakeUserRepository()
	repo.put(&models.UserProfile{ID: "u1", Subscription: NewFreeSubscription(now)})
	svc := newTestBillingService(repo, now)

	err := svc.ConfirmPayment(context.Background(), models.PaymentWebhookRequest{
		UserID:    "u1",
		Tier:      "style_plus",
		PaymentID: "pay_123",
		OrderID:   "order_456",
	})
	require.NoError(t, err)

	stored, _ := repo.GetByID(context.Background(), "u1")
	assert.Equal(t, "style_plus", stored.Subscription.Tier)
	assert.Equal(t, "pay_123", stored.Subscription.PaymentID)
	assert.Equal(t, "order_456", stored.Subscription.PaymentOrderID)
}

func TestConfirmPaymentRejectsUnknownTier(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	repo := newFakeUserRepository()
	repo.put(&models.UserProfile{ID: "u1"})
	svc := newTestBillingService(repo, now)

	for _, tier := range []string{"platinum", "FREE", "style plus", ""} {
		err := svc.ConfirmPayment(context.Background(), models.PaymentWebhookRequest{
			UserID: "u1", Tier: tier, PaymentID: "pay_1",
		})
		assert.ErrorIs(t, err, ErrInvalidTier, "tier %q", tier)
	}
}

func TestConfirmPaymentRejectsFreeTier(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	repo := newFakeUserRepository()
	repo.put(&models.UserProfile{ID: "u1"})
	svc := newTestBillingService(repo, now)

	err := svc.ConfirmPayment(context.Background(), models.PaymentWebhookRequest{
		UserID: "u1", Tier: "free", PaymentID: "pay_1",
	})
	assert.ErrorIs(t, err, ErrInvalidTier)
}

func TestCancelSubscriptionDowngrades(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	repo := newFakeUserRepository()
	repo.put(&models.UserProfile{ID: "u1", Subscription: &models.Subscription{Tier: "style_x", Status: "active"}})
	svc := newTestBillingService(repo, now)

	require.NoError(t, svc.CancelSubscription(context.Background(), "u1"))

	stored, _ := repo.GetByID(context.Background(), "u1")
	assert.Equal(t, "free", stored.Subscription.Tier)
}
