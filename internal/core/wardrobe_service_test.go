package core

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"fitfx-backend-go/internal/models"
)

func newTestWardrobeService(repo *fakeUserRepository, audit *fakeAuditService, now time.Time) *wardrobeService {
	return &wardrobeService{
		userRepo:     repo,
		auditService: audit,
		logger:       zap.NewNop(),
		nowFn:        func() time.Time { return now },
	}
}

func activeSub(tier string) *models.Subscription {
	return &models.Subscription{Tier: tier, Status: "active", StartDate: "2026-01-01T00:00:00Z"}
}

func garments(colors ...string) []models.Garment {
	out := make([]models.Garment, len(colors))
	for i, c := range colors {
		out[i] = models.Garment{ID: string(rune('a' + i)), Color: c, UploadedAt: "2026-01-02T00:00:00Z"}
	}
	return out
}

func TestWardrobeAddWithinLimit(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	repo := newFakeUserRepository()
	audit := &fakeAuditService{}
	repo.put(&models.UserProfile{ID: "u1", Subscription: activeSub("free"), Wardrobe: garments("red", "blue")})

	svc := newTestWardrobeService(repo, audit, now)
	added, err := svc.Add(context.Background(), "u1", models.AddGarmentRequest{Color: "green", Type: "shirt"})
	require.NoError(t, err)

	assert.NotEmpty(t, added.ID)
	assert.Equal(t, "green", added.Color)
	assert.Equal(t, now.UTC().Format(time.RFC3339), added.UploadedAt)

	stored, _ := repo.GetByID(context.Background(), "u1")
	assert.Len(t, stored.Wardrobe, 3)
	assert.Equal(t, []string{"WARDROBE_ADD"}, audit.actions())
}

func TestWardrobeAddRejectedAtFreeLimit(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	repo := newFakeUserRepository()
	repo.put(&models.UserProfile{
		ID:           "u1",
		Subscription: activeSub("free"),
		Wardrobe:     garments("a", "b", "c", "d", "e"),
	})

	svc := newTestWardrobeService(repo, &fakeAuditService{}, now)
	_, err := svc.Add(context.Background(), "u1", models.AddGarmentRequest{Color: "green"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrWardrobeLimitReached)

	stored, _ := repo.GetByID(context.Background(), "u1")
	assert.Len(t, stored.Wardrobe, 5, "a rejected add must not modify the wardrobe")
}

func TestWardrobeAddAllowedOnUnlimitedTier(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	repo := newFakeUserRepository()
	wardrobe := make([]models.Garment, 200)
	for i := range wardrobe {
		wardrobe[i] = models.Garment{ID: string(rune(i)), Color: "x"}
	}
	repo.put(&models.UserProfile{ID: "u1", Subscription: activeSub("style_x"), Wardrobe: wardrobe})

	svc := newTestWardrobeService(repo, &fakeAuditService{}, now)
	_, err := svc.Add(context.Background(), "u1", models.AddGarmentRequest{Color: "green"})
	assert.NoError(t, err)
}

func TestWardrobeAddGatedByExpiredPaidTier(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	repo := newFakeUserRepository()
	sub := &models.Subscription{
		Tier:      "style_plus",
		Status:    "active",
		StartDate: "2026-01-01T00:00:00Z",
		EndDate:   "2026-03-08T00:00:00Z", // two days ago
	}
	repo.put(&models.UserProfile{ID: "u1", Subscription: sub, Wardrobe: garments("a", "b", "c", "d", "e", "f", "g", "h")})

	svc := newTestWardrobeService(repo, &fakeAuditService{}, now)
	_, err := svc.Add(context.Background(), "u1", models.AddGarmentRequest{Color: "green"})
	assert.ErrorIs(t, err, ErrWardrobeLimitReached, "an expired paid tier falls back to the free limit")
}

func TestWardrobeListTruncatesToAccessibleWindow(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	repo := newFakeUserRepository()
	sub := &models.Subscription{
		Tier:      "style_plus",
		Status:    "active",
		StartDate: "2026-01-01T00:00:00Z",
		EndDate:   "2026-03-08T00:00:00Z",
	}
	repo.put(&models.UserProfile{ID: "u1", Subscription: sub, Wardrobe: garments("a", "b", "c", "d", "e", "f", "g", "h")})

	svc := newTestWardrobeService(repo, &fakeAuditService{}, now)
	visible, status, err := svc.List(context.Background(), "u1")
	require.NoError(t, err)

	assert.Len(t, visible, 5)
	assert.Equal(t, 5, status.Accessible)
	assert.Equal(t, 3, status.HiddenCount)
	assert.Equal(t, 8, status.Total)
	assert.True(t, status.IsExpired)
	assert.Equal(t, "a", visible[0].Color, "earliest items remain visible")
}

func TestWardrobeUpdateItemByID(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	repo := newFakeUserRepository()
	audit := &fakeAuditService{}
	wardrobe := []models.Garment{
		{ID: "g-1", Color: "red", UploadedAt: "2026-01-02T00:00:00Z"},
		{ID: "g-2", Color: "blue", UploadedAt: "2026-01-03T00:00:00Z"},
	}
	repo.put(&models.UserProfile{ID: "u1", Subscription: activeSub("free"), Wardrobe: wardrobe})

	svc := newTestWardrobeService(repo, audit, now)
	updated, err := svc.UpdateItem(context.Background(), "u1", "g-2", models.UpdateGarmentRequest{Color: "navy", Type: "jeans"})
	require.NoError(t, err)

	assert.Equal(t, "g-2", updated.ID)
	assert.Equal(t, "navy", updated.Color)
	assert.Equal(t, "2026-01-03T00:00:00Z", updated.UploadedAt, "upload timestamp survives edits")

	stored, _ := repo.GetByID(context.Background(), "u1")
	assert.Equal(t, "red", stored.Wardrobe[0].Color, "other items untouched")
	assert.Equal(t, "navy", stored.Wardrobe[1].Color)
	assert.Equal(t, []string{"WARDROBE_UPDATE"}, audit.actions())
}

func TestWardrobeUpdateUnknownID(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	repo := newFakeUserRepository()
	repo.put(&models.UserProfile{ID: "u1", Subscription: activeSub("free"), Wardrobe: garments("red")})

	svc := newTestWardrobeService(repo, &fakeAuditService{}, now)
	_, err := svc.UpdateItem(context.Background(), "u1", "no-such-id", models.UpdateGarmentRequest{Color: "navy"})
	assert.ErrorIs(t, err, ErrGarmentNotFound)
}

func TestWardrobeDeleteItemKeepsOrder(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	repo := newFakeUserRepository()
	wardrobe := []models.Garment{
		{ID: "g-1", Color: "red"},
		{ID: "g-2", Color: "blue"},
		{ID: "g-3", Color: "green"},
	}
	repo.put(&models.UserProfile{ID: "u1", Subscription: activeSub("free"), Wardrobe: wardrobe})

	svc := newTestWardrobeService(repo, &fakeAuditService{}, now)
	require.NoError(t, svc.DeleteItem(context.Background(), "u1", "g-2"))

	stored, _ := repo.GetByID(context.Background(), "u1")
	require.Len(t, stored.Wardrobe, 2)
	assert.Equal(t, "g-1", stored.Wardrobe[0].ID)
	assert.Equal(t, "g-3", stored.Wardrobe[1].ID)

	err := svc.DeleteItem(context.Background(), "u1", "g-2")
	assert.ErrorIs(t, err, ErrGarmentNotFound)
}

func TestWardrobeUninitializedAccount(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	svc := newTestWardrobeService(newFakeUserRepository(), &fakeAuditService{}, now)

	// An account that never called the profile bootstrap surfaces as
	// user-not-found instead of failing later at the storage write.
	_, err := svc.Add(context.Background(), "ghost", models.AddGarmentRequest{Color: "green"})
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, _, err = svc.List(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = svc.Status(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestWardrobeStorageErrorPropagates(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	repo := newFakeUserRepository()
	repo.put(&models.UserProfile{ID: "u1", Subscription: activeSub("free")})
	repo.setWardErr = errors.New("firestore unavailable")

	svc := newTestWardrobeService(repo, &fakeAuditService{}, now)
	_, err := svc.Add(context.Background(), "u1", models.AddGarmentRequest{Color: "green"})
	assert.ErrorContains(t, err, "firestore unavailable")
}
