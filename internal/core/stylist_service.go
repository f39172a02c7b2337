package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"fitfx-backend-go/internal/ai"
	"fitfx-backend-go/internal/colors"
	"fitfx-backend-go/internal/db"
	"fitfx-backend-go/internal/entitlement"
	"fitfx-backend-go/internal/models"
)

// ErrFeatureLocked means the user's effective tier does not cover the
// requested feature. The wrapped message names the tier that would.
var ErrFeatureLocked = errors.New("feature not available on the current plan")

// stylistService implements the StylistService interface on top of the
// generative model client. Prompts carry the profile and only the wardrobe
// items visible under the effective tier, so hidden items never influence
// recommendations.
type stylistService struct {
	userRepo     db.UserRepository
	aiClient     *ai.Client
	auditService AuditService
	logger       *zap.Logger
	nowFn        func() time.Time
}

// NewStylistService creates a new StylistService instance.
func NewStylistService(userRepo db.UserRepository, aiClient *ai.Client, auditService AuditService, logger *zap.Logger) StylistService {
	return &stylistService{
		userRepo:     userRepo,
		aiClient:     aiClient,
		auditService: auditService,
		logger:       logger,
		nowFn:        time.Now,
	}
}

// PersonalizedOutfits asks the stylist model for outfit recommendations built
// from the user's profile and accessible wardrobe.
func (s *stylistService) PersonalizedOutfits(ctx context.Context, userID string) ([]models.PersonalizedOutfit, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load profile for user '%s': %w", userID, err)
	}

	status := entitlement.Status(user.Subscription, len(user.Wardrobe), s.nowFn())
	visible := user.Wardrobe[:status.Accessible]

	prompt := buildOutfitPrompt(user, visible)

	var outfits []models.PersonalizedOutfit
	if err := s.aiClient.GenerateJSON(ctx, prompt, &outfits); err != nil {
		return nil, fmt.Errorf("stylist model failed to generate outfits: %w", err)
	}

	s.audit(ctx, models.AuditLog{
		UserID:  userID,
		Action:  "STYLIST_OUTFITS",
		Details: map[string]interface{}{"wardrobeItems": len(visible), "outfits": len(outfits)},
	})
	return outfits, nil
}

// ColorSuggestions asks the stylist model for color recommendations for an
// occasion. The feature is tier gated; a locked feature reports the tier that
// unlocks it. Missing hex codes in the response are filled from the color
// name table so every suggestion carries a renderable swatch.
func (s *stylistService) ColorSuggestions(ctx context.Context, userID string, req models.ColorSuggestionRequest) ([]models.ColorSuggestion, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load profile for user '%s': %w", userID, err)
	}

	access := entitlement.FeatureAccess(user.Subscription, entitlement.FeatureColorSuggestion, s.nowFn())
	if !access.Accessible {
		return nil, fmt.Errorf("%w: requires %s", ErrFeatureLocked, access.TierName)
	}

	prompt := buildColorPrompt(user, req)

	var images []ai.ImagePart
	if req.SelfieImage != "" {
		images = append(images, ai.ImagePart{MIMEType: "image/jpeg", Data: req.SelfieImage})
	}

	var suggestions []models.ColorSuggestion
	if err := s.aiClient.GenerateJSON(ctx, prompt, &suggestions, images...); err != nil {
		return nil, fmt.Errorf("stylist model failed to generate color suggestions: %w", err)
	}

	for i := range suggestions {
		if suggestions[i].HexCode == "" {
			suggestions[i].HexCode = colors.HexForName(suggestions[i].ColorName)
		}
	}

	s.audit(ctx, models.AuditLog{
		UserID:  userID,
		Action:  "STYLIST_COLORS",
		Details: map[string]interface{}{"occasion": req.Occasion, "suggestions": len(suggestions)},
	})
	return suggestions, nil
}

func buildOutfitPrompt(user *models.UserProfile, wardrobe []models.Garment) string {
	var b strings.Builder
	b.WriteString("You are a personal fashion stylist. Create 3 to 5 complete outfit recommendations for this person using their wardrobe where possible.\n\n")

	b.WriteString("Profile:\n")
	writeField(&b, "Gender", user.Gender)
	writeField(&b, "Age", user.Age)
	writeField(&b, "Body type", user.BodyType)
	writeField(&b, "Preferred styles", strings.Join(user.PreferredStyles, ", "))
	writeField(&b, "Favorite colors", strings.Join(user.FavoriteColors, ", "))
	writeField(&b, "Typical occasions", strings.Join(user.PreferredOccasions, ", "))
	writeField(&b, "Preferred fabrics", user.PreferredFabrics)
	writeField(&b, "Fashion icons", user.FashionIcons)

	b.WriteString("\nWardrobe:\n")
	if len(wardrobe) == 0 {
		b.WriteString("- (empty, suggest versatile starter pieces)\n")
	}
	for _, g := range wardrobe {
		b.WriteString("- ")
		b.WriteString(describeGarment(g))
		b.WriteString("\n")
	}

	b.WriteString("\nRespond with ONLY a JSON array. Each element must have exactly these keys: " +
		`"outfitName", "occasion", "colorCombination" (array of color names), "topWear", "bottomWear", "layering", "footwear", "accessories", "whyItWorks", "styleCategory".`)
	return b.String()
}

func buildColorPrompt(user *models.UserProfile, req models.ColorSuggestionRequest) string {
	var b strings.Builder
	b.WriteString("You are a color analysis expert. Suggest 5 clothing colors that would flatter this person for the occasion below.\n\n")
	writeField(&b, "Occasion", req.Occasion)
	writeField(&b, "Country", req.Country)
	writeField(&b, "Gender", user.Gender)
	writeField(&b, "Favorite colors", strings.Join(user.FavoriteColors, ", "))
	if req.SelfieImage != "" {
		b.WriteString("A selfie is attached. Base skin tone analysis on it.\n")
	}
	b.WriteString("\nRespond with ONLY a JSON array. Each element must have exactly these keys: " +
		`"colorName", "hexCode" (like "#1A2B3C"), "reason".`)
	return b.String()
}

func describeGarment(g models.Garment) string {
	parts := make([]string, 0, 4)
	for _, v := range []string{g.Color, g.Material, g.Type} {
		if v != "" {
			parts = append(parts, v)
		}
	}
	desc := strings.Join(parts, " ")
	if g.Occasion != "" {
		desc += " (" + g.Occasion + ")"
	}
	return desc
}

func writeField(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	b.WriteString(label)
	b.WriteString(": ")
	b.WriteString(value)
	b.WriteString("\n")
}

func (s *stylistService) audit(ctx context.Context, entry models.AuditLog) {
	if s.auditService == nil {
		return
	}
	if err := s.auditService.CreateAuditLog(ctx, entry); err != nil {
		s.logger.Warn("Failed to write audit log", zap.String("action", entry.Action), zap.Error(err))
	}
}
