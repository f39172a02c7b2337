package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fitfx-backend-go/internal/models"
)

func TestBuildOutfitPromptIncludesProfileAndWardrobe(t *testing.T) {
	user := &models.UserProfile{
		Gender:          "female",
		BodyType:        "pear",
		PreferredStyles: []string{"minimal", "street"},
		FavoriteColors:  []string{"navy", "olive"},
	}
	wardrobe := []models.Garment{
		{Color: "navy", Material: "denim", Type: "jacket", Occasion: "casual"},
		{Color: "white", Type: "shirt"},
	}

	prompt := buildOutfitPrompt(user, wardrobe)

	assert.Contains(t, prompt, "minimal, street")
	assert.Contains(t, prompt, "navy denim jacket (casual)")
	assert.Contains(t, prompt, "white shirt")
	assert.Contains(t, prompt, `"whyItWorks"`)
}

func TestBuildOutfitPromptEmptyWardrobe(t *testing.T) {
	prompt := buildOutfitPrompt(&models.UserProfile{}, nil)
	assert.Contains(t, prompt, "starter pieces")
}

func TestBuildColorPromptMentionsSelfieOnlyWhenAttached(t *testing.T) {
	user := &models.UserProfile{Gender: "male"}

	with := buildColorPrompt(user, models.ColorSuggestionRequest{Occasion: "wedding", SelfieImage: "base64data"})
	without := buildColorPrompt(user, models.ColorSuggestionRequest{Occasion: "wedding"})

	assert.Contains(t, with, "selfie is attached")
	assert.NotContains(t, without, "selfie")
	assert.Contains(t, without, "Occasion: wedding")
}
