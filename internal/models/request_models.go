package models

// UpdateProfileRequest carries the editable profile fields. Pointer fields
// distinguish "not sent" from "cleared".
type UpdateProfileRequest struct {
	Name               *string   `json:"name,omitempty"`
	Age                *string   `json:"age,omitempty"`
	Gender             *string   `json:"gender,omitempty"`
	BodyType           *string   `json:"bodyType,omitempty"`
	PreferredStyles    *[]string `json:"preferredStyles,omitempty"`
	FavoriteColors     *[]string `json:"favoriteColors,omitempty"`
	PreferredOccasions *[]string `json:"preferredOccasions,omitempty"`
	PreferredFabrics   *string   `json:"preferredFabrics,omitempty"`
	FashionIcons       *string   `json:"fashionIcons,omitempty"`
	HasSeenPlanModal   *bool     `json:"hasSeenPlanModal,omitempty"`
}

// AddGarmentRequest is the payload for creating a wardrobe item.
type AddGarmentRequest struct {
	Color     string `json:"color" binding:"required"`
	Material  string `json:"material,omitempty"`
	Type      string `json:"type,omitempty"`
	Size      string `json:"size,omitempty"`
	Occasion  string `json:"occasion,omitempty"`
	Season    string `json:"season,omitempty"`
	Condition string `json:"condition,omitempty"`
	Notes     string `json:"notes,omitempty"`
	Image     string `json:"image,omitempty"`
	ImageURL  string `json:"imageUrl,omitempty"`
}

// UpdateGarmentRequest is the payload for editing a wardrobe item. The item
// is addressed by its ID in the URL, never by position.
type UpdateGarmentRequest struct {
	Color     string `json:"color" binding:"required"`
	Material  string `json:"material,omitempty"`
	Type      string `json:"type,omitempty"`
	Size      string `json:"size,omitempty"`
	Occasion  string `json:"occasion,omitempty"`
	Season    string `json:"season,omitempty"`
	Condition string `json:"condition,omitempty"`
	Notes     string `json:"notes,omitempty"`
	Image     string `json:"image,omitempty"`
	ImageURL  string `json:"imageUrl,omitempty"`
}

// SaveCalendarOverrideRequest replaces a single day's suggestion. The whole
// record is stored as sent; there is no per-field merging on the stored side.
type SaveCalendarOverrideRequest struct {
	Occasion         string `json:"occasion" binding:"required"`
	Style            string `json:"style" binding:"required"`
	ColorCombination string `json:"colorCombination,omitempty"`
	Top              string `json:"top,omitempty"`
	Bottom           string `json:"bottom,omitempty"`
	Layer            string `json:"layer,omitempty"`
	Shoes            string `json:"shoes,omitempty"`
}

// ColorSuggestionRequest carries the context the stylist model needs for
// color recommendations.
type ColorSuggestionRequest struct {
	Occasion    string `json:"occasion" binding:"required"`
	Country     string `json:"country,omitempty"`
	SelfieImage string `json:"selfieImage,omitempty"` // optional base64 selfie
}

// PaymentWebhookRequest is the payload the payment provider posts after a
// successful payment-link checkout.
type PaymentWebhookRequest struct {
	UserID    string `json:"userId" binding:"required"`
	Tier      string `json:"tier" binding:"required"`
	PaymentID string `json:"paymentId" binding:"required"`
	OrderID   string `json:"orderId,omitempty"`
	EndDate   string `json:"endDate,omitempty"` // RFC 3339; defaults to 30 days out when absent
}
