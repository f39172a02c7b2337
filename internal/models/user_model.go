package models

import "time"

// UserProfile is the per-user Firestore document. The document ID is the
// Firebase Auth UID. The subscription record and the wardrobe array live on
// the same document, mirroring how the mobile client reads its state in a
// single fetch.
type UserProfile struct {
	ID                 string        `json:"id" firestore:"-"` // Firebase Auth UID, used as the document ID
	Email              string        `json:"email" firestore:"email"`
	Name               string        `json:"name,omitempty" firestore:"name,omitempty"`
	Age                string        `json:"age,omitempty" firestore:"age,omitempty"`
	Gender             string        `json:"gender,omitempty" firestore:"gender,omitempty"`
	BodyType           string        `json:"bodyType,omitempty" firestore:"bodyType,omitempty"`
	PreferredStyles    []string      `json:"preferredStyles,omitempty" firestore:"preferredStyles,omitempty"`
	FavoriteColors     []string      `json:"favoriteColors,omitempty" firestore:"favoriteColors,omitempty"`
	PreferredOccasions []string      `json:"preferredOccasions,omitempty" firestore:"preferredOccasions,omitempty"`
	PreferredFabrics   string        `json:"preferredFabrics,omitempty" firestore:"preferredFabrics,omitempty"`
	FashionIcons       string        `json:"fashionIcons,omitempty" firestore:"fashionIcons,omitempty"`
	HasSeenPlanModal   bool          `json:"hasSeenPlanModal" firestore:"hasSeenPlanModal"`
	Subscription       *Subscription `json:"subscription,omitempty" firestore:"subscription,omitempty"`
	Wardrobe           []Garment     `json:"wardrobe,omitempty" firestore:"wardrobe,omitempty"`
	CreatedAt          time.Time     `json:"createdAt" firestore:"createdAt,serverTimestamp"`
	UpdatedAt          time.Time     `json:"updatedAt" firestore:"updatedAt,serverTimestamp"`
}

// Subscription is the per-user subscription record stored on the user
// document. Dates are kept as RFC 3339 strings to stay wire-compatible with
// the documents written by earlier client versions; an empty EndDate means
// the subscription has no fixed expiry.
type Subscription struct {
	Tier           string `json:"tier" firestore:"tier"`     // "free", "style_plus", "style_x"
	Status         string `json:"status" firestore:"status"` // "active", "cancelled", "past_due", "expired", "unknown"
	StartDate      string `json:"startDate" firestore:"startDate"`
	EndDate        string `json:"endDate,omitempty" firestore:"endDate,omitempty"`
	PaymentID      string `json:"paymentId,omitempty" firestore:"paymentId,omitempty"`
	PaymentOrderID string `json:"paymentOrderId,omitempty" firestore:"paymentOrderId,omitempty"`
}

// Garment is a single wardrobe item. Items are stored as an ordered array on
// the user document; the ID is assigned server-side at creation and is the
// only stable handle for edits and deletes.
type Garment struct {
	ID         string `json:"id" firestore:"id"`
	Color      string `json:"color" firestore:"color"` // required
	Material   string `json:"material,omitempty" firestore:"material,omitempty"`
	Type       string `json:"type,omitempty" firestore:"type,omitempty"`
	Size       string `json:"size,omitempty" firestore:"size,omitempty"`
	Occasion   string `json:"occasion,omitempty" firestore:"occasion,omitempty"`
	Season     string `json:"season,omitempty" firestore:"season,omitempty"`
	Condition  string `json:"condition,omitempty" firestore:"condition,omitempty"`
	Notes      string `json:"notes,omitempty" firestore:"notes,omitempty"`
	Image      string `json:"image,omitempty" firestore:"image,omitempty"`       // base64 payload from the mobile client
	ImageURL   string `json:"imageUrl,omitempty" firestore:"imageUrl,omitempty"` // storage URL from the web client
	UploadedAt string `json:"uploadedAt,omitempty" firestore:"uploadedAt,omitempty"`
}
