package models

import "time"

// AuditLog records a notable per-user event (wardrobe change, subscription
// change, AI feature use) for support and abuse investigations.
type AuditLog struct {
	ID        string                 `json:"id" firestore:"-"`
	Timestamp time.Time              `json:"timestamp" firestore:"timestamp,serverTimestamp"`
	UserID    string                 `json:"userId" firestore:"userId"`
	Action    string                 `json:"action" firestore:"action"` // e.g. "WARDROBE_ADD", "SUBSCRIPTION_UPGRADE", "STYLIST_OUTFITS"
	TargetID  string                 `json:"targetId,omitempty" firestore:"targetId,omitempty"`
	Details   map[string]interface{} `json:"details,omitempty" firestore:"details,omitempty"`
}
