package db

import (
	"context"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"

	"fitfx-backend-go/internal/models"
)

const auditLogsCollection = "auditLogs"

// firestoreAuditRepository implements AuditRepository using Firestore with
// auto-generated document IDs.
type firestoreAuditRepository struct {
	client *firestore.Client
}

// NewFirestoreAuditRepository creates a new instance of firestoreAuditRepository.
func NewFirestoreAuditRepository(client *firestore.Client) AuditRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for AuditRepository.")
	}
	return &firestoreAuditRepository{client: client}
}

// Create appends an audit log entry. Timestamp is set server-side via the
// serverTimestamp tag.
func (r *firestoreAuditRepository) Create(ctx context.Context, logEntry models.AuditLog) error {
	_, _, err := r.client.Collection(auditLogsCollection).Add(ctx, logEntry)
	if err != nil {
		return fmt.Errorf("failed to create audit log entry: %w", err)
	}
	return nil
}
