package core

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"fitfx-backend-go/internal/db"
	"fitfx-backend-go/internal/models"
)

// auditService implements the AuditService interface.
type auditService struct {
	auditRepo db.AuditRepository
	logger    *zap.Logger
}

// NewAuditService creates a new AuditService instance.
func NewAuditService(auditRepo db.AuditRepository, logger *zap.Logger) AuditService {
	return &auditService{auditRepo: auditRepo, logger: logger}
}

// CreateAuditLog records an audit entry. The timestamp is assigned by the
// store on write.
func (s *auditService) CreateAuditLog(ctx context.Context, logEntry models.AuditLog) error {
	if logEntry.UserID == "" || logEntry.Action == "" {
		return fmt.Errorf("audit log requires a user ID and an action")
	}
	if err := s.auditRepo.Create(ctx, logEntry); err != nil {
		s.logger.Error("Failed to create audit log entry",
			zap.String("userId", logEntry.UserID),
			zap.String("action", logEntry.Action),
			zap.Error(err))
		return fmt.Errorf("failed to create audit log: %w", err)
	}
	return nil
}
