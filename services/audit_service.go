package services

import (
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/blogem/editpilot/models"
	"github.com/blogem/editpilot/repositories"
)

// AuditService interface defines the recent-activity log operations
type AuditService interface {
	Record(id string, body []byte, response interface{}, contextType models.ContextType)
	List() []models.AuditRecord
}

// auditService implements AuditService interface
type auditService struct {
	auditRepo repositories.AuditRepository
	logger    *zap.Logger
	now       func() time.Time
}

// NewAuditService creates a new audit service
func NewAuditService(auditRepo repositories.AuditRepository, logger *zap.Logger) AuditService {
	return &auditService{
		auditRepo: auditRepo,
		logger:    logger,
		now:       time.Now,
	}
}

// Record stores one processed request. The body is kept verbatim when it is JSON
// and as a JSON string otherwise.
func (s *auditService) Record(id string, body []byte, response interface{}, contextType models.ContextType) {
	payload, err := json.Marshal(response)
	if err != nil {
		s.logger.Warn("Failed to encode audit response payload", zap.String("id", id), zap.Error(err))
		payload = models.OpaqueJSON([]byte(err.Error()))
	}

	s.auditRepo.Create(models.AuditRecord{
		ID:              id,
		Timestamp:       s.now().UTC(),
		RequestBody:     models.OpaqueJSON(body),
		ResponsePayload: payload,
		ContextType:     contextType,
	})

	s.logger.Debug("Audit record stored", zap.String("id", id), zap.String("context", string(contextType)))
}

// List returns the recent records, newest first
func (s *auditService) List() []models.AuditRecord {
	return s.auditRepo.List()
}
