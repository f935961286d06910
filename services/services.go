package services

import (
	"go.uber.org/zap"

	"github.com/blogem/editpilot/llm"
	"github.com/blogem/editpilot/repositories"
)

// Services holds all service instances
type Services struct {
	Instruction InstructionService
	Audit       AuditService
}

// NewServices creates and initializes all service instances
func NewServices(repos *repositories.Repositories, provider llm.Provider, logger *zap.Logger) *Services {
	return &Services{
		Instruction: NewInstructionService(provider, logger.Named("instruction")),
		Audit:       NewAuditService(repos.Audit, logger.Named("audit")),
	}
}
