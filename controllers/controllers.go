package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/blogem/editpilot/models"
	"github.com/blogem/editpilot/services"
)

// maxBodyBytes bounds the size of an instruction request body
const maxBodyBytes = 4 << 20

// writeJSON writes data as a JSON response with the given status code
func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(data)
}

// errorStatus maps a pipeline error to its HTTP status and public message
func errorStatus(err error) (int, models.ErrorResponse) {
	var validationErr *services.ValidationError
	var modelErr *services.ModelInvocationError

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, models.ErrorResponse{Error: "invalid input", Details: validationErr.Messages}
	case errors.Is(err, services.ErrInvalidInput):
		return http.StatusBadRequest, models.ErrorResponse{Error: err.Error()}
	case errors.As(err, &modelErr) && errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, models.ErrorResponse{Error: "model invocation timed out"}
	case errors.As(err, &modelErr):
		return http.StatusBadGateway, models.ErrorResponse{Error: modelErr.Error()}
	case errors.Is(err, services.ErrInvalidResponse):
		return http.StatusBadGateway, models.ErrorResponse{Error: err.Error()}
	default:
		return http.StatusInternalServerError, models.ErrorResponse{Error: "internal error"}
	}
}

// Controllers holds all controller instances
type Controllers struct {
	Instruction *InstructionController
	Audit       *AuditController
	Health      *HealthController
}

// NewControllers creates and initializes all controller instances
func NewControllers(services *services.Services, modelTimeout time.Duration, logger *zap.Logger) *Controllers {
	return &Controllers{
		Instruction: NewInstructionController(services, modelTimeout, logger.Named("instruction")),
		Audit:       NewAuditController(services),
		Health:      NewHealthController(),
	}
}
