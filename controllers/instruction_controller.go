package controllers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/blogem/editpilot/models"
	"github.com/blogem/editpilot/reqctx"
	"github.com/blogem/editpilot/services"
)

// InstructionController handles instruction edit requests
type InstructionController struct {
	services     *services.Services
	modelTimeout time.Duration
	logger       *zap.Logger
}

// NewInstructionController creates a new instruction controller
func NewInstructionController(services *services.Services, modelTimeout time.Duration, logger *zap.Logger) *InstructionController {
	return &InstructionController{
		services:     services,
		modelTimeout: modelTimeout,
		logger:       logger,
	}
}

// Edit handles POST /api/edit
func (c *InstructionController) Edit(w http.ResponseWriter, r *http.Request) {
	id := reqctx.GetRequestID(r.Context())

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		c.fail(w, id, body, models.ContextPage, http.StatusBadRequest, models.ErrorResponse{Error: "failed to read request body"})
		return
	}

	var req models.EditRequest
	if err := json.Unmarshal(body, &req); err != nil {
		c.fail(w, id, body, models.ContextPage, http.StatusBadRequest, models.ErrorResponse{Error: "request body must be a JSON object: " + err.Error()})
		return
	}

	ctx, cancel := c.withModelTimeout(r.Context())
	defer cancel()

	edits, err := c.services.Instruction.EditContent(ctx, &req)
	if err != nil {
		status, resp := errorStatus(err)
		c.logger.Warn("Content edit failed", zap.String("id", id), zap.Int("status", status), zap.Error(err))
		c.fail(w, id, body, models.ContextPage, status, resp)
		return
	}

	c.respond(w, id, body, models.ContextPage, http.StatusOK, models.EditResponse{ID: id, Edits: edits})
}

// Kit handles POST /api/kit
func (c *InstructionController) Kit(w http.ResponseWriter, r *http.Request) {
	id := reqctx.GetRequestID(r.Context())

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		c.fail(w, id, body, models.ContextKit, http.StatusBadRequest, models.ErrorResponse{Error: "failed to read request body"})
		return
	}

	var req models.KitRequest
	if err := json.Unmarshal(body, &req); err != nil {
		c.fail(w, id, body, models.ContextKit, http.StatusBadRequest, models.ErrorResponse{Error: "request body must be a JSON object: " + err.Error()})
		return
	}

	ctx, cancel := c.withModelTimeout(r.Context())
	defer cancel()

	patch, err := c.services.Instruction.EditKit(ctx, &req)
	if err != nil {
		status, resp := errorStatus(err)
		c.logger.Warn("Kit edit failed", zap.String("id", id), zap.Int("status", status), zap.Error(err))
		c.fail(w, id, body, models.ContextKit, status, resp)
		return
	}

	c.respond(w, id, body, models.ContextKit, http.StatusOK, models.KitResponse{ID: id, Patch: patch})
}

func (c *InstructionController) withModelTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.modelTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.modelTimeout)
}

func (c *InstructionController) fail(w http.ResponseWriter, id string, body []byte, contextType models.ContextType, status int, resp models.ErrorResponse) {
	resp.ID = id
	c.respond(w, id, body, contextType, status, resp)
}

// respond records the request in the audit log and writes the response
func (c *InstructionController) respond(w http.ResponseWriter, id string, body []byte, contextType models.ContextType, status int, payload interface{}) {
	c.services.Audit.Record(id, body, payload, contextType)

	if err := writeJSON(w, status, payload); err != nil {
		c.logger.Warn("Failed to write response", zap.String("id", id), zap.Error(err))
	}
}
