package controllers

import (
	"net/http"

	"github.com/blogem/editpilot/models"
	"github.com/blogem/editpilot/services"
)

// AuditController handles recent-activity requests
type AuditController struct {
	services *services.Services
}

// NewAuditController creates a new audit controller
func NewAuditController(services *services.Services) *AuditController {
	return &AuditController{
		services: services,
	}
}

// Index handles GET /api/audit
func (c *AuditController) Index(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.AuditListResponse{Records: c.services.Audit.List()})
}
