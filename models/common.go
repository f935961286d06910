package models

// ErrorResponse is the JSON body returned for failed requests
type ErrorResponse struct {
	ID      string   `json:"id,omitempty"`
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

// EditResponse is the JSON body returned for a successful content edit
type EditResponse struct {
	ID    string       `json:"id"`
	Edits []EditRecord `json:"edits"`
}

// KitResponse is the JSON body returned for a successful kit edit
type KitResponse struct {
	ID    string    `json:"id"`
	Patch *KitPatch `json:"patch"`
}

// AuditListResponse is the JSON body returned by the audit listing
type AuditListResponse struct {
	Records []AuditRecord `json:"records"`
}
