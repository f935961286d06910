package models

import (
	"bytes"
	"encoding/json"
	"strings"
)

// EditRequest represents the body of a content edit request
type EditRequest struct {
	Dictionary   []DictionaryEntry `json:"dictionary"`
	ImageSlots   []ImageSlot       `json:"imageSlots,omitempty"`
	Capabilities []Capability      `json:"capabilities,omitempty"`
	Instruction  string            `json:"instruction"`
}

// KitRequest represents the body of a kit edit request
type KitRequest struct {
	KitSettings json.RawMessage `json:"kitSettings"`
	Instruction string          `json:"instruction"`
}

// Validate validates the edit request
func (r *EditRequest) Validate() []string {
	var errors []string

	if strings.TrimSpace(r.Instruction) == "" {
		errors = append(errors, "Instruction is required")
	}

	if r.Dictionary == nil {
		errors = append(errors, "Dictionary must be an array")
	}

	return errors
}

// EffectiveCapabilities returns the requested capabilities, falling back to DefaultCapabilities
// only when none were sent. An explicit empty list allows nothing.
func (r *EditRequest) EffectiveCapabilities() []Capability {
	if r.Capabilities == nil {
		return DefaultCapabilities
	}
	return r.Capabilities
}

// Validate validates the kit request
func (r *KitRequest) Validate() []string {
	var errors []string

	if strings.TrimSpace(r.Instruction) == "" {
		errors = append(errors, "Instruction is required")
	}

	if !isJSONObject(r.KitSettings) {
		errors = append(errors, "Kit settings must be an object")
	}

	return errors
}

func isJSONObject(data json.RawMessage) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) > 0 && trimmed[0] == '{' && json.Valid(trimmed)
}
