package models

import (
	"encoding/json"
	"testing"
)

// Test EditRequest validation
func TestEditRequestValidation(t *testing.T) {
	// Test valid request
	valid := EditRequest{
		Dictionary:  []DictionaryEntry{},
		Instruction: "Make it shorter",
	}
	if errors := valid.Validate(); len(errors) != 0 {
		t.Errorf("Expected no errors for valid request, got: %v", errors)
	}

	// Test invalid request
	invalid := EditRequest{Instruction: " \n\t "}
	if errors := invalid.Validate(); len(errors) != 2 {
		t.Errorf("Expected 2 errors for invalid request, got: %v", errors)
	}
}

// Test capability defaulting
func TestEditRequestEffectiveCapabilities(t *testing.T) {
	req := EditRequest{}
	caps := req.EffectiveCapabilities()
	if len(caps) != 1 || caps[0] != CapabilityText {
		t.Errorf("Expected default capabilities [text], got %v", caps)
	}

	req.Capabilities = []Capability{CapabilityURL, CapabilityImage}
	if caps := req.EffectiveCapabilities(); len(caps) != 2 {
		t.Errorf("Expected requested capabilities, got %v", caps)
	}

	// An explicit empty list allows nothing
	var decoded EditRequest
	if err := json.Unmarshal([]byte(`{"dictionary":[],"capabilities":[],"instruction":"x"}`), &decoded); err != nil {
		t.Fatalf("Failed to unmarshal request: %v", err)
	}
	if caps := decoded.EffectiveCapabilities(); caps == nil || len(caps) != 0 {
		t.Errorf("Expected explicit empty capabilities, got %v", caps)
	}

	// A missing key falls back to the default
	decoded = EditRequest{}
	if err := json.Unmarshal([]byte(`{"dictionary":[],"instruction":"x"}`), &decoded); err != nil {
		t.Fatalf("Failed to unmarshal request: %v", err)
	}
	if caps := decoded.EffectiveCapabilities(); len(caps) != 1 || caps[0] != CapabilityText {
		t.Errorf("Expected default capabilities [text] for missing key, got %v", caps)
	}
}

// Test KitRequest validation
func TestKitRequestValidation(t *testing.T) {
	valid := KitRequest{KitSettings: json.RawMessage(` {"system_colors":[]}`), Instruction: "Warmer"}
	if errors := valid.Validate(); len(errors) != 0 {
		t.Errorf("Expected no errors for valid request, got: %v", errors)
	}

	for _, settings := range []string{"", "null", "[]", `"x"`, "{broken"} {
		req := KitRequest{KitSettings: json.RawMessage(settings), Instruction: "Warmer"}
		if errors := req.Validate(); len(errors) != 1 {
			t.Errorf("Expected 1 error for settings %q, got: %v", settings, errors)
		}
	}
}

// Test EditRecord wire shape
func TestEditRecordJSON(t *testing.T) {
	url := "https://example.com"
	index := 0
	external := true
	rec := EditRecord{
		ID:    "a",
		Path:  "/a",
		Text:  &TextChange{NewText: "", ItemIndex: &index},
		URL:   &URLChange{NewLink: &Link{URL: url, IsExternal: &external}},
		Image: &ImageChange{NewAttachmentID: json.RawMessage("12")},
	}

	data, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("Failed to marshal edit record: %v", err)
	}

	var flat map[string]interface{}
	if err := json.Unmarshal(data, &flat); err != nil {
		t.Fatalf("Failed to unmarshal edit record: %v", err)
	}

	// An empty newText is still a change
	if text, ok := flat["newText"]; !ok || text != "" {
		t.Errorf("Expected empty newText to be present, got %v", flat)
	}
	if flat["itemIndex"] != float64(0) {
		t.Errorf("Expected itemIndex 0, got %v", flat["itemIndex"])
	}
	if _, ok := flat["newUrl"]; ok {
		t.Errorf("Expected newUrl to be omitted, got %v", flat)
	}
	if flat["newAttachmentId"] != float64(12) {
		t.Errorf("Expected newAttachmentId 12, got %v", flat["newAttachmentId"])
	}

	var back EditRecord
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Failed to decode edit record: %v", err)
	}
	if back.Text == nil || back.URL == nil || back.Image == nil {
		t.Errorf("Expected all variants after decoding, got %+v", back)
	}
	if back.URL.NewLink.URL != url || !*back.URL.NewLink.IsExternal {
		t.Errorf("Expected link to survive decoding, got %+v", back.URL.NewLink)
	}
}

// Test EditRecord invariants helpers
func TestEditRecordHelpers(t *testing.T) {
	rec := EditRecord{}
	if rec.HasPayload() || rec.IsAddressable() {
		t.Error("Expected empty record to have neither payload nor address")
	}

	rec = EditRecord{Path: "/a", Text: &TextChange{NewText: "x"}}
	if !rec.HasPayload() || !rec.IsAddressable() {
		t.Error("Expected record with path and text to be valid")
	}
}

// Test KitTypography flattening
func TestKitTypographyJSON(t *testing.T) {
	typo := KitTypography{
		ID:    "primary",
		Title: json.RawMessage(`"Primary"`),
		Values: map[string]json.RawMessage{
			"typography_font_size": json.RawMessage(`{"unit":"px","size":16}`),
		},
	}

	data, err := json.Marshal(typo)
	if err != nil {
		t.Fatalf("Failed to marshal typography: %v", err)
	}

	var back KitTypography
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Failed to unmarshal typography: %v", err)
	}
	if back.ID != "primary" || string(back.Title) != `"Primary"` {
		t.Errorf("Expected id and title to survive, got %+v", back)
	}
	if len(back.Values) != 1 {
		t.Errorf("Expected 1 typography value, got %v", back.Values)
	}

	// No title key when title is absent
	typo.Title = nil
	data, _ = json.Marshal(typo)
	var flat map[string]interface{}
	json.Unmarshal(data, &flat)
	if _, ok := flat["title"]; ok {
		t.Errorf("Expected title to be omitted, got %s", data)
	}
}

// Test opaque JSON capture for audit records
func TestOpaqueJSON(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`{"a":1}`, `{"a":1}`},
		{`[1,2]`, `[1,2]`},
		{``, `null`},
		{`not json`, `"not json"`},
	}

	for _, tt := range tests {
		if got := string(OpaqueJSON([]byte(tt.in))); got != tt.want {
			t.Errorf("OpaqueJSON(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

// Test AuditRecord cloning
func TestAuditRecordClone(t *testing.T) {
	rec := AuditRecord{ID: "a", RequestBody: json.RawMessage(`{"x":1}`)}
	clone := rec.Clone()
	clone.RequestBody[1] = 'Y'

	if string(rec.RequestBody) != `{"x":1}` {
		t.Errorf("Expected original body to be untouched, got %s", rec.RequestBody)
	}
	if clone.ResponsePayload != nil {
		t.Errorf("Expected nil payload to stay nil, got %s", clone.ResponsePayload)
	}
}
