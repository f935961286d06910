package models

import (
	"encoding/json"
	"strings"
)

// TypographyKeyPrefix marks the keys a typography entry may carry
const TypographyKeyPrefix = "typography_"

// KitColor is one system color of a kit
type KitColor struct {
	ID    string `json:"_id"`
	Title string `json:"title"`
	Value string `json:"value"`
}

// KitTypography is one system typography entry of a kit.
// Title and Values are kept verbatim (a font size is itself an object).
type KitTypography struct {
	ID     string
	Title  json.RawMessage
	Values map[string]json.RawMessage
}

// KitPatch is a partial kit update produced from model output
type KitPatch struct {
	Colors     []KitColor      `json:"colors,omitempty"`
	Typography []KitTypography `json:"typography,omitempty"`
	Settings   json.RawMessage `json:"settings,omitempty"`
}

// IsEmpty reports whether the patch changes nothing
func (p *KitPatch) IsEmpty() bool {
	return len(p.Colors) == 0 && len(p.Typography) == 0 && len(p.Settings) == 0
}

// MarshalJSON writes the entry as a flat object: _id, title and the typography_* keys
func (t KitTypography) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(t.Values)+2)
	for k, v := range t.Values {
		out[k] = v
	}

	id, err := json.Marshal(t.ID)
	if err != nil {
		return nil, err
	}
	out["_id"] = id

	if len(t.Title) > 0 {
		out["title"] = t.Title
	}

	return json.Marshal(out)
}

// UnmarshalJSON reads a flat typography object, keeping only typography_* keys in Values
func (t *KitTypography) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*t = KitTypography{Values: make(map[string]json.RawMessage)}
	if v, ok := raw["_id"]; ok {
		if err := json.Unmarshal(v, &t.ID); err != nil {
			return err
		}
	}
	if v, ok := raw["title"]; ok && string(v) != "null" {
		t.Title = v
	}
	for k, v := range raw {
		if strings.HasPrefix(k, TypographyKeyPrefix) {
			t.Values[k] = v
		}
	}
	return nil
}
