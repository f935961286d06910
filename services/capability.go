package services

import (
	"strings"

	"github.com/blogem/editpilot/models"
)

// CapabilitySet is the parsed allow-list of payload kinds
type CapabilitySet struct {
	Text  bool
	URL   bool
	Image bool
}

// NewCapabilitySet builds a set from capability tags; unknown tags are ignored
func NewCapabilitySet(capabilities []models.Capability) CapabilitySet {
	var set CapabilitySet
	for _, c := range capabilities {
		switch models.Capability(strings.ToLower(strings.TrimSpace(string(c)))) {
		case models.CapabilityText:
			set.Text = true
		case models.CapabilityURL:
			set.URL = true
		case models.CapabilityImage:
			set.Image = true
		}
	}
	return set
}

// Has reports whether the capability is allowed
func (s CapabilitySet) Has(c models.Capability) bool {
	switch c {
	case models.CapabilityText:
		return s.Text
	case models.CapabilityURL:
		return s.URL
	case models.CapabilityImage:
		return s.Image
	}
	return false
}

// List returns the allowed capabilities in a fixed order
func (s CapabilitySet) List() []models.Capability {
	var out []models.Capability
	for _, c := range []models.Capability{models.CapabilityText, models.CapabilityURL, models.CapabilityImage} {
		if s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

// Filter drops every payload variant whose capability is not allowed.
// It returns false when nothing is left, in which case the record must be discarded.
func (s CapabilitySet) Filter(rec models.EditRecord) (models.EditRecord, bool) {
	if !s.Text {
		rec.Text = nil
	}
	if !s.URL {
		rec.URL = nil
	}
	if !s.Image {
		rec.Image = nil
	}
	return rec, rec.HasPayload()
}
