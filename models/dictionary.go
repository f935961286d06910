package models

// DictionaryEntry represents one editable text/link slot of a page or template
type DictionaryEntry struct {
	ID         string  `json:"id"`
	Path       string  `json:"path"`
	WidgetType string  `json:"widgetType"`
	Field      *string `json:"field,omitempty"`
	Text       string  `json:"text"`
	LinkURL    *string `json:"linkUrl,omitempty"`
}

// ImageSlot represents one editable image or background slot
type ImageSlot struct {
	ID       string  `json:"id"`
	Path     string  `json:"path"`
	SlotType string  `json:"slotType"`
	ElType   string  `json:"elType"`
	ImageURL string  `json:"imageUrl"`
	ImageID  *string `json:"imageId,omitempty"`
}

// Capability gates which payload kinds an edit response may contain
type Capability string

const (
	CapabilityText  Capability = "text"
	CapabilityURL   Capability = "url"
	CapabilityImage Capability = "image"
)

// DefaultCapabilities is used when a request does not name any capability
var DefaultCapabilities = []Capability{CapabilityText}

