package services

import (
	"encoding/json"

	"github.com/blogem/editpilot/models"
)

// Payload keys accepted from model output, camelCase first then snake_case
var (
	keyNewText         = []string{"newText", "new_text"}
	keyField           = []string{"field"}
	keyItemIndex       = []string{"itemIndex", "item_index"}
	keyNewURL          = []string{"newUrl", "new_url"}
	keyNewLink         = []string{"newLink", "new_link"}
	keyNewImageURL     = []string{"newImageUrl", "new_image_url"}
	keyNewAttachmentID = []string{"newAttachmentId", "new_attachment_id"}
	keyNewImage        = []string{"newImage", "new_image"}
)

var editPayloadKeys = [][]string{
	keyNewText, keyNewURL, keyNewLink, keyNewImageURL, keyNewAttachmentID, keyNewImage,
}

// NormalizeEditResponse turns raw model output into validated edit records.
// A wrong root shape fails the whole response; malformed elements are dropped.
// Surviving records keep the order of the model output.
func NormalizeEditResponse(raw string, dictionary []models.DictionaryEntry, slots []models.ImageSlot, capabilities []models.Capability) ([]models.EditRecord, error) {
	elements, err := decodeArray(raw)
	if err != nil {
		return nil, err
	}

	caps := NewCapabilitySet(capabilities)
	edits := make([]models.EditRecord, 0, len(elements))

	for _, element := range elements {
		obj, ok := asObject(element)
		if !ok {
			continue
		}

		idRaw, hasID := lookup(obj, "id")
		pathRaw, hasPath := lookup(obj, "path")
		if !hasID && !hasPath {
			continue
		}
		if !hasPayloadKey(obj) {
			continue
		}

		id, _ := scalarString(idRaw)
		path, _ := scalarString(pathRaw)

		rec := parseEditPayload(obj)
		rec.ID, rec.Path = ResolveIdentifiers(id, path, dictionary, slots)

		rec, ok = caps.Filter(rec)
		if !ok || !rec.IsAddressable() {
			continue
		}

		edits = append(edits, rec)
	}

	return edits, nil
}

func hasPayloadKey(obj map[string]json.RawMessage) bool {
	for _, keys := range editPayloadKeys {
		if _, ok := lookup(obj, keys...); ok {
			return true
		}
	}
	return false
}

// parseEditPayload reads every payload variant present in obj, ignoring malformed values
func parseEditPayload(obj map[string]json.RawMessage) models.EditRecord {
	var rec models.EditRecord

	if raw, ok := lookup(obj, keyNewText...); ok {
		if text, ok := scalarString(raw); ok {
			rec.Text = &models.TextChange{NewText: text}
			if raw, ok := lookup(obj, keyField...); ok {
				if field, ok := scalarString(raw); ok {
					rec.Text.Field = &field
				}
			}
			if raw, ok := lookup(obj, keyItemIndex...); ok {
				var index int
				if err := json.Unmarshal(raw, &index); err == nil {
					rec.Text.ItemIndex = &index
				}
			}
		}
	}

	var change models.URLChange
	if raw, ok := lookup(obj, keyNewURL...); ok {
		if url, ok := scalarString(raw); ok {
			change.NewURL = &url
		}
	}
	if raw, ok := lookup(obj, keyNewLink...); ok {
		change.NewLink = parseLink(raw)
	}
	if change.NewURL != nil || change.NewLink != nil {
		rec.URL = &change
	}

	var image models.ImageChange
	if raw, ok := lookup(obj, keyNewImageURL...); ok {
		if url, ok := scalarString(raw); ok {
			image.NewImageURL = &url
		}
	}
	if raw, ok := lookup(obj, keyNewAttachmentID...); ok {
		if id, ok := scalarRaw(raw); ok {
			image.NewAttachmentID = id
		}
	}
	if raw, ok := lookup(obj, keyNewImage...); ok {
		image.NewImage = parseImageRef(raw)
	}
	if image.NewImageURL != nil || image.NewAttachmentID != nil || image.NewImage != nil {
		rec.Image = &image
	}

	return rec
}

// parseLink accepts {url, isExternal?, nofollow?} or a bare URL string
func parseLink(raw json.RawMessage) *models.Link {
	if url, ok := scalarString(raw); ok {
		if url == "" {
			return nil
		}
		return &models.Link{URL: url}
	}

	obj, ok := asObject(raw)
	if !ok {
		return nil
	}
	urlRaw, ok := lookup(obj, "url")
	if !ok {
		return nil
	}
	url, ok := scalarString(urlRaw)
	if !ok || url == "" {
		return nil
	}

	link := &models.Link{URL: url}
	link.IsExternal = optionalBool(obj, "isExternal", "is_external")
	link.Nofollow = optionalBool(obj, "nofollow")
	return link
}

// parseImageRef accepts {url?, id?}; at least one of them must be usable
func parseImageRef(raw json.RawMessage) *models.ImageRef {
	obj, ok := asObject(raw)
	if !ok {
		return nil
	}

	var ref models.ImageRef
	if v, ok := lookup(obj, "url"); ok {
		if url, ok := scalarString(v); ok {
			ref.URL = url
		}
	}
	if v, ok := lookup(obj, "id"); ok {
		if id, ok := scalarRaw(v); ok {
			ref.ID = id
		}
	}
	if ref.URL == "" && ref.ID == nil {
		return nil
	}
	return &ref
}

func optionalBool(obj map[string]json.RawMessage, keys ...string) *bool {
	raw, ok := lookup(obj, keys...)
	if !ok {
		return nil
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err != nil {
		return nil
	}
	return &b
}
