package services

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/blogem/editpilot/models"
)

// NormalizeKitResponse turns raw model output into a kit patch.
// Only colors, typography and settings are ever read from the output.
// A colors or typography key is kept only when at least one entry survives.
func NormalizeKitResponse(raw string) (*models.KitPatch, error) {
	obj, err := decodeObject(raw)
	if err != nil {
		return nil, err
	}

	patch := &models.KitPatch{}

	if entries, ok := asArray(obj["colors"]); ok {
		for _, entry := range entries {
			if color, ok := parseKitColor(entry); ok {
				patch.Colors = append(patch.Colors, color)
			}
		}
	}

	if entries, ok := asArray(obj["typography"]); ok {
		for _, entry := range entries {
			if typo, ok := parseKitTypography(entry); ok {
				patch.Typography = append(patch.Typography, typo)
			}
		}
	}

	if settings, ok := obj["settings"]; ok {
		if trimmed := bytes.TrimSpace(settings); len(trimmed) > 0 && trimmed[0] == '{' {
			patch.Settings = append(json.RawMessage(nil), trimmed...)
		}
	}

	return patch, nil
}

func parseKitColor(raw json.RawMessage) (models.KitColor, bool) {
	obj, ok := asObject(raw)
	if !ok {
		return models.KitColor{}, false
	}
	id, ok := kitEntryID(obj)
	if !ok {
		return models.KitColor{}, false
	}

	color := models.KitColor{ID: id}
	if v, ok := lookup(obj, "title"); ok {
		color.Title, _ = scalarString(v)
	}
	if v, ok := lookup(obj, "value"); ok {
		value, _ := scalarString(v)
		color.Value = strings.TrimSpace(value)
	}
	if color.Value == "" {
		return models.KitColor{}, false
	}
	return color, true
}

func parseKitTypography(raw json.RawMessage) (models.KitTypography, bool) {
	obj, ok := asObject(raw)
	if !ok {
		return models.KitTypography{}, false
	}
	id, ok := kitEntryID(obj)
	if !ok {
		return models.KitTypography{}, false
	}

	typo := models.KitTypography{ID: id, Values: make(map[string]json.RawMessage)}
	if v, ok := lookup(obj, "title"); ok {
		typo.Title = append(json.RawMessage(nil), bytes.TrimSpace(v)...)
	}
	for key, value := range obj {
		if !strings.HasPrefix(key, models.TypographyKeyPrefix) || isNull(value) {
			continue
		}
		typo.Values[key] = append(json.RawMessage(nil), bytes.TrimSpace(value)...)
	}
	if len(typo.Values) == 0 {
		return models.KitTypography{}, false
	}
	return typo, true
}

func kitEntryID(obj map[string]json.RawMessage) (string, bool) {
	raw, ok := lookup(obj, "_id")
	if !ok {
		return "", false
	}
	return scalarString(raw)
}
