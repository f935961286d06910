package models

import (
	"encoding/json"
)

// EditRecord is one validated edit instruction addressed to a slot.
// Each payload kind is a separate variant; nil means the kind is absent.
type EditRecord struct {
	ID    string
	Path  string
	Text  *TextChange
	URL   *URLChange
	Image *ImageChange
}

// TextChange replaces the text of a slot
type TextChange struct {
	NewText   string
	Field     *string
	ItemIndex *int
}

// URLChange replaces a plain URL, a structured link, or both
type URLChange struct {
	NewURL  *string
	NewLink *Link
}

// Link is a structured link value
type Link struct {
	URL        string `json:"url"`
	IsExternal *bool  `json:"isExternal,omitempty"`
	Nofollow   *bool  `json:"nofollow,omitempty"`
}

// ImageChange replaces an image by URL, attachment id, or image reference
type ImageChange struct {
	NewImageURL     *string
	NewAttachmentID json.RawMessage
	NewImage        *ImageRef
}

// ImageRef points at an image by URL and/or media library id
type ImageRef struct {
	URL string          `json:"url,omitempty"`
	ID  json.RawMessage `json:"id,omitempty"`
}

// HasPayload reports whether the record carries at least one change
func (e *EditRecord) HasPayload() bool {
	return e.Text != nil || e.URL != nil || e.Image != nil
}

// IsAddressable reports whether the record names a slot
func (e *EditRecord) IsAddressable() bool {
	return e.ID != "" || e.Path != ""
}

// editRecordWire is the flat JSON shape of an EditRecord
type editRecordWire struct {
	ID              string          `json:"id"`
	Path            string          `json:"path"`
	NewText         *string         `json:"newText,omitempty"`
	Field           *string         `json:"field,omitempty"`
	ItemIndex       *int            `json:"itemIndex,omitempty"`
	NewURL          *string         `json:"newUrl,omitempty"`
	NewLink         *Link           `json:"newLink,omitempty"`
	NewImageURL     *string         `json:"newImageUrl,omitempty"`
	NewAttachmentID json.RawMessage `json:"newAttachmentId,omitempty"`
	NewImage        *ImageRef       `json:"newImage,omitempty"`
}

// MarshalJSON flattens the payload variants into a single object
func (e EditRecord) MarshalJSON() ([]byte, error) {
	w := editRecordWire{ID: e.ID, Path: e.Path}
	if e.Text != nil {
		text := e.Text.NewText
		w.NewText = &text
		w.Field = e.Text.Field
		w.ItemIndex = e.Text.ItemIndex
	}
	if e.URL != nil {
		w.NewURL = e.URL.NewURL
		w.NewLink = e.URL.NewLink
	}
	if e.Image != nil {
		w.NewImageURL = e.Image.NewImageURL
		w.NewAttachmentID = e.Image.NewAttachmentID
		w.NewImage = e.Image.NewImage
	}
	return json.Marshal(w)
}

// UnmarshalJSON reads the flat shape produced by MarshalJSON
func (e *EditRecord) UnmarshalJSON(data []byte) error {
	var w editRecordWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	*e = EditRecord{ID: w.ID, Path: w.Path}
	if w.NewText != nil {
		e.Text = &TextChange{NewText: *w.NewText, Field: w.Field, ItemIndex: w.ItemIndex}
	}
	if w.NewURL != nil || w.NewLink != nil {
		e.URL = &URLChange{NewURL: w.NewURL, NewLink: w.NewLink}
	}
	if w.NewImageURL != nil || len(w.NewAttachmentID) > 0 || w.NewImage != nil {
		e.Image = &ImageChange{NewImageURL: w.NewImageURL, NewAttachmentID: w.NewAttachmentID, NewImage: w.NewImage}
	}
	return nil
}
