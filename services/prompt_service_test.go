package services

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blogem/editpilot/models"
)

func TestCompileEditPrompt_TextOnly(t *testing.T) {
	dictionary := []models.DictionaryEntry{
		{ID: "h1", Path: "/0/heading", WidgetType: "heading", Field: strPtr("title"), Text: "Hello world"},
	}

	prompt, err := CompileEditPrompt(dictionary, "  Make the heading friendlier  ", nil, textOnly)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(prompt, "You are a content editing assistant"))
	assert.Contains(t, prompt, `"newText"`)
	assert.NotContains(t, prompt, "newUrl")
	assert.NotContains(t, prompt, "newImageUrl")
	assert.NotContains(t, prompt, "IMAGE SLOTS")
	assert.Contains(t, prompt, "Allowed change kinds: text.")
	assert.Contains(t, prompt, `"id": "h1"`)
	assert.Contains(t, prompt, `"path": "/0/heading"`)
	assert.True(t, strings.HasSuffix(prompt, "INSTRUCTION:\nMake the heading friendlier\n"))
}

func TestCompileEditPrompt_AllCapabilitiesWithSlots(t *testing.T) {
	slots := []models.ImageSlot{{ID: "img1", Path: "/0/hero", SlotType: "image", ElType: "widget", ImageURL: "https://cdn.test/a.png"}}

	prompt, err := CompileEditPrompt(nil, "Use a darker hero image", slots, allCapabilities)
	require.NoError(t, err)

	assert.Contains(t, prompt, "newLink")
	assert.Contains(t, prompt, "newAttachmentId")
	assert.Contains(t, prompt, "IMAGE SLOTS:\n[")
	assert.Contains(t, prompt, `"imageUrl": "https://cdn.test/a.png"`)
	assert.Contains(t, prompt, "DICTIONARY:\n[]")
	assert.Contains(t, prompt, "Allowed change kinds: text, url, image.")

	dictIdx := strings.Index(prompt, "DICTIONARY:")
	slotIdx := strings.Index(prompt, "IMAGE SLOTS:\n")
	instrIdx := strings.Index(prompt, "INSTRUCTION:")
	assert.True(t, dictIdx < slotIdx && slotIdx < instrIdx)
}

func TestCompileEditPrompt_NoCapabilities(t *testing.T) {
	prompt, err := CompileEditPrompt([]models.DictionaryEntry{}, "anything", nil, nil)
	require.NoError(t, err)
	assert.Contains(t, prompt, "Allowed change kinds: none.")
	assert.NotContains(t, prompt, `"newText"`)
}

func TestCompileEditPrompt_IsDeterministic(t *testing.T) {
	dictionary := []models.DictionaryEntry{{ID: "a", Path: "/a", Text: "x"}, {ID: "b", Path: "/b", Text: "y"}}

	first, err := CompileEditPrompt(dictionary, "shorten", nil, allCapabilities)
	require.NoError(t, err)
	second, err := CompileEditPrompt(dictionary, "shorten", nil, allCapabilities)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCompileKitPrompt(t *testing.T) {
	settings := json.RawMessage(`{"system_colors":[{"_id":"primary","title":"Primary","color":"#000"}]}`)

	prompt, err := CompileKitPrompt(settings, "Make the palette warmer")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(prompt, "You are a design system assistant"))
	assert.Contains(t, prompt, "typography_")
	assert.Contains(t, prompt, "KIT SETTINGS:\n{\n  \"system_colors\"")
	assert.True(t, strings.HasSuffix(prompt, "INSTRUCTION:\nMake the palette warmer\n"))
}

func TestCompileKitPrompt_EmptyAndInvalidSettings(t *testing.T) {
	prompt, err := CompileKitPrompt(nil, "x")
	require.NoError(t, err)
	assert.Contains(t, prompt, "KIT SETTINGS:\n{}\n")

	_, err = CompileKitPrompt(json.RawMessage(`{broken`), "x")
	assert.Error(t, err)
}
