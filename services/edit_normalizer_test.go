package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blogem/editpilot/models"
)

var (
	allCapabilities = []models.Capability{models.CapabilityText, models.CapabilityURL, models.CapabilityImage}
	textOnly        = []models.Capability{models.CapabilityText}
)

func strPtr(s string) *string { return &s }

func TestNormalizeEditResponse_ResolvesMissingIDFromDictionary(t *testing.T) {
	dictionary := []models.DictionaryEntry{{ID: "a", Path: "/a", WidgetType: "t", Text: ""}}

	edits, err := NormalizeEditResponse(`[{"path":"/a","new_text":"Hi"}]`, dictionary, nil, textOnly)

	require.NoError(t, err)
	assert.Equal(t, []models.EditRecord{
		{ID: "a", Path: "/a", Text: &models.TextChange{NewText: "Hi"}},
	}, edits)
}

func TestNormalizeEditResponse_FencedAndBareAreEqual(t *testing.T) {
	dictionary := []models.DictionaryEntry{
		{ID: "h1", Path: "/0/heading", WidgetType: "heading", Text: "Hello"},
		{ID: "b1", Path: "/0/button", WidgetType: "button", Text: "Go"},
	}
	bare := `[{"id":"h1","newText":"Welcome"},{"path":"/0/button","newText":"Start","field":"text"}]`

	variants := []string{
		"```json\n" + bare + "\n```",
		"```\n" + bare + "\n```",
		"  ```JSON " + bare + "```  ",
		"\n\t" + bare + "\n",
	}

	want, err := NormalizeEditResponse(bare, dictionary, nil, textOnly)
	require.NoError(t, err)
	require.Len(t, want, 2)

	for _, raw := range variants {
		got, err := NormalizeEditResponse(raw, dictionary, nil, textOnly)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}
}

func TestNormalizeEditResponse_DropsElementsWithoutAllowedPayload(t *testing.T) {
	edits, err := NormalizeEditResponse(`[{"id":"a","path":"/a","newUrl":"https://example.com"}]`, nil, nil, textOnly)

	require.NoError(t, err)
	assert.Empty(t, edits)
	assert.NotNil(t, edits)
}

func TestNormalizeEditResponse_FiltersFieldsByCapability(t *testing.T) {
	raw := `[{"id":"a","path":"/a","newText":"Hi","field":"title","itemIndex":2,"newUrl":"https://x.test","newImageUrl":"https://x.test/a.png"}]`

	edits, err := NormalizeEditResponse(raw, nil, nil, textOnly)

	require.NoError(t, err)
	require.Len(t, edits, 1)
	assert.NotNil(t, edits[0].Text)
	assert.Equal(t, "title", *edits[0].Text.Field)
	assert.Equal(t, 2, *edits[0].Text.ItemIndex)
	assert.Nil(t, edits[0].URL)
	assert.Nil(t, edits[0].Image)
}

func TestNormalizeEditResponse_InvalidResponse(t *testing.T) {
	for _, raw := range []string{"not json", "42", `{"id":"a","newText":"x"}`, `"text"`, "null", "", "```json\n```", "Sure! ```json [] ```"} {
		edits, err := NormalizeEditResponse(raw, nil, nil, allCapabilities)
		assert.ErrorIs(t, err, ErrInvalidResponse, raw)
		assert.Nil(t, edits, raw)
	}
}

func TestNormalizeEditResponse_DropsMalformedElements(t *testing.T) {
	raw := `[
		null,
		5,
		"text",
		[],
		{},
		{"id":"a"},
		{"newText":"no address"},
		{"id":null,"path":null,"newText":"nulls"},
		{"id":"","path":"","newText":"empty address"},
		{"id":"a","newText":null},
		{"id":"a","newText":{"nested":true}},
		{"id":"ok","newText":"kept"}
	]`

	edits, err := NormalizeEditResponse(raw, nil, nil, allCapabilities)

	require.NoError(t, err)
	require.Len(t, edits, 1)
	assert.Equal(t, "ok", edits[0].ID)
	assert.Equal(t, "kept", edits[0].Text.NewText)
}

func TestNormalizeEditResponse_KeepsModelOrder(t *testing.T) {
	raw := `[{"id":"c","newText":"3"},{"id":"a","newText":"1"},{"id":"b","newText":"2"}]`

	edits, err := NormalizeEditResponse(raw, nil, nil, textOnly)

	require.NoError(t, err)
	require.Len(t, edits, 3)
	assert.Equal(t, "c", edits[0].ID)
	assert.Equal(t, "a", edits[1].ID)
	assert.Equal(t, "b", edits[2].ID)
}

func TestNormalizeEditResponse_UnresolvedHalfStaysEmpty(t *testing.T) {
	dictionary := []models.DictionaryEntry{{ID: "a", Path: "/a"}}

	edits, err := NormalizeEditResponse(`[{"id":"zzz","newText":"x"}]`, dictionary, nil, textOnly)

	require.NoError(t, err)
	require.Len(t, edits, 1)
	assert.Equal(t, "zzz", edits[0].ID)
	assert.Equal(t, "", edits[0].Path)
}

func TestNormalizeEditResponse_CoercesNewText(t *testing.T) {
	edits, err := NormalizeEditResponse(`[{"id":"n","newText":42},{"id":"b","newText":true}]`, nil, nil, textOnly)

	require.NoError(t, err)
	require.Len(t, edits, 2)
	assert.Equal(t, "42", edits[0].Text.NewText)
	assert.Equal(t, "true", edits[1].Text.NewText)
}

func TestNormalizeEditResponse_LinkPayloads(t *testing.T) {
	raw := `[
		{"id":"a","newLink":{"url":"https://example.com","isExternal":true,"nofollow":false}},
		{"id":"b","new_link":"https://b.test"},
		{"id":"c","newLink":{"isExternal":true}},
		{"id":"d","newUrl":"https://d.test"}
	]`

	edits, err := NormalizeEditResponse(raw, nil, nil, []models.Capability{models.CapabilityURL})

	require.NoError(t, err)
	require.Len(t, edits, 3)

	link := edits[0].URL.NewLink
	require.NotNil(t, link)
	assert.Equal(t, "https://example.com", link.URL)
	assert.True(t, *link.IsExternal)
	assert.False(t, *link.Nofollow)

	assert.Equal(t, &models.Link{URL: "https://b.test"}, edits[1].URL.NewLink)

	assert.Equal(t, "d", edits[2].ID)
	assert.Equal(t, "https://d.test", *edits[2].URL.NewURL)
}

func TestNormalizeEditResponse_ImagePayloadsResolveFromSlots(t *testing.T) {
	dictionary := []models.DictionaryEntry{{ID: "t1", Path: "/0/title"}}
	slots := []models.ImageSlot{
		{ID: "img1", Path: "/0/hero", SlotType: "image", ElType: "widget"},
		{ID: "bg1", Path: "/1/background", SlotType: "background", ElType: "section"},
	}
	raw := `[
		{"id":"img1","newImageUrl":"https://cdn.test/a.png"},
		{"path":"/1/background","newImage":{"url":"https://cdn.test/b.png","id":77}},
		{"id":"img1","newAttachmentId":123},
		{"id":"img1","newImage":{"alt":"nothing usable"}}
	]`

	edits, err := NormalizeEditResponse(raw, dictionary, slots, []models.Capability{models.CapabilityImage})

	require.NoError(t, err)
	require.Len(t, edits, 3)

	assert.Equal(t, "/0/hero", edits[0].Path)
	assert.Equal(t, "https://cdn.test/a.png", *edits[0].Image.NewImageURL)

	assert.Equal(t, "bg1", edits[1].ID)
	assert.Equal(t, "https://cdn.test/b.png", edits[1].Image.NewImage.URL)
	assert.Equal(t, json.RawMessage("77"), edits[1].Image.NewImage.ID)

	assert.Equal(t, json.RawMessage("123"), edits[2].Image.NewAttachmentID)
}

func TestNormalizeEditResponse_IsIdempotent(t *testing.T) {
	dictionary := []models.DictionaryEntry{{ID: "a", Path: "/a"}, {ID: "b", Path: "/b", LinkURL: strPtr("https://old.test")}}
	raw := "```json\n" + `[{"path":"/a","newText":"x"},{"id":"b","newUrl":"https://new.test","newText":"y"}]` + "\n```"

	first, err := NormalizeEditResponse(raw, dictionary, nil, allCapabilities)
	require.NoError(t, err)
	second, err := NormalizeEditResponse(raw, dictionary, nil, allCapabilities)
	require.NoError(t, err)

	assert.Equal(t, first, second)

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)
	assert.JSONEq(t, string(firstJSON), string(secondJSON))
}

func TestNormalizeEditResponse_WireShape(t *testing.T) {
	raw := `[{"id":"a","path":"/a","newText":"Hi","field":"title","newUrl":"https://x.test"}]`

	edits, err := NormalizeEditResponse(raw, nil, nil, allCapabilities)
	require.NoError(t, err)

	out, err := json.Marshal(edits)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"a","path":"/a","newText":"Hi","field":"title","newUrl":"https://x.test"}]`, string(out))
}
