package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnwrapFence(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"[1]", "[1]"},
		{"  \n[1]\n  ", "[1]"},
		{"```json\n[1]\n```", "[1]"},
		{"```\n{\"a\":1}\n```", `{"a":1}`},
		{"```JSON [1]```", "[1]"},
		{"```json\r\n[1]\r\n```", "[1]"},
		{"\n```json\n  [1]  \n```\n", "[1]"},
		{"Here you go: ```json [1]```", "Here you go: ```json [1]```"},
		{"```json\n[1]", "```json\n[1]"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, unwrapFence(tt.raw), tt.raw)
	}
}

func TestScalarString(t *testing.T) {
	tests := []struct {
		raw    string
		want   string
		wantOK bool
	}{
		{`"hi"`, "hi", true},
		{`12.5`, "12.5", true},
		{`-3`, "-3", true},
		{`false`, "false", true},
		{`null`, "", false},
		{`{"a":1}`, "", false},
		{`[1]`, "", false},
		{``, "", false},
	}

	for _, tt := range tests {
		got, ok := scalarString(json.RawMessage(tt.raw))
		assert.Equal(t, tt.want, got, tt.raw)
		assert.Equal(t, tt.wantOK, ok, tt.raw)
	}
}

func TestScalarRaw(t *testing.T) {
	got, ok := scalarRaw(json.RawMessage(` 42 `))
	assert.True(t, ok)
	assert.Equal(t, json.RawMessage("42"), got)

	got, ok = scalarRaw(json.RawMessage(`"abc"`))
	assert.True(t, ok)
	assert.Equal(t, json.RawMessage(`"abc"`), got)

	for _, raw := range []string{"true", "null", "{}", "[]", ""} {
		_, ok := scalarRaw(json.RawMessage(raw))
		assert.False(t, ok, raw)
	}
}

func TestLookup_PrefersFirstNonNullKey(t *testing.T) {
	obj := map[string]json.RawMessage{
		"newText":  json.RawMessage("null"),
		"new_text": json.RawMessage(`"snake"`),
	}

	v, ok := lookup(obj, "newText", "new_text")
	assert.True(t, ok)
	assert.Equal(t, json.RawMessage(`"snake"`), v)

	_, ok = lookup(obj, "missing")
	assert.False(t, ok)
}
