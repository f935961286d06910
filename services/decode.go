package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// fencePattern matches a whole string wrapped in a ``` or ```json code fence
var fencePattern = regexp.MustCompile("(?s)^```(?i:json)?[ \\t]*\\r?\\n?(.*?)\\s*```$")

// unwrapFence trims raw and strips a surrounding code fence if present
func unwrapFence(raw string) string {
	text := strings.TrimSpace(raw)
	if m := fencePattern.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return text
}

// decodeArray unwraps and strictly decodes model output whose root must be a JSON array
func decodeArray(raw string) ([]json.RawMessage, error) {
	body, err := decodeRoot(raw, '[', "an array")
	if err != nil {
		return nil, err
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(body, &elements); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return elements, nil
}

// decodeObject unwraps and strictly decodes model output whose root must be a JSON object
func decodeObject(raw string) (map[string]json.RawMessage, error) {
	body, err := decodeRoot(raw, '{', "an object")
	if err != nil {
		return nil, err
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(body, &obj); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return obj, nil
}

func decodeRoot(raw string, open byte, want string) ([]byte, error) {
	body := []byte(unwrapFence(raw))
	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: model output is not valid JSON", ErrInvalidResponse)
	}
	if body[0] != open {
		return nil, fmt.Errorf("%w: model output must be %s", ErrInvalidResponse, want)
	}
	return body, nil
}

// isNull reports whether a raw value is absent or JSON null
func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// lookup returns the first non-null value among the given keys
func lookup(obj map[string]json.RawMessage, keys ...string) (json.RawMessage, bool) {
	for _, key := range keys {
		if v, ok := obj[key]; ok && !isNull(v) {
			return v, true
		}
	}
	return nil, false
}

// asObject decodes raw as a JSON object; null and non-objects are rejected
func asObject(raw json.RawMessage) (map[string]json.RawMessage, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, false
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return nil, false
	}
	return obj, true
}

// asArray decodes raw as a JSON array; null and non-arrays are rejected
func asArray(raw json.RawMessage) ([]json.RawMessage, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, false
	}
	var arr []json.RawMessage
	if err := json.Unmarshal(trimmed, &arr); err != nil {
		return nil, false
	}
	return arr, true
}

// scalarString coerces a JSON string, number or boolean to its string form.
// null, objects and arrays have no string form.
func scalarString(raw json.RawMessage) (string, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return "", false
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return "", false
		}
		return s, true
	case '{', '[', 'n':
		return "", false
	default:
		return string(trimmed), true
	}
}

// scalarRaw returns a compact copy of raw when it is a JSON string or number
func scalarRaw(raw json.RawMessage) (json.RawMessage, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, false
	}
	switch c := trimmed[0]; {
	case c == '"', c == '-', c >= '0' && c <= '9':
		out := make(json.RawMessage, len(trimmed))
		copy(out, trimmed)
		return out, true
	}
	return nil, false
}
