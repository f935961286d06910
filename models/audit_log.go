package models

import (
	"encoding/json"
	"time"
)

// ContextType tells which pipeline produced an audit record
type ContextType string

const (
	ContextKit  ContextType = "kit"
	ContextPage ContextType = "page"
)

// AuditRecord represents one processed instruction request and its outcome
type AuditRecord struct {
	ID              string          `json:"id"`
	Timestamp       time.Time       `json:"timestamp"`
	RequestBody     json.RawMessage `json:"requestBody"`
	ResponsePayload json.RawMessage `json:"responsePayload"`
	ContextType     ContextType     `json:"contextType"`
}

// Clone returns a copy that shares no memory with the receiver
func (r AuditRecord) Clone() AuditRecord {
	r.RequestBody = cloneRaw(r.RequestBody)
	r.ResponsePayload = cloneRaw(r.ResponsePayload)
	return r
}

// OpaqueJSON returns data as a JSON value: valid JSON is copied as is,
// anything else is encoded as a JSON string
func OpaqueJSON(data []byte) json.RawMessage {
	if len(data) == 0 {
		return json.RawMessage("null")
	}
	if json.Valid(data) {
		return cloneRaw(data)
	}
	encoded, err := json.Marshal(string(data))
	if err != nil {
		return json.RawMessage("null")
	}
	return encoded
}

func cloneRaw(data []byte) json.RawMessage {
	if data == nil {
		return nil
	}
	out := make(json.RawMessage, len(data))
	copy(out, data)
	return out
}
