package restclient

import (
	"encoding/json"
	"net/http"
)

// Envelope is the JSON body every Notes API response carries.
type Envelope struct {
	Success bool            `json:"success"`
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// Result is a received response.
type Result struct {
	StatusCode int
	Header     http.Header
	Body       []byte
	Envelope   Envelope
}

// HasData reports whether the envelope carried a non-null data member.
func (r *Result) HasData() bool {
	return len(r.Envelope.Data) > 0 && string(r.Envelope.Data) != "null"
}

// DecodeData unmarshals the envelope data member into v. A missing or null
// data member leaves v untouched.
func (r *Result) DecodeData(v any) error {
	if !r.HasData() {
		return nil
	}
	return json.Unmarshal(r.Envelope.Data, v)
}
