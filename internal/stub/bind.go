package stub

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-notes-api-tests/internal/utils"
)

const maxBodySize = 1 << 20

// fields holds the scalar body parameters of a request as strings,
// regardless of whether they arrived as JSON or as a form.
type fields map[string]string

// bindFields reads the request body. JSON objects are flattened to strings
// (true -> "true", 12 -> "12"); objects, arrays and nulls are dropped.
// Every other content type goes through [http.Request.ParseForm].
func bindFields(r *http.Request) (fields, error) {
	r.Body = http.MaxBytesReader(nil, r.Body, maxBodySize)

	if !utils.IsJSONRequest(r) {
		if err := r.ParseForm(); err != nil {
			return nil, errors.Join(ErrInvalidRequestBody, err)
		}
		out := make(fields, len(r.PostForm))
		for key := range r.PostForm {
			out[key] = r.PostForm.Get(key)
		}
		return out, nil
	}

	var raw map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Join(ErrInvalidRequestBody, err)
	}

	out := make(fields, len(raw))
	for key, value := range raw {
		var v any
		if err := json.Unmarshal(value, &v); err != nil {
			return nil, errors.Join(ErrInvalidRequestBody, err)
		}
		switch typed := v.(type) {
		case string:
			out[key] = typed
		case bool:
			out[key] = strconv.FormatBool(typed)
		case float64:
			out[key] = string(value)
		}
	}
	return out, nil
}

// ptr returns a pointer to the value of key, or nil when it was not sent.
func (f fields) ptr(key string) *string {
	v, ok := f[key]
	if !ok {
		return nil
	}
	return &v
}
