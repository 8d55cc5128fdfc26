package restclient

import (
	"net/http"
	"slices"
)

// Option configures a single request.
type Option func(*request)

type request struct {
	expected []int
	json     any
	form     map[string]string
	headers  map[string]string
}

func newRequest(opts []Option) *request {
	r := &request{
		expected: []int{http.StatusOK},
		headers:  make(map[string]string),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *request) expects(status int) bool {
	return slices.Contains(r.expected, status)
}

// JSON sends body encoded as application/json. It replaces any Form option.
func JSON(body any) Option {
	return func(r *request) {
		r.json = body
		r.form = nil
	}
}

// Form sends fields as application/x-www-form-urlencoded. Fields with empty
// values are not sent. It replaces any JSON option.
func Form(fields map[string]string) Option {
	return func(r *request) {
		form := make(map[string]string, len(fields))
		for k, v := range fields {
			if v != "" {
				form[k] = v
			}
		}
		r.form = form
		r.json = nil
	}
}

// Header sets a request header. An empty value suppresses the header even
// when the client's default headers provide one.
func Header(key, value string) Option {
	return func(r *request) {
		r.headers[http.CanonicalHeaderKey(key)] = value
	}
}

// Expect replaces the accepted status codes. The default is 200.
func Expect(codes ...int) Option {
	return func(r *request) {
		if len(codes) == 0 {
			return
		}
		r.expected = slices.Clone(codes)
	}
}
