package restclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-notes-api-tests/internal/logger"
	"github.com/go-resty/resty/v2"
)

// HeaderFunc returns headers added to every request. It is called once per
// request so values such as an auth token can change between calls.
type HeaderFunc func() map[string]string

// Config configures a [Client].
type Config struct {
	// BaseURL is the API root; request paths are relative to it.
	BaseURL string
	// Timeout bounds each request. Zero means no timeout.
	Timeout time.Duration
	// Headers supplies default headers; may be nil.
	Headers HeaderFunc
}

// Client sends requests relative to a base URL.
type Client struct {
	http    *resty.Client
	baseURL string
	headers HeaderFunc
	logger  *logger.Logger
}

// New returns a client for cfg.BaseURL. The URL is normalised first; an
// empty or host-less URL is rejected with [ErrInvalidBaseURL].
func New(cfg Config, log *logger.Logger) (*Client, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, err
	}

	if log == nil {
		log = logger.Nop()
	}

	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout)

	return &Client{
		http:    httpClient,
		baseURL: baseURL,
		headers: cfg.Headers,
		logger:  log,
	}, nil
}

// BaseURL returns the normalised base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) Get(ctx context.Context, path string, opts ...Option) (*Result, error) {
	return c.Do(ctx, http.MethodGet, path, opts...)
}

func (c *Client) Post(ctx context.Context, path string, opts ...Option) (*Result, error) {
	return c.Do(ctx, http.MethodPost, path, opts...)
}

func (c *Client) Put(ctx context.Context, path string, opts ...Option) (*Result, error) {
	return c.Do(ctx, http.MethodPut, path, opts...)
}

func (c *Client) Patch(ctx context.Context, path string, opts ...Option) (*Result, error) {
	return c.Do(ctx, http.MethodPatch, path, opts...)
}

func (c *Client) Delete(ctx context.Context, path string, opts ...Option) (*Result, error) {
	return c.Do(ctx, http.MethodDelete, path, opts...)
}

// Do sends one request and checks its status.
//
// On a transport failure the returned Result is nil. On a status outside
// the expected set the Result is returned together with a
// [*StatusMismatchError]. When the status matches but the body is not an
// envelope, the error wraps [ErrDecodeResponse].
func (c *Client) Do(ctx context.Context, method, path string, opts ...Option) (*Result, error) {
	req := newRequest(opts)
	r := c.http.R().SetContext(ctx)

	headers := make(map[string]string)
	if c.headers != nil {
		for k, v := range c.headers() {
			headers[http.CanonicalHeaderKey(k)] = v
		}
	}
	for k, v := range req.headers {
		headers[k] = v
	}
	for k, v := range headers {
		if v != "" {
			r.SetHeader(k, v)
		}
	}

	switch {
	case req.json != nil:
		r.SetHeader("Content-Type", "application/json").SetBody(req.json)
	case req.form != nil:
		r.SetFormData(req.form)
	}

	start := time.Now()
	resp, err := r.Execute(method, path)
	if err != nil {
		c.logger.Debug().Err(err).Str("method", method).Str("path", path).Msg("request failed")
		return nil, fmt.Errorf("%s %s: request: %w", method, path, err)
	}

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode()).
		Dur("duration", time.Since(start)).
		Msg("request completed")

	result := &Result{
		StatusCode: resp.StatusCode(),
		Header:     resp.Header(),
		Body:       resp.Body(),
	}
	decodeErr := json.Unmarshal(result.Body, &result.Envelope)

	if !req.expects(result.StatusCode) {
		message := result.Envelope.Message
		if decodeErr != nil {
			message = string(bytes.TrimSpace(result.Body))
		}
		return result, &StatusMismatchError{
			Method:   method,
			Path:     path,
			Expected: req.expected,
			Actual:   result.StatusCode,
			Message:  message,
		}
	}

	if decodeErr != nil {
		return result, fmt.Errorf("%s %s: %w: %w", method, path, ErrDecodeResponse, decodeErr)
	}

	return result, nil
}
