// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/go-notes-api-tests/internal/config"
	"github.com/MKhiriev/go-notes-api-tests/internal/logger"
	"github.com/MKhiriev/go-notes-api-tests/internal/restclient"
	"github.com/MKhiriev/go-notes-api-tests/models"
)

// AuthTokenHeader carries the session token on authenticated requests.
const AuthTokenHeader = "x-auth-token"

type notesService struct {
	client *restclient.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewNotesService constructs a [NotesService] talking to apiCfg.BaseURL with
// apiCfg.RequestTimeout per request. The returned service holds no token.
func NewNotesService(apiCfg config.API, log *logger.Logger) (NotesService, error) {
	if log == nil {
		log = logger.Nop()
	}

	s := &notesService{logger: log}

	client, err := restclient.New(restclient.Config{
		BaseURL: apiCfg.BaseURL,
		Timeout: apiCfg.RequestTimeout,
		Headers: s.headers,
	}, log)
	if err != nil {
		return nil, fmt.Errorf("invalid api base url: %w", err)
	}

	s.client = client
	return s, nil
}

func (s *notesService) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *notesService) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = strings.TrimSpace(token)
}

func (s *notesService) headers() map[string]string {
	return map[string]string{AuthTokenHeader: s.Token()}
}

// call sends the request with defaults followed by the caller's options and
// decodes whatever envelope came back.
func call[T any](ctx context.Context, c *restclient.Client, method, path string, defaults []restclient.Option, opts []restclient.Option) (models.Response[T], *restclient.Result, error) {
	all := make([]restclient.Option, 0, len(defaults)+len(opts))
	all = append(all, defaults...)
	all = append(all, opts...)

	result, err := c.Do(ctx, method, path, all...)
	if result == nil {
		return models.Response[T]{}, nil, err
	}

	resp, decodeErr := decode[T](result)
	if err == nil && decodeErr != nil {
		err = fmt.Errorf("%s %s: %w: %w", method, path, restclient.ErrDecodeResponse, decodeErr)
	}

	return resp, result, err
}

func decode[T any](result *restclient.Result) (models.Response[T], error) {
	resp := models.Response[T]{
		Success: result.Envelope.Success,
		Status:  result.Envelope.Status,
		Message: result.Envelope.Message,
	}

	if err := result.DecodeData(&resp.Data); err != nil {
		return resp, err
	}

	return resp, nil
}
