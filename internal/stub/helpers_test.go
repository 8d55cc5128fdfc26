package stub

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-notes-api-tests/internal/logger"
	"github.com/MKhiriev/go-notes-api-tests/internal/store"
	"github.com/MKhiriev/go-notes-api-tests/models"
)

const (
	testName     = "test_rest_api"
	testEmail    = "stub.user@example.com"
	testPassword = "secret-password"
)

type testAPI struct {
	t       *testing.T
	server  *httptest.Server
	handler *Handler
	mailbox *Mailbox
}

type testResponse struct {
	status  int
	header  http.Header
	success bool
	message string
	data    json.RawMessage
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	storages, err := store.NewStorages(context.Background(), ":memory:", logger.Nop())
	require.NoError(t, err)

	mailbox := NewMailbox()
	h := NewHandler(storages, mailbox, logger.Nop())
	h.hashCost = bcrypt.MinCost

	server := httptest.NewServer(h.Init())
	t.Cleanup(func() {
		server.Close()
		_ = storages.Close()
	})

	return &testAPI{t: t, server: server, handler: h, mailbox: mailbox}
}

// do sends body as JSON when it is a map[string]any, as a form when it is
// url.Values, and without a body when nil.
func (a *testAPI) do(method, path, token string, body any) testResponse {
	a.t.Helper()

	var (
		reader      io.Reader
		contentType string
	)
	switch b := body.(type) {
	case map[string]any:
		raw, err := json.Marshal(b)
		require.NoError(a.t, err)
		reader, contentType = bytes.NewReader(raw), "application/json"
	case url.Values:
		reader, contentType = strings.NewReader(b.Encode()), "application/x-www-form-urlencoded"
	}

	req, err := http.NewRequest(method, a.server.URL+BasePath+"/"+path, reader)
	require.NoError(a.t, err)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set(AuthTokenHeader, token)
	}

	resp, err := a.server.Client().Do(req)
	require.NoError(a.t, err)
	defer resp.Body.Close()

	var env struct {
		Success bool            `json:"success"`
		Status  int             `json:"status"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(a.t, json.NewDecoder(resp.Body).Decode(&env))
	require.Equal(a.t, resp.StatusCode, env.Status, "envelope status mirrors HTTP status")

	return testResponse{
		status:  resp.StatusCode,
		header:  resp.Header,
		success: env.Success,
		message: env.Message,
		data:    env.Data,
	}
}

func (a *testAPI) seed() models.User {
	a.t.Helper()
	user, err := a.handler.createAccount(context.Background(), models.RegisterRequest{
		Name: testName, Email: testEmail, Password: testPassword,
	})
	require.NoError(a.t, err)
	return user
}

func (a *testAPI) login(email, password string) string {
	a.t.Helper()
	resp := a.do(http.MethodPost, "users/login", "", map[string]any{"email": email, "password": password})
	require.Equal(a.t, http.StatusOK, resp.status, resp.message)

	var session models.Session
	decodeData(a.t, resp, &session)
	require.NotEmpty(a.t, session.Token)
	return session.Token
}

func (a *testAPI) createNote(token string, category models.Category) models.Note {
	a.t.Helper()
	resp := a.do(http.MethodPost, "notes", token, url.Values{
		"title":       {"Test Title"},
		"description": {"Test Description"},
		"category":    {string(category)},
	})
	require.Equal(a.t, http.StatusOK, resp.status, resp.message)

	var note models.Note
	decodeData(a.t, resp, &note)
	return note
}

func decodeData(t *testing.T, resp testResponse, v any) {
	t.Helper()
	require.NotEmpty(t, resp.data, "response has no data")
	require.NoError(t, json.Unmarshal(resp.data, v))
}
