package service

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-notes-api-tests/internal/config"
	"github.com/MKhiriev/go-notes-api-tests/internal/logger"
	"github.com/MKhiriev/go-notes-api-tests/internal/restclient"
	"github.com/MKhiriev/go-notes-api-tests/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToken = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

// recorded is one request seen by the fake API.
type recorded struct {
	Method      string
	Path        string
	Token       string
	HasToken    bool
	ContentType string
	Body        string
}

// fakeAPI answers every request with the envelope configured for its
// "METHOD path" key and records what it received.
type fakeAPI struct {
	mu        sync.Mutex
	requests  []recorded
	responses map[string]fakeResponse
}

type fakeResponse struct {
	status  int
	message string
	data    any
}

func newFakeAPI(t *testing.T) (*fakeAPI, *httptest.Server) {
	t.Helper()
	api := &fakeAPI{responses: make(map[string]fakeResponse)}
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)
	return api, srv
}

func (f *fakeAPI) on(method, path string, status int, message string, data any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[method+" "+path] = fakeResponse{status: status, message: message, data: data}
}

func (f *fakeAPI) last() recorded {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests[len(f.requests)-1]
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	_, hasToken := r.Header["X-Auth-Token"]

	f.mu.Lock()
	f.requests = append(f.requests, recorded{
		Method:      r.Method,
		Path:        r.URL.Path,
		Token:       r.Header.Get(AuthTokenHeader),
		HasToken:    hasToken,
		ContentType: r.Header.Get("Content-Type"),
		Body:        string(body),
	})
	resp, ok := f.responses[r.Method+" "+r.URL.Path]
	f.mu.Unlock()

	if !ok {
		resp = fakeResponse{status: http.StatusNotFound, message: "route not configured"}
	}

	envelope := map[string]any{
		"success": resp.status < 300,
		"status":  resp.status,
		"message": resp.message,
	}
	if resp.data != nil {
		envelope["data"] = resp.data
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.status)
	_ = json.NewEncoder(w).Encode(envelope)
}

func newTestService(t *testing.T, srv *httptest.Server) *notesService {
	t.Helper()
	svc, err := NewNotesService(config.API{BaseURL: srv.URL + "/notes/api", RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return svc.(*notesService)
}

func formValues(t *testing.T, body string) url.Values {
	t.Helper()
	values, err := url.ParseQuery(body)
	require.NoError(t, err)
	return values
}

// ── construction ────────────────────────────────────────────────────────────

func TestNewNotesService_InvalidBaseURL(t *testing.T) {
	_, err := NewNotesService(config.API{BaseURL: ""}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, restclient.ErrInvalidBaseURL)
}

func TestToken_SetAndTrim(t *testing.T) {
	_, srv := newFakeAPI(t)
	svc := newTestService(t, srv)

	assert.Empty(t, svc.Token())
	svc.SetToken("  " + testToken + "\n")
	assert.Equal(t, testToken, svc.Token())
}

// ── users ───────────────────────────────────────────────────────────────────

func TestHealthCheck(t *testing.T) {
	api, srv := newFakeAPI(t)
	api.on(http.MethodGet, "/notes/api/health-check", http.StatusOK, "Notes API is Running", nil)
	svc := newTestService(t, srv)

	resp, err := svc.HealthCheck(context.Background())

	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, http.StatusOK, resp.Status)
	assert.Equal(t, "Notes API is Running", resp.Message)
	assert.False(t, api.last().HasToken)
}

func TestRegister_FormBodyAndCreated(t *testing.T) {
	api, srv := newFakeAPI(t)
	api.on(http.MethodPost, "/notes/api/users/register", http.StatusCreated, "User account created successfully",
		map[string]string{"id": "64f1c2a9b3e4d5f6a7b8c9d0", "name": "test_rest_api", "email": "a@b.io"})
	svc := newTestService(t, srv)

	resp, err := svc.Register(context.Background(), models.RegisterRequest{Name: "test_rest_api", Email: "a@b.io", Password: "secret1"})

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.Status)
	assert.Equal(t, "test_rest_api", resp.Data.Name)

	req := api.last()
	assert.Contains(t, req.ContentType, "application/x-www-form-urlencoded")
	values := formValues(t, req.Body)
	assert.Equal(t, "test_rest_api", values.Get("name"))
	assert.Equal(t, "a@b.io", values.Get("email"))
	assert.Equal(t, "secret1", values.Get("password"))
}

func TestRegister_ConflictIsReported(t *testing.T) {
	api, srv := newFakeAPI(t)
	api.on(http.MethodPost, "/notes/api/users/register", http.StatusConflict, "An account already exists with the same email address", nil)
	svc := newTestService(t, srv)

	resp, err := svc.Register(context.Background(), models.RegisterRequest{Name: "test_rest_api", Email: "a@b.io", Password: "secret1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, restclient.ErrConflict)
	assert.Equal(t, "An account already exists with the same email address", resp.Message)

	resp, err = svc.Register(context.Background(), models.RegisterRequest{Name: "test_rest_api", Email: "a@b.io", Password: "secret1"},
		restclient.Expect(http.StatusConflict))
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.Status)
	assert.False(t, resp.Success)
}

func TestLogin_StoresTokenOn200(t *testing.T) {
	api, srv := newFakeAPI(t)
	api.on(http.MethodPost, "/notes/api/users/login", http.StatusOK, "Login successful",
		map[string]string{"id": "64f1c2a9b3e4d5f6a7b8c9d0", "name": "test_rest_api", "email": "a@b.io", "token": testToken})
	api.on(http.MethodGet, "/notes/api/users/profile", http.StatusOK, "Profile successful",
		map[string]string{"id": "64f1c2a9b3e4d5f6a7b8c9d0", "name": "test_rest_api", "email": "a@b.io"})
	svc := newTestService(t, srv)

	resp, err := svc.Login(context.Background(), models.Credentials{Email: "a@b.io", Password: "secret1"})

	require.NoError(t, err)
	assert.Equal(t, testToken, resp.Data.Token)
	assert.Equal(t, testToken, svc.Token())

	req := api.last()
	assert.Equal(t, "application/json", req.ContentType)
	assert.JSONEq(t, `{"email":"a@b.io","password":"secret1"}`, req.Body)

	_, err = svc.Profile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testToken, api.last().Token)
}

func TestLogin_UnauthorizedKeepsToken(t *testing.T) {
	api, srv := newFakeAPI(t)
	api.on(http.MethodPost, "/notes/api/users/login", http.StatusUnauthorized, "Incorrect email address or password", nil)
	svc := newTestService(t, srv)
	svc.SetToken("previous")

	resp, err := svc.Login(context.Background(), models.Credentials{Email: "bad", Password: "secret1"},
		restclient.Expect(http.StatusUnauthorized))

	require.NoError(t, err)
	assert.Equal(t, "Incorrect email address or password", resp.Message)
	assert.Equal(t, "previous", svc.Token())
}

func TestLogin_ExpectMismatchOn200StillStoresToken(t *testing.T) {
	api, srv := newFakeAPI(t)
	api.on(http.MethodPost, "/notes/api/users/login", http.StatusOK, "Login successful",
		map[string]string{"token": testToken})
	svc := newTestService(t, srv)

	_, err := svc.Login(context.Background(), models.Credentials{Email: "a@b.io", Password: "secret1"},
		restclient.Expect(http.StatusUnauthorized))

	assert.ErrorIs(t, err, restclient.ErrUnexpectedStatus)
	assert.Equal(t, testToken, svc.Token())
}

func TestUpdateProfile_FormBody(t *testing.T) {
	api, srv := newFakeAPI(t)
	api.on(http.MethodPatch, "/notes/api/users/profile", http.StatusOK, "Profile updated successful",
		map[string]string{"name": "test_rest_api", "phone": "12345678", "company": "Acme"})
	svc := newTestService(t, srv)
	svc.SetToken(testToken)

	resp, err := svc.UpdateProfile(context.Background(), models.ProfileUpdate{Name: "test_rest_api", Phone: "12345678", Company: "Acme"})

	require.NoError(t, err)
	assert.Equal(t, "Acme", resp.Data.Company)
	values := formValues(t, api.last().Body)
	assert.Equal(t, "12345678", values.Get("phone"))
	assert.Equal(t, "Acme", values.Get("company"))
	assert.Equal(t, testToken, api.last().Token)
}

func TestPasswordEndpoints_Bodies(t *testing.T) {
	api, srv := newFakeAPI(t)
	api.on(http.MethodPost, "/notes/api/users/forgot-password", http.StatusOK, "sent", nil)
	api.on(http.MethodPost, "/notes/api/users/verify-reset-password-token", http.StatusOK, "valid", nil)
	api.on(http.MethodPost, "/notes/api/users/reset-password", http.StatusOK, "updated", nil)
	api.on(http.MethodPost, "/notes/api/users/change-password", http.StatusOK, "updated", nil)
	svc := newTestService(t, srv)
	ctx := context.Background()

	_, err := svc.ForgotPassword(ctx, "a@b.io")
	require.NoError(t, err)
	assert.JSONEq(t, `{"email":"a@b.io"}`, api.last().Body)

	_, err = svc.VerifyResetPasswordToken(ctx, testToken)
	require.NoError(t, err)
	assert.JSONEq(t, `{"token":"`+testToken+`"}`, api.last().Body)

	_, err = svc.ResetPassword(ctx, testToken, "secret2")
	require.NoError(t, err)
	assert.JSONEq(t, `{"token":"`+testToken+`","newPassword":"secret2"}`, api.last().Body)

	_, err = svc.ChangePassword(ctx, "secret1", "secret2")
	require.NoError(t, err)
	values := formValues(t, api.last().Body)
	assert.Equal(t, "secret1", values.Get("currentPassword"))
	assert.Equal(t, "secret2", values.Get("newPassword"))
}

func TestLogoutAndDeleteAccount_ClearTokenOn200(t *testing.T) {
	api, srv := newFakeAPI(t)
	api.on(http.MethodDelete, "/notes/api/users/logout", http.StatusOK, "User has been successfully logged out", nil)
	api.on(http.MethodDelete, "/notes/api/users/delete-account", http.StatusUnauthorized, "Access token is not valid or has expired, you will need to login", nil)
	svc := newTestService(t, srv)
	ctx := context.Background()

	svc.SetToken(testToken)
	_, err := svc.DeleteAccount(ctx, restclient.Expect(http.StatusUnauthorized))
	require.NoError(t, err)
	assert.Equal(t, testToken, svc.Token())

	resp, err := svc.Logout(ctx)
	require.NoError(t, err)
	assert.Equal(t, "User has been successfully logged out", resp.Message)
	assert.Empty(t, svc.Token())

	api.on(http.MethodDelete, "/notes/api/users/delete-account", http.StatusOK, "Account successfully deleted", nil)
	svc.SetToken(testToken)
	_, err = svc.DeleteAccount(ctx)
	require.NoError(t, err)
	assert.Empty(t, svc.Token())
}

// ── notes ───────────────────────────────────────────────────────────────────

func TestCreateNote_FormBody(t *testing.T) {
	api, srv := newFakeAPI(t)
	api.on(http.MethodPost, "/notes/api/notes", http.StatusOK, "Note successfully created", map[string]any{
		"id": "64f1c2a9b3e4d5f6a7b8c9d0", "title": "Test Title", "description": "Test Description",
		"category": "Home", "completed": false, "created_at": "2026-10-14T10:00:00.000Z",
		"updated_at": "2026-10-14T10:00:00.000Z", "user_id": "64f1c2a9b3e4d5f6a7b8c9d1",
	})
	svc := newTestService(t, srv)

	resp, err := svc.CreateNote(context.Background(), models.NoteInput{Title: "Test Title", Description: "Test Description", Category: "Home"})

	require.NoError(t, err)
	assert.Equal(t, models.CategoryHome, resp.Data.Category)
	assert.Equal(t, "64f1c2a9b3e4d5f6a7b8c9d1", resp.Data.UserID)
	assert.False(t, resp.Data.CreatedAt.IsZero())

	values := formValues(t, api.last().Body)
	assert.Equal(t, "Test Title", values.Get("title"))
	assert.Equal(t, "Test Description", values.Get("description"))
	assert.Equal(t, "Home", values.Get("category"))
}

func TestNotes_DecodesList(t *testing.T) {
	api, srv := newFakeAPI(t)
	api.on(http.MethodGet, "/notes/api/notes", http.StatusOK, "Notes successfully retrieved", []map[string]any{
		{"id": "a", "title": "one", "category": "Work"},
		{"id": "b", "title": "two", "category": "Personal"},
	})
	svc := newTestService(t, srv)

	resp, err := svc.Notes(context.Background())

	require.NoError(t, err)
	require.Len(t, resp.Data, 2)
	assert.Equal(t, models.CategoryPersonal, resp.Data[1].Category)
}

func TestNoteEndpoints_PathsAndBodies(t *testing.T) {
	const id = "64f1c2a9b3e4d5f6a7b8c9d0"
	api, srv := newFakeAPI(t)
	api.on(http.MethodGet, "/notes/api/notes/"+id, http.StatusOK, "Note successfully retrieved", map[string]any{"id": id})
	api.on(http.MethodPut, "/notes/api/notes/"+id, http.StatusOK, "Note successfully Updated", map[string]any{"id": id, "completed": true})
	api.on(http.MethodPatch, "/notes/api/notes/"+id, http.StatusOK, "Note successfully Updated", map[string]any{"id": id, "completed": true})
	api.on(http.MethodDelete, "/notes/api/notes/"+id, http.StatusOK, "Note successfully deleted", nil)
	svc := newTestService(t, srv)
	ctx := context.Background()

	got, err := svc.Note(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, got.Data.ID)

	updated, err := svc.UpdateNote(ctx, id, models.NoteUpdate{Title: "Test Title", Description: "Test Description", Completed: true, Category: "Home"})
	require.NoError(t, err)
	assert.True(t, updated.Data.Completed)
	assert.JSONEq(t, `{"title":"Test Title","description":"Test Description","completed":true,"category":"Home"}`, api.last().Body)

	_, err = svc.SetNoteCompleted(ctx, id, false)
	require.NoError(t, err)
	assert.JSONEq(t, `{"completed":false}`, api.last().Body)

	deleted, err := svc.DeleteNote(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Note successfully deleted", deleted.Message)
	assert.Empty(t, deleted.Data)
}

func TestNote_NotFound(t *testing.T) {
	api, srv := newFakeAPI(t)
	api.on(http.MethodGet, "/notes/api/notes/64f1c2a9b3e4d5f6a7b8c9d0", http.StatusNotFound,
		"No note was found with the provided ID, Maybe it was deleted", nil)
	svc := newTestService(t, srv)

	resp, err := svc.Note(context.Background(), "64f1c2a9b3e4d5f6a7b8c9d0")

	assert.ErrorIs(t, err, restclient.ErrNotFound)
	assert.Equal(t, http.StatusNotFound, resp.Status)
	assert.Empty(t, resp.Data.ID)
}

func TestCall_TransportError(t *testing.T) {
	_, srv := newFakeAPI(t)
	svc := newTestService(t, srv)
	srv.Close()

	resp, err := svc.HealthCheck(context.Background())

	require.Error(t, err)
	assert.Zero(t, resp.Status)
}

func TestCall_DataDecodeError(t *testing.T) {
	api, srv := newFakeAPI(t)
	api.on(http.MethodGet, "/notes/api/notes", http.StatusOK, "Notes successfully retrieved", map[string]any{"not": "a list"})
	svc := newTestService(t, srv)

	resp, err := svc.Notes(context.Background())

	assert.ErrorIs(t, err, restclient.ErrDecodeResponse)
	assert.Equal(t, "Notes successfully retrieved", resp.Message)
}
