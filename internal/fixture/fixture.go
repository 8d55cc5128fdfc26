// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package fixture builds the NotesService values the e2e tests start from.
//
// Every helper takes a testing.TB and fails the test when the service cannot
// be prepared, so test bodies only contain the call under test.
package fixture

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-notes-api-tests/internal/config"
	"github.com/MKhiriev/go-notes-api-tests/internal/logger"
	"github.com/MKhiriev/go-notes-api-tests/internal/restclient"
	"github.com/MKhiriev/go-notes-api-tests/internal/service"
	"github.com/MKhiriev/go-notes-api-tests/internal/stub"
	"github.com/MKhiriev/go-notes-api-tests/internal/utils"
	"github.com/MKhiriev/go-notes-api-tests/models"
)

const (
	// UserName is the display name of every account the suite registers.
	UserName = stub.SeedName

	// Prepared note values.
	NoteTitle       = "Test Title"
	NoteDescription = "Test Description"
	NoteCategory    = models.CategoryHome

	throwawayPrefix = "notes-api-"
	throwawayDomain = "example.com"
)

// Fixtures hands out services configured from one [config.SuiteConfig].
type Fixtures struct {
	cfg    config.SuiteConfig
	logger *logger.Logger
}

func New(cfg config.SuiteConfig, log *logger.Logger) *Fixtures {
	if log == nil {
		log = logger.Nop()
	}
	return &Fixtures{cfg: cfg, logger: log}
}

// Credentials returns the configured test account parameters.
func (f *Fixtures) Credentials() config.Credentials {
	return f.cfg.Credentials
}

// NotesService returns a fresh service without a token.
func (f *Fixtures) NotesService(t testing.TB) service.NotesService {
	t.Helper()

	svc, err := service.NewNotesService(f.cfg.API, f.logger)
	require.NoError(t, err, "creating notes service")
	return svc
}

// AuthenticatedNotesService returns a fresh service logged in as EMAIL.
func (f *Fixtures) AuthenticatedNotesService(t testing.TB) service.NotesService {
	t.Helper()

	svc := f.NotesService(t)
	f.login(t, svc, f.cfg.Credentials.Email)
	return svc
}

// PreparedToken logs in as EMAIL on a service of its own and returns the
// token.
func (f *Fixtures) PreparedToken(t testing.TB) string {
	t.Helper()
	f.logger.Info().Msg("Prepare token for tests")

	token := f.login(t, f.NotesService(t), f.cfg.Credentials.Email)

	f.logger.Info().Msg("Token prepared")
	return token
}

// PreparedUser registers a new account with NEW_EMAIL, or a unique
// throwaway address when NEW_EMAIL is empty, logs it in and returns the
// service. The account is deleted on cleanup unless the test already did.
func (f *Fixtures) PreparedUser(t testing.TB) service.NotesService {
	t.Helper()
	f.logger.Info().Msg("Prepare user for tests")

	email := f.cfg.Credentials.NewEmail
	if email == "" {
		email = utils.UniqueEmail(throwawayPrefix, throwawayDomain)
	}

	svc := f.NotesService(t)
	_, err := svc.Register(t.Context(), models.RegisterRequest{
		Name:     UserName,
		Email:    email,
		Password: f.cfg.Credentials.Password,
	})
	require.NoError(t, err, "registering %s", email)
	f.login(t, svc, email)

	t.Cleanup(func() {
		if svc.Token() == "" {
			return
		}
		if _, err := svc.DeleteAccount(context.Background()); err != nil {
			t.Logf("deleting prepared user %s: %v", email, err)
		}
	})

	f.logger.Info().Msg("User prepared")
	return svc
}

// PreparedNote creates the standard note through svc and returns it. The
// note is deleted on cleanup; a note the test deleted itself is fine.
func (f *Fixtures) PreparedNote(t testing.TB, svc service.NotesService) models.Note {
	t.Helper()
	f.logger.Info().Msg("Preparing note for tests")

	resp, err := svc.CreateNote(t.Context(), models.NoteInput{
		Title:       NoteTitle,
		Description: NoteDescription,
		Category:    string(NoteCategory),
	}, restclient.Expect(http.StatusOK))
	require.NoError(t, err, "creating prepared note")
	require.NotEmpty(t, resp.Data.ID, "prepared note has no id")

	note := resp.Data
	t.Cleanup(func() {
		if _, err := svc.DeleteNote(context.Background(), note.ID, restclient.Expect(http.StatusOK, http.StatusNotFound)); err != nil {
			t.Logf("deleting prepared note %s: %v", note.ID, err)
		}
	})

	f.logger.Info().Str("id", note.ID).Msgf("Note prepared: %s", note.Title)
	return note
}

func (f *Fixtures) login(t testing.TB, svc service.NotesService, email string) string {
	t.Helper()

	resp, err := svc.Login(t.Context(), models.Credentials{
		Email:    email,
		Password: f.cfg.Credentials.Password,
	})
	require.NoError(t, err, "logging in as %s", email)
	require.NotEmpty(t, resp.Data.Token, "login returned no token")
	return resp.Data.Token
}
