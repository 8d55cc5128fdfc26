package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/MKhiriev/go-notes-api-tests/internal/restclient"
	"github.com/MKhiriev/go-notes-api-tests/models"
)

func notePath(id string) string {
	return "notes/" + url.PathEscape(id)
}

func (s *notesService) CreateNote(ctx context.Context, note models.NoteInput, opts ...restclient.Option) (models.Response[models.Note], error) {
	s.logger.Info().Msgf("Creating note %q in category %s", note.Title, note.Category)

	defaults := []restclient.Option{
		restclient.Form(map[string]string{
			"title":       note.Title,
			"description": note.Description,
			"category":    note.Category,
		}),
	}

	resp, _, err := call[models.Note](ctx, s.client, http.MethodPost, "notes", defaults, opts)
	return resp, err
}

func (s *notesService) Notes(ctx context.Context, opts ...restclient.Option) (models.Response[[]models.Note], error) {
	s.logger.Info().Msg("Getting all notes")

	resp, _, err := call[[]models.Note](ctx, s.client, http.MethodGet, "notes", nil, opts)
	return resp, err
}

func (s *notesService) Note(ctx context.Context, id string, opts ...restclient.Option) (models.Response[models.Note], error) {
	s.logger.Info().Msgf("Getting note %s", id)

	resp, _, err := call[models.Note](ctx, s.client, http.MethodGet, notePath(id), nil, opts)
	return resp, err
}

func (s *notesService) UpdateNote(ctx context.Context, id string, update models.NoteUpdate, opts ...restclient.Option) (models.Response[models.Note], error) {
	s.logger.Info().Msgf("Updating note %s", id)

	defaults := []restclient.Option{restclient.JSON(update)}

	resp, _, err := call[models.Note](ctx, s.client, http.MethodPut, notePath(id), defaults, opts)
	return resp, err
}

func (s *notesService) SetNoteCompleted(ctx context.Context, id string, completed bool, opts ...restclient.Option) (models.Response[models.Note], error) {
	s.logger.Info().Msgf("Setting note %s completed=%t", id, completed)

	defaults := []restclient.Option{restclient.JSON(map[string]bool{"completed": completed})}

	resp, _, err := call[models.Note](ctx, s.client, http.MethodPatch, notePath(id), defaults, opts)
	return resp, err
}

func (s *notesService) DeleteNote(ctx context.Context, id string, opts ...restclient.Option) (models.MessageResponse, error) {
	s.logger.Info().Msgf("Deleting note %s", id)

	resp, _, err := call[json.RawMessage](ctx, s.client, http.MethodDelete, notePath(id), nil, opts)
	return resp, err
}
