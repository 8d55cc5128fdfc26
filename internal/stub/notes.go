// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package stub

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-notes-api-tests/internal/app"
	"github.com/MKhiriev/go-notes-api-tests/internal/validators"
	"github.com/MKhiriev/go-notes-api-tests/models"
)

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := session(r)

	body, err := bindFields(r)
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	input := models.NoteInput{
		Title:       body[validators.FieldTitle],
		Description: body[validators.FieldDescription],
		Category:    body[validators.FieldCategory],
	}
	if err = h.noteValidator.Validate(ctx, input); err != nil {
		writeFailure(w, r, err)
		return
	}

	note, err := h.storages.NoteRepository.CreateNote(ctx, models.Note{
		UserID:      userID,
		Title:       input.Title,
		Description: input.Description,
		Category:    models.Category(input.Category),
	})
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	writeSuccess(w, r, http.StatusOK, app.MsgNoteCreated, note)
}

func (h *Handler) notes(w http.ResponseWriter, r *http.Request) {
	userID, _ := session(r)

	notes, err := h.storages.NoteRepository.ListNotes(r.Context(), userID)
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	writeSuccess(w, r, http.StatusOK, app.MsgNotesRetrieved, notes)
}

func (h *Handler) note(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := session(r)

	id := chi.URLParam(r, "id")
	if err := h.noteValidator.Validate(ctx, id); err != nil {
		writeFailure(w, r, err)
		return
	}

	note, err := h.storages.NoteRepository.FindNote(ctx, userID, id)
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	writeSuccess(w, r, http.StatusOK, app.MsgNoteRetrieved, note)
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := session(r)

	body, err := bindFields(r)
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	change := validators.NoteChange{
		ID:          chi.URLParam(r, "id"),
		Title:       body.ptr(validators.FieldTitle),
		Description: body.ptr(validators.FieldDescription),
		Completed:   body.ptr(validators.FieldCompleted),
		Category:    body.ptr(validators.FieldCategory),
	}
	if err = h.noteValidator.Validate(ctx, change); err != nil {
		writeFailure(w, r, err)
		return
	}
	completed, _ := change.ParseCompleted()

	note, err := h.storages.NoteRepository.UpdateNote(ctx, models.Note{
		ID:          change.ID,
		UserID:      userID,
		Title:       *change.Title,
		Description: *change.Description,
		Category:    models.Category(*change.Category),
		Completed:   completed,
	})
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	writeSuccess(w, r, http.StatusOK, app.MsgNoteUpdated, note)
}

func (h *Handler) setNoteCompleted(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := session(r)

	body, err := bindFields(r)
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	change := validators.NoteChange{
		ID:        chi.URLParam(r, "id"),
		Completed: body.ptr(validators.FieldCompleted),
	}
	if err = h.noteValidator.Validate(ctx, change, validators.FieldID, validators.FieldCompleted); err != nil {
		writeFailure(w, r, err)
		return
	}
	completed, _ := change.ParseCompleted()

	note, err := h.storages.NoteRepository.SetCompleted(ctx, userID, change.ID, completed)
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	writeSuccess(w, r, http.StatusOK, app.MsgNoteUpdated, note)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := session(r)

	id := chi.URLParam(r, "id")
	if err := h.noteValidator.Validate(ctx, id); err != nil {
		writeFailure(w, r, err)
		return
	}

	if err := h.storages.NoteRepository.DeleteNote(ctx, userID, id); err != nil {
		writeFailure(w, r, err)
		return
	}

	writeSuccess(w, r, http.StatusOK, app.MsgNoteDeleted, nil)
}
