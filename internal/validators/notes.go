package validators

import (
	"context"
	"strconv"

	"github.com/MKhiriev/go-notes-api-tests/internal/utils"
	"github.com/MKhiriev/go-notes-api-tests/models"
)

// Field names accepted by [NoteValidator.Validate] for a [NoteChange].
const (
	FieldID          = "id"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldCompleted   = "completed"
	FieldCategory    = "category"
)

// NoteChange is a note body exactly as received. Nil fields were absent
// from the request; Completed is kept as text so that non-boolean values
// can be rejected.
type NoteChange struct {
	ID          string
	Title       *string
	Description *string
	Completed   *string
	Category    *string
}

// ParseCompleted converts the completed value. It accepts what
// strconv.ParseBool accepts.
func (c NoteChange) ParseCompleted() (bool, error) {
	if c.Completed == nil {
		return false, ErrInvalidCompleted
	}
	completed, err := strconv.ParseBool(*c.Completed)
	if err != nil {
		return false, ErrInvalidCompleted
	}
	return completed, nil
}

type NoteValidator struct {
}

func NewNoteValidator() Validator {
	return &NoteValidator{}
}

// Validate checks a [models.NoteInput], a note id (string) or a
// [NoteChange]. For a NoteChange the listed fields are required and checked
// in the order id, title, description, completed, category regardless of
// the order they are passed in; no fields means all of them.
func (v *NoteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.NoteInput:
		return v.validateNoteInput(value)
	case *models.NoteInput:
		return v.validateNoteInput(*value)

	case NoteChange:
		return v.validateNoteChange(value, fields...)
	case *NoteChange:
		return v.validateNoteChange(*value, fields...)

	case string:
		return v.validateID(value)

	default:
		return ErrUnsupportedType
	}
}

func (v *NoteValidator) validateID(id string) error {
	if !utils.IsObjectID(id) {
		return ErrInvalidNoteID
	}
	return nil
}

func (v *NoteValidator) validateNoteInput(note models.NoteInput) error {
	if !lengthBetween(note.Title, minTitleLength, maxTitleLength) {
		return ErrInvalidTitle
	}
	if !lengthBetween(note.Description, minDescriptionLength, maxDescriptionLength) {
		return ErrInvalidDescription
	}
	if !models.Category(note.Category).Valid() {
		return ErrInvalidCategory
	}
	return nil
}

func (v *NoteValidator) validateNoteChange(change NoteChange, fields ...string) error {
	want := map[string]bool{}
	for _, f := range fields {
		want[f] = true
	}
	all := len(fields) == 0

	if all || want[FieldID] {
		if err := v.validateID(change.ID); err != nil {
			return err
		}
	}
	if all || want[FieldTitle] {
		if change.Title == nil || !lengthBetween(*change.Title, minTitleLength, maxTitleLength) {
			return ErrInvalidTitle
		}
	}
	if all || want[FieldDescription] {
		if change.Description == nil || !lengthBetween(*change.Description, minDescriptionLength, maxDescriptionLength) {
			return ErrInvalidDescription
		}
	}
	if all || want[FieldCompleted] {
		if _, err := change.ParseCompleted(); err != nil {
			return err
		}
	}
	if all || want[FieldCategory] {
		if change.Category == nil || !models.Category(*change.Category).Valid() {
			return ErrInvalidCategory
		}
	}
	return nil
}
