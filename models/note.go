// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Category is the fixed set of note categories accepted by the Notes API.
type Category string

const (
	CategoryHome     Category = "Home"
	CategoryWork     Category = "Work"
	CategoryPersonal Category = "Personal"
)

// Categories lists every valid [Category] in the order the API reports them.
var Categories = []Category{CategoryHome, CategoryWork, CategoryPersonal}

// Valid reports whether c is one of [Categories].
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// String implements [fmt.Stringer].
func (c Category) String() string {
	return string(c)
}

// Note is the primary remote resource under test.
type Note struct {
	// ID is the server-assigned identifier (24 hex characters).
	ID string `json:"id"`

	// Title is between 4 and 100 characters long.
	Title string `json:"title"`

	// Description is between 4 and 1000 characters long.
	Description string `json:"description"`

	// Category is one of Home, Work or Personal.
	Category Category `json:"category"`

	// Completed marks the note as done.
	Completed bool `json:"completed"`

	// CreatedAt and UpdatedAt are maintained by the service.
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// UserID is the owner of the note.
	UserID string `json:"user_id"`
}

// NoteInput carries the fields of POST notes. Category is a plain string so
// that invalid values can be sent on purpose.
type NoteInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// NoteUpdate carries the fields of PUT notes/{id}.
type NoteUpdate struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	Category    string `json:"category"`
}
