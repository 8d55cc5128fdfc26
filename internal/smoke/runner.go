// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package smoke

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-notes-api-tests/internal/logger"
	"github.com/MKhiriev/go-notes-api-tests/internal/restclient"
	"github.com/MKhiriev/go-notes-api-tests/internal/service"
	"github.com/MKhiriev/go-notes-api-tests/models"
)

// Smoke note values.
const (
	NoteTitle       = "Smoke Test Note"
	NoteDescription = "Created by notesctl"
	NoteCategory    = models.CategoryHome
)

// Factory returns a fresh service for each run.
type Factory func() (service.NotesService, error)

// Runner executes the scenario: health check, login, profile, create note,
// get note, mark completed, delete note, get the deleted note (404) and
// logout. The first failing step skips the rest.
type Runner struct {
	target  string
	factory Factory
	creds   models.Credentials

	logger *logger.Logger
}

func NewRunner(target string, factory Factory, creds models.Credentials, log *logger.Logger) *Runner {
	if log == nil {
		log = logger.Nop()
	}
	return &Runner{
		target:  target,
		factory: factory,
		creds:   creds,
		logger:  log,
	}
}

type step struct {
	name string
	run  func(ctx context.Context, svc service.NotesService) error
}

func (r *Runner) steps() []step {
	var noteID string

	return []step{
		{"health check", func(ctx context.Context, svc service.NotesService) error {
			_, err := svc.HealthCheck(ctx)
			return err
		}},
		{"login", func(ctx context.Context, svc service.NotesService) error {
			resp, err := svc.Login(ctx, r.creds)
			if err != nil {
				return err
			}
			if resp.Data.Token == "" {
				return fmt.Errorf("%w: empty token", ErrUnexpectedData)
			}
			return nil
		}},
		{"profile", func(ctx context.Context, svc service.NotesService) error {
			resp, err := svc.Profile(ctx)
			if err != nil {
				return err
			}
			if resp.Data.ID == "" {
				return fmt.Errorf("%w: profile without id", ErrUnexpectedData)
			}
			return nil
		}},
		{"create note", func(ctx context.Context, svc service.NotesService) error {
			resp, err := svc.CreateNote(ctx, models.NoteInput{
				Title:       NoteTitle,
				Description: NoteDescription,
				Category:    NoteCategory.String(),
			})
			if err != nil {
				return err
			}
			if resp.Data.ID == "" {
				return fmt.Errorf("%w: note without id", ErrUnexpectedData)
			}
			noteID = resp.Data.ID
			return nil
		}},
		{"get note", func(ctx context.Context, svc service.NotesService) error {
			resp, err := svc.Note(ctx, noteID)
			if err != nil {
				return err
			}
			if resp.Data.Title != NoteTitle {
				return fmt.Errorf("%w: title %q", ErrUnexpectedData, resp.Data.Title)
			}
			return nil
		}},
		{"mark completed", func(ctx context.Context, svc service.NotesService) error {
			resp, err := svc.SetNoteCompleted(ctx, noteID, true)
			if err != nil {
				return err
			}
			if !resp.Data.Completed {
				return fmt.Errorf("%w: note is not completed", ErrUnexpectedData)
			}
			return nil
		}},
		{"delete note", func(ctx context.Context, svc service.NotesService) error {
			_, err := svc.DeleteNote(ctx, noteID)
			return err
		}},
		{"get deleted note", func(ctx context.Context, svc service.NotesService) error {
			_, err := svc.Note(ctx, noteID, restclient.Expect(http.StatusNotFound))
			return err
		}},
		{"logout", func(ctx context.Context, svc service.NotesService) error {
			_, err := svc.Logout(ctx)
			return err
		}},
	}
}

// Run executes the scenario once.
func (r *Runner) Run(ctx context.Context) (results Results) {
	results = Results{Target: r.target, Started: time.Now()}
	defer func() { results.Duration = time.Since(results.Started) }()

	steps := r.steps()

	svc, err := r.factory()
	if err != nil {
		r.logger.Err(err).Msg("error creating notes service")
		results.Steps = append(results.Steps, StepResult{Name: "setup", Status: StepFailed, Err: err})
		results.Failures++
		for _, s := range steps {
			results.Steps = append(results.Steps, StepResult{Name: s.name, Status: StepSkipped})
		}
		return results
	}

	failed := false
	for _, s := range steps {
		if failed {
			results.Steps = append(results.Steps, StepResult{Name: s.name, Status: StepSkipped})
			continue
		}
		if err := ctx.Err(); err != nil {
			results.Steps = append(results.Steps, StepResult{Name: s.name, Status: StepFailed, Err: err})
			results.Failures++
			failed = true
			continue
		}

		start := time.Now()
		err := s.run(ctx, svc)
		res := StepResult{Name: s.name, Status: StepPassed, Duration: time.Since(start), Err: err}

		if err != nil {
			r.logger.Warn().Err(err).Str("step", s.name).Msg("smoke step failed")
			res.Status = StepFailed
			results.Failures++
			failed = true
		} else {
			r.logger.Debug().Str("step", s.name).Dur("duration", res.Duration).Msg("smoke step passed")
		}
		results.Steps = append(results.Steps, res)
	}

	return results
}
