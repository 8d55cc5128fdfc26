package stub

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-notes-api-tests/internal/logger"
	"github.com/MKhiriev/go-notes-api-tests/internal/store"
	"github.com/MKhiriev/go-notes-api-tests/internal/validators"
)

// resetTokenTTL is how long a password-reset token stays valid.
const resetTokenTTL = time.Hour

// Handler serves the Notes API routes over the given storages.
type Handler struct {
	storages *store.Storages
	mailbox  *Mailbox

	userValidator validators.Validator
	noteValidator validators.Validator

	hashCost int

	logger *logger.Logger
}

func NewHandler(storages *store.Storages, mailbox *Mailbox, logger *logger.Logger) *Handler {
	logger.Info().Msg("stub handler created")
	return &Handler{
		storages:      storages,
		mailbox:       mailbox,
		userValidator: validators.NewUserValidator(),
		noteValidator: validators.NewNoteValidator(),
		hashCost:      bcrypt.DefaultCost,
		logger:        logger,
	}
}
