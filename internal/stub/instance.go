package stub

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-notes-api-tests/internal/logger"
	"github.com/MKhiriev/go-notes-api-tests/internal/store"
	"github.com/MKhiriev/go-notes-api-tests/models"
)

const shutdownTimeout = 5 * time.Second

// Instance is a stub served on an ephemeral loopback port.
type Instance struct {
	// URL is the server root, e.g. "http://127.0.0.1:53124".
	URL string

	// Mailbox receives the password-reset tokens issued by the instance.
	Mailbox *Mailbox

	handler  *Handler
	storages *store.Storages
	server   *http.Server

	logger *logger.Logger
}

// Start opens the database at dsn and serves the stub on 127.0.0.1 until
// Close is called. Passwords are hashed with the minimum bcrypt cost.
func Start(ctx context.Context, dsn string, log *logger.Logger) (*Instance, error) {
	storages, err := store.NewStorages(ctx, dsn, log)
	if err != nil {
		return nil, err
	}

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("error listening: %w", err)
	}

	mailbox := NewMailbox()
	handler := NewHandler(storages, mailbox, log)
	handler.hashCost = bcrypt.MinCost

	server := &http.Server{
		Handler:           handler.Init(),
		ReadHeaderTimeout: shutdownTimeout,
	}
	go func() {
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Err(err).Msg("stub server stopped")
		}
	}()

	instance := &Instance{
		URL:      "http://" + listener.Addr().String(),
		Mailbox:  mailbox,
		handler:  handler,
		storages: storages,
		server:   server,
		logger:   log,
	}
	log.Info().Str("url", instance.BaseURL()).Msg("stub started")

	return instance, nil
}

// BaseURL is the API root to configure clients with.
func (i *Instance) BaseURL() string {
	return i.URL + BasePath
}

// Seed registers an account directly, bypassing HTTP. An account that
// already exists is left untouched.
func (i *Instance) Seed(ctx context.Context, req models.RegisterRequest) error {
	_, err := i.handler.createAccount(ctx, req)
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		return nil
	}
	return err
}

// Close stops the server and releases the database.
func (i *Instance) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return errors.Join(i.server.Shutdown(ctx), i.storages.Close())
}
