package stub

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-notes-api-tests/internal/config"
	"github.com/MKhiriev/go-notes-api-tests/internal/logger"
	"github.com/MKhiriev/go-notes-api-tests/models"
)

// The account seeded by [StartSuite]. The default credentials are used only
// when the configuration leaves them empty.
const (
	SeedName           = "test_rest_api"
	DefaultEmail       = "test_rest_api@example.com"
	DefaultPassword    = "test_rest_api_password"
	DefaultNewPassword = "test_rest_api_new_password"
)

// StartSuite starts an in-memory instance for a test run: cfg is pointed at
// it, empty credentials are replaced by the defaults and the EMAIL account
// is seeded. The caller closes the returned instance.
func StartSuite(ctx context.Context, cfg *config.SuiteConfig, log *logger.Logger) (*Instance, error) {
	if log == nil {
		log = logger.Nop()
	}

	instance, err := Start(ctx, ":memory:", log)
	if err != nil {
		return nil, fmt.Errorf("error starting stub: %w", err)
	}

	cfg.API.BaseURL = instance.BaseURL()
	if cfg.Credentials.Email == "" {
		cfg.Credentials.Email = DefaultEmail
	}
	if cfg.Credentials.Password == "" {
		cfg.Credentials.Password = DefaultPassword
	}
	if cfg.Credentials.NewPassword == "" {
		cfg.Credentials.NewPassword = DefaultNewPassword
	}

	err = instance.Seed(ctx, models.RegisterRequest{
		Name:     SeedName,
		Email:    cfg.Credentials.Email,
		Password: cfg.Credentials.Password,
	})
	if err != nil {
		_ = instance.Close()
		return nil, fmt.Errorf("error seeding stub account: %w", err)
	}

	return instance, nil
}
