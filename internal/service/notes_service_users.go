package service

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-notes-api-tests/internal/restclient"
	"github.com/MKhiriev/go-notes-api-tests/models"
)

func (s *notesService) HealthCheck(ctx context.Context, opts ...restclient.Option) (models.MessageResponse, error) {
	s.logger.Info().Msg("Checking API health")

	resp, _, err := call[json.RawMessage](ctx, s.client, http.MethodGet, "health-check", nil, opts)
	return resp, err
}

func (s *notesService) Register(ctx context.Context, req models.RegisterRequest, opts ...restclient.Option) (models.Response[models.User], error) {
	s.logger.Info().Msgf("Registering user %s", req.Email)

	defaults := []restclient.Option{
		restclient.Expect(http.StatusCreated),
		restclient.Form(map[string]string{
			"name":     req.Name,
			"email":    req.Email,
			"password": req.Password,
		}),
	}

	resp, _, err := call[models.User](ctx, s.client, http.MethodPost, "users/register", defaults, opts)
	return resp, err
}

func (s *notesService) Login(ctx context.Context, creds models.Credentials, opts ...restclient.Option) (models.Response[models.Session], error) {
	s.logger.Info().Msgf("Logging in as %s", creds.Email)

	defaults := []restclient.Option{restclient.JSON(creds)}

	resp, result, err := call[models.Session](ctx, s.client, http.MethodPost, "users/login", defaults, opts)
	if result != nil && result.StatusCode == http.StatusOK && resp.Data.Token != "" {
		s.SetToken(resp.Data.Token)
	}
	return resp, err
}

func (s *notesService) Profile(ctx context.Context, opts ...restclient.Option) (models.Response[models.User], error) {
	s.logger.Info().Msg("Getting user profile")

	resp, _, err := call[models.User](ctx, s.client, http.MethodGet, "users/profile", nil, opts)
	return resp, err
}

func (s *notesService) UpdateProfile(ctx context.Context, update models.ProfileUpdate, opts ...restclient.Option) (models.Response[models.User], error) {
	s.logger.Info().Msgf("Updating user profile name=%s", update.Name)

	defaults := []restclient.Option{
		restclient.Form(map[string]string{
			"name":    update.Name,
			"phone":   update.Phone,
			"company": update.Company,
		}),
	}

	resp, _, err := call[models.User](ctx, s.client, http.MethodPatch, "users/profile", defaults, opts)
	return resp, err
}

func (s *notesService) ForgotPassword(ctx context.Context, email string, opts ...restclient.Option) (models.MessageResponse, error) {
	s.logger.Info().Msgf("Requesting password reset for %s", email)

	defaults := []restclient.Option{restclient.JSON(map[string]string{"email": email})}

	resp, _, err := call[json.RawMessage](ctx, s.client, http.MethodPost, "users/forgot-password", defaults, opts)
	return resp, err
}

func (s *notesService) VerifyResetPasswordToken(ctx context.Context, token string, opts ...restclient.Option) (models.MessageResponse, error) {
	s.logger.Info().Msg("Verifying password reset token")

	defaults := []restclient.Option{restclient.JSON(map[string]string{"token": token})}

	resp, _, err := call[json.RawMessage](ctx, s.client, http.MethodPost, "users/verify-reset-password-token", defaults, opts)
	return resp, err
}

func (s *notesService) ResetPassword(ctx context.Context, token, newPassword string, opts ...restclient.Option) (models.MessageResponse, error) {
	s.logger.Info().Msg("Resetting password")

	defaults := []restclient.Option{
		restclient.JSON(models.PasswordReset{Token: token, NewPassword: newPassword}),
	}

	resp, _, err := call[json.RawMessage](ctx, s.client, http.MethodPost, "users/reset-password", defaults, opts)
	return resp, err
}

func (s *notesService) ChangePassword(ctx context.Context, currentPassword, newPassword string, opts ...restclient.Option) (models.MessageResponse, error) {
	s.logger.Info().Msg("Changing password")

	defaults := []restclient.Option{
		restclient.Form(map[string]string{
			"currentPassword": currentPassword,
			"newPassword":     newPassword,
		}),
	}

	resp, _, err := call[json.RawMessage](ctx, s.client, http.MethodPost, "users/change-password", defaults, opts)
	return resp, err
}

func (s *notesService) Logout(ctx context.Context, opts ...restclient.Option) (models.MessageResponse, error) {
	s.logger.Info().Msg("Logging out")

	resp, result, err := call[json.RawMessage](ctx, s.client, http.MethodDelete, "users/logout", nil, opts)
	if result != nil && result.StatusCode == http.StatusOK {
		s.SetToken("")
	}
	return resp, err
}

func (s *notesService) DeleteAccount(ctx context.Context, opts ...restclient.Option) (models.MessageResponse, error) {
	s.logger.Info().Msg("Deleting account")

	resp, result, err := call[json.RawMessage](ctx, s.client, http.MethodDelete, "users/delete-account", nil, opts)
	if result != nil && result.StatusCode == http.StatusOK {
		s.SetToken("")
	}
	return resp, err
}
