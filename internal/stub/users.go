package stub

import (
	"context"
	"errors"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-notes-api-tests/internal/app"
	"github.com/MKhiriev/go-notes-api-tests/internal/logger"
	"github.com/MKhiriev/go-notes-api-tests/internal/store"
	"github.com/MKhiriev/go-notes-api-tests/internal/validators"
	"github.com/MKhiriev/go-notes-api-tests/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	body, err := bindFields(r)
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	user, err := h.createAccount(r.Context(), models.RegisterRequest{
		Name:     body[validators.FieldName],
		Email:    body[validators.FieldEmail],
		Password: body[validators.FieldPassword],
	})
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	writeSuccess(w, r, http.StatusCreated, app.MsgUserCreated, user)
}

// createAccount validates req, hashes the password and stores the user.
func (h *Handler) createAccount(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	if err := h.userValidator.Validate(ctx, req); err != nil {
		return models.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), h.hashCost)
	if err != nil {
		return models.User{}, err
	}

	user, err := h.storages.UserRepository.CreateUser(ctx, models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
	})
	if err != nil {
		return models.User{}, err
	}

	logger.FromContext(ctx).Debug().Str("user_id", user.ID).Msg("user registered")
	return user, nil
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := bindFields(r)
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	creds := models.Credentials{
		Email:    body[validators.FieldEmail],
		Password: body[validators.FieldPassword],
	}
	if err = h.userValidator.Validate(ctx, creds); err != nil {
		writeFailure(w, r, err)
		return
	}

	user, err := h.storages.UserRepository.FindUserByEmail(ctx, creds.Email)
	if errors.Is(err, store.ErrUserNotFound) || (err == nil && !passwordMatches(user, creds.Password)) {
		writeFailure(w, r, ErrIncorrectLogin)
		return
	}
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	token, err := h.storages.SessionRepository.CreateSession(ctx, user.ID)
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	writeSuccess(w, r, http.StatusOK, app.MsgLoginSuccessful, models.Session{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Token: token,
	})
}

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	userID, _ := session(r)

	user, err := h.storages.UserRepository.FindUserByID(r.Context(), userID)
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	writeSuccess(w, r, http.StatusOK, app.MsgProfileSuccessful, user)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := session(r)

	body, err := bindFields(r)
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	update := models.ProfileUpdate{
		Name:    body[validators.FieldName],
		Phone:   body[validators.FieldPhone],
		Company: body[validators.FieldCompany],
	}
	if err = h.userValidator.Validate(ctx, update); err != nil {
		writeFailure(w, r, err)
		return
	}

	user, err := h.storages.UserRepository.UpdateProfile(ctx, userID, update)
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	writeSuccess(w, r, http.StatusOK, app.MsgProfileUpdated, user)
}

func (h *Handler) forgotPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := bindFields(r)
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	email := body[validators.FieldEmail]
	if err = h.userValidator.Validate(ctx, validators.ResetRequest{Email: email}, validators.FieldEmail); err != nil {
		writeFailure(w, r, err)
		return
	}

	user, err := h.storages.UserRepository.FindUserByEmail(ctx, email)
	if errors.Is(err, store.ErrUserNotFound) {
		writeFailure(w, r, ErrNoAccountForEmail)
		return
	}
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	token, err := h.storages.SessionRepository.CreateResetToken(ctx, user.ID, resetTokenTTL)
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	h.mailbox.Deliver(user.Email, token)

	writeSuccess(w, r, http.StatusOK, app.MsgResetLinkSent(email), nil)
}

func (h *Handler) verifyResetPasswordToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := bindFields(r)
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	token := body[validators.FieldToken]
	if err = h.userValidator.Validate(ctx, validators.ResetRequest{Token: token}, validators.FieldToken); err != nil {
		writeFailure(w, r, err)
		return
	}

	if _, err = h.storages.SessionRepository.FindUserIDByResetToken(ctx, token); err != nil {
		writeFailure(w, r, err)
		return
	}

	writeSuccess(w, r, http.StatusOK, app.MsgResetTokenValid, nil)
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := bindFields(r)
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	req := validators.ResetRequest{
		Token:       body[validators.FieldToken],
		NewPassword: body[validators.FieldNewPassword],
	}
	if err = h.userValidator.Validate(ctx, req); err != nil {
		writeFailure(w, r, err)
		return
	}

	userID, err := h.storages.SessionRepository.FindUserIDByResetToken(ctx, req.Token)
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	if err = h.setPassword(ctx, userID, req.NewPassword); err != nil {
		writeFailure(w, r, err)
		return
	}
	if err = h.storages.SessionRepository.DeleteResetToken(ctx, req.Token); err != nil {
		writeFailure(w, r, err)
		return
	}

	writeSuccess(w, r, http.StatusOK, app.MsgPasswordUpdated, nil)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := session(r)

	body, err := bindFields(r)
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	change := models.PasswordChange{
		CurrentPassword: body[validators.FieldCurrentPassword],
		NewPassword:     body[validators.FieldNewPassword],
	}
	if err = h.userValidator.Validate(ctx, change); err != nil {
		writeFailure(w, r, err)
		return
	}

	user, err := h.storages.UserRepository.FindUserByID(ctx, userID)
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	if !passwordMatches(user, change.CurrentPassword) {
		writeFailure(w, r, ErrIncorrectPassword)
		return
	}

	if err = h.setPassword(ctx, userID, change.NewPassword); err != nil {
		writeFailure(w, r, err)
		return
	}

	writeSuccess(w, r, http.StatusOK, app.MsgPasswordUpdated, nil)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	_, token := session(r)

	if err := h.storages.SessionRepository.DeleteSession(r.Context(), token); err != nil {
		writeFailure(w, r, err)
		return
	}

	writeSuccess(w, r, http.StatusOK, app.MsgLoggedOut, nil)
}

func (h *Handler) deleteAccount(w http.ResponseWriter, r *http.Request) {
	userID, _ := session(r)

	if err := h.storages.UserRepository.DeleteUser(r.Context(), userID); err != nil {
		writeFailure(w, r, err)
		return
	}

	writeSuccess(w, r, http.StatusOK, app.MsgAccountDeleted, nil)
}

func (h *Handler) setPassword(ctx context.Context, userID, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.hashCost)
	if err != nil {
		return err
	}
	return h.storages.UserRepository.UpdatePassword(ctx, userID, string(hash))
}

func passwordMatches(user models.User, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) == nil
}
