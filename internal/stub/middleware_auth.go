package stub

import (
	"context"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-notes-api-tests/internal/logger"
	"github.com/MKhiriev/go-notes-api-tests/internal/utils"
)

// AuthTokenHeader carries the session token issued by users/login.
const AuthTokenHeader = "x-auth-token"

// auth resolves the x-auth-token header to a user and stores both the token
// and the user id in the request context. A missing header and an unknown
// token are both answered with 401, each with its own message.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		token := strings.TrimSpace(r.Header.Get(AuthTokenHeader))
		if token == "" {
			log.Debug().Msg("request without auth token")
			writeFailure(w, r, ErrNoToken)
			return
		}

		ctx := r.Context()
		userID, err := h.storages.SessionRepository.FindUserIDByToken(ctx, token)
		if err != nil {
			writeFailure(w, r, err)
			return
		}

		ctx = context.WithValue(ctx, utils.TokenCtxKey, token)
		ctx = context.WithValue(ctx, utils.UserIDCtxKey, userID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// session returns the authenticated user id and token of r. It is only
// meaningful behind [Handler.auth].
func session(r *http.Request) (userID, token string) {
	userID, _ = utils.GetUserIDFromContext(r.Context())
	token, _ = utils.GetTokenFromContext(r.Context())
	return userID, token
}
