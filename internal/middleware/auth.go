package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/Hema-A-05/MERN-flasklite/internal/models"
	"github.com/Hema-A-05/MERN-flasklite/internal/service"
	"github.com/Hema-A-05/MERN-flasklite/internal/utils"

	"github.com/rs/zerolog"
)

type ctxKey string

const (
	CtxUserID ctxKey = "uid"
	ctxUser   ctxKey = "user"
)

// TokenHeader carries the session token; there is no bearer scheme.
const TokenHeader = "x-access-token"

type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*models.User, error)
}

// RequireToken rejects requests without a valid x-access-token and stores
// the authenticated user in the request context.
func RequireToken(log zerolog.Logger, auth Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, err := auth.Authenticate(r.Context(), r.Header.Get(TokenHeader))
			switch {
			case errors.Is(err, service.ErrMissingToken):
				utils.Error(w, http.StatusUnauthorized, "Token is missing!")
				return
			case errors.Is(err, service.ErrInvalidToken):
				log.Debug().Err(err).Str("path", r.URL.Path).Msg("rejected token")
				utils.Error(w, http.StatusUnauthorized, "Token is invalid!")
				return
			case err != nil:
				log.Error().Err(err).Msg("authenticate")
				utils.Error(w, http.StatusInternalServerError, "internal error")
				return
			}

			ctx := context.WithValue(r.Context(), CtxUserID, u.ID)
			ctx = context.WithValue(ctx, ctxUser, u)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CurrentUser returns the user set by RequireToken.
func CurrentUser(ctx context.Context) (*models.User, bool) {
	u, ok := ctx.Value(ctxUser).(*models.User)
	return u, ok
}
