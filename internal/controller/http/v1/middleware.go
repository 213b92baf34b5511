package v1

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/kurochkinivan/file_catalog/internal/auth"
)

type CredentialsVerifier interface {
	Verify(ctx context.Context, username, password string) error
}

type usernameKey struct{}

// BasicAuth verifies the basic-auth credentials of every request
// before the handler runs. The authenticated username is placed in
// the request context for handlers to report back.
func BasicAuth(log *slog.Logger, verifier CredentialsVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			username, password, ok := r.BasicAuth()
			if !ok {
				unauthorized(w)
				return
			}

			if err := verifier.Verify(r.Context(), username, password); err != nil {
				if errors.Is(err, auth.ErrInvalidCredentials) {
					unauthorized(w)
					return
				}

				log.ErrorContext(r.Context(), "failed to verify credentials", slog.String("err", err.Error()))
				writeError(w, http.StatusInternalServerError, "failed to verify credentials")
				return
			}

			ctx := context.WithValue(r.Context(), usernameKey{}, username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", `Basic realm="file-catalog"`)
	writeError(w, http.StatusUnauthorized, "invalid credentials")
}

func UsernameFromContext(ctx context.Context) string {
	username, _ := ctx.Value(usernameKey{}).(string)
	return username
}
