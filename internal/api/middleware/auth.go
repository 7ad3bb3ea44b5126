package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/hsnkrlr/berber-randevu/internal/api/handlers"
	settingsService "github.com/hsnkrlr/berber-randevu/internal/service/settings"
)

// AdminPasswordHeader carries the admin shared secret.
const AdminPasswordHeader = "X-Admin-Password"

const msgPasswordRequired = "şifre gerekli"
const msgPasswordWrong = "şifre yanlış"

// PasswordVerifier checks an admin password against the stored hash.
type PasswordVerifier interface {
	VerifyPassword(ctx context.Context, password string) error
}

// Logger is the logging surface the middleware needs.
type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// AdminAuth gates administrative routes behind the X-Admin-Password
// header, verified with bcrypt against the stored hash.
func AdminAuth(verifier PasswordVerifier, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			password := r.Header.Get(AdminPasswordHeader)
			if password == "" {
				logger.Warn("AdminAuth: missing %s header for %s %s", AdminPasswordHeader, r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgPasswordRequired)
				return
			}

			if err := verifier.VerifyPassword(r.Context(), password); err != nil {
				// Only a definite mismatch is a 401; a failed lookup of
				// the stored hash is a server problem.
				if errors.Is(err, settingsService.ErrUnauthorized) {
					logger.Warn("AdminAuth: rejected %s %s", r.Method, r.URL.Path)
					handlers.RespondUnauthorized(w, msgPasswordWrong)
					return
				}
				logger.Error("AdminAuth: verification failed for %s %s: %v", r.Method, r.URL.Path, err)
				handlers.RespondInternalError(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
