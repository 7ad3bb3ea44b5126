package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	settingsService "github.com/hsnkrlr/berber-randevu/internal/service/settings"
)

type fakeVerifier struct {
	accepted string
	err      error
}

func (f *fakeVerifier) VerifyPassword(ctx context.Context, password string) error {
	if f.err != nil {
		return f.err
	}
	if password == f.accepted {
		return nil
	}
	return settingsService.ErrUnauthorized
}

type nopLogger struct{}

func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newAuthedHandler(t *testing.T) http.Handler {
	t.Helper()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	return AdminAuth(&fakeVerifier{accepted: "berber123"}, nopLogger{})(next)
}

func TestAdminAuth_MissingHeader(t *testing.T) {
	handler := newAuthedHandler(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/bookings", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), msgPasswordRequired)
}

func TestAdminAuth_WrongPassword(t *testing.T) {
	handler := newAuthedHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/admin/bookings", nil)
	req.Header.Set(AdminPasswordHeader, "wrong")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), msgPasswordWrong)
}

func TestAdminAuth_CorrectPassword(t *testing.T) {
	handler := newAuthedHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/admin/bookings", nil)
	req.Header.Set(AdminPasswordHeader, "berber123")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminAuth_StorageFailureIsNot401(t *testing.T) {
	// A failed hash lookup must not read as "wrong password".
	verifier := &fakeVerifier{
		err: fmt.Errorf("%w: connection refused", settingsService.ErrInternal),
	}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := AdminAuth(verifier, nopLogger{})(next)

	req := httptest.NewRequest(http.MethodGet, "/admin/bookings", nil)
	req.Header.Set(AdminPasswordHeader, "berber123")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), msgPasswordWrong)
}
