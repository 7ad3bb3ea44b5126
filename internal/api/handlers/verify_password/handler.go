package verify_password

import (
	"errors"
	"net/http"

	"github.com/hsnkrlr/berber-randevu/internal/api/handlers"
	settingsService "github.com/hsnkrlr/berber-randevu/internal/service/settings"
)

const (
	msgInvalidRequestBody = "geçersiz istek gövdesi"
	msgPasswordWrong      = "şifre yanlış"
)

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/verify-password
// Public endpoint; the admin panel calls it once to check the password
// before sending it as a header on subsequent admin requests.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req VerifyPasswordRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/verify-password - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.VerifyPassword(r.Context(), req.Password); err != nil {
		if errors.Is(err, settingsService.ErrUnauthorized) {
			h.logger.Warn("POST /admin/verify-password - Wrong password attempt")
			handlers.RespondUnauthorized(w, msgPasswordWrong)
			return
		}
		h.logger.Error("POST /admin/verify-password - Failed to verify password: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, VerifyPasswordResponse{Success: true})
}
