package update_settings

import (
	"errors"
	"net/http"

	"github.com/hsnkrlr/berber-randevu/internal/api/handlers"
	settingsService "github.com/hsnkrlr/berber-randevu/internal/service/settings"
	"github.com/hsnkrlr/berber-randevu/internal/service/settings/models"
)

const (
	msgInvalidRequestBody = "geçersiz istek gövdesi"
	msgInvalidSettings    = "geçersiz ayar değerleri"
	msgSettingsNotFound   = "işletme ayarları henüz yapılmamış"
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

// Handle PUT /api/v1/admin/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateSettingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/settings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.Update(r.Context(), &req); err != nil {
		switch {
		case errors.Is(err, settingsService.ErrInvalidInput):
			h.logger.Warn("PUT /admin/settings - Invalid settings: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSettings)
		case errors.Is(err, settingsService.ErrSettingsNotFound):
			h.logger.Warn("PUT /admin/settings - Settings not configured")
			handlers.RespondNotFound(w, msgSettingsNotFound)
		default:
			h.logger.Error("PUT /admin/settings - Failed to update settings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/settings - Settings updated")
	handlers.RespondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
