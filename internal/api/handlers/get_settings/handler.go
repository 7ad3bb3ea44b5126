package get_settings

import (
	"errors"
	"net/http"

	"github.com/hsnkrlr/berber-randevu/internal/api/handlers"
	settingsService "github.com/hsnkrlr/berber-randevu/internal/service/settings"
)

const msgSettingsNotFound = "işletme ayarları henüz yapılmamış"

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

// Handle GET /api/v1/settings
// Public; the admin password hash is stripped by the service layer.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetPublic(r.Context())
	if err != nil {
		if errors.Is(err, settingsService.ErrSettingsNotFound) {
			h.logger.Warn("GET /settings - Settings not configured")
			handlers.RespondNotFound(w, msgSettingsNotFound)
			return
		}
		h.logger.Error("GET /settings - Failed to get settings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
