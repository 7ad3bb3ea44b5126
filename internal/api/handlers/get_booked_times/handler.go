package get_booked_times

import (
	"net/http"

	"github.com/hsnkrlr/berber-randevu/internal/api/handlers"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/times
// Returns only (date, time) pairs; no customer data crosses this
// endpoint.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	times, err := h.service.ListTimes(r.Context())
	if err != nil {
		h.logger.Error("GET /bookings/times - Failed to list times: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, times)
}
