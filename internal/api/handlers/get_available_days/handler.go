package get_available_days

import (
	"net/http"

	"github.com/hsnkrlr/berber-randevu/internal/api/handlers"
	"github.com/hsnkrlr/berber-randevu/internal/domain"
)

// DayResponse HTTP model of one horizon day
type DayResponse struct {
	Date      string `json:"date"`
	Available bool   `json:"available"`
}

// DaysResponse HTTP response model
type DaysResponse struct {
	Days           []DayResponse `json:"days"`
	FirstAvailable *string       `json:"firstAvailable,omitempty"`
}

type Handler struct {
	useCase GetAvailableDaysUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableDaysUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/days
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("GET /days - Failed to get days: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	days := make([]DayResponse, len(result.Days))
	for i, day := range result.Days {
		days[i] = DayResponse{
			Date:      day.Date.Format(domain.DateFormat),
			Available: day.Available,
		}
	}

	response := &DaysResponse{Days: days}
	if result.FirstAvailable != nil {
		first := result.FirstAvailable.Format(domain.DateFormat)
		response.FirstAvailable = &first
	}

	handlers.RespondJSON(w, http.StatusOK, response)
}
