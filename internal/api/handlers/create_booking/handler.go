package create_booking

import (
	"errors"
	"net/http"

	"github.com/hsnkrlr/berber-randevu/internal/api/handlers"
	createBooking "github.com/hsnkrlr/berber-randevu/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "geçersiz istek gövdesi"
	msgInvalidDateTime    = "geçersiz tarih veya saat biçimi, YYYY-MM-DD ve HH:MM bekleniyor"
	msgInvalidInput       = "ad, telefon veya hizmet seçimi geçersiz"
	msgUnknownService     = "seçilen hizmet bulunamadı"
	msgSlotClosed         = "seçilen saat çalışma saatleri dışında"
	msgSlotTaken          = "seçtiğiniz saat dolu, lütfen başka bir saat seçin"
	msgTooLateToBook      = "bu saat için randevu süresi geçti"
	msgInvalidDate        = "geçersiz randevu tarihi"
	msgDateTooFar         = "randevu tarihi çok ileride"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotTaken):
			h.logger.Warn("POST /bookings - Slot taken: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrUnknownService):
			h.logger.Warn("POST /bookings - Unknown service: %v", err)
			handlers.RespondBadRequest(w, msgUnknownService)

		case errors.Is(err, createBooking.ErrSlotClosed):
			h.logger.Warn("POST /bookings - Slot closed: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondBadRequest(w, msgSlotClosed)

		case errors.Is(err, createBooking.ErrTooLateToBook):
			h.logger.Warn("POST /bookings - Too late to book: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondBadRequest(w, msgTooLateToBook)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid date: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createBooking.ErrDateTooFarInFuture):
			h.logger.Warn("POST /bookings - Date too far: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgDateTooFar)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: date=%s, time=%s, error=%v",
				req.Date, req.Time, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, date=%s, time=%s",
		result.ID, req.Date, req.Time)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
