package get_available_slots

import (
	"github.com/hsnkrlr/berber-randevu/internal/domain"
	getAvailableSlots "github.com/hsnkrlr/berber-randevu/internal/usecase/get_available_slots"
)

// SlotResponse HTTP model of a single slot
type SlotResponse struct {
	Time     string `json:"time"`
	Disabled bool   `json:"disabled"`
}

// SlotsResponse HTTP response model
type SlotsResponse struct {
	Date     string         `json:"date"`
	Interval int            `json:"interval"`
	Slots    []SlotResponse `json:"slots"`
}

// FromUseCaseResponse converts the use case response into the HTTP model.
func FromUseCaseResponse(resp *getAvailableSlots.Response) *SlotsResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = SlotResponse{
			Time:     slot.Time.String(),
			Disabled: slot.Disabled,
		}
	}

	return &SlotsResponse{
		Date:     resp.Date.Format(domain.DateFormat),
		Interval: resp.IntervalMinutes,
		Slots:    slots,
	}
}
