package create_booking

import (
	"time"

	"github.com/hsnkrlr/berber-randevu/internal/domain"
	createBooking "github.com/hsnkrlr/berber-randevu/internal/usecase/create_booking"
	"github.com/hsnkrlr/berber-randevu/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Name       string  `json:"name"`
	Phone      string  `json:"phone"`
	ServiceIDs []int64 `json:"serviceIds"`
	Date       string  `json:"date"` // "2025-10-15"
	Time       string  `json:"time"` // "10:00"
	Note       *string `json:"note,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID         int64   `json:"id"`
	Date       string  `json:"date"`
	Time       string  `json:"time"`
	Name       string  `json:"name"`
	Phone      string  `json:"phone"`
	ServiceIDs []int64 `json:"serviceIds"`
	TotalPrice float64 `json:"totalPrice"`
	Note       *string `json:"note,omitempty"`
	CreatedAt  string  `json:"createdAt"`
}

// ToUseCaseRequest converts the HTTP request into the use case model,
// parsing the date and time.
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	date, err := time.ParseInLocation(domain.DateFormat, r.Date, time.Local)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		CustomerName: r.Name,
		Phone:        r.Phone,
		ServiceIDs:   r.ServiceIDs,
		Date:         date,
		StartTime:    startTime,
		Note:         r.Note,
	}, nil
}

// FromUseCaseResponse converts the use case response into the HTTP model.
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:         resp.ID,
		Date:       resp.Date.Format(domain.DateFormat),
		Time:       resp.StartTime.String(),
		Name:       resp.CustomerName,
		Phone:      resp.Phone,
		ServiceIDs: resp.ServiceIDs,
		TotalPrice: resp.TotalPrice,
		Note:       resp.Note,
		CreatedAt:  resp.CreatedAt.Format(time.RFC3339),
	}
}
