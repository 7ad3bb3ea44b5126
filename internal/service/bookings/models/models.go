package models

import (
	"strings"
	"time"

	"github.com/hsnkrlr/berber-randevu/internal/domain"
)

// BookingResponse is the admin view of a booking. The phone is masked:
// first digit, then stars, then the last two digits (enough for the
// admin to match a caller without exposing the full number).
type BookingResponse struct {
	ID           int64   `json:"id"`
	Date         string  `json:"date"`
	Time         string  `json:"time"`
	CustomerName string  `json:"name"`
	Phone        string  `json:"phone"`
	ServiceIDs   []int64 `json:"serviceIds"`
	TotalPrice   float64 `json:"totalPrice"`
	Note         *string `json:"note,omitempty"`
	CreatedAt    string  `json:"createdAt"`
}

// BookingListResponse is a list of admin booking views.
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// BookedTimeResponse is the PII-free public view of an occupied slot.
type BookedTimeResponse struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

// FromDomainBooking converts a domain booking to the masked admin view.
func FromDomainBooking(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:           b.ID,
		Date:         b.DateString(),
		Time:         b.StartTime.String(),
		CustomerName: b.CustomerName,
		Phone:        MaskPhone(b.Phone),
		ServiceIDs:   b.ServiceIDs,
		TotalPrice:   b.TotalPrice,
		Note:         b.Note,
		CreatedAt:    b.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainBookingList converts a domain booking slice to the admin view.
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	out := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		out[i] = FromDomainBooking(b)
	}
	return &BookingListResponse{Bookings: out}
}

// FromDomainBookedTime converts an occupied slot to its public view.
func FromDomainBookedTime(bt domain.BookedTime) BookedTimeResponse {
	return BookedTimeResponse{
		Date: bt.Date.Format(domain.DateFormat),
		Time: bt.Time.String(),
	}
}

// MaskPhone hides the middle of a phone number, keeping the first digit
// and the last two. Numbers of four digits or fewer pass through as-is.
func MaskPhone(phone string) string {
	if phone == "" {
		return ""
	}
	if len(phone) <= 4 {
		return phone
	}
	return phone[:1] + strings.Repeat("*", len(phone)-4) + phone[len(phone)-2:]
}
