package create_booking

import (
	"time"

	"github.com/hsnkrlr/berber-randevu/pkg/types"
)

// Request is the admission request. TotalPrice is deliberately absent:
// the price is recomputed from the service catalog on the server.
type Request struct {
	CustomerName string
	Phone        string // raw input, normalized to digits during validation
	ServiceIDs   []int64
	Date         time.Time
	StartTime    types.TimeString
	Note         *string
}

// Response is the created booking.
type Response struct {
	ID           int64
	Date         time.Time
	StartTime    types.TimeString
	CustomerName string
	Phone        string
	ServiceIDs   []int64
	TotalPrice   float64
	Note         *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
