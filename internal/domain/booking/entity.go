package booking

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrNameRequired   = errors.New("name is required")
	ErrPhoneRequired  = errors.New("phone number is required")
	ErrInvalidGuests  = errors.New("number of guests must be at least 1")
	ErrDateRequired   = errors.New("date is required")
	ErrTimeRequired   = errors.New("time is required")
	ErrInvalidDate    = errors.New("date must be formatted as YYYY-MM-DD")
	ErrInvalidTimeFmt = errors.New("time must be formatted as HH:MM")
)

// Request is the body of POST /api/booking/create
type Request struct {
	Name           string `json:"name"`
	Phone          string `json:"phone"`
	NumberOfPeople int    `json:"numberOfPeople"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	Note           string `json:"note,omitempty"`
}

// Normalize trims every text field
func (r *Request) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Date = strings.TrimSpace(r.Date)
	r.Time = strings.TrimSpace(r.Time)
	r.Note = strings.TrimSpace(r.Note)
}

// Validate checks required fields and formats
func (r Request) Validate() error {
	switch {
	case r.Name == "":
		return ErrNameRequired
	case r.Phone == "":
		return ErrPhoneRequired
	case r.NumberOfPeople < 1:
		return ErrInvalidGuests
	case r.Date == "":
		return ErrDateRequired
	case r.Time == "":
		return ErrTimeRequired
	}

	if _, err := time.Parse("2006-01-02", r.Date); err != nil {
		return ErrInvalidDate
	}
	if _, err := time.Parse("15:04", r.Time); err != nil {
		return ErrInvalidTimeFmt
	}
	return nil
}

// Booking is a table booking as returned by the API
type Booking struct {
	ID             string    `json:"_id"`
	Name           string    `json:"name"`
	Phone          string    `json:"phone"`
	NumberOfPeople int       `json:"numberOfPeople"`
	Date           string    `json:"date"`
	Time           string    `json:"time"`
	Note           string    `json:"note"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
}
