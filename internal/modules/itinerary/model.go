// README: Itinerary domain types and the pipeline error taxonomy.
package itinerary

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrNotConfigured means no completion credential is present. Fatal to the
	// request; not retryable without operator action.
	ErrNotConfigured = errors.New("completion credential not configured")

	// ErrTransport covers network and service-level failures (unreachable,
	// non-success status, rate limiting). Callers may retry with backoff; the
	// pipeline itself performs no retries.
	ErrTransport = errors.New("completion service unavailable")

	// ErrEmptyResponse means the service responded but supplied no content.
	ErrEmptyResponse = errors.New("completion service returned an empty reply")

	// ErrMalformedResponse means content was present but is not a parseable
	// itinerary (invalid JSON or invalid/missing date fields).
	ErrMalformedResponse = errors.New("completion reply is not a valid itinerary")
)

// ParseError carries the raw reply text for operator diagnostics.
// The raw text must never be surfaced to end users; it is logged only.
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v: %v", ErrMalformedResponse, e.Err)
}

func (e *ParseError) Unwrap() error { return ErrMalformedResponse }

// TravelPreferences is the trip request supplied by the UI. Absent fields are
// passed through as absent in the prompt; no defaults are synthesized here.
type TravelPreferences struct {
	Destination   string     `json:"destination"`
	Budget        string     `json:"budget,omitempty"`
	DepartureDate *time.Time `json:"departureDate,omitempty"`
	ReturnDate    *time.Time `json:"returnDate,omitempty"`
	Travelers     int        `json:"travelers,omitempty"`
	Interests     []string   `json:"interests,omitempty"`
}

// Validate checks the structural invariants of a preferences record.
func (p TravelPreferences) Validate() error {
	if strings.TrimSpace(p.Destination) == "" {
		return errors.New("destination is required")
	}
	// Zero means the traveler count was never given; only negatives are invalid.
	if p.Travelers < 0 {
		return errors.New("travelers must not be negative")
	}
	if p.DepartureDate != nil && p.ReturnDate != nil && p.ReturnDate.Before(*p.DepartureDate) {
		return errors.New("return date must not precede departure date")
	}
	return nil
}

// Itinerary is the structured trip plan. It is created fresh per request and
// never mutated after construction.
type Itinerary struct {
	ID             string          `json:"id"`
	Destination    string          `json:"destination"`
	StartDate      time.Time       `json:"startDate"`
	EndDate        time.Time       `json:"endDate"`
	Flights        []FlightOption  `json:"flights"`
	Accommodations []HotelOption   `json:"accommodations"`
	Activities     []DailyActivity `json:"activities"`
}

type FlightOption struct {
	ID               string    `json:"id"`
	Airline          string    `json:"airline"`
	DepartureAirport string    `json:"departureAirport"`
	ArrivalAirport   string    `json:"arrivalAirport"`
	DepartureTime    time.Time `json:"departureTime"`
	ArrivalTime      time.Time `json:"arrivalTime"`
	Price            float64   `json:"price"`
	Duration         string    `json:"duration"`
	Stops            int       `json:"stops"`
}

type HotelOption struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Location      string   `json:"location"`
	PricePerNight float64  `json:"pricePerNight"`
	Rating        float64  `json:"rating"`
	Amenities     []string `json:"amenities"`
	Image         string   `json:"image,omitempty"`
}

// DailyActivity groups the activity entries of one trip day (1-based).
type DailyActivity struct {
	Day        int             `json:"day"`
	Date       time.Time       `json:"date"`
	Activities []ActivityEntry `json:"activities"`
}

type ActivityEntry struct {
	Time        string   `json:"time"`
	Description string   `json:"description"`
	Location    string   `json:"location,omitempty"`
	Duration    string   `json:"duration,omitempty"`
	Cost        *float64 `json:"cost,omitempty"`
}
