// README: Reply parsing and timestamp coercion for completion payloads.
package itinerary

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Raw payload mirrors of the reply schema. Every timestamp arrives as a
// string and is coerced explicitly; field types are never trusted by
// assumption.
type rawItinerary struct {
	ID             string      `json:"id"`
	Destination    string      `json:"destination"`
	StartDate      string      `json:"startDate"`
	EndDate        string      `json:"endDate"`
	Flights        []rawFlight `json:"flights"`
	Accommodations []rawHotel  `json:"accommodations"`
	Activities     []rawDay    `json:"activities"`
}

type rawFlight struct {
	ID               string  `json:"id"`
	Airline          string  `json:"airline"`
	DepartureAirport string  `json:"departureAirport"`
	ArrivalAirport   string  `json:"arrivalAirport"`
	DepartureTime    string  `json:"departureTime"`
	ArrivalTime      string  `json:"arrivalTime"`
	Price            float64 `json:"price"`
	Duration         string  `json:"duration"`
	Stops            int     `json:"stops"`
}

type rawHotel struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Location      string   `json:"location"`
	PricePerNight float64  `json:"pricePerNight"`
	Rating        float64  `json:"rating"`
	Amenities     []string `json:"amenities"`
	Image         string   `json:"image"`
}

type rawDay struct {
	Day        int             `json:"day"`
	Date       string          `json:"date"`
	Activities []ActivityEntry `json:"activities"`
}

// parseItinerary turns the raw reply text into a typed Itinerary. Invalid or
// missing dates are a terminal parse failure; absent option arrays default to
// empty sequences because the model omitting an optional section is not
// itself an error.
func parseItinerary(text string) (*Itinerary, error) {
	cleaned := cleanJSONString(text)

	var raw rawItinerary
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		return nil, &ParseError{Raw: text, Err: fmt.Errorf("decode json: %w", err)}
	}

	start, err := parseTimestamp(raw.StartDate)
	if err != nil {
		return nil, &ParseError{Raw: text, Err: fmt.Errorf("startDate: %w", err)}
	}
	end, err := parseTimestamp(raw.EndDate)
	if err != nil {
		return nil, &ParseError{Raw: text, Err: fmt.Errorf("endDate: %w", err)}
	}

	flights := make([]FlightOption, 0, len(raw.Flights))
	for i, f := range raw.Flights {
		dep, err := parseTimestamp(f.DepartureTime)
		if err != nil {
			return nil, &ParseError{Raw: text, Err: fmt.Errorf("flights[%d].departureTime: %w", i, err)}
		}
		arr, err := parseTimestamp(f.ArrivalTime)
		if err != nil {
			return nil, &ParseError{Raw: text, Err: fmt.Errorf("flights[%d].arrivalTime: %w", i, err)}
		}
		flights = append(flights, FlightOption{
			ID:               f.ID,
			Airline:          f.Airline,
			DepartureAirport: f.DepartureAirport,
			ArrivalAirport:   f.ArrivalAirport,
			DepartureTime:    dep,
			ArrivalTime:      arr,
			Price:            f.Price,
			Duration:         f.Duration,
			Stops:            f.Stops,
		})
	}

	accommodations := make([]HotelOption, 0, len(raw.Accommodations))
	for _, h := range raw.Accommodations {
		amenities := h.Amenities
		if amenities == nil {
			amenities = []string{}
		}
		accommodations = append(accommodations, HotelOption{
			ID:            h.ID,
			Name:          h.Name,
			Location:      h.Location,
			PricePerNight: h.PricePerNight,
			Rating:        h.Rating,
			Amenities:     amenities,
			Image:         h.Image,
		})
	}

	days := make([]DailyActivity, 0, len(raw.Activities))
	for i, d := range raw.Activities {
		date, err := parseTimestamp(d.Date)
		if err != nil {
			return nil, &ParseError{Raw: text, Err: fmt.Errorf("activities[%d].date: %w", i, err)}
		}
		entries := d.Activities
		if entries == nil {
			entries = []ActivityEntry{}
		}
		days = append(days, DailyActivity{Day: d.Day, Date: date, Activities: entries})
	}

	id := strings.TrimSpace(raw.ID)
	if id == "" {
		id = uuid.NewString()
	}

	return &Itinerary{
		ID:             id,
		Destination:    raw.Destination,
		StartDate:      start,
		EndDate:        end,
		Flights:        flights,
		Accommodations: accommodations,
		Activities:     days,
	}, nil
}

// parseTimestamp accepts the ISO-8601 forms completion services actually
// produce: RFC3339, a bare datetime, or a calendar date.
func parseTimestamp(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, errors.New("missing timestamp")
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", v)
}

// cleanJSONString removes markdown code blocks if present (e.g. ```json ... ```)
func cleanJSONString(input string) string {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "```json")
	input = strings.TrimPrefix(input, "```")
	input = strings.TrimSuffix(input, "```")
	return strings.TrimSpace(input)
}
