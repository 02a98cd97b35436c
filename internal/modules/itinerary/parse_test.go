// README: Parse and coercion tests for completion payloads.
package itinerary

import (
	"errors"
	"testing"
	"time"
)

// parisReply is a well-formed reply: one flight, one hotel, two activity days.
const parisReply = `{
  "id": "trip-paris-001",
  "destination": "Paris",
  "startDate": "2025-06-15T00:00:00Z",
  "endDate": "2025-06-22T00:00:00Z",
  "flights": [
    {
      "id": "fl-1",
      "airline": "Air France",
      "departureAirport": "JFK",
      "arrivalAirport": "CDG",
      "departureTime": "2025-06-15T08:30:00Z",
      "arrivalTime": "2025-06-15T21:45:00Z",
      "price": 850,
      "duration": "7h 15m",
      "stops": 0
    }
  ],
  "accommodations": [
    {
      "id": "ht-1",
      "name": "Hotel Lutetia",
      "location": "Saint-Germain-des-Pres",
      "pricePerNight": 320,
      "rating": 4.7,
      "amenities": ["WiFi", "Spa", "Breakfast"],
      "image": "https://example.com/lutetia.jpg"
    }
  ],
  "activities": [
    {
      "day": 1,
      "date": "2025-06-15",
      "activities": [
        {"time": "09:00", "description": "Walk the Marais", "location": "Le Marais", "duration": "2h", "cost": 0},
        {"time": "13:00", "description": "Lunch at a bistro", "location": "Rue de Rivoli", "cost": 45}
      ]
    },
    {
      "day": 2,
      "date": "2025-06-16",
      "activities": [
        {"time": "10:00", "description": "Louvre visit", "duration": "3h", "cost": 22}
      ]
    }
  ]
}`

func TestParseItinerary_RoundTrip(t *testing.T) {
	it, err := parseItinerary(parisReply)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if it.ID != "trip-paris-001" {
		t.Errorf("expected id trip-paris-001, got %q", it.ID)
	}
	if len(it.Flights) != 1 || len(it.Accommodations) != 1 || len(it.Activities) != 2 {
		t.Fatalf("expected 1 flight, 1 hotel, 2 days; got %d/%d/%d",
			len(it.Flights), len(it.Accommodations), len(it.Activities))
	}

	wantDate := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	if !it.Activities[0].Date.Equal(wantDate) {
		t.Errorf("expected day 1 date %v, got %v", wantDate, it.Activities[0].Date)
	}
	if got := it.Flights[0].DepartureTime; got.IsZero() {
		t.Errorf("flight departure time not parsed: %v", got)
	}
	if len(it.Activities[0].Activities) != 2 {
		t.Errorf("expected 2 entries on day 1, got %d", len(it.Activities[0].Activities))
	}
}

func TestParseItinerary_PreservesArrayOrder(t *testing.T) {
	reply := `{
	  "destination": "Rome",
	  "startDate": "2025-09-01",
	  "endDate": "2025-09-03",
	  "flights": [
	    {"id": "first", "departureTime": "2025-09-01T06:00:00Z", "arrivalTime": "2025-09-01T09:00:00Z"},
	    {"id": "second", "departureTime": "2025-09-01T12:00:00Z", "arrivalTime": "2025-09-01T15:00:00Z"}
	  ]
	}`
	it, err := parseItinerary(reply)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if it.Flights[0].ID != "first" || it.Flights[1].ID != "second" {
		t.Errorf("flight order not preserved: %q, %q", it.Flights[0].ID, it.Flights[1].ID)
	}
}

func TestParseItinerary_MissingArraysDefaultEmpty(t *testing.T) {
	reply := `{"id": "t1", "destination": "Lisbon", "startDate": "2025-03-01", "endDate": "2025-03-05"}`
	it, err := parseItinerary(reply)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if it.Flights == nil || len(it.Flights) != 0 {
		t.Errorf("expected empty flights, got %v", it.Flights)
	}
	if it.Accommodations == nil || len(it.Accommodations) != 0 {
		t.Errorf("expected empty accommodations, got %v", it.Accommodations)
	}
	if it.Activities == nil || len(it.Activities) != 0 {
		t.Errorf("expected empty activities, got %v", it.Activities)
	}
}

func TestParseItinerary_MissingDayEntriesDefaultEmpty(t *testing.T) {
	reply := `{
	  "destination": "Lisbon",
	  "startDate": "2025-03-01",
	  "endDate": "2025-03-02",
	  "activities": [{"day": 1, "date": "2025-03-01"}]
	}`
	it, err := parseItinerary(reply)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if it.Activities[0].Activities == nil || len(it.Activities[0].Activities) != 0 {
		t.Errorf("expected empty day entries, got %v", it.Activities[0].Activities)
	}
}

func TestParseItinerary_InvalidJSON(t *testing.T) {
	raw := "Sure! Here is your trip: it will be great."
	_, err := parseItinerary(raw)
	if !errors.Is(err, ErrMalformedResponse) {
		t.Fatalf("expected ErrMalformedResponse, got %v", err)
	}

	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if pe.Raw != raw {
		t.Errorf("raw text not preserved for diagnostics: %q", pe.Raw)
	}
}

func TestParseItinerary_InvalidStartDate(t *testing.T) {
	reply := `{"destination": "Tokyo", "startDate": "soon", "endDate": "2025-05-10"}`
	_, err := parseItinerary(reply)
	if !errors.Is(err, ErrMalformedResponse) {
		t.Fatalf("expected ErrMalformedResponse, got %v", err)
	}
}

func TestParseItinerary_MissingFlightTime(t *testing.T) {
	reply := `{
	  "destination": "Tokyo",
	  "startDate": "2025-05-01",
	  "endDate": "2025-05-10",
	  "flights": [{"id": "fl-1", "airline": "ANA", "arrivalTime": "2025-05-01T15:00:00Z"}]
	}`
	_, err := parseItinerary(reply)
	if !errors.Is(err, ErrMalformedResponse) {
		t.Fatalf("expected ErrMalformedResponse for missing departure time, got %v", err)
	}
}

func TestParseItinerary_StripsMarkdownFences(t *testing.T) {
	fenced := "```json\n" + parisReply + "\n```"
	it, err := parseItinerary(fenced)
	if err != nil {
		t.Fatalf("parse fenced: %v", err)
	}
	if it.Destination != "Paris" {
		t.Errorf("expected Paris, got %q", it.Destination)
	}
}

func TestParseItinerary_GeneratesIDWhenAbsent(t *testing.T) {
	reply := `{"destination": "Lisbon", "startDate": "2025-03-01", "endDate": "2025-03-05"}`
	it, err := parseItinerary(reply)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if it.ID == "" {
		t.Error("expected generated identifier for payload without id")
	}
}

func TestParseTimestamp_Forms(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
	}{
		{"2025-06-15T08:30:00Z", time.Date(2025, 6, 15, 8, 30, 0, 0, time.UTC)},
		{"2025-06-15T08:30:00", time.Date(2025, 6, 15, 8, 30, 0, 0, time.UTC)},
		{"2025-06-15", time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)},
	}
	for _, c := range cases {
		got, err := parseTimestamp(c.in)
		if err != nil {
			t.Errorf("parseTimestamp(%q): %v", c.in, err)
			continue
		}
		if !got.Equal(c.want) {
			t.Errorf("parseTimestamp(%q) = %v, want %v", c.in, got, c.want)
		}
	}

	for _, bad := range []string{"", "next tuesday", "15/06/2025"} {
		if _, err := parseTimestamp(bad); err == nil {
			t.Errorf("parseTimestamp(%q): expected error", bad)
		}
	}
}
