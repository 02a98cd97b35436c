// README: Deterministic prompt construction for the itinerary request.
package itinerary

import (
	"fmt"
	"strings"
)

// systemPrompt fixes the assistant persona and the reply contract: a single
// JSON document in the requested shape, no prose wrapper.
const systemPrompt = "You are an expert travel planner. Create detailed, realistic " +
	"itineraries based on user preferences. Reply with a single valid JSON document " +
	"in exactly the requested shape, with no surrounding prose and no markdown fences."

// replySchema is the exact shape the reply must follow. All dates and times
// are ISO-8601 strings.
const replySchema = `{
  "id": "string",
  "destination": "string",
  "startDate": "2025-06-15T00:00:00Z",
  "endDate": "2025-06-22T00:00:00Z",
  "flights": [
    {
      "id": "string",
      "airline": "string",
      "departureAirport": "IATA code",
      "arrivalAirport": "IATA code",
      "departureTime": "ISO-8601 timestamp",
      "arrivalTime": "ISO-8601 timestamp",
      "price": 0,
      "duration": "7h 30m",
      "stops": 0
    }
  ],
  "accommodations": [
    {
      "id": "string",
      "name": "string",
      "location": "string",
      "pricePerNight": 0,
      "rating": 4.5,
      "amenities": ["string"],
      "image": "https://example.com/hotel.jpg"
    }
  ],
  "activities": [
    {
      "day": 1,
      "date": "ISO-8601 date",
      "activities": [
        {
          "time": "09:00",
          "description": "string",
          "location": "string",
          "duration": "2h",
          "cost": 0
        }
      ]
    }
  ]
}`

// buildUserPrompt renders the preferences into the generation instruction.
// The rendering is deterministic: identical preferences produce an identical
// prompt. Absent fields are omitted, not defaulted.
func buildUserPrompt(prefs TravelPreferences) string {
	var b strings.Builder

	b.WriteString("Generate a detailed travel itinerary for a trip with the following preferences:\n")
	if prefs.Destination != "" {
		fmt.Fprintf(&b, "- Destination: %s\n", prefs.Destination)
	}
	if prefs.Budget != "" {
		fmt.Fprintf(&b, "- Budget: %s\n", prefs.Budget)
	}
	if prefs.DepartureDate != nil {
		fmt.Fprintf(&b, "- Departure date: %s\n", prefs.DepartureDate.Format("2006-01-02"))
	}
	if prefs.ReturnDate != nil {
		fmt.Fprintf(&b, "- Return date: %s\n", prefs.ReturnDate.Format("2006-01-02"))
	}
	if prefs.Travelers > 0 {
		fmt.Fprintf(&b, "- Travelers: %d\n", prefs.Travelers)
	}
	if len(prefs.Interests) > 0 {
		fmt.Fprintf(&b, "- Interests: %s\n", strings.Join(prefs.Interests, ", "))
	}

	b.WriteString("\nInclude the following details:\n")
	b.WriteString("1. A day-by-day breakdown of activities\n")
	b.WriteString("2. Suggested flight options with times and prices\n")
	b.WriteString("3. Recommended hotels with prices per night\n")
	b.WriteString("4. Food and dining suggestions\n")
	b.WriteString("5. Estimated costs for activities\n")

	b.WriteString("\nFormat the response as JSON in exactly this shape, using ISO-8601 strings for every date and time:\n")
	b.WriteString(replySchema)
	b.WriteString("\n")

	return b.String()
}
