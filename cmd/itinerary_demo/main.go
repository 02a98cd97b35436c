// README: Demo runner; generates a sample itinerary against the live completion service.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"trippilot/internal/ai"
	"trippilot/internal/modules/itinerary"
)

func main() {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		log.Fatal("OPENAI_API_KEY environment variable not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	svc := itinerary.NewService(ai.NewOpenAIClient(apiKey), nil)

	departure := time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)
	ret := departure.AddDate(0, 0, 7)
	prefs := itinerary.TravelPreferences{
		Destination:   "Paris",
		Budget:        "3000",
		DepartureDate: &departure,
		ReturnDate:    &ret,
		Travelers:     2,
		Interests:     []string{"Food & Dining", "Museums & Culture"},
	}

	it, err := svc.Generate(ctx, prefs)
	if err != nil {
		log.Fatalf("Generate: %v", err)
	}

	fmt.Printf("Itinerary %s: %s (%s - %s)\n", it.ID, it.Destination,
		it.StartDate.Format("2006-01-02"), it.EndDate.Format("2006-01-02"))
	fmt.Printf("Flights: %d  Hotels: %d  Days planned: %d\n",
		len(it.Flights), len(it.Accommodations), len(it.Activities))
	for _, day := range it.Activities {
		fmt.Printf("Day %d (%s): %d activities\n", day.Day, day.Date.Format("2006-01-02"), len(day.Activities))
	}
}
