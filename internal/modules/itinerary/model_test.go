package itinerary

import (
	"testing"
	"time"
)

func TestPreferencesValidate(t *testing.T) {
	dep := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	ret := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	if err := parisPreferences().Validate(); err != nil {
		t.Errorf("valid preferences rejected: %v", err)
	}
	// Zero travelers means the count was never given, not a party of zero.
	if err := (TravelPreferences{Destination: "Rome"}).Validate(); err != nil {
		t.Errorf("minimal preferences rejected: %v", err)
	}

	if err := (TravelPreferences{}).Validate(); err == nil {
		t.Error("expected error for missing destination")
	}
	if err := (TravelPreferences{Destination: "Rome", Travelers: -1}).Validate(); err == nil {
		t.Error("expected error for negative travelers")
	}
	if err := (TravelPreferences{Destination: "Rome", DepartureDate: &dep, ReturnDate: &ret}).Validate(); err == nil {
		t.Error("expected error for return before departure")
	}
}
