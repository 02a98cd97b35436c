// README: Keyword-based preference extraction from free-form chat text.
package extract

import (
	"regexp"
	"strconv"
	"strings"

	"trippilot/internal/modules/itinerary"
)

// destinations is the fixed vocabulary scanned for destination mentions.
var destinations = []string{
	"paris", "london", "tokyo", "new york", "rome", "bali", "barcelona",
	"sydney", "dubai", "bangkok", "singapore", "hong kong", "istanbul",
	"amsterdam", "berlin", "venice", "prague", "rio", "lisbon", "vienna",
}

var (
	budgetPattern   = regexp.MustCompile(`\$(\d+)|(\d+)\s*[Dd]ollars`)
	travelerPattern = regexp.MustCompile(`(?i)(\d+)\s*(?:people|travelers|adults|persons)`)

	// Whole words only: "rio" must not match inside "period".
	destinationPattern = regexp.MustCompile(`\b(` + strings.Join(destinations, "|") + `)\b`)
)

// Extractor scans free text for trip preferences using a fixed, enumerable
// vocabulary. Anything it cannot match it leaves untouched.
type Extractor struct{}

func New() *Extractor { return &Extractor{} }

// Apply merges any preferences found in content into prefs and returns the
// updated record. A field is only overwritten when the text explicitly
// mentions it.
func (e *Extractor) Apply(content string, prefs itinerary.TravelPreferences) itinerary.TravelPreferences {
	lower := strings.ToLower(content)

	if strings.Contains(lower, "budget") {
		if m := budgetPattern.FindStringSubmatch(content); m != nil {
			if m[1] != "" {
				prefs.Budget = m[1]
			} else {
				prefs.Budget = m[2]
			}
		}
	}

	if strings.Contains(lower, "people") || strings.Contains(lower, "travelers") {
		if m := travelerPattern.FindStringSubmatch(content); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
				prefs.Travelers = n
			}
		}
	}

	if m := destinationPattern.FindString(lower); m != "" {
		prefs.Destination = titleCase(m)
	}

	return prefs
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
