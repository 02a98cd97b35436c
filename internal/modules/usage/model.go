package usage

import "errors"

// ErrQuotaExhausted is returned when a user has no generations remaining for the current month.
var ErrQuotaExhausted = errors.New("generation quota exhausted")

// DefaultQuota is the number of itinerary generations granted per month.
const DefaultQuota = 50
