package validation

import "regexp"

// Structural constraints on inbound payment requests.
var (
	cardNumberRegex = regexp.MustCompile(`^\d{14,19}$`)
	cvvRegex        = regexp.MustCompile(`^\d{3,4}$`)
)

const (
	MinExpiryMonth = 1
	MaxExpiryMonth = 12
)
