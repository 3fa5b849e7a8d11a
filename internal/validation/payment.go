package validation

import (
	"time"

	"golang.org/x/text/currency"

	"paygate/internal/models"
)

// Payment validates a payment authorization request. Every violated
// constraint is recorded, not only the first one found.
func (v *Validator) Payment(req *models.PaymentRequest) {
	v.Check(cardNumberRegex.MatchString(req.CardNumber), "card_number",
		"must contain only numeric characters and be 14-19 digits")
	v.Check(cvvRegex.MatchString(req.CVV), "cvv",
		"must contain only numeric characters and have a length of 3 or 4 digits")

	if _, err := currency.ParseISO(req.Currency); err != nil {
		v.AddError("currency", "must be a recognized ISO 4217 currency code")
	}

	if req.Amount == nil {
		v.AddError("amount", "must be provided")
	} else {
		v.Check(*req.Amount >= 0, "amount", "must not be negative")
	}

	monthOK := req.ExpiryMonth >= MinExpiryMonth && req.ExpiryMonth <= MaxExpiryMonth
	v.Check(monthOK, "expiry_month", "must be between 1 and 12")
	if monthOK {
		v.Check(expiryInFuture(req.ExpiryMonth, req.ExpiryYear, time.Now()),
			"expiry_date", "must be in the future")
	}
}

// expiryInFuture reports whether (month, year) denotes a month strictly
// after now. Comparison is at month granularity; the day is irrelevant.
func expiryInFuture(month, year int, now time.Time) bool {
	if year != now.Year() {
		return year > now.Year()
	}
	return month > int(now.Month())
}
