package models

// PaymentStatus is the terminal outcome of a processed payment.
type PaymentStatus string

const (
	StatusAuthorized PaymentStatus = "Authorized"
	StatusDeclined   PaymentStatus = "Declined"
)

// PaymentRequest is an inbound card payment authorization request,
// as received at the boundary before validation.
type PaymentRequest struct {
	CardNumber  string `json:"card_number"`
	ExpiryMonth int    `json:"expiry_month"`
	ExpiryYear  int    `json:"expiry_year"`
	Currency    string `json:"currency"`
	Amount      *int64 `json:"amount"`
	CVV         string `json:"cvv"`
}

// PaymentRecord is the persisted outcome of a processed payment.
// Only the last four digits of the card number survive processing;
// the full number and CVV are never stored.
type PaymentRecord struct {
	ID                 string        `json:"id"`
	Status             PaymentStatus `json:"status"`
	CardNumberLastFour int           `json:"cardNumberLastFour"`
	ExpiryMonth        int           `json:"expiryMonth"`
	ExpiryYear         int           `json:"expiryYear"`
	Currency           string        `json:"currency"`
	Amount             int64         `json:"amount"`
}
