package payment

// NormalizedPaymentRequest is the validated internal shape of a payment
// request, with the currency resolved to its canonical code. It exists
// only between validation and the bank call.
type NormalizedPaymentRequest struct {
	CardNumber  string
	ExpiryMonth int
	ExpiryYear  int
	Currency    string
	Amount      int64
	CVV         string
}
