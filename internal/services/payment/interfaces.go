package payment

import (
	"context"

	"paygate/internal/bank"
	"paygate/internal/models"
)

// BankClient authorizes payments with the acquiring bank.
type BankClient interface {
	ProcessPayment(ctx context.Context, req bank.Request) (*bank.Response, error)
}

// Service drives a payment from validation through persistence.
type Service interface {
	ProcessPayment(ctx context.Context, req *models.PaymentRequest) (*models.PaymentRecord, error)
	GetPayment(ctx context.Context, id string) (*models.PaymentRecord, error)
}
