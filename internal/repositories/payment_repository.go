package repositories

import (
	"context"
	"errors"

	"paygate/internal/models"
)

// ErrPaymentNotFound is returned when no record exists for an id.
var ErrPaymentNotFound = errors.New("payment not found")

// PaymentRepository stores processed payment outcomes keyed by record id.
// Save overwrites unconditionally; the last writer wins.
type PaymentRepository interface {
	Save(ctx context.Context, record *models.PaymentRecord) error
	FindByID(ctx context.Context, id string) (*models.PaymentRecord, error)
}
