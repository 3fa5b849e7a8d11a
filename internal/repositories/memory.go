package repositories

import (
	"context"
	"sync"

	"paygate/internal/models"
)

// MemoryPaymentRepository is a concurrency-safe in-memory payment store.
// Records live for the lifetime of the process; there is no eviction.
type MemoryPaymentRepository struct {
	mu       sync.RWMutex
	payments map[string]*models.PaymentRecord
}

func NewMemoryPaymentRepository() *MemoryPaymentRepository {
	return &MemoryPaymentRepository{payments: make(map[string]*models.PaymentRecord)}
}

func (r *MemoryPaymentRepository) Save(_ context.Context, record *models.PaymentRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.payments[record.ID] = record
	return nil
}

func (r *MemoryPaymentRepository) FindByID(_ context.Context, id string) (*models.PaymentRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	record, ok := r.payments[id]
	if !ok {
		return nil, ErrPaymentNotFound
	}
	return record, nil
}
