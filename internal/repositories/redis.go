package repositories

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"

	"paygate/internal/models"
)

const paymentKeyPrefix = "payment:"

// RedisPaymentRepository stores payment records in Redis as JSON. It honors
// the same last-writer-wins contract as the in-memory store.
type RedisPaymentRepository struct {
	client *redis.Client
}

func NewRedisPaymentRepository(client *redis.Client) *RedisPaymentRepository {
	return &RedisPaymentRepository{client: client}
}

func (r *RedisPaymentRepository) Save(ctx context.Context, record *models.PaymentRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, paymentKeyPrefix+record.ID, data, 0).Err()
}

func (r *RedisPaymentRepository) FindByID(ctx context.Context, id string) (*models.PaymentRecord, error) {
	val, err := r.client.Get(ctx, paymentKeyPrefix+id).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}

	var record models.PaymentRecord
	if err := json.Unmarshal([]byte(val), &record); err != nil {
		return nil, err
	}
	return &record, nil
}
