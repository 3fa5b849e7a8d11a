package payment

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"golang.org/x/text/currency"

	"paygate/internal/bank"
	"paygate/internal/models"
	"paygate/internal/repositories"
	"paygate/internal/validation"
)

type service struct {
	repo repositories.PaymentRepository
	bank BankClient
}

// NewService creates a new payment service
func NewService(repo repositories.PaymentRepository, bankClient BankClient) Service {
	if repo == nil {
		panic("repo is required")
	}
	if bankClient == nil {
		panic("bank client is required")
	}

	return &service{
		repo: repo,
		bank: bankClient,
	}
}

// ProcessPayment runs the full pipeline: validate and normalize the
// request, authorize it with the acquiring bank, build the persisted
// record, and store it. Validation failures never reach the bank; upstream
// failures never reach the store.
func (s *service) ProcessPayment(ctx context.Context, req *models.PaymentRequest) (*models.PaymentRecord, error) {
	normalized, err := s.normalize(req)
	if err != nil {
		return nil, err
	}

	result, err := s.bank.ProcessPayment(ctx, bank.Request{
		CardNumber: normalized.CardNumber,
		ExpiryDate: fmt.Sprintf("%d/%d", normalized.ExpiryMonth, normalized.ExpiryYear),
		Currency:   normalized.Currency,
		Amount:     normalized.Amount,
		CVV:        normalized.CVV,
	})
	if err != nil {
		return nil, err
	}

	record := &models.PaymentRecord{
		ID:                 recordID(result.AuthorizationCode),
		Status:             statusFor(result.Authorized),
		CardNumberLastFour: lastFour(normalized.CardNumber),
		ExpiryMonth:        normalized.ExpiryMonth,
		ExpiryYear:         normalized.ExpiryYear,
		Currency:           normalized.Currency,
		Amount:             normalized.Amount,
	}

	if err := s.repo.Save(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to save payment: %w", err)
	}

	return record, nil
}

func (s *service) GetPayment(ctx context.Context, id string) (*models.PaymentRecord, error) {
	return s.repo.FindByID(ctx, id)
}

// normalize validates the request and produces its internal shape. All
// violated constraints are reported together in a single error.
func (s *service) normalize(req *models.PaymentRequest) (*NormalizedPaymentRequest, error) {
	v := validation.New()
	v.Payment(req)
	if !v.Valid() {
		return nil, &ValidationError{Details: v.Details()}
	}

	unit, _ := currency.ParseISO(req.Currency)

	return &NormalizedPaymentRequest{
		CardNumber:  req.CardNumber,
		ExpiryMonth: req.ExpiryMonth,
		ExpiryYear:  req.ExpiryYear,
		Currency:    unit.String(),
		Amount:      *req.Amount,
		CVV:         req.CVV,
	}, nil
}

// recordID uses the bank's authorization code as the record identifier when
// it is a well-formed UUID. Declines and malformed codes get a freshly
// generated identifier instead of failing the payment.
func recordID(authorizationCode string) string {
	if id, err := uuid.Parse(authorizationCode); err == nil {
		return id.String()
	}
	return uuid.NewString()
}

func statusFor(authorized bool) models.PaymentStatus {
	if authorized {
		return models.StatusAuthorized
	}
	return models.StatusDeclined
}

// lastFour returns the numeric value of the final four digits of a
// validated card number. Nothing else of the number is retained.
func lastFour(cardNumber string) int {
	n, _ := strconv.Atoi(cardNumber[len(cardNumber)-4:])
	return n
}
