package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"paygate/internal/bank"
	"paygate/internal/models"
	"paygate/internal/repositories"
	payment "paygate/internal/services/payment"
	"paygate/internal/utils/response"
)

type PaymentHandler struct {
	service payment.Service
}

func NewPaymentHandler(svc payment.Service) *PaymentHandler {
	return &PaymentHandler{service: svc}
}

// CreatePayment handles a card payment authorization request. A declined
// authorization is still a 201; only validation and upstream failures map
// to error statuses.
func (h *PaymentHandler) CreatePayment(c *fiber.Ctx) error {
	var req models.PaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid input data: malformed request body")
	}

	record, err := h.service.ProcessPayment(c.Context(), &req)
	if err != nil {
		var validationErr *payment.ValidationError
		var upstreamErr *bank.UpstreamError
		switch {
		case errors.As(err, &validationErr):
			return response.BadRequest(c, fmt.Sprintf("Invalid input data: %s", validationErr.Details))
		case errors.As(err, &upstreamErr):
			return response.BadGateway(c, "Error processing payment")
		default:
			return response.ServerError(c, "Error processing payment")
		}
	}

	return response.Created(c, record)
}

// GetPayment returns a previously processed payment by its identifier.
func (h *PaymentHandler) GetPayment(c *fiber.Ctx) error {
	record, err := h.service.GetPayment(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrPaymentNotFound) {
			return response.NotFound(c, "Page not found")
		}
		return response.ServerError(c, "Error processing payment")
	}

	return response.OK(c, record)
}
