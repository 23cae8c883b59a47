package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"mealdash/models"
	"mealdash/services"
)

// PaymentController handles HTTP requests for payment-verified orders.
type PaymentController struct {
	paymentService services.IPaymentService
}

// NewPaymentController creates a new PaymentController instance.
func NewPaymentController(svc services.IPaymentService) *PaymentController {
	return &PaymentController{paymentService: svc}
}

// VerifyPayment handles the POST /api/payment/verify-payment endpoint. The
// frontend calls it after the gateway redirect; the order itself is rebuilt
// from the transaction metadata, not from this request body.
func (c *PaymentController) VerifyPayment(ctx *fiber.Ctx) error {
	var req models.VerifyPaymentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body format"})
	}
	if req.Reference == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "reference is required"})
	}

	resp, err := c.paymentService.VerifyAndCreateOrder(ctx.UserContext(), req.Reference)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrVerificationFailed),
			errors.Is(err, services.ErrDuplicateReference):
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		default:
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}

	return ctx.Status(fiber.StatusOK).JSON(resp)
}
