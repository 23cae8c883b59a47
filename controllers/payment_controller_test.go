package controllers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"mealdash/models"
	"mealdash/services"
)

func newPaymentTestApp(svc services.IPaymentService) *fiber.App {
	ctrl := NewPaymentController(svc)
	app := fiber.New()
	app.Post("/api/payment/verify-payment", ctrl.VerifyPayment)
	return app
}

func TestPaymentController_VerifyPayment_Success(t *testing.T) {
	mockSvc := new(MockPaymentService)
	expected := &models.PaymentOrderResponse{
		Order: models.Order{
			OrderID:          "MD987654321",
			OrderStatus:      models.OrderStatusConfirmed,
			PaymentStatus:    models.PaymentStatusCompleted,
			PaymentReference: "ref_abc123",
		},
		FoodName:         "Jollof Rice with Chicken",
		AmountPaid:       decimal.NewFromFloat(98.00),
		TotalPrice:       decimal.NewFromFloat(98.00),
		PaymentStatus:    models.PaymentStatusCompleted,
		PaymentReference: "ref_abc123",
	}
	mockSvc.On("VerifyAndCreateOrder", mock.Anything, "ref_abc123").Return(expected, nil)

	app := newPaymentTestApp(mockSvc)

	payloadBytes, _ := json.Marshal(models.VerifyPaymentRequest{Reference: "ref_abc123", OrderID: "client-1"})
	req := httptest.NewRequest("POST", "/api/payment/verify-payment", bytes.NewReader(payloadBytes))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body models.PaymentOrderResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "MD987654321", body.Order.OrderID)
	assert.True(t, expected.AmountPaid.Equal(body.AmountPaid))
	mockSvc.AssertExpectations(t)
}

func TestPaymentController_VerifyPayment_MissingReference(t *testing.T) {
	mockSvc := new(MockPaymentService)
	app := newPaymentTestApp(mockSvc)

	payloadBytes, _ := json.Marshal(models.VerifyPaymentRequest{OrderID: "client-1"})
	req := httptest.NewRequest("POST", "/api/payment/verify-payment", bytes.NewReader(payloadBytes))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	mockSvc.AssertNotCalled(t, "VerifyAndCreateOrder")
}

func TestPaymentController_VerifyPayment_VerificationFailureIs400(t *testing.T) {
	mockSvc := new(MockPaymentService)
	mockSvc.On("VerifyAndCreateOrder", mock.Anything, "ref_failed").
		Return(nil, services.ErrVerificationFailed)

	app := newPaymentTestApp(mockSvc)

	payloadBytes, _ := json.Marshal(models.VerifyPaymentRequest{Reference: "ref_failed"})
	req := httptest.NewRequest("POST", "/api/payment/verify-payment", bytes.NewReader(payloadBytes))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestPaymentController_VerifyPayment_DuplicateReferenceIs400(t *testing.T) {
	mockSvc := new(MockPaymentService)
	mockSvc.On("VerifyAndCreateOrder", mock.Anything, "ref_dup").
		Return(nil, services.ErrDuplicateReference)

	app := newPaymentTestApp(mockSvc)

	payloadBytes, _ := json.Marshal(models.VerifyPaymentRequest{Reference: "ref_dup"})
	req := httptest.NewRequest("POST", "/api/payment/verify-payment", bytes.NewReader(payloadBytes))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestPaymentController_VerifyPayment_CreationFailureAfterCaptureIs500(t *testing.T) {
	mockSvc := new(MockPaymentService)
	mockSvc.On("VerifyAndCreateOrder", mock.Anything, "ref_gap").
		Return(nil, services.ErrFoodNotFound)

	app := newPaymentTestApp(mockSvc)

	payloadBytes, _ := json.Marshal(models.VerifyPaymentRequest{Reference: "ref_gap"})
	req := httptest.NewRequest("POST", "/api/payment/verify-payment", bytes.NewReader(payloadBytes))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}
