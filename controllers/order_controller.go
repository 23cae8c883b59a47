package controllers

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"time"

	"github.com/gofiber/fiber/v2"

	"mealdash/models"
	"mealdash/repository"
	"mealdash/services"
)

// Ghana numbers only: +233 followed by nine digits.
var phonePattern = regexp.MustCompile(`^\+233\d{9}$`)

// ValidationError carries the offending field alongside the message.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// OrderController handles HTTP requests related to orders.
type OrderController struct {
	orderService services.IOrderService
}

// NewOrderController creates a new OrderController instance.
func NewOrderController(svc services.IOrderService) *OrderController {
	return &OrderController{orderService: svc}
}

// CreateOrder handles the POST /api/orders endpoint (cash path).
func (c *OrderController) CreateOrder(ctx *fiber.Ctx) error {
	var req models.CreateOrderRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body format"})
	}

	if err := validateCreateOrderRequest(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	// paymentMode must name an active payment method at validation time.
	methods, err := c.orderService.ActivePaymentMethodNames(ctx.UserContext())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if !slices.Contains(methods, req.PaymentMode) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": ValidationError{Field: "paymentMode", Message: "must match an active payment method"}.Error(),
		})
	}

	resp, err := c.orderService.CreateOrder(ctx.UserContext(), &req)
	if err != nil {
		if errors.Is(err, services.ErrFoodNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(resp)
}

// UpdateOrderStatus handles the PUT /api/orders/:id endpoint.
func (c *OrderController) UpdateOrderStatus(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id < 1 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid order id"})
	}

	var req models.UpdateOrderStatusRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body format"})
	}
	if req.OrderStatus == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "orderStatus is required"})
	}

	resp, err := c.orderService.UpdateOrderStatus(ctx.UserContext(), uint(id), req.OrderStatus)
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(resp)
}

// ListOrders handles the GET /api/orders endpoint.
func (c *OrderController) ListOrders(ctx *fiber.Ctx) error {
	filter := repository.OrderFilter{
		Status:  ctx.Query("status"),
		OrderID: ctx.Query("orderId"),
		Page:    ctx.QueryInt("page", 1),
		Limit:   ctx.QueryInt("limit", 10),
	}

	if raw := ctx.Query("startDate"); raw != "" {
		t, err := parseDate(raw)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid startDate"})
		}
		filter.StartDate = &t
	}
	if raw := ctx.Query("endDate"); raw != "" {
		t, err := parseDate(raw)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid endDate"})
		}
		filter.EndDate = &t
	}

	resp, err := c.orderService.ListOrders(ctx.UserContext(), filter)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(resp)
}

// TrackOrder handles the public GET /api/orders/track/:orderId endpoint.
func (c *OrderController) TrackOrder(ctx *fiber.Ctx) error {
	orderID := ctx.Params("orderId")

	resp, err := c.orderService.TrackOrder(ctx.UserContext(), orderID)
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(resp)
}

// DeleteOrder handles the DELETE /api/orders/:id endpoint.
func (c *OrderController) DeleteOrder(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id < 1 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid order id"})
	}

	if err := c.orderService.DeleteOrder(ctx.UserContext(), uint(id)); err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.SendStatus(fiber.StatusNoContent)
}

func validateCreateOrderRequest(req *models.CreateOrderRequest) error {
	if req.FoodID == 0 {
		return ValidationError{Field: "foodId", Message: "food id is required"}
	}
	if req.Quantity < 1 {
		return ValidationError{Field: "quantity", Message: "quantity must be at least 1"}
	}
	if req.DeliveryLocation == "" {
		return ValidationError{Field: "deliveryLocation", Message: "delivery location is required"}
	}
	if !phonePattern.MatchString(req.PhoneNumber) {
		return ValidationError{Field: "phoneNumber", Message: "must be a Ghana number in +233XXXXXXXXX format"}
	}
	if _, err := time.Parse(time.RFC3339, req.DeliveryTime); err != nil {
		return ValidationError{Field: "deliveryTime", Message: "must be an ISO-8601 timestamp"}
	}
	if req.PaymentMode == "" {
		return ValidationError{Field: "paymentMode", Message: "payment mode is required"}
	}
	return nil
}

// parseDate accepts an RFC3339 timestamp or a bare date.
func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}
