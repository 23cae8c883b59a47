package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"mealdash/cache"
	"mealdash/models"
	"mealdash/repository"
)

// IOrderService defines the interface for the order workflow.
type IOrderService interface {
	CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.OrderResponse, error)
	UpdateOrderStatus(ctx context.Context, id uint, status string) (*models.OrderResponse, error)
	ListOrders(ctx context.Context, filter repository.OrderFilter) (*models.OrderListResponse, error)
	TrackOrder(ctx context.Context, orderID string) (*models.OrderResponse, error)
	DeleteOrder(ctx context.Context, id uint) error
	ActivePaymentMethodNames(ctx context.Context) ([]string, error)
}

// OrderService implements IOrderService.
type OrderService struct {
	orderRepo  repository.IOrderRepository
	smsService ISMSService
	events     IEventPublisher
	cache      cache.CacheRepository
	logger     *slog.Logger
}

// NewOrderService creates a new OrderService instance.
func NewOrderService(repo repository.IOrderRepository, sms ISMSService, events IEventPublisher, c cache.CacheRepository, logger *slog.Logger) IOrderService {
	return &OrderService{
		orderRepo:  repo,
		smsService: sms,
		events:     events,
		cache:      c,
		logger:     logger,
	}
}

// CreateOrder handles the cash-path order creation: resolve the food, price
// the order against the current catalog, persist it as Pending, then notify.
func (s *OrderService) CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.OrderResponse, error) {
	food, err := s.orderRepo.FindFoodByID(req.FoodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrFoodNotFound, req.FoodID)
		}
		return nil, fmt.Errorf("failed to look up food: %w", err)
	}

	// A drink is just another addon; it rides along under its name.
	addonNames := make([]string, 0, len(req.Addons)+1)
	addonNames = append(addonNames, req.Addons...)
	if req.Drink != "" {
		addonNames = append(addonNames, req.Drink)
	}

	resolved, err := s.orderRepo.FindAddonsByNames(addonNames)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve addons: %w", err)
	}
	total := ComputeTotal(food, req.Quantity, addonNames, resolved)

	deliveryTime, err := time.Parse(time.RFC3339, req.DeliveryTime)
	if err != nil {
		return nil, fmt.Errorf("invalid delivery time: %w", err)
	}

	// The food lookup, addon lookup and insert are three independent round
	// trips; a catalog edit in between prices the order against mixed state.
	order := &models.Order{
		OrderID:          GenerateOrderID(),
		FoodID:           food.ID,
		Quantity:         req.Quantity,
		Addons:           datatypes.JSONSlice[string](addonNames),
		DeliveryLocation: req.DeliveryLocation,
		PhoneNumber:      req.PhoneNumber,
		DeliveryTime:     deliveryTime,
		PaymentMode:      req.PaymentMode,
		AdditionalNotes:  req.AdditionalNotes,
		OrderStatus:      models.OrderStatusPending,
	}
	if err := s.orderRepo.CreateOrder(order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	order.Food = *food

	// Only pay-on-delivery orders are acknowledged from this path; card and
	// mobile-money orders get their confirmation from the payment path.
	if req.PaymentMode == "Cash" {
		s.sendSMS(ctx, order.PhoneNumber, fmt.Sprintf(
			"Your order %s has been received: %d x %s, total GHS %s. We will confirm it shortly.",
			order.OrderID, order.Quantity, food.Name, total.StringFixed(2)))
	}

	s.publishEvent(EventOrderCreated, order, total)

	return &models.OrderResponse{Order: *order, FoodName: food.Name, TotalPrice: total}, nil
}

// UpdateOrderStatus persists a new status and notifies the customer. Any
// non-empty status string is accepted; unknown values get the generic SMS
// template.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, id uint, status string) (*models.OrderResponse, error) {
	if _, err := s.orderRepo.FindOrderByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrOrderNotFound, id)
		}
		return nil, fmt.Errorf("failed to look up order: %w", err)
	}

	if err := s.orderRepo.UpdateOrderStatus(id, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrOrderNotFound, id)
		}
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	order, err := s.orderRepo.FindOrderByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload order: %w", err)
	}

	s.sendSMS(ctx, order.PhoneNumber, statusMessage(order.OrderID, status))

	resp, err := s.toResponse(order)
	if err != nil {
		return nil, err
	}
	s.publishEvent(EventOrderStatusChanged, order, resp.TotalPrice)
	return &resp, nil
}

// ListOrders returns a filtered page of orders with per-row recomputed
// totals.
func (s *OrderService) ListOrders(ctx context.Context, filter repository.OrderFilter) (*models.OrderListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}

	orders, total, err := s.orderRepo.ListOrders(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	responses := make([]models.OrderResponse, 0, len(orders))
	for i := range orders {
		resp, err := s.toResponse(&orders[i])
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))
	return &models.OrderListResponse{
		Orders:     responses,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
	}, nil
}

// TrackOrder is the public lookup by the human-facing MD identifier.
func (s *OrderService) TrackOrder(ctx context.Context, orderID string) (*models.OrderResponse, error) {
	order, err := s.orderRepo.FindOrderByOrderID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrOrderNotFound, orderID)
		}
		return nil, fmt.Errorf("failed to look up order: %w", err)
	}
	resp, err := s.toResponse(order)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteOrder removes an order permanently.
func (s *OrderService) DeleteOrder(ctx context.Context, id uint) error {
	if err := s.orderRepo.DeleteOrder(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: id %d", ErrOrderNotFound, id)
		}
		return fmt.Errorf("failed to delete order: %w", err)
	}
	return nil
}

// ActivePaymentMethodNames returns the payment modes a new order may name,
// served from cache when possible.
func (s *OrderService) ActivePaymentMethodNames(ctx context.Context) ([]string, error) {
	if names, err := s.cache.GetPaymentMethods(ctx); err != nil {
		s.logger.Warn("payment method cache read failed", "error", err)
	} else if len(names) > 0 {
		return names, nil
	}

	methods, err := s.orderRepo.FindActivePaymentMethods()
	if err != nil {
		return nil, fmt.Errorf("failed to load payment methods: %w", err)
	}
	names := make([]string, 0, len(methods))
	for _, m := range methods {
		names = append(names, m.Name)
	}

	if err := s.cache.SetPaymentMethods(ctx, names); err != nil {
		s.logger.Warn("payment method cache write failed", "error", err)
	}
	return names, nil
}

// toResponse shapes an order row, resolving its addon names against the
// current catalog to derive the total. Unmatched names price as zero, but a
// failed lookup is an error: a datastore outage must not display a total
// that pretends the addons were free.
func (s *OrderService) toResponse(order *models.Order) (models.OrderResponse, error) {
	names := []string(order.Addons)
	resolved, err := s.orderRepo.FindAddonsByNames(names)
	if err != nil {
		return models.OrderResponse{}, fmt.Errorf("failed to resolve addons: %w", err)
	}
	total := ComputeTotal(&order.Food, order.Quantity, names, resolved)
	return models.OrderResponse{Order: *order, FoodName: order.Food.Name, TotalPrice: total}, nil
}

// sendSMS delivers a customer notification best-effort. The order is already
// persisted by the time this runs, so a delivery failure is logged and
// swallowed rather than failing the request.
func (s *OrderService) sendSMS(ctx context.Context, recipient, message string) {
	if err := s.smsService.SendSMS(ctx, recipient, message); err != nil {
		s.logger.Error("failed to send customer sms",
			"recipient", recipient, "error", err)
	}
}

// publishEvent emits an order event best-effort.
func (s *OrderService) publishEvent(eventType string, order *models.Order, total decimal.Decimal) {
	err := s.events.PublishOrderEvent(OrderEvent{
		Type:        eventType,
		OrderID:     order.OrderID,
		OrderStatus: order.OrderStatus,
		PaymentMode: order.PaymentMode,
		TotalPrice:  total.StringFixed(2),
	})
	if err != nil {
		s.logger.Error("failed to publish order event",
			"type", eventType, "order_id", order.OrderID, "error", err)
	}
}

// statusMessage picks the customer SMS for a status change.
func statusMessage(orderID, status string) string {
	switch status {
	case models.OrderStatusConfirmed:
		return fmt.Sprintf("Your order %s has been confirmed and is being prepared.", orderID)
	case models.OrderStatusDelivered:
		return fmt.Sprintf("Your order %s has been delivered. Enjoy your meal!", orderID)
	case models.OrderStatusCancelled:
		return fmt.Sprintf("Your order %s has been cancelled. Please contact us if you were not expecting this.", orderID)
	default:
		return fmt.Sprintf("Your order %s has been updated. Status: %s", orderID, status)
	}
}
