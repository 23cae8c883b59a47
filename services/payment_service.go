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

// IPaymentService defines the interface for payment-verified order creation.
type IPaymentService interface {
	VerifyAndCreateOrder(ctx context.Context, reference string) (*models.PaymentOrderResponse, error)
}

// PaymentService implements IPaymentService.
type PaymentService struct {
	orderRepo  repository.IOrderRepository
	gateway    IPaymentGateway
	smsService ISMSService
	events     IEventPublisher
	cache      cache.CacheRepository
	logger     *slog.Logger
}

// NewPaymentService creates a new PaymentService instance.
func NewPaymentService(repo repository.IOrderRepository, gateway IPaymentGateway, sms ISMSService, events IEventPublisher, c cache.CacheRepository, logger *slog.Logger) IPaymentService {
	return &PaymentService{
		orderRepo:  repo,
		gateway:    gateway,
		smsService: sms,
		events:     events,
		cache:      c,
		logger:     logger,
	}
}

// VerifyAndCreateOrder re-verifies a transaction with the gateway, rebuilds
// the draft order from the transaction metadata and persists it as already
// Confirmed. Nothing is written unless the gateway reports success.
func (s *PaymentService) VerifyAndCreateOrder(ctx context.Context, reference string) (*models.PaymentOrderResponse, error) {
	// The redirect page can fire twice; the first verify wins the reference.
	acquired := false
	fresh, err := s.cache.SetIdempotency(ctx, reference)
	if err != nil {
		s.logger.Warn("idempotency check unavailable, proceeding", "reference", reference, "error", err)
	} else if !fresh {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateReference, reference)
	} else {
		acquired = true
	}

	// A failed attempt must not burn the reference: the frontend retries with
	// the same reference, and a captured payment still has to be able to
	// become an order. The key stays consumed only once the row is written.
	completed := false
	defer func() {
		if acquired && !completed {
			if relErr := s.cache.ReleaseIdempotency(ctx, reference); relErr != nil {
				s.logger.Warn("failed to release idempotency key",
					"reference", reference, "error", relErr)
			}
		}
	}()

	result, err := s.gateway.VerifyTransaction(ctx, reference)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrVerificationFailed, err)
	}
	if !result.Success() {
		return nil, fmt.Errorf("%w: transaction status %q", ErrVerificationFailed, result.Status)
	}

	intent := result.Intent
	food, err := s.orderRepo.FindFoodByID(intent.FoodID)
	if err != nil {
		// The money is already captured at the gateway; there is no refund
		// call in this workflow, so the failure is flagged for manual
		// reconciliation instead of being rolled back.
		s.logReconciliationGap(reference, result.Amount, err)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrFoodNotFound, intent.FoodID)
		}
		return nil, fmt.Errorf("failed to look up food: %w", err)
	}

	addonNames := make([]string, 0, len(intent.Addons)+1)
	addonNames = append(addonNames, intent.Addons...)
	if intent.Drink != "" {
		addonNames = append(addonNames, intent.Drink)
	}

	resolved, err := s.orderRepo.FindAddonsByNames(addonNames)
	if err != nil {
		s.logReconciliationGap(reference, result.Amount, err)
		return nil, fmt.Errorf("failed to resolve addons: %w", err)
	}

	// The customer sees the amount the gateway actually captured; the
	// catalog-based total is kept alongside for bookkeeping.
	amountPaid := decimal.NewFromInt(result.Amount).Div(decimal.NewFromInt(100))
	catalogTotal := ComputeTotal(food, intent.Quantity, addonNames, resolved)

	deliveryTime, err := time.Parse(time.RFC3339, intent.DeliveryTime)
	if err != nil {
		s.logger.Warn("unparseable delivery time in payment metadata, defaulting to now",
			"reference", reference, "value", intent.DeliveryTime)
		deliveryTime = time.Now()
	}

	order := &models.Order{
		OrderID:          GenerateOrderID(),
		FoodID:           food.ID,
		Quantity:         intent.Quantity,
		Addons:           datatypes.JSONSlice[string](addonNames),
		DeliveryLocation: intent.DeliveryLocation,
		PhoneNumber:      intent.PhoneNumber,
		DeliveryTime:     deliveryTime,
		PaymentMode:      intent.PaymentMode,
		AdditionalNotes:  intent.AdditionalNotes,
		OrderStatus:      models.OrderStatusConfirmed,
		PaymentReference: reference,
		PaymentStatus:    models.PaymentStatusCompleted,
	}
	if err := s.orderRepo.CreateOrder(order); err != nil {
		s.logReconciliationGap(reference, result.Amount, err)
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	completed = true
	order.Food = *food

	if err := s.smsService.SendSMS(ctx, order.PhoneNumber, fmt.Sprintf(
		"Payment of GHS %s received. Your order %s (%d x %s) is confirmed.",
		amountPaid.StringFixed(2), order.OrderID, order.Quantity, food.Name)); err != nil {
		s.logger.Error("failed to send payment confirmation sms",
			"recipient", order.PhoneNumber, "error", err)
	}

	if err := s.events.PublishOrderEvent(OrderEvent{
		Type:        EventOrderCreated,
		OrderID:     order.OrderID,
		OrderStatus: order.OrderStatus,
		PaymentMode: order.PaymentMode,
		TotalPrice:  amountPaid.StringFixed(2),
	}); err != nil {
		s.logger.Error("failed to publish order event",
			"order_id", order.OrderID, "error", err)
	}

	return &models.PaymentOrderResponse{
		Order:            *order,
		FoodName:         food.Name,
		TotalPrice:       catalogTotal,
		AmountPaid:       amountPaid,
		PaymentStatus:    order.PaymentStatus,
		PaymentReference: reference,
	}, nil
}

// logReconciliationGap marks a captured payment that produced no order row.
func (s *PaymentService) logReconciliationGap(reference string, amount int64, cause error) {
	s.logger.Error("payment captured but order creation failed",
		"payment_reference", reference,
		"amount_pesewas", amount,
		"manual_reconciliation_required", true,
		"error", cause)
}
