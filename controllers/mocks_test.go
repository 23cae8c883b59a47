package controllers

import (
	"context"

	"github.com/stretchr/testify/mock"

	"mealdash/models"
	"mealdash/repository"
)

// MockOrderService is a mock implementation of services.IOrderService.
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.OrderResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.OrderResponse), args.Error(1)
}

func (m *MockOrderService) UpdateOrderStatus(ctx context.Context, id uint, status string) (*models.OrderResponse, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.OrderResponse), args.Error(1)
}

func (m *MockOrderService) ListOrders(ctx context.Context, filter repository.OrderFilter) (*models.OrderListResponse, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.OrderListResponse), args.Error(1)
}

func (m *MockOrderService) TrackOrder(ctx context.Context, orderID string) (*models.OrderResponse, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.OrderResponse), args.Error(1)
}

func (m *MockOrderService) DeleteOrder(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderService) ActivePaymentMethodNames(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockPaymentService is a mock implementation of services.IPaymentService.
type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) VerifyAndCreateOrder(ctx context.Context, reference string) (*models.PaymentOrderResponse, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PaymentOrderResponse), args.Error(1)
}
