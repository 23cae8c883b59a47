package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"mealdash/models"
	"mealdash/repository"
)

// MockOrderRepository is a mock implementation of repository.IOrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindFoodByID(id uint) (*models.Food, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Food), args.Error(1)
}

func (m *MockOrderRepository) FindAddonsByNames(names []string) ([]models.Addon, error) {
	args := m.Called(names)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Addon), args.Error(1)
}

func (m *MockOrderRepository) FindActivePaymentMethods() ([]models.PaymentMethod, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PaymentMethod), args.Error(1)
}

func (m *MockOrderRepository) CreateOrder(order *models.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

func (m *MockOrderRepository) FindOrderByID(id uint) (*models.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) FindOrderByOrderID(orderID string) (*models.Order, error) {
	args := m.Called(orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateOrderStatus(id uint, status string) error {
	args := m.Called(id, status)
	return args.Error(0)
}

func (m *MockOrderRepository) ListOrders(filter repository.OrderFilter) ([]models.Order, int64, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]models.Order), args.Get(1).(int64), args.Error(2)
}

func (m *MockOrderRepository) DeleteOrder(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockSMSService is a mock implementation of ISMSService.
type MockSMSService struct {
	mock.Mock
}

func (m *MockSMSService) SendSMS(ctx context.Context, recipient, message string) error {
	args := m.Called(ctx, recipient, message)
	return args.Error(0)
}

// MockEventPublisher is a mock implementation of IEventPublisher.
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishOrderEvent(event OrderEvent) error {
	args := m.Called(event)
	return args.Error(0)
}

// MockCacheRepository is a mock implementation of cache.CacheRepository.
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) SetIdempotency(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockCacheRepository) ReleaseIdempotency(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) GetPaymentMethods(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockCacheRepository) SetPaymentMethods(ctx context.Context, names []string) error {
	args := m.Called(ctx, names)
	return args.Error(0)
}

// MockPaymentGateway is a mock implementation of IPaymentGateway.
type MockPaymentGateway struct {
	mock.Mock
}

func (m *MockPaymentGateway) VerifyTransaction(ctx context.Context, reference string) (*VerificationResult, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*VerificationResult), args.Error(1)
}
