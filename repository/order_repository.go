package repository

import (
	"time"

	"gorm.io/gorm"
	"mealdash/models"
)

// OrderFilter narrows ListOrders. Zero values mean "no constraint".
type OrderFilter struct {
	Status    string
	OrderID   string
	StartDate *time.Time
	EndDate   *time.Time
	Page      int
	Limit     int
}

// IOrderRepository defines the interface for order data operations.
type IOrderRepository interface {
	FindFoodByID(id uint) (*models.Food, error)
	FindAddonsByNames(names []string) ([]models.Addon, error)
	FindActivePaymentMethods() ([]models.PaymentMethod, error)
	CreateOrder(order *models.Order) error
	FindOrderByID(id uint) (*models.Order, error)
	FindOrderByOrderID(orderID string) (*models.Order, error)
	UpdateOrderStatus(id uint, status string) error
	ListOrders(filter OrderFilter) ([]models.Order, int64, error)
	DeleteOrder(id uint) error
}

// OrderRepository implements IOrderRepository for GORM.
type OrderRepository struct {
	DB *gorm.DB
}

// NewOrderRepository creates a new OrderRepository instance.
func NewOrderRepository(db *gorm.DB) IOrderRepository {
	return &OrderRepository{DB: db}
}

// FindFoodByID retrieves a food with its category.
func (r *OrderRepository) FindFoodByID(id uint) (*models.Food, error) {
	var food models.Food
	err := r.DB.Preload("Category").First(&food, id).Error
	return &food, err
}

// FindAddonsByNames resolves addon names to rows. Names with no match are
// simply absent from the result; the caller treats that as price zero. Orders
// store addon names rather than ids, so this method is the single seam an
// id-based migration would have to touch.
func (r *OrderRepository) FindAddonsByNames(names []string) ([]models.Addon, error) {
	if len(names) == 0 {
		return nil, nil
	}
	var addons []models.Addon
	err := r.DB.Where("name IN ?", names).Find(&addons).Error
	return addons, err
}

// FindActivePaymentMethods returns the payment modes orders may name.
func (r *OrderRepository) FindActivePaymentMethods() ([]models.PaymentMethod, error) {
	var methods []models.PaymentMethod
	err := r.DB.Where("is_active = ?", true).Find(&methods).Error
	return methods, err
}

// CreateOrder inserts a new order in a transaction.
func (r *OrderRepository) CreateOrder(order *models.Order) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(order).Error
	})
}

// FindOrderByID retrieves an order by its internal id, joined with its food
// and category.
func (r *OrderRepository) FindOrderByID(id uint) (*models.Order, error) {
	var order models.Order
	err := r.DB.Preload("Food").Preload("Food.Category").First(&order, id).Error
	return &order, err
}

// FindOrderByOrderID retrieves an order by its human-facing MD identifier.
func (r *OrderRepository) FindOrderByOrderID(orderID string) (*models.Order, error) {
	var order models.Order
	err := r.DB.Preload("Food").Preload("Food.Category").
		Where("order_id = ?", orderID).First(&order).Error
	return &order, err
}

// UpdateOrderStatus persists a new status. Any non-empty string is accepted;
// membership in the known status set is not enforced here.
func (r *OrderRepository) UpdateOrderStatus(id uint, status string) error {
	res := r.DB.Model(&models.Order{}).Where("id = ?", id).
		Update("order_status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListOrders returns a filtered, newest-first page of orders plus the total
// count across all pages.
func (r *OrderRepository) ListOrders(filter OrderFilter) ([]models.Order, int64, error) {
	q := r.DB.Model(&models.Order{})
	if filter.Status != "" {
		q = q.Where("order_status = ?", filter.Status)
	}
	if filter.OrderID != "" {
		q = q.Where("order_id = ?", filter.OrderID)
	}
	if filter.StartDate != nil {
		q = q.Where("created_at >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		q = q.Where("created_at <= ?", *filter.EndDate)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []models.Order
	err := q.Preload("Food").Preload("Food.Category").
		Order("created_at DESC").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&orders).Error
	return orders, total, err
}

// DeleteOrder removes an order permanently. Unscoped bypasses GORM's
// soft-delete so the row is gone for good.
func (r *OrderRepository) DeleteOrder(id uint) error {
	res := r.DB.Unscoped().Delete(&models.Order{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
