package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Order statuses. These are the values the admin dashboard sends; the store
// does not enforce membership, so unknown strings pass through unchanged.
const (
	OrderStatusPending   = "Pending"
	OrderStatusConfirmed = "Confirmed"
	OrderStatusDelivered = "Delivered"
	OrderStatusCancelled = "Cancelled"
)

// PaymentStatusCompleted is set on orders created through the
// payment-verification path.
const PaymentStatusCompleted = "Completed"

// Order is the central entity. The total price is deliberately not a column:
// it is recomputed from current catalog prices on every read.
type Order struct {
	gorm.Model
	OrderID          string                      `json:"order_id" gorm:"uniqueIndex;not null"`
	FoodID           uint                        `json:"food_id"`
	Food             Food                        `json:"food"`
	Quantity         int                         `json:"quantity" gorm:"not null;default:1"`
	Addons           datatypes.JSONSlice[string] `json:"addons"`
	DeliveryLocation string                      `json:"delivery_location"`
	PhoneNumber      string                      `json:"phone_number"`
	DeliveryTime     time.Time                   `json:"delivery_time"`
	PaymentMode      string                      `json:"payment_mode"`
	AdditionalNotes  string                      `json:"additional_notes"`
	OrderStatus      string                      `json:"order_status" gorm:"not null;default:'Pending'"`
	PaymentReference string                      `json:"payment_reference,omitempty"`
	PaymentStatus    string                      `json:"payment_status,omitempty"`
}

// CreateOrderRequest is the POST /api/orders body.
type CreateOrderRequest struct {
	FoodID           uint     `json:"foodId"`
	Quantity         int      `json:"quantity"`
	DeliveryLocation string   `json:"deliveryLocation"`
	PhoneNumber      string   `json:"phoneNumber"`
	DeliveryTime     string   `json:"deliveryTime"`
	PaymentMode      string   `json:"paymentMode"`
	AdditionalNotes  string   `json:"additionalNotes"`
	Addons           []string `json:"addons"`
	Drink            string   `json:"drink"`
}

// UpdateOrderStatusRequest is the PUT /api/orders/:id body.
type UpdateOrderStatusRequest struct {
	OrderStatus string `json:"orderStatus"`
}

// VerifyPaymentRequest is the POST /api/payment/verify-payment body. The
// orderId is a client correlation id only; the order is rebuilt from the
// transaction metadata.
type VerifyPaymentRequest struct {
	Reference string `json:"reference"`
	OrderID   string `json:"orderId"`
}

// OrderResponse is an order row plus the values derived on read.
type OrderResponse struct {
	Order      Order           `json:"order"`
	FoodName   string          `json:"food_name"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// OrderListResponse is a paginated order listing.
type OrderListResponse struct {
	Orders     []OrderResponse `json:"orders"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"total_pages"`
}

// PaymentOrderResponse is the payment-verified creation response. AmountPaid
// is the gateway-captured amount; TotalPrice is the catalog-derived total and
// the two can legitimately differ.
type PaymentOrderResponse struct {
	Order            Order           `json:"order"`
	FoodName         string          `json:"food_name"`
	TotalPrice       decimal.Decimal `json:"total_price"`
	AmountPaid       decimal.Decimal `json:"amount_paid"`
	PaymentStatus    string          `json:"payment_status"`
	PaymentReference string          `json:"payment_reference"`
}
