package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Category groups foods on the menu.
type Category struct {
	gorm.Model
	Name  string `json:"name" gorm:"not null"`
	Foods []Food `json:"foods,omitempty"`
}

// Food is the priced menu item an order references. It is immutable from the
// order workflow's perspective; catalog management owns it.
type Food struct {
	gorm.Model
	Name        string          `json:"name" gorm:"not null"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	CategoryID  uint            `json:"category_id"`
	Category    Category        `json:"category"`
	IsAvailable bool            `json:"is_available" gorm:"default:true"`
}

// Addon is an optional priced extra (drink, sauce, ...). Orders reference
// addons by name, not id, so the name doubles as the lookup key.
type Addon struct {
	gorm.Model
	Name  string          `json:"name" gorm:"uniqueIndex;not null"`
	Type  string          `json:"type"`
	Price decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
}

// PaymentMethod is an admin-managed payment mode. Incoming orders must name
// an active method.
type PaymentMethod struct {
	gorm.Model
	Name     string `json:"name" gorm:"uniqueIndex;not null"`
	IsActive bool   `json:"is_active" gorm:"default:true"`
}
