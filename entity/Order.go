package entity

import (
	"time"

	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	UUID     string  `gorm:"uniqueIndex;not null" json:"id"`
	Bill     float64 `json:"bill"`
	Discount float64 `json:"discount"`

	OrderedAt time.Time `json:"date"`

	CustomerID uint     `json:"-"`
	Customer   Customer `json:"-"`

	AddressID uint    `json:"-"`
	Address   Address `json:"-"`

	PaymentID uint          `json:"-"`
	Payment   PaymentMethod `json:"-"`

	// Coupon is optional on an order.
	CouponID *uint   `json:"-"`
	Coupon   *Coupon `json:"-"`

	RestaurantID uint       `json:"-"`
	Restaurant   Restaurant `json:"-"`

	OrderItems []OrderItem `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
