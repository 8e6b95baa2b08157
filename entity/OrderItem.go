package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	Quantity int `json:"quantity"`

	// Price is the unit price snapshotted at order time, never recomputed
	// from the current catalog price.
	Price int64 `json:"price"`

	OrderID uint  `json:"-"`
	Order   Order `json:"-"`

	ItemID uint `json:"-"`
	Item   Item `json:"-"`
}
