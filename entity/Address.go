package entity

import (
	"gorm.io/gorm"
)

type Address struct {
	gorm.Model
	UUID       string `gorm:"uniqueIndex;not null" json:"id"`
	FlatBuilNo string `json:"flatBuildingName"`
	Locality   string `json:"locality"`
	City       string `json:"city"`
	Pincode    string `json:"pincode"`

	// Active flips to false once an order references this address; it then
	// stays retrievable for order history but can no longer be deleted or
	// used for a new delivery.
	Active bool `gorm:"default:true" json:"-"`

	StateID uint  `json:"-"`
	State   State `json:"state"`

	CustomerID uint     `json:"-"`
	Customer   Customer `json:"-"`
}
