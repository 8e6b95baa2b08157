package entity

import (
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	UUID           string `gorm:"uniqueIndex;not null" json:"id"`
	RestaurantName string `json:"restaurantName"`
	PhotoURL       string `json:"photoURL"`
	AvgPrice       int64  `json:"averagePrice"`

	// Running mean over all ratings ever given, kept online so a rating
	// update never re-aggregates raw samples.
	CustomerRating       float64 `json:"customerRating"`
	NumberCustomersRated int     `json:"numberCustomersRated"`

	AddressID uint    `json:"-"`
	Address   Address `json:"address"`

	Categories []Category `gorm:"many2many:restaurant_categories" json:"-"`
	Items      []Item     `gorm:"many2many:restaurant_items" json:"-"`
	Orders     []Order    `json:"-"`
}
