package entity

import (
	"gorm.io/gorm"
)

const (
	ItemTypeVeg    = "VEG"
	ItemTypeNonVeg = "NON_VEG"
)

type Item struct {
	gorm.Model
	UUID     string `gorm:"uniqueIndex;not null" json:"id"`
	ItemName string `json:"itemName"`
	Price    int64  `json:"price"`
	Type     string `json:"itemType"`

	Categories  []Category   `gorm:"many2many:category_items" json:"-"`
	Restaurants []Restaurant `gorm:"many2many:restaurant_items" json:"-"`
}
