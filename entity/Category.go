package entity

import (
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	UUID         string `gorm:"uniqueIndex;not null" json:"id"`
	CategoryName string `json:"categoryName"`

	Restaurants []Restaurant `gorm:"many2many:restaurant_categories" json:"-"`
	Items       []Item       `gorm:"many2many:category_items" json:"itemList,omitempty"`
}
