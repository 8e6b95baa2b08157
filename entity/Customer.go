package entity

import (
	"gorm.io/gorm"
)

type Customer struct {
	gorm.Model
	UUID          string `gorm:"uniqueIndex;not null" json:"id"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	ContactNumber string `gorm:"uniqueIndex;not null" json:"contactNumber"`
	Password      string `json:"-"`
	Salt          string `json:"-"`

	// Relations — preload only when needed
	Addresses  []Address      `json:"-"`
	Orders     []Order        `json:"-"`
	AuthTokens []CustomerAuth `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
