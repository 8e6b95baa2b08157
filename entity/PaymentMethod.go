package entity

import (
	"gorm.io/gorm"
)

type PaymentMethod struct {
	gorm.Model
	UUID        string `gorm:"uniqueIndex;not null" json:"id"`
	PaymentName string `json:"paymentName"`
}
