package entity

import (
	"gorm.io/gorm"
)

type Coupon struct {
	gorm.Model
	UUID       string `gorm:"uniqueIndex;not null" json:"id"`
	CouponName string `gorm:"uniqueIndex;not null" json:"couponName"`
	Percent    int    `json:"percent"`
}
