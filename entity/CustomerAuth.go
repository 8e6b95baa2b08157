package entity

import (
	"time"

	"gorm.io/gorm"
)

// CustomerAuth is one login session. The row, not the token signature,
// decides whether a request is authorized.
type CustomerAuth struct {
	gorm.Model
	UUID        string `gorm:"uniqueIndex;not null"`
	AccessToken string `gorm:"uniqueIndex;not null"`

	LoginAt   time.Time
	ExpiresAt time.Time
	LogoutAt  *time.Time

	CustomerID uint
	Customer   Customer
}
