package entity

import (
	"gorm.io/gorm"
)

type State struct {
	gorm.Model
	UUID      string `gorm:"uniqueIndex;not null" json:"id"`
	StateName string `json:"stateName"`
}
