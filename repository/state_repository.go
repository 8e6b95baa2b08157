package repository

import (
	"errors"

	"foodapp-backend/entity"

	"gorm.io/gorm"
)

type StateRepository struct {
	DB *gorm.DB
}

func NewStateRepository(db *gorm.DB) *StateRepository {
	return &StateRepository{DB: db}
}

func (r *StateRepository) GetByUUID(uuid string) (*entity.State, error) {
	var state entity.State
	err := r.DB.Where("uuid = ?", uuid).First(&state).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &state, nil
}

func (r *StateRepository) ListAll() ([]entity.State, error) {
	states := []entity.State{}
	err := r.DB.Order("state_name ASC").Find(&states).Error
	return states, err
}
