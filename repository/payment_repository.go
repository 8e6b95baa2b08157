package repository

import (
	"errors"

	"foodapp-backend/entity"

	"gorm.io/gorm"
)

type PaymentRepository struct {
	DB *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{DB: db}
}

func (r *PaymentRepository) GetByUUID(uuid string) (*entity.PaymentMethod, error) {
	var payment entity.PaymentMethod
	err := r.DB.Where("uuid = ?", uuid).First(&payment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *PaymentRepository) ListAll() ([]entity.PaymentMethod, error) {
	payments := []entity.PaymentMethod{}
	err := r.DB.Order("payment_name ASC").Find(&payments).Error
	return payments, err
}
