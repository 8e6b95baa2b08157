package repository

import (
	"errors"

	"foodapp-backend/entity"

	"gorm.io/gorm"
)

type CouponRepository struct {
	DB *gorm.DB
}

func NewCouponRepository(db *gorm.DB) *CouponRepository {
	return &CouponRepository{DB: db}
}

func (r *CouponRepository) GetByName(name string) (*entity.Coupon, error) {
	var coupon entity.Coupon
	err := r.DB.Where("coupon_name = ?", name).First(&coupon).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &coupon, nil
}

func (r *CouponRepository) GetByUUID(uuid string) (*entity.Coupon, error) {
	var coupon entity.Coupon
	err := r.DB.Where("uuid = ?", uuid).First(&coupon).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &coupon, nil
}
