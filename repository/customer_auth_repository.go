package repository

import (
	"errors"

	"foodapp-backend/entity"

	"gorm.io/gorm"
)

// CustomerAuthRepository persists login sessions keyed by access token.
type CustomerAuthRepository struct {
	DB *gorm.DB
}

func NewCustomerAuthRepository(db *gorm.DB) *CustomerAuthRepository {
	return &CustomerAuthRepository{DB: db}
}

func (r *CustomerAuthRepository) Create(tx *gorm.DB, auth *entity.CustomerAuth) error {
	return tx.Create(auth).Error
}

func (r *CustomerAuthRepository) GetByAccessToken(accessToken string) (*entity.CustomerAuth, error) {
	var auth entity.CustomerAuth
	err := r.DB.Preload("Customer").Where("access_token = ?", accessToken).First(&auth).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &auth, nil
}

func (r *CustomerAuthRepository) Update(tx *gorm.DB, auth *entity.CustomerAuth) error {
	return tx.Save(auth).Error
}
