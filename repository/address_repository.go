package repository

import (
	"errors"

	"foodapp-backend/entity"

	"gorm.io/gorm"
)

type AddressRepository struct {
	DB *gorm.DB
}

func NewAddressRepository(db *gorm.DB) *AddressRepository {
	return &AddressRepository{DB: db}
}

func (r *AddressRepository) GetByUUID(uuid string) (*entity.Address, error) {
	var address entity.Address
	err := r.DB.Preload("State").Where("uuid = ?", uuid).First(&address).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &address, nil
}

// ListActiveByCustomer returns the customer's non-archived addresses,
// newest first.
func (r *AddressRepository) ListActiveByCustomer(customerID uint) ([]entity.Address, error) {
	addresses := []entity.Address{}
	err := r.DB.Preload("State").
		Where("customer_id = ? AND active = ?", customerID, true).
		Order("created_at DESC").
		Find(&addresses).Error
	return addresses, err
}

func (r *AddressRepository) Create(tx *gorm.DB, address *entity.Address) error {
	return tx.Create(address).Error
}

func (r *AddressRepository) Update(tx *gorm.DB, address *entity.Address) error {
	return tx.Save(address).Error
}

func (r *AddressRepository) Delete(tx *gorm.DB, address *entity.Address) error {
	return tx.Delete(address).Error
}
