package repository

import (
	"errors"

	"foodapp-backend/entity"

	"gorm.io/gorm"
)

// CustomerRepository owns all queries against the customers table.
// Lookups return (nil, nil) when there is no match; callers decide whether
// that is an error.
type CustomerRepository struct {
	DB *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{DB: db}
}

func (r *CustomerRepository) GetByContactNumber(contactNumber string) (*entity.Customer, error) {
	var customer entity.Customer
	err := r.DB.Where("contact_number = ?", contactNumber).First(&customer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *CustomerRepository) GetByUUID(uuid string) (*entity.Customer, error) {
	var customer entity.Customer
	err := r.DB.Where("uuid = ?", uuid).First(&customer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *CustomerRepository) Create(tx *gorm.DB, customer *entity.Customer) error {
	return tx.Create(customer).Error
}

func (r *CustomerRepository) Update(tx *gorm.DB, customer *entity.Customer) error {
	return tx.Save(customer).Error
}
