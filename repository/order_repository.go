package repository

import (
	"foodapp-backend/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) CreateOrder(tx *gorm.DB, order *entity.Order) error {
	return tx.Create(order).Error
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, orderItem *entity.OrderItem) error {
	return tx.Create(orderItem).Error
}

// ListByCustomer returns the customer's orders, most recent first, with
// everything the order history view needs preloaded.
func (r *OrderRepository) ListByCustomer(customerID uint) ([]entity.Order, error) {
	orders := []entity.Order{}
	err := r.DB.
		Preload("Coupon").
		Preload("Payment").
		Preload("Customer").
		Preload("Address.State").
		Preload("OrderItems.Item").
		Where("customer_id = ?", customerID).
		Order("ordered_at DESC").
		Find(&orders).Error
	return orders, err
}

// CountByAddress reports how many orders reference the address; a referenced
// address may only be archived, never deleted.
func (r *OrderRepository) CountByAddress(addressID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Order{}).Where("address_id = ?", addressID).Count(&count).Error
	return count, err
}
