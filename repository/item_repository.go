package repository

import (
	"errors"

	"foodapp-backend/entity"

	"gorm.io/gorm"
)

type ItemRepository struct {
	DB *gorm.DB
}

func NewItemRepository(db *gorm.DB) *ItemRepository {
	return &ItemRepository{DB: db}
}

func (r *ItemRepository) GetByUUID(uuid string) (*entity.Item, error) {
	var item entity.Item
	err := r.DB.Where("uuid = ?", uuid).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// ListByRestaurantAndCategory returns items that belong to both the
// restaurant and the category.
func (r *ItemRepository) ListByRestaurantAndCategory(restaurantID, categoryID uint) ([]entity.Item, error) {
	items := []entity.Item{}
	err := r.DB.
		Joins("JOIN restaurant_items ri ON ri.item_id = items.id").
		Joins("JOIN category_items ci ON ci.item_id = items.id").
		Where("ri.restaurant_id = ? AND ci.category_id = ?", restaurantID, categoryID).
		Order("items.item_name ASC").
		Find(&items).Error
	return items, err
}
