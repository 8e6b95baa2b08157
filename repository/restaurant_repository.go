package repository

import (
	"errors"

	"foodapp-backend/entity"

	"gorm.io/gorm"
)

type RestaurantRepository struct {
	DB *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

// ListByRating returns every restaurant, best rated first.
func (r *RestaurantRepository) ListByRating() ([]entity.Restaurant, error) {
	restaurants := []entity.Restaurant{}
	err := r.DB.Preload("Address.State").Preload("Categories").
		Order("customer_rating DESC").
		Find(&restaurants).Error
	return restaurants, err
}

func (r *RestaurantRepository) GetByUUID(uuid string) (*entity.Restaurant, error) {
	var restaurant entity.Restaurant
	err := r.DB.Preload("Address.State").
		Preload("Categories", func(db *gorm.DB) *gorm.DB {
			return db.Order("categories.category_name ASC")
		}).
		Where("uuid = ?", uuid).First(&restaurant).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (r *RestaurantRepository) ListByCategoryID(categoryID uint) ([]entity.Restaurant, error) {
	restaurants := []entity.Restaurant{}
	err := r.DB.Preload("Address.State").Preload("Categories").
		Joins("JOIN restaurant_categories rc ON rc.restaurant_id = restaurants.id").
		Where("rc.category_id = ?", categoryID).
		Order("restaurants.restaurant_name ASC").
		Find(&restaurants).Error
	return restaurants, err
}

// ListByName matches the name substring case-insensitively.
func (r *RestaurantRepository) ListByName(name string) ([]entity.Restaurant, error) {
	restaurants := []entity.Restaurant{}
	err := r.DB.Preload("Address.State").Preload("Categories").
		Where("LOWER(restaurant_name) LIKE ?", "%"+name+"%").
		Find(&restaurants).Error
	return restaurants, err
}

func (r *RestaurantRepository) UpdateRating(tx *gorm.DB, restaurant *entity.Restaurant) error {
	return tx.Model(&entity.Restaurant{}).Where("id = ?", restaurant.ID).
		Updates(map[string]any{
			"customer_rating":        restaurant.CustomerRating,
			"number_customers_rated": restaurant.NumberCustomersRated,
		}).Error
}
