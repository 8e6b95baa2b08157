package services

import (
	"strings"

	"foodapp-backend/entity"
	"foodapp-backend/pkg/apperr"
	"foodapp-backend/repository"
	"foodapp-backend/utils"

	"gorm.io/gorm"
)

type RestaurantService struct {
	DB             *gorm.DB
	RestaurantRepo *repository.RestaurantRepository
	CategoryRepo   *repository.CategoryRepository
}

func NewRestaurantService(db *gorm.DB, restaurantRepo *repository.RestaurantRepository,
	categoryRepo *repository.CategoryRepository) *RestaurantService {
	return &RestaurantService{DB: db, RestaurantRepo: restaurantRepo, CategoryRepo: categoryRepo}
}

func (s *RestaurantService) ListByRating() ([]entity.Restaurant, error) {
	return s.RestaurantRepo.ListByRating()
}

func (s *RestaurantService) GetByUUID(restaurantUUID string) (*entity.Restaurant, error) {
	if utils.IsBlank(restaurantUUID) {
		return nil, apperr.EmptyRestaurantID()
	}
	restaurant, err := s.RestaurantRepo.GetByUUID(restaurantUUID)
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, apperr.RestaurantNotFound()
	}
	return restaurant, nil
}

func (s *RestaurantService) ListByCategory(categoryUUID string) ([]entity.Restaurant, error) {
	if utils.IsBlank(categoryUUID) {
		return nil, apperr.EmptyCategoryID()
	}
	category, err := s.CategoryRepo.GetByUUID(categoryUUID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperr.CategoryNotFound()
	}
	return s.RestaurantRepo.ListByCategoryID(category.ID)
}

func (s *RestaurantService) ListByName(restaurantName string) ([]entity.Restaurant, error) {
	if utils.IsBlank(restaurantName) {
		return nil, apperr.EmptyRestaurantName()
	}
	return s.RestaurantRepo.ListByName(strings.ToLower(restaurantName))
}

// UpdateRating folds one new rating into the running mean:
// (oldAvg*oldCount + rating) / (oldCount+1). Bounds are inclusive.
func (s *RestaurantService) UpdateRating(restaurantUUID string, rating float64) (*entity.Restaurant, error) {
	restaurant, err := s.GetByUUID(restaurantUUID)
	if err != nil {
		return nil, err
	}
	if rating < 1.0 || rating > 5.0 {
		return nil, apperr.InvalidRating()
	}

	oldCount := restaurant.NumberCustomersRated
	restaurant.CustomerRating = (restaurant.CustomerRating*float64(oldCount) + rating) / float64(oldCount+1)
	restaurant.NumberCustomersRated = oldCount + 1

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.RestaurantRepo.UpdateRating(tx, restaurant)
	})
	if err != nil {
		return nil, err
	}
	return restaurant, nil
}
