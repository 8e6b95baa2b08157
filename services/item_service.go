package services

import (
	"foodapp-backend/entity"
	"foodapp-backend/pkg/apperr"
	"foodapp-backend/repository"
)

type ItemService struct {
	ItemRepo       *repository.ItemRepository
	RestaurantRepo *repository.RestaurantRepository
	CategoryRepo   *repository.CategoryRepository
}

func NewItemService(itemRepo *repository.ItemRepository, restaurantRepo *repository.RestaurantRepository,
	categoryRepo *repository.CategoryRepository) *ItemService {
	return &ItemService{ItemRepo: itemRepo, RestaurantRepo: restaurantRepo, CategoryRepo: categoryRepo}
}

func (s *ItemService) GetByUUID(itemUUID string) (*entity.Item, error) {
	item, err := s.ItemRepo.GetByUUID(itemUUID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperr.ItemNotFound()
	}
	return item, nil
}

// ListByRestaurantAndCategory returns the items offered by the restaurant
// that also fall under the category.
func (s *ItemService) ListByRestaurantAndCategory(restaurantUUID, categoryUUID string) ([]entity.Item, error) {
	restaurant, err := s.RestaurantRepo.GetByUUID(restaurantUUID)
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, apperr.RestaurantNotFound()
	}
	category, err := s.CategoryRepo.GetByUUID(categoryUUID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperr.CategoryNotFound()
	}
	return s.ItemRepo.ListByRestaurantAndCategory(restaurant.ID, category.ID)
}
