package services

import (
	"foodapp-backend/entity"
	"foodapp-backend/pkg/apperr"
	"foodapp-backend/repository"
	"foodapp-backend/utils"
)

type CategoryService struct {
	CategoryRepo *repository.CategoryRepository
}

func NewCategoryService(categoryRepo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{CategoryRepo: categoryRepo}
}

// ListAll returns the categories ordered by name, no items populated.
func (s *CategoryService) ListAll() ([]entity.Category, error) {
	return s.CategoryRepo.ListAll()
}

func (s *CategoryService) GetByUUID(categoryUUID string) (*entity.Category, error) {
	if utils.IsBlank(categoryUUID) {
		return nil, apperr.EmptyCategoryID()
	}
	category, err := s.CategoryRepo.GetByUUIDWithItems(categoryUUID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperr.CategoryNotFound()
	}
	return category, nil
}
