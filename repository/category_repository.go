package repository

import (
	"errors"

	"foodapp-backend/entity"

	"gorm.io/gorm"
)

type CategoryRepository struct {
	DB *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

// ListAll returns every category ordered by name, items not populated.
func (r *CategoryRepository) ListAll() ([]entity.Category, error) {
	categories := []entity.Category{}
	err := r.DB.Order("category_name ASC").Find(&categories).Error
	return categories, err
}

func (r *CategoryRepository) GetByUUID(uuid string) (*entity.Category, error) {
	var category entity.Category
	err := r.DB.Where("uuid = ?", uuid).First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) GetByUUIDWithItems(uuid string) (*entity.Category, error) {
	var category entity.Category
	err := r.DB.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("items.item_name ASC")
	}).Where("uuid = ?", uuid).First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}
