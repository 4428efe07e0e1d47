package repository

import (
	"errors"

	"care-scheduler/internal/domain/entity"
	domainRepo "care-scheduler/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type categoryRepository struct{}

func NewCategoryRepository() domainRepo.CategoryRepository {
	return &categoryRepository{}
}

func (r *categoryRepository) FindAll(db *gorm.DB) ([]entity.Category, error) {
	var categories []entity.Category
	err := db.Order("label ASC").Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Category, error) {
	var category entity.Category
	err := db.Where("id = ?", id).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}
