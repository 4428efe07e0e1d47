package converter

import (
	"care-scheduler/internal/delivery/dto"
	"care-scheduler/internal/domain/entity"
)

func CategoryToResponse(category *entity.Category) *dto.CategoryResponse {
	if category == nil {
		return nil
	}

	return &dto.CategoryResponse{
		ID:          category.ID,
		Label:       category.Label,
		Icon:        category.Icon,
		Color:       category.Color,
		Description: category.Description,
		CreatedAt:   category.CreatedAt,
		UpdatedAt:   category.UpdatedAt,
	}
}

func CategoriesToResponses(categories []entity.Category) []dto.CategoryResponse {
	responses := make([]dto.CategoryResponse, len(categories))
	for i := range categories {
		responses[i] = *CategoryToResponse(&categories[i])
	}
	return responses
}
