package usecase

import (
	"context"

	"care-scheduler/internal/converter"
	"care-scheduler/internal/delivery/dto"
	"care-scheduler/internal/service"

	"github.com/sirupsen/logrus"
)

// ReferenceUsecase serves the category and patient reference data consumed
// by the appointment creation form.
type ReferenceUsecase interface {
	GetCategories(ctx context.Context) (*dto.CategoryListResponse, error)
	GetPatients(ctx context.Context, activeOnly bool) (*dto.PatientListResponse, error)
}

type referenceUsecase struct {
	log   *logrus.Logger
	cache *service.ReferenceCache
}

func NewReferenceUsecase(log *logrus.Logger, cache *service.ReferenceCache) ReferenceUsecase {
	return &referenceUsecase{
		log:   log,
		cache: cache,
	}
}

func (u *referenceUsecase) GetCategories(ctx context.Context) (*dto.CategoryListResponse, error) {
	categories, err := u.cache.Categories(ctx)
	if err != nil {
		u.log.Warnf("Failed to load categories: %+v", err)
		return nil, err
	}

	responses := converter.CategoriesToResponses(categories)
	return &dto.CategoryListResponse{Categories: responses, Total: len(responses)}, nil
}

func (u *referenceUsecase) GetPatients(ctx context.Context, activeOnly bool) (*dto.PatientListResponse, error) {
	patients, err := u.cache.Patients(ctx, activeOnly)
	if err != nil {
		u.log.Warnf("Failed to load patients: %+v", err)
		return nil, err
	}

	responses := converter.PatientsToResponses(patients)
	return &dto.PatientListResponse{Patients: responses, Total: len(responses)}, nil
}
