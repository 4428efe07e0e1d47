package store

import (
	"context"
	"time"

	"care-scheduler/internal/domain/entity"
	"care-scheduler/internal/domain/repository"

	"gorm.io/gorm"
)

// repositorySource adapts the gorm appointment repository to the Source
// interface. "Today" is resolved against the injected clock in the display
// location.
type repositorySource struct {
	db    *gorm.DB
	repo  repository.AppointmentRepository
	clock Clock
	loc   *time.Location
}

func NewRepositorySource(db *gorm.DB, repo repository.AppointmentRepository, clock Clock, loc *time.Location) Source {
	return &repositorySource{
		db:    db,
		repo:  repo,
		clock: clock,
		loc:   loc,
	}
}

func (s *repositorySource) FetchUpcoming(ctx context.Context) ([]entity.Appointment, error) {
	now := s.clock.Now().In(s.loc)
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc)
	return s.repo.FindUpcoming(s.db.WithContext(ctx), dayStart)
}

func (s *repositorySource) FetchPast(ctx context.Context, before time.Time, limit int) ([]entity.Appointment, error) {
	return s.repo.FindPast(s.db.WithContext(ctx), before, limit)
}
