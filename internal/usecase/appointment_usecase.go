package usecase

import (
	"context"
	"errors"
	"time"

	"care-scheduler/internal/converter"
	"care-scheduler/internal/delivery/dto"
	"care-scheduler/internal/domain/entity"
	"care-scheduler/internal/domain/repository"
	"care-scheduler/internal/store"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrCategoryNotFound    = errors.New("category not found")
	ErrPatientNotFound     = errors.New("patient not found")
	ErrInvalidTimestamp    = errors.New("invalid timestamp format, use YYYY-MM-DDTHH:MM")
	ErrInvalidDate         = errors.New("invalid date format, use YYYY-MM-DD")
)

const localTimeLayout = "2006-01-02T15:04"

type AppointmentUsecase interface {
	Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetUpcoming(ctx context.Context) (*dto.AppointmentListResponse, error)
	GetPast(ctx context.Context, before string, limit int) (*dto.AppointmentListResponse, error)
	LoadPast(ctx context.Context) error
	Refresh(ctx context.Context) error
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	categoryRepo    repository.CategoryRepository
	patientRepo     repository.PatientRepository
	appointments    *store.Store
	clock           store.Clock
	loc             *time.Location
	pastPageSize    int
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	categoryRepo repository.CategoryRepository,
	patientRepo repository.PatientRepository,
	appointments *store.Store,
	clock store.Clock,
	loc *time.Location,
	pastPageSize int,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		categoryRepo:    categoryRepo,
		patientRepo:     patientRepo,
		appointments:    appointments,
		clock:           clock,
		loc:             loc,
		pastPageSize:    pastPageSize,
	}
}

func (u *appointmentUsecase) Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	// Validate references exist
	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	category, err := u.categoryRepo.FindByID(u.db.WithContext(ctx), req.CategoryID)
	if err != nil {
		u.log.Warnf("Failed to find category: %+v", err)
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	// Bind local wall-clock timestamps to the display timezone. An
	// inverted span (end before start) is accepted; the response flags it.
	start, err := time.ParseInLocation(localTimeLayout, req.Start, u.loc)
	if err != nil {
		return nil, ErrInvalidTimestamp
	}
	end, err := time.ParseInLocation(localTimeLayout, req.End, u.loc)
	if err != nil {
		return nil, ErrInvalidTimestamp
	}

	appointment := &entity.Appointment{
		Title:       req.Title,
		Start:       start,
		End:         end,
		Location:    req.Location,
		Notes:       req.Notes,
		PatientID:   req.PatientID,
		CategoryID:  req.CategoryID,
		Attachments: entity.StringSlice(req.Attachments),
	}

	if err := u.appointmentRepo.Create(u.db.WithContext(ctx), appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	appointment.Patient = *patient
	appointment.Category = *category

	// Optimistic local append: the shared list sees the new record without
	// a refresh round-trip.
	u.appointments.Add(*appointment)

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	patch := store.Patch{
		Title:       req.Title,
		Location:    req.Location,
		Notes:       req.Notes,
		Attachments: req.Attachments,
	}

	if req.Start != nil {
		start, err := time.ParseInLocation(localTimeLayout, *req.Start, u.loc)
		if err != nil {
			return nil, ErrInvalidTimestamp
		}
		patch.Start = &start
	}
	if req.End != nil {
		end, err := time.ParseInLocation(localTimeLayout, *req.End, u.loc)
		if err != nil {
			return nil, ErrInvalidTimestamp
		}
		patch.End = &end
	}
	if req.PatientID != nil {
		patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), *req.PatientID)
		if err != nil {
			u.log.Warnf("Failed to find patient: %+v", err)
			return nil, err
		}
		if patient == nil {
			return nil, ErrPatientNotFound
		}
		patch.PatientID = req.PatientID
		patch.Patient = patient
	}
	if req.CategoryID != nil {
		category, err := u.categoryRepo.FindByID(u.db.WithContext(ctx), *req.CategoryID)
		if err != nil {
			u.log.Warnf("Failed to find category: %+v", err)
			return nil, err
		}
		if category == nil {
			return nil, ErrCategoryNotFound
		}
		patch.CategoryID = req.CategoryID
		patch.Category = category
	}

	applyPatchToEntity(appointment, patch)

	if err := u.appointmentRepo.Update(u.db.WithContext(ctx), appointment); err != nil {
		u.log.Warnf("Failed to update appointment: %+v", err)
		return nil, err
	}

	u.appointments.Update(id, patch)

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := u.appointmentRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete appointment: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrAppointmentNotFound
	}

	u.appointments.Remove(id)
	return nil
}

func (u *appointmentUsecase) GetUpcoming(ctx context.Context) (*dto.AppointmentListResponse, error) {
	now := u.clock.Now().In(u.loc)
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, u.loc)

	appointments, err := u.appointmentRepo.FindUpcoming(u.db.WithContext(ctx), dayStart)
	if err != nil {
		u.log.Warnf("Failed to find upcoming appointments: %+v", err)
		return nil, err
	}

	responses := converter.AppointmentsToResponses(appointments)
	return &dto.AppointmentListResponse{Appointments: responses, Total: len(responses)}, nil
}

func (u *appointmentUsecase) GetPast(ctx context.Context, before string, limit int) (*dto.AppointmentListResponse, error) {
	day, err := time.ParseInLocation("2006-01-02", before, u.loc)
	if err != nil {
		return nil, ErrInvalidDate
	}
	if limit <= 0 {
		limit = u.pastPageSize
	}

	appointments, err := u.appointmentRepo.FindPast(u.db.WithContext(ctx), day, limit)
	if err != nil {
		u.log.Warnf("Failed to find past appointments: %+v", err)
		return nil, err
	}

	responses := converter.AppointmentsToResponses(appointments)
	return &dto.AppointmentListResponse{Appointments: responses, Total: len(responses)}, nil
}

func (u *appointmentUsecase) LoadPast(ctx context.Context) error {
	return u.appointments.LoadPast(ctx)
}

func (u *appointmentUsecase) Refresh(ctx context.Context) error {
	return u.appointments.Refresh(ctx)
}

func applyPatchToEntity(appointment *entity.Appointment, patch store.Patch) {
	if patch.Title != nil {
		appointment.Title = *patch.Title
	}
	if patch.Start != nil {
		appointment.Start = *patch.Start
	}
	if patch.End != nil {
		appointment.End = *patch.End
	}
	if patch.Location != nil {
		appointment.Location = *patch.Location
	}
	if patch.Notes != nil {
		appointment.Notes = *patch.Notes
	}
	if patch.PatientID != nil {
		appointment.PatientID = *patch.PatientID
	}
	if patch.Patient != nil {
		appointment.Patient = *patch.Patient
	}
	if patch.CategoryID != nil {
		appointment.CategoryID = *patch.CategoryID
	}
	if patch.Category != nil {
		appointment.Category = *patch.Category
	}
	if patch.Attachments != nil {
		appointment.Attachments = entity.StringSlice(*patch.Attachments)
	}
}
