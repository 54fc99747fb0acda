package appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/brightpath/care-api/internal/model"
	"github.com/brightpath/care-api/internal/repository"
)

// ErrValidation wraps booking input failures.
var ErrValidation = errors.New("invalid appointment")

type Service struct {
	appointments repository.AppointmentRepository
	doctors      repository.DoctorRepository
}

func NewService(appointments repository.AppointmentRepository, doctors repository.DoctorRepository) *Service {
	return &Service{
		appointments: appointments,
		doctors:      doctors,
	}
}

// Book creates a pending appointment for the calling parent. Slots are
// not reserved: two parents may book the same window and the doctor
// side resolves the overlap.
func (s *Service) Book(ctx context.Context, parentID uuid.UUID, req *model.CreateAppointmentRequest) (*model.Appointment, error) {
	doctorID, err := uuid.Parse(req.DoctorID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid doctor ID", ErrValidation)
	}
	hospitalID, err := uuid.Parse(req.HospitalID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid hospital ID", ErrValidation)
	}

	slot, err := time.Parse(time.RFC3339, req.Slot)
	if err != nil {
		return nil, fmt.Errorf("%w: slot must be an RFC 3339 timestamp", ErrValidation)
	}

	var assessmentID *uuid.UUID
	if req.AssessmentID != nil {
		id, err := uuid.Parse(*req.AssessmentID)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid assessment ID", ErrValidation)
		}
		assessmentID = &id
	}

	if _, err := s.doctors.Get(ctx, doctorID); err != nil {
		return nil, err
	}

	mode := req.Mode
	if mode == "" {
		mode = model.AppointmentModeOnline
	}

	appointment := &model.Appointment{
		Base: model.Base{
			ID: uuid.New(),
		},
		ParentID:      parentID,
		DoctorID:      doctorID,
		HospitalID:    hospitalID,
		AssessmentID:  assessmentID,
		Mode:          mode,
		Slot:          slot,
		Period:        req.Period,
		Status:        model.AppointmentStatusPending,
		PaymentStatus: model.PaymentStatusUnpaid,
		Notes:         req.Notes,
	}

	if err := s.appointments.Create(ctx, appointment); err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}
	return appointment, nil
}

func (s *Service) ListForParent(ctx context.Context, parentID uuid.UUID) ([]*model.Appointment, error) {
	appointments, err := s.appointments.ListByParent(ctx, parentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appointments, nil
}
