package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/brightpath/care-api/internal/model"
	"github.com/brightpath/care-api/internal/repository"
)

func (r *appointmentRepository) Create(ctx context.Context, appointment *model.Appointment) error {
	query := `
		INSERT INTO appointments (
			id, parent_id, doctor_id, hospital_id, assessment_id, mode,
			slot, period, status, payment_status, notes,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	appointment.CreatedAt = time.Now()
	appointment.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		appointment.ID,
		appointment.ParentID,
		appointment.DoctorID,
		appointment.HospitalID,
		appointment.AssessmentID,
		appointment.Mode,
		appointment.Slot,
		appointment.Period,
		appointment.Status,
		appointment.PaymentStatus,
		appointment.Notes,
		appointment.CreatedAt,
		appointment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create appointment: %w", err)
	}
	return nil
}

func (r *appointmentRepository) Get(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
	query := `
		SELECT id, parent_id, doctor_id, hospital_id, assessment_id, mode,
			   slot, period, status, payment_status, notes,
			   created_at, updated_at
		FROM appointments
		WHERE id = $1
	`
	var appointment model.Appointment
	err := r.db.GetContext(ctx, &appointment, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}
	return &appointment, nil
}

func (r *appointmentRepository) ListByParent(ctx context.Context, parentID uuid.UUID) ([]*model.Appointment, error) {
	query := `
		SELECT id, parent_id, doctor_id, hospital_id, assessment_id, mode,
			   slot, period, status, payment_status, notes,
			   created_at, updated_at
		FROM appointments
		WHERE parent_id = $1
		ORDER BY slot ASC
	`
	var appointments []*model.Appointment
	err := r.db.SelectContext(ctx, &appointments, query, parentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appointments, nil
}
