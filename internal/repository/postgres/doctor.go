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

func (r *doctorRepository) Create(ctx context.Context, doctor *model.Doctor) error {
	query := `
		INSERT INTO doctors (
			id, user_id, hospital_id, specialization, experience_years,
			qualifications, languages, bio, photo_url, verified,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	doctor.CreatedAt = time.Now()
	doctor.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		doctor.ID,
		doctor.UserID,
		doctor.HospitalID,
		doctor.Specialization,
		doctor.ExperienceYears,
		doctor.Qualifications,
		doctor.Languages,
		doctor.Bio,
		doctor.PhotoURL,
		doctor.Verified,
		doctor.CreatedAt,
		doctor.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create doctor: %w", err)
	}
	return nil
}

func (r *doctorRepository) Get(ctx context.Context, id uuid.UUID) (*model.Doctor, error) {
	query := `
		SELECT id, user_id, hospital_id, specialization, experience_years,
			   qualifications, languages, bio, photo_url, verified,
			   created_at, updated_at
		FROM doctors
		WHERE id = $1
	`
	var doctor model.Doctor
	err := r.db.GetContext(ctx, &doctor, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get doctor: %w", err)
	}
	return &doctor, nil
}

func (r *doctorRepository) ListVerifiedByHospital(ctx context.Context, hospitalID uuid.UUID) ([]*model.Doctor, error) {
	query := `
		SELECT id, user_id, hospital_id, specialization, experience_years,
			   qualifications, languages, bio, photo_url, verified,
			   created_at, updated_at
		FROM doctors
		WHERE hospital_id = $1 AND verified = true
		ORDER BY created_at ASC
	`
	var doctors []*model.Doctor
	err := r.db.SelectContext(ctx, &doctors, query, hospitalID)
	if err != nil {
		return nil, fmt.Errorf("failed to list hospital doctors: %w", err)
	}
	return doctors, nil
}

func (r *doctorRepository) FindVerifiedBySpecialization(ctx context.Context, tag string) (*model.DoctorMatch, error) {
	query := `
		SELECT id, hospital_id
		FROM doctors
		WHERE verified = true AND $1 = ANY(specialization)
		LIMIT 1
	`
	var match model.DoctorMatch
	err := r.db.GetContext(ctx, &match, query, tag)
	if errors.Is(err, sql.ErrNoRows) {
		// No eligible doctor is a normal outcome, not an error.
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find doctor by specialization: %w", err)
	}
	return &match, nil
}
