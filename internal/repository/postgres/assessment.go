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

const assessmentColumns = `
	id, parent_id, child_name, child_age, age_group, condition, responses,
	voice_transcript, language, risk_score, assigned_doctor_id,
	assigned_hospital_id, status, created_at, updated_at`

func (r *assessmentRepository) Create(ctx context.Context, assessment *model.Assessment) error {
	query := `
		INSERT INTO assessments (
			id, parent_id, child_name, child_age, age_group, condition,
			responses, voice_transcript, language, risk_score,
			assigned_doctor_id, assigned_hospital_id, status,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`
	assessment.CreatedAt = time.Now()
	assessment.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		assessment.ID,
		assessment.ParentID,
		assessment.ChildName,
		assessment.ChildAge,
		assessment.AgeGroup,
		assessment.Condition,
		assessment.Responses,
		assessment.VoiceTranscript,
		assessment.Language,
		assessment.RiskScore,
		assessment.AssignedDoctorID,
		assessment.AssignedHospitalID,
		assessment.Status,
		assessment.CreatedAt,
		assessment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create assessment: %w", err)
	}
	return nil
}

func (r *assessmentRepository) Get(ctx context.Context, id uuid.UUID) (*model.Assessment, error) {
	query := `SELECT` + assessmentColumns + `
		FROM assessments
		WHERE id = $1
	`
	var assessment model.Assessment
	err := r.db.GetContext(ctx, &assessment, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get assessment: %w", err)
	}
	return &assessment, nil
}

func (r *assessmentRepository) ListByParent(ctx context.Context, parentID uuid.UUID) ([]*model.Assessment, error) {
	query := `SELECT` + assessmentColumns + `
		FROM assessments
		WHERE parent_id = $1
		ORDER BY created_at DESC
	`
	var assessments []*model.Assessment
	err := r.db.SelectContext(ctx, &assessments, query, parentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list parent assessments: %w", err)
	}
	return assessments, nil
}

func (r *assessmentRepository) ListByAssignedDoctor(ctx context.Context, doctorID uuid.UUID) ([]*model.Assessment, error) {
	query := `SELECT` + assessmentColumns + `
		FROM assessments
		WHERE assigned_doctor_id = $1
		ORDER BY created_at DESC
	`
	var assessments []*model.Assessment
	err := r.db.SelectContext(ctx, &assessments, query, doctorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list doctor assessments: %w", err)
	}
	return assessments, nil
}
