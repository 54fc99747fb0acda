package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/brightpath/care-api/internal/model"
)

func (r *testimonialRepository) Create(ctx context.Context, testimonial *model.Testimonial) error {
	query := `
		INSERT INTO testimonials (id, doctor_id, parent_id, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	testimonial.CreatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		testimonial.ID,
		testimonial.DoctorID,
		testimonial.ParentID,
		testimonial.Rating,
		testimonial.Comment,
		testimonial.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create testimonial: %w", err)
	}
	return nil
}

func (r *testimonialRepository) ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*model.Testimonial, error) {
	query := `
		SELECT id, doctor_id, parent_id, rating, comment, created_at
		FROM testimonials
		WHERE doctor_id = $1
		ORDER BY created_at DESC
	`
	var testimonials []*model.Testimonial
	err := r.db.SelectContext(ctx, &testimonials, query, doctorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list testimonials: %w", err)
	}
	return testimonials, nil
}
