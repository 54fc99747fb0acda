package intake

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/brightpath/care-api/internal/model"
	"github.com/brightpath/care-api/internal/repository"
	"github.com/brightpath/care-api/internal/service/notification"
)

var (
	// ErrNotParent is returned when the caller role is not parent.
	ErrNotParent = errors.New("only parents can submit assessments")
	// ErrValidation wraps input validation failures.
	ErrValidation = errors.New("invalid assessment")
)

// Service orchestrates assessment intake: scoring, doctor matching,
// persistence and notification.
type Service struct {
	assessments repository.AssessmentRepository
	doctors     repository.DoctorRepository
	notifier    notification.Service
	scorer      *Scorer
}

func NewService(assessments repository.AssessmentRepository, doctors repository.DoctorRepository,
	notifier notification.Service, scorer *Scorer) *Service {
	return &Service{
		assessments: assessments,
		doctors:     doctors,
		notifier:    notifier,
		scorer:      scorer,
	}
}

// Submit processes one intake request. On success exactly one
// assessment and one message record exist for it. The two writes are
// not transactional: a failed notification write leaves the assessment
// persisted and surfaces the error.
func (s *Service) Submit(ctx context.Context, caller *model.TokenClaims, req *model.SubmitAssessmentRequest) (*model.SubmitAssessmentResponse, error) {
	if caller.Role != model.RoleParent {
		return nil, ErrNotParent
	}

	if err := validateRequest(req); err != nil {
		return nil, err
	}

	score := s.scorer.Score(req.Responses)
	tag := SpecializationFor(req.Condition)

	match, err := s.doctors.FindVerifiedBySpecialization(ctx, tag)
	if err != nil {
		return nil, fmt.Errorf("failed to match doctor: %w", err)
	}

	language := req.Language
	if language == "" {
		language = "en"
	}

	assessment := &model.Assessment{
		Base: model.Base{
			ID: uuid.New(),
		},
		ParentID:        caller.UserID,
		ChildName:       req.ChildName,
		ChildAge:        req.ChildAge,
		AgeGroup:        req.AgeGroup,
		Condition:       req.Condition,
		Responses:       req.Responses,
		VoiceTranscript: req.VoiceTranscript,
		Language:        language,
		RiskScore:       score,
	}
	assessment.ApplyMatch(match)

	if err := s.assessments.Create(ctx, assessment); err != nil {
		return nil, fmt.Errorf("failed to create assessment: %w", err)
	}

	message := &model.Message{
		ID:         uuid.New(),
		FromUserID: caller.UserID,
		ToUserID:   assessment.AssignedDoctorID,
		Content:    fmt.Sprintf("New assessment %s assigned", assessment.ID),
	}
	if err := s.notifier.NotifyIntake(ctx, message); err != nil {
		// The assessment stays persisted; there is no rollback.
		return nil, fmt.Errorf("failed to record notification: %w", err)
	}

	log.Info().
		Str("assessment_id", assessment.ID.String()).
		Str("status", string(assessment.Status)).
		Float64("risk_score", score).
		Msg("assessment submitted")

	return &model.SubmitAssessmentResponse{
		ID:               assessment.ID,
		AssignedDoctorID: assessment.AssignedDoctorID,
		RiskScore:        score,
	}, nil
}

// ListForParent returns the caller's own assessments, newest first.
func (s *Service) ListForParent(ctx context.Context, caller *model.TokenClaims) ([]*model.Assessment, error) {
	if caller.Role != model.RoleParent {
		return nil, ErrNotParent
	}
	assessments, err := s.assessments.ListByParent(ctx, caller.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assessments: %w", err)
	}
	return assessments, nil
}

// ListForDoctor returns assessments assigned to the calling doctor,
// newest first.
func (s *Service) ListForDoctor(ctx context.Context, doctorID uuid.UUID) ([]*model.Assessment, error) {
	assessments, err := s.assessments.ListByAssignedDoctor(ctx, doctorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assessments: %w", err)
	}
	return assessments, nil
}

func validateRequest(req *model.SubmitAssessmentRequest) error {
	if req.ChildName == "" {
		return fmt.Errorf("%w: child name is required", ErrValidation)
	}
	if req.ChildAge < model.MinChildAge || req.ChildAge > model.MaxChildAge {
		return fmt.Errorf("%w: child age must be between %d and %d", ErrValidation, model.MinChildAge, model.MaxChildAge)
	}
	switch req.AgeGroup {
	case model.AgeGroupInfant, model.AgeGroupChild, model.AgeGroupAdolescent:
	default:
		return fmt.Errorf("%w: unknown age group %q", ErrValidation, req.AgeGroup)
	}
	if req.Condition == "" {
		return fmt.Errorf("%w: condition is required", ErrValidation)
	}
	return nil
}
