package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/brightpath/care-api/internal/model"
)

// ErrNotFound is returned when a lookup matches no record.
var ErrNotFound = errors.New("record not found")

// All repository interfaces in one file
type (
	UserRepository interface {
		Create(ctx context.Context, user *model.User) error
		Get(ctx context.Context, id uuid.UUID) (*model.User, error)
		GetByEmail(ctx context.Context, email string) (*model.User, error)
	}

	HospitalRepository interface {
		Create(ctx context.Context, hospital *model.Hospital) error
		Get(ctx context.Context, id uuid.UUID) (*model.Hospital, error)
		List(ctx context.Context) ([]*model.Hospital, error)
	}

	DoctorRepository interface {
		Create(ctx context.Context, doctor *model.Doctor) error
		Get(ctx context.Context, id uuid.UUID) (*model.Doctor, error)
		ListVerifiedByHospital(ctx context.Context, hospitalID uuid.UUID) ([]*model.Doctor, error)
		// FindVerifiedBySpecialization returns the first verified doctor
		// whose specialization set contains tag, or nil when none exists.
		// Selection among multiple matches follows store order.
		FindVerifiedBySpecialization(ctx context.Context, tag string) (*model.DoctorMatch, error)
	}

	AssessmentRepository interface {
		Create(ctx context.Context, assessment *model.Assessment) error
		Get(ctx context.Context, id uuid.UUID) (*model.Assessment, error)
		ListByParent(ctx context.Context, parentID uuid.UUID) ([]*model.Assessment, error)
		ListByAssignedDoctor(ctx context.Context, doctorID uuid.UUID) ([]*model.Assessment, error)
	}

	AppointmentRepository interface {
		Create(ctx context.Context, appointment *model.Appointment) error
		Get(ctx context.Context, id uuid.UUID) (*model.Appointment, error)
		ListByParent(ctx context.Context, parentID uuid.UUID) ([]*model.Appointment, error)
	}

	MessageRepository interface {
		Create(ctx context.Context, message *model.Message) error
		ListByRecipient(ctx context.Context, userID uuid.UUID) ([]*model.Message, error)
	}

	TestimonialRepository interface {
		Create(ctx context.Context, testimonial *model.Testimonial) error
		ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*model.Testimonial, error)
	}
)
