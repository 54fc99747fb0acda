package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Doctor struct {
	Base
	UserID          uuid.UUID      `json:"user_id" db:"user_id"`
	HospitalID      uuid.UUID      `json:"hospital_id" db:"hospital_id"`
	Specialization  pq.StringArray `json:"specialization" db:"specialization"`
	ExperienceYears int            `json:"experience_years" db:"experience_years"`
	Qualifications  pq.StringArray `json:"qualifications" db:"qualifications"`
	Languages       pq.StringArray `json:"languages" db:"languages"`
	Bio             *string        `json:"bio,omitempty" db:"bio"`
	PhotoURL        *string        `json:"photo_url,omitempty" db:"photo_url"`
	Verified        bool           `json:"verified" db:"verified"`
}

// DoctorMatch is the slice of a doctor record the intake engine needs
// to assign an assessment.
type DoctorMatch struct {
	DoctorID   uuid.UUID `db:"id"`
	HospitalID uuid.UUID `db:"hospital_id"`
}

// TimeSlot is a bookable availability window.
type TimeSlot struct {
	Time   time.Time `json:"time"`
	Period string    `json:"period"`
}

// DoctorDetail is the doctor read model with testimonials and
// generated availability.
type DoctorDetail struct {
	Doctor
	Testimonials []*Testimonial `json:"testimonials"`
	Availability []TimeSlot     `json:"availability"`
}

type CreateDoctorRequest struct {
	UserID          string   `json:"user_id" binding:"required,uuid"`
	HospitalID      string   `json:"hospital_id" binding:"required,uuid"`
	Specialization  []string `json:"specialization" binding:"required,min=1"`
	ExperienceYears int      `json:"experience_years" binding:"gte=0"`
	Qualifications  []string `json:"qualifications"`
	Languages       []string `json:"languages"`
	Bio             *string  `json:"bio"`
	PhotoURL        *string  `json:"photo_url"`
}
