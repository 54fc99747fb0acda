package model

import (
	"github.com/lib/pq"
)

type Hospital struct {
	Base
	Name           string         `json:"name" db:"name"`
	Location       string         `json:"location" db:"location"`
	Specialization pq.StringArray `json:"specialization" db:"specialization"`
	ContactEmail   *string        `json:"contact_email,omitempty" db:"contact_email"`
	ContactPhone   *string        `json:"contact_phone,omitempty" db:"contact_phone"`
	Description    *string        `json:"description,omitempty" db:"description"`
	Services       pq.StringArray `json:"services" db:"services"`
}

// HospitalDetail is the hospital read model with its verified doctors.
type HospitalDetail struct {
	Hospital
	Doctors []*Doctor `json:"doctors"`
}

type CreateHospitalRequest struct {
	Name           string   `json:"name" binding:"required"`
	Location       string   `json:"location" binding:"required"`
	Specialization []string `json:"specialization"`
	ContactEmail   *string  `json:"contact_email" binding:"omitempty,email"`
	ContactPhone   *string  `json:"contact_phone"`
	Description    *string  `json:"description"`
	Services       []string `json:"services"`
}
