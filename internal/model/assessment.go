package model

import (
	"github.com/google/uuid"
)

type AssessmentStatus string

const (
	AssessmentStatusSubmitted AssessmentStatus = "submitted"
	AssessmentStatusAssigned  AssessmentStatus = "assigned"
	AssessmentStatusInReview  AssessmentStatus = "in_review"
	AssessmentStatusCompleted AssessmentStatus = "completed"
)

// Age group constants
const (
	AgeGroupInfant     = "infant"
	AgeGroupChild      = "child"
	AgeGroupAdolescent = "adolescent"
)

// Condition constants. Any other value maps to the general
// specialization, it is never rejected.
const (
	ConditionAutism   = "autism"
	ConditionADHD     = "adhd"
	ConditionDyslexia = "dyslexia"
	ConditionOther    = "other"
)

const (
	MinChildAge = 0
	MaxChildAge = 18
)

type Assessment struct {
	Base
	ParentID           uuid.UUID        `json:"parent_id" db:"parent_id"`
	ChildName          string           `json:"child_name" db:"child_name"`
	ChildAge           int              `json:"child_age" db:"child_age"`
	AgeGroup           string           `json:"age_group" db:"age_group"`
	Condition          string           `json:"condition" db:"condition"`
	Responses          ResponseMap      `json:"responses" db:"responses"`
	VoiceTranscript    *string          `json:"voice_transcript,omitempty" db:"voice_transcript"`
	Language           string           `json:"language" db:"language"`
	RiskScore          float64          `json:"risk_score" db:"risk_score"`
	AssignedDoctorID   *uuid.UUID       `json:"assigned_doctor_id,omitempty" db:"assigned_doctor_id"`
	AssignedHospitalID *uuid.UUID       `json:"assigned_hospital_id,omitempty" db:"assigned_hospital_id"`
	Status             AssessmentStatus `json:"status" db:"status"`
}

// ApplyMatch records the matching outcome. It is the single place the
// status/assignment invariant is enforced: status is assigned exactly
// when a doctor reference is present.
func (a *Assessment) ApplyMatch(match *DoctorMatch) {
	if match == nil {
		a.AssignedDoctorID = nil
		a.AssignedHospitalID = nil
		a.Status = AssessmentStatusSubmitted
		return
	}
	doctorID := match.DoctorID
	hospitalID := match.HospitalID
	a.AssignedDoctorID = &doctorID
	a.AssignedHospitalID = &hospitalID
	a.Status = AssessmentStatusAssigned
}

// Assigned reports whether the assessment has been matched to a doctor.
func (a *Assessment) Assigned() bool {
	return a.AssignedDoctorID != nil
}

type SubmitAssessmentRequest struct {
	ChildName       string      `json:"child_name" binding:"required"`
	ChildAge        int         `json:"child_age" binding:"min=0,max=18"`
	AgeGroup        string      `json:"age_group" binding:"required,oneof=infant child adolescent"`
	Condition       string      `json:"condition" binding:"required"`
	Responses       ResponseMap `json:"responses" binding:"required"`
	VoiceTranscript *string     `json:"voice_transcript"`
	Language        string      `json:"language"`
}

// SubmitAssessmentResponse is the intake result returned to the parent.
type SubmitAssessmentResponse struct {
	ID               uuid.UUID  `json:"id"`
	AssignedDoctorID *uuid.UUID `json:"assigned_doctor_id,omitempty"`
	RiskScore        float64    `json:"risk_score"`
}
