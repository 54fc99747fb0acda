package model

import (
	"time"

	"github.com/google/uuid"
)

type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
)

type PaymentStatus string

const (
	PaymentStatusUnpaid   PaymentStatus = "unpaid"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// Appointment modes
const (
	AppointmentModeOnline   = "online"
	AppointmentModeInPerson = "in_person"
)

// Appointment periods
const (
	PeriodMorning   = "morning"
	PeriodAfternoon = "afternoon"
	PeriodEvening   = "evening"
)

type Appointment struct {
	Base
	ParentID      uuid.UUID         `json:"parent_id" db:"parent_id"`
	DoctorID      uuid.UUID         `json:"doctor_id" db:"doctor_id"`
	HospitalID    uuid.UUID         `json:"hospital_id" db:"hospital_id"`
	AssessmentID  *uuid.UUID        `json:"assessment_id,omitempty" db:"assessment_id"`
	Mode          string            `json:"mode" db:"mode"`
	Slot          time.Time         `json:"slot" db:"slot"`
	Period        string            `json:"period" db:"period"`
	Status        AppointmentStatus `json:"status" db:"status"`
	PaymentStatus PaymentStatus     `json:"payment_status" db:"payment_status"`
	Notes         *string           `json:"notes,omitempty" db:"notes"`
}

type CreateAppointmentRequest struct {
	DoctorID     string  `json:"doctor_id" binding:"required,uuid"`
	HospitalID   string  `json:"hospital_id" binding:"required,uuid"`
	Slot         string  `json:"slot" binding:"required"`
	Period       string  `json:"period" binding:"required,oneof=morning afternoon evening"`
	Mode         string  `json:"mode" binding:"omitempty,oneof=online in_person"`
	AssessmentID *string `json:"assessment_id" binding:"omitempty,uuid"`
	Notes        *string `json:"notes"`
}
