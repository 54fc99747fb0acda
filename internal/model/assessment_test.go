package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyMatch(t *testing.T) {
	var a Assessment

	match := &DoctorMatch{DoctorID: uuid.New(), HospitalID: uuid.New()}
	a.ApplyMatch(match)
	assert.Equal(t, AssessmentStatusAssigned, a.Status)
	require.NotNil(t, a.AssignedDoctorID)
	assert.Equal(t, match.DoctorID, *a.AssignedDoctorID)
	require.NotNil(t, a.AssignedHospitalID)
	assert.Equal(t, match.HospitalID, *a.AssignedHospitalID)
	assert.True(t, a.Assigned())
}

func TestApplyMatchNilClearsAssignment(t *testing.T) {
	var a Assessment
	a.ApplyMatch(&DoctorMatch{DoctorID: uuid.New(), HospitalID: uuid.New()})

	a.ApplyMatch(nil)
	assert.Equal(t, AssessmentStatusSubmitted, a.Status)
	assert.Nil(t, a.AssignedDoctorID)
	assert.Nil(t, a.AssignedHospitalID)
	assert.False(t, a.Assigned())
}
