package appointment

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightpath/care-api/internal/model"
	"github.com/brightpath/care-api/internal/repository"
)

type fakeAppointmentRepo struct {
	created []*model.Appointment
}

func (f *fakeAppointmentRepo) Create(_ context.Context, a *model.Appointment) error {
	f.created = append(f.created, a)
	return nil
}

func (f *fakeAppointmentRepo) Get(context.Context, uuid.UUID) (*model.Appointment, error) {
	return nil, repository.ErrNotFound
}

func (f *fakeAppointmentRepo) ListByParent(_ context.Context, parentID uuid.UUID) ([]*model.Appointment, error) {
	var out []*model.Appointment
	for _, a := range f.created {
		if a.ParentID == parentID {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeDoctorRepo struct {
	known map[uuid.UUID]bool
}

func (f *fakeDoctorRepo) Create(context.Context, *model.Doctor) error { return nil }

func (f *fakeDoctorRepo) Get(_ context.Context, id uuid.UUID) (*model.Doctor, error) {
	if !f.known[id] {
		return nil, repository.ErrNotFound
	}
	return &model.Doctor{Base: model.Base{ID: id}}, nil
}

func (f *fakeDoctorRepo) ListVerifiedByHospital(context.Context, uuid.UUID) ([]*model.Doctor, error) {
	return nil, nil
}

func (f *fakeDoctorRepo) FindVerifiedBySpecialization(context.Context, string) (*model.DoctorMatch, error) {
	return nil, nil
}

func validBooking(doctorID uuid.UUID) *model.CreateAppointmentRequest {
	return &model.CreateAppointmentRequest{
		DoctorID:   doctorID.String(),
		HospitalID: uuid.NewString(),
		Slot:       "2025-03-11T09:00:00Z",
		Period:     model.PeriodMorning,
	}
}

func TestBookCreatesPendingAppointment(t *testing.T) {
	doctorID := uuid.New()
	appointments := &fakeAppointmentRepo{}
	doctors := &fakeDoctorRepo{known: map[uuid.UUID]bool{doctorID: true}}
	svc := NewService(appointments, doctors)

	parentID := uuid.New()
	created, err := svc.Book(context.Background(), parentID, validBooking(doctorID))
	require.NoError(t, err)

	assert.Equal(t, model.AppointmentStatusPending, created.Status)
	assert.Equal(t, model.PaymentStatusUnpaid, created.PaymentStatus)
	assert.Equal(t, model.AppointmentModeOnline, created.Mode)
	assert.Equal(t, parentID, created.ParentID)
	assert.Len(t, appointments.created, 1)
}

func TestBookUnknownDoctor(t *testing.T) {
	svc := NewService(&fakeAppointmentRepo{}, &fakeDoctorRepo{known: map[uuid.UUID]bool{}})

	_, err := svc.Book(context.Background(), uuid.New(), validBooking(uuid.New()))
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestBookRejectsBadSlot(t *testing.T) {
	doctorID := uuid.New()
	svc := NewService(&fakeAppointmentRepo{}, &fakeDoctorRepo{known: map[uuid.UUID]bool{doctorID: true}})

	req := validBooking(doctorID)
	req.Slot = "tomorrow at nine"
	_, err := svc.Book(context.Background(), uuid.New(), req)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestBookRejectsBadIDs(t *testing.T) {
	svc := NewService(&fakeAppointmentRepo{}, &fakeDoctorRepo{})

	req := validBooking(uuid.New())
	req.DoctorID = "nope"
	_, err := svc.Book(context.Background(), uuid.New(), req)
	assert.ErrorIs(t, err, ErrValidation)

	req = validBooking(uuid.New())
	bad := "nope"
	req.AssessmentID = &bad
	_, err = svc.Book(context.Background(), uuid.New(), req)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestListForParent(t *testing.T) {
	doctorID := uuid.New()
	appointments := &fakeAppointmentRepo{}
	svc := NewService(appointments, &fakeDoctorRepo{known: map[uuid.UUID]bool{doctorID: true}})

	parentID := uuid.New()
	_, err := svc.Book(context.Background(), parentID, validBooking(doctorID))
	require.NoError(t, err)
	_, err = svc.Book(context.Background(), uuid.New(), validBooking(doctorID))
	require.NoError(t, err)

	listed, err := svc.ListForParent(context.Background(), parentID)
	require.NoError(t, err)
	assert.Len(t, listed, 1)
}
