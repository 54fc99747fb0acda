package doctor

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightpath/care-api/internal/model"
	"github.com/brightpath/care-api/internal/repository"
)

type fakeDoctorRepo struct {
	doctors map[uuid.UUID]*model.Doctor
}

func newFakeDoctorRepo() *fakeDoctorRepo {
	return &fakeDoctorRepo{doctors: make(map[uuid.UUID]*model.Doctor)}
}

func (f *fakeDoctorRepo) Create(_ context.Context, d *model.Doctor) error {
	f.doctors[d.ID] = d
	return nil
}

func (f *fakeDoctorRepo) Get(_ context.Context, id uuid.UUID) (*model.Doctor, error) {
	d, ok := f.doctors[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return d, nil
}

func (f *fakeDoctorRepo) ListVerifiedByHospital(context.Context, uuid.UUID) ([]*model.Doctor, error) {
	return nil, nil
}

func (f *fakeDoctorRepo) FindVerifiedBySpecialization(context.Context, string) (*model.DoctorMatch, error) {
	return nil, nil
}

type fakeTestimonialRepo struct {
	testimonials []*model.Testimonial
}

func (f *fakeTestimonialRepo) Create(_ context.Context, tm *model.Testimonial) error {
	f.testimonials = append(f.testimonials, tm)
	return nil
}

func (f *fakeTestimonialRepo) ListByDoctor(_ context.Context, doctorID uuid.UUID) ([]*model.Testimonial, error) {
	var out []*model.Testimonial
	for _, tm := range f.testimonials {
		if tm.DoctorID == doctorID {
			out = append(out, tm)
		}
	}
	return out, nil
}

func TestCreateVerifiesDoctor(t *testing.T) {
	repo := newFakeDoctorRepo()
	svc := NewService(repo, &fakeTestimonialRepo{})

	created, err := svc.Create(context.Background(), &model.CreateDoctorRequest{
		UserID:         uuid.NewString(),
		HospitalID:     uuid.NewString(),
		Specialization: []string{"adhd", "general"},
	})
	require.NoError(t, err)

	assert.True(t, created.Verified)
	assert.Equal(t, []string{"en"}, []string(created.Languages))
	assert.Contains(t, repo.doctors, created.ID)
}

func TestCreateRejectsBadIDs(t *testing.T) {
	svc := NewService(newFakeDoctorRepo(), &fakeTestimonialRepo{})

	_, err := svc.Create(context.Background(), &model.CreateDoctorRequest{
		UserID:         "not-a-uuid",
		HospitalID:     uuid.NewString(),
		Specialization: []string{"general"},
	})
	assert.Error(t, err)
}

func TestAvailabilitySlots(t *testing.T) {
	svc := NewService(newFakeDoctorRepo(), &fakeTestimonialRepo{})
	svc.now = func() time.Time {
		return time.Date(2025, time.March, 10, 16, 30, 0, 0, time.UTC)
	}

	slots := svc.AvailabilitySlots()
	require.Len(t, slots, 21)

	// First slot is tomorrow morning, regardless of the current hour.
	assert.Equal(t, time.Date(2025, time.March, 11, 9, 0, 0, 0, time.UTC), slots[0].Time)
	assert.Equal(t, model.PeriodMorning, slots[0].Period)

	last := slots[len(slots)-1]
	assert.Equal(t, time.Date(2025, time.March, 17, 18, 0, 0, 0, time.UTC), last.Time)
	assert.Equal(t, model.PeriodEvening, last.Period)
}

func TestGetDetail(t *testing.T) {
	repo := newFakeDoctorRepo()
	testimonials := &fakeTestimonialRepo{}
	svc := NewService(repo, testimonials)

	created, err := svc.Create(context.Background(), &model.CreateDoctorRequest{
		UserID:         uuid.NewString(),
		HospitalID:     uuid.NewString(),
		Specialization: []string{"autism"},
	})
	require.NoError(t, err)

	_, err = svc.AddTestimonial(context.Background(), uuid.New(), &model.CreateTestimonialRequest{
		DoctorID: created.ID.String(),
		Rating:   5,
	})
	require.NoError(t, err)

	detail, err := svc.GetDetail(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Len(t, detail.Testimonials, 1)
	assert.Len(t, detail.Availability, 21)
}

func TestAddTestimonialUnknownDoctor(t *testing.T) {
	svc := NewService(newFakeDoctorRepo(), &fakeTestimonialRepo{})

	_, err := svc.AddTestimonial(context.Background(), uuid.New(), &model.CreateTestimonialRequest{
		DoctorID: uuid.NewString(),
		Rating:   4,
	})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
