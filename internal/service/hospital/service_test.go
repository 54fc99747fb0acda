package hospital

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightpath/care-api/internal/model"
	"github.com/brightpath/care-api/internal/repository"
)

type fakeHospitalRepo struct {
	hospitals map[uuid.UUID]*model.Hospital
}

func newFakeHospitalRepo() *fakeHospitalRepo {
	return &fakeHospitalRepo{hospitals: make(map[uuid.UUID]*model.Hospital)}
}

func (f *fakeHospitalRepo) Create(_ context.Context, h *model.Hospital) error {
	f.hospitals[h.ID] = h
	return nil
}

func (f *fakeHospitalRepo) Get(_ context.Context, id uuid.UUID) (*model.Hospital, error) {
	h, ok := f.hospitals[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return h, nil
}

func (f *fakeHospitalRepo) List(context.Context) ([]*model.Hospital, error) {
	out := make([]*model.Hospital, 0, len(f.hospitals))
	for _, h := range f.hospitals {
		out = append(out, h)
	}
	return out, nil
}

type fakeDoctorRepo struct {
	byHospital map[uuid.UUID][]*model.Doctor
	listCalls  int
}

func (f *fakeDoctorRepo) Create(context.Context, *model.Doctor) error { return nil }

func (f *fakeDoctorRepo) Get(context.Context, uuid.UUID) (*model.Doctor, error) {
	return nil, repository.ErrNotFound
}

func (f *fakeDoctorRepo) ListVerifiedByHospital(_ context.Context, hospitalID uuid.UUID) ([]*model.Doctor, error) {
	f.listCalls++
	return f.byHospital[hospitalID], nil
}

func (f *fakeDoctorRepo) FindVerifiedBySpecialization(context.Context, string) (*model.DoctorMatch, error) {
	return nil, nil
}

func TestGetDetailUsesRosterCache(t *testing.T) {
	hospitals := newFakeHospitalRepo()
	doctors := &fakeDoctorRepo{byHospital: make(map[uuid.UUID][]*model.Doctor)}
	svc := NewService(hospitals, doctors)

	created, err := svc.Create(context.Background(), &model.CreateHospitalRequest{
		Name:     "Sunrise Children's",
		Location: "Pune",
	})
	require.NoError(t, err)

	doctors.byHospital[created.ID] = []*model.Doctor{
		{Base: model.Base{ID: uuid.New()}, HospitalID: created.ID, Verified: true},
	}

	detail, err := svc.GetDetail(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Len(t, detail.Doctors, 1)
	assert.Equal(t, 1, doctors.listCalls)

	// Second read comes from the cache.
	_, err = svc.GetDetail(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, doctors.listCalls)

	// Invalidation forces a reload.
	svc.InvalidateRoster(created.ID)
	_, err = svc.GetDetail(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, doctors.listCalls)
}

func TestGetDetailUnknownHospital(t *testing.T) {
	svc := NewService(newFakeHospitalRepo(), &fakeDoctorRepo{})

	_, err := svc.GetDetail(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestList(t *testing.T) {
	hospitals := newFakeHospitalRepo()
	svc := NewService(hospitals, &fakeDoctorRepo{})

	_, err := svc.Create(context.Background(), &model.CreateHospitalRequest{Name: "A", Location: "X"})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), &model.CreateHospitalRequest{Name: "B", Location: "Y"})
	require.NoError(t, err)

	listed, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, listed, 2)
}
