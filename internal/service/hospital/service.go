package hospital

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/brightpath/care-api/internal/model"
	"github.com/brightpath/care-api/internal/repository"
)

const (
	rosterCacheTTL     = 5 * time.Minute
	rosterCacheCleanup = 15 * time.Minute
)

type Service struct {
	hospitals repository.HospitalRepository
	doctors   repository.DoctorRepository
	// roster caches the verified-doctor list per hospital; creating a
	// doctor for a hospital invalidates its entry.
	roster *cache.Cache
}

func NewService(hospitals repository.HospitalRepository, doctors repository.DoctorRepository) *Service {
	return &Service{
		hospitals: hospitals,
		doctors:   doctors,
		roster:    cache.New(rosterCacheTTL, rosterCacheCleanup),
	}
}

func (s *Service) Create(ctx context.Context, req *model.CreateHospitalRequest) (*model.Hospital, error) {
	hospital := &model.Hospital{
		Base: model.Base{
			ID: uuid.New(),
		},
		Name:           req.Name,
		Location:       req.Location,
		Specialization: req.Specialization,
		ContactEmail:   req.ContactEmail,
		ContactPhone:   req.ContactPhone,
		Description:    req.Description,
		Services:       req.Services,
	}

	if err := s.hospitals.Create(ctx, hospital); err != nil {
		return nil, fmt.Errorf("failed to create hospital: %w", err)
	}
	return hospital, nil
}

func (s *Service) List(ctx context.Context) ([]*model.Hospital, error) {
	hospitals, err := s.hospitals.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list hospitals: %w", err)
	}
	return hospitals, nil
}

// GetDetail returns the hospital with its verified doctors.
func (s *Service) GetDetail(ctx context.Context, id uuid.UUID) (*model.HospitalDetail, error) {
	hospital, err := s.hospitals.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	doctors, err := s.verifiedDoctors(ctx, id)
	if err != nil {
		return nil, err
	}

	return &model.HospitalDetail{
		Hospital: *hospital,
		Doctors:  doctors,
	}, nil
}

// InvalidateRoster drops the cached doctor list for a hospital.
func (s *Service) InvalidateRoster(hospitalID uuid.UUID) {
	s.roster.Delete(hospitalID.String())
}

func (s *Service) verifiedDoctors(ctx context.Context, hospitalID uuid.UUID) ([]*model.Doctor, error) {
	key := hospitalID.String()
	if cached, ok := s.roster.Get(key); ok {
		return cached.([]*model.Doctor), nil
	}

	doctors, err := s.doctors.ListVerifiedByHospital(ctx, hospitalID)
	if err != nil {
		return nil, fmt.Errorf("failed to list hospital doctors: %w", err)
	}

	s.roster.Set(key, doctors, cache.DefaultExpiration)
	return doctors, nil
}
