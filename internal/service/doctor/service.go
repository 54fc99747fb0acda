package doctor

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/brightpath/care-api/internal/model"
	"github.com/brightpath/care-api/internal/repository"
)

// Availability is generated server-side: the next availabilityDays
// days, one slot per period. Booked slots are not subtracted yet.
const availabilityDays = 7

var slotPeriods = []struct {
	Hour   int
	Period string
}{
	{9, model.PeriodMorning},
	{14, model.PeriodAfternoon},
	{18, model.PeriodEvening},
}

type Service struct {
	doctors      repository.DoctorRepository
	testimonials repository.TestimonialRepository
	now          func() time.Time
}

func NewService(doctors repository.DoctorRepository, testimonials repository.TestimonialRepository) *Service {
	return &Service{
		doctors:      doctors,
		testimonials: testimonials,
		now:          time.Now,
	}
}

// Create registers a doctor profile. Profiles created by an admin are
// verified immediately and therefore eligible for matching.
func (s *Service) Create(ctx context.Context, req *model.CreateDoctorRequest) (*model.Doctor, error) {
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID: %w", err)
	}
	hospitalID, err := uuid.Parse(req.HospitalID)
	if err != nil {
		return nil, fmt.Errorf("invalid hospital ID: %w", err)
	}

	languages := req.Languages
	if len(languages) == 0 {
		languages = []string{"en"}
	}

	doctor := &model.Doctor{
		Base: model.Base{
			ID: uuid.New(),
		},
		UserID:          userID,
		HospitalID:      hospitalID,
		Specialization:  req.Specialization,
		ExperienceYears: req.ExperienceYears,
		Qualifications:  req.Qualifications,
		Languages:       languages,
		Bio:             req.Bio,
		PhotoURL:        req.PhotoURL,
		Verified:        true,
	}

	if err := s.doctors.Create(ctx, doctor); err != nil {
		return nil, fmt.Errorf("failed to create doctor: %w", err)
	}
	return doctor, nil
}

// GetDetail returns the doctor with testimonials and generated
// availability slots.
func (s *Service) GetDetail(ctx context.Context, id uuid.UUID) (*model.DoctorDetail, error) {
	doctor, err := s.doctors.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	testimonials, err := s.testimonials.ListByDoctor(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list testimonials: %w", err)
	}
	if testimonials == nil {
		testimonials = []*model.Testimonial{}
	}

	return &model.DoctorDetail{
		Doctor:       *doctor,
		Testimonials: testimonials,
		Availability: s.AvailabilitySlots(),
	}, nil
}

// AddTestimonial records a parent's rating for a doctor.
func (s *Service) AddTestimonial(ctx context.Context, parentID uuid.UUID, req *model.CreateTestimonialRequest) (*model.Testimonial, error) {
	doctorID, err := uuid.Parse(req.DoctorID)
	if err != nil {
		return nil, fmt.Errorf("invalid doctor ID: %w", err)
	}

	if _, err := s.doctors.Get(ctx, doctorID); err != nil {
		return nil, err
	}

	testimonial := &model.Testimonial{
		ID:       uuid.New(),
		DoctorID: doctorID,
		ParentID: parentID,
		Rating:   req.Rating,
		Comment:  req.Comment,
	}

	if err := s.testimonials.Create(ctx, testimonial); err != nil {
		return nil, fmt.Errorf("failed to create testimonial: %w", err)
	}
	return testimonial, nil
}

// AvailabilitySlots generates the bookable windows for the next week
// in UTC: one slot per period per day, starting tomorrow.
func (s *Service) AvailabilitySlots() []model.TimeSlot {
	now := s.now().UTC()
	slots := make([]model.TimeSlot, 0, availabilityDays*len(slotPeriods))
	for i := 1; i <= availabilityDays; i++ {
		day := now.AddDate(0, 0, i)
		for _, p := range slotPeriods {
			slots = append(slots, model.TimeSlot{
				Time:   time.Date(day.Year(), day.Month(), day.Day(), p.Hour, 0, 0, 0, time.UTC),
				Period: p.Period,
			})
		}
	}
	return slots
}
