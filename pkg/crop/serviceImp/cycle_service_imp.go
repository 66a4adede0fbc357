package serviceImp

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"krishisakhi/entities"
	"krishisakhi/pkg/crop/repository"
	"krishisakhi/pkg/crop/schedule"
	"krishisakhi/pkg/crop/service"
)

// CycleSvc owns the lifecycle of active crop cycles. Every mutation is
// persisted before it is reported back; on a store failure the caller must not
// assume the change took.
type CycleSvc struct {
	repo repository.CycleRepository
	now  func() time.Time
}

func NewCycleService(repo repository.CycleRepository, now func() time.Time) *CycleSvc {
	if now == nil {
		now = time.Now
	}
	return &CycleSvc{repo: repo, now: now}
}

func (s *CycleSvc) Start(phone string, rec entities.CropRecommendation) (*entities.CropCycle, error) {
	if err := service.ValidateRecommendation(rec); err != nil {
		return nil, err
	}

	existing, err := s.repo.ListByUser(phone)
	if err != nil {
		return nil, err
	}
	for _, c := range existing {
		if c.CropName == rec.CropName {
			return nil, service.ErrCycleExists
		}
	}

	cycle := &entities.CropCycle{
		ID:               uuid.NewString(),
		UserPhone:        phone,
		StartDate:        s.now(),
		CropName:         rec.CropName,
		SuitabilityScore: rec.SuitabilityScore,
		Reason:           rec.Reason,
		DurationDays:     rec.DurationDays,
		Timeline:         rec.Timeline,
		Progress:         []entities.TaskProgress{},
	}
	if err := s.repo.Create(cycle); err != nil {
		return nil, err
	}
	return cycle, nil
}

func (s *CycleSvc) List(phone string) ([]entities.CropCycle, error) {
	return s.repo.ListByUser(phone)
}

func (s *CycleSvc) Get(phone, id string) (*entities.CropCycle, error) {
	c, err := s.repo.FindByID(id, phone)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, service.ErrCycleNotFound
	}
	return c, err
}

func (s *CycleSvc) Delete(phone, id string) error {
	err := s.repo.Delete(id, phone)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return service.ErrCycleNotFound
	}
	return err
}

func (s *CycleSvc) ToggleTask(phone, id string, day, eventIndex int) (*entities.CropCycle, error) {
	c, err := s.Get(phone, id)
	if err != nil {
		return nil, err
	}

	days := schedule.Expand(c.Timeline, c.DurationDays)
	progress, err := schedule.Toggle(days, c.Progress, day, eventIndex, s.now())
	if err != nil {
		return nil, err
	}

	c.Progress = progress
	if err := s.repo.Update(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CycleSvc) Calendar(phone, id string) ([]schedule.DaySchedule, error) {
	c, err := s.Get(phone, id)
	if err != nil {
		return nil, err
	}
	return schedule.Expand(c.Timeline, c.DurationDays), nil
}
