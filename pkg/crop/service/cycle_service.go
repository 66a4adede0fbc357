package service

import (
	"errors"

	"krishisakhi/entities"
	"krishisakhi/pkg/crop/schedule"
)

var (
	ErrCycleExists   = errors.New("an active cycle for this crop already exists")
	ErrCycleNotFound = errors.New("cycle not found")
)

type CycleService interface {
	Start(phone string, rec entities.CropRecommendation) (*entities.CropCycle, error)
	List(phone string) ([]entities.CropCycle, error)
	Get(phone, id string) (*entities.CropCycle, error)
	Delete(phone, id string) error
	ToggleTask(phone, id string, day, eventIndex int) (*entities.CropCycle, error)
	Calendar(phone, id string) ([]schedule.DaySchedule, error)
}
