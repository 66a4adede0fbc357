package repository

import "krishisakhi/entities"

type CycleRepository interface {
	Create(c *entities.CropCycle) error
	FindByID(id, phone string) (*entities.CropCycle, error)
	ListByUser(phone string) ([]entities.CropCycle, error)
	Update(c *entities.CropCycle) error
	Delete(id, phone string) error
}
