package repository

import "krishisakhi/entities"

type PestRepository interface {
	Save(r *entities.PestReport) error
	ListByUser(phone string) ([]entities.PestReport, error)
	FindByID(id, phone string) (*entities.PestReport, error)
}
