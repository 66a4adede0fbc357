package repositoryImp

import (
	"gorm.io/gorm"

	"krishisakhi/entities"
	"krishisakhi/pkg/pest/repository"
)

type repo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.PestRepository { return &repo{db} }

func (r *repo) Save(p *entities.PestReport) error { return r.db.Create(p).Error }

func (r *repo) ListByUser(phone string) ([]entities.PestReport, error) {
	var ps []entities.PestReport
	err := r.db.Where("user_phone = ?", phone).Order("created_at DESC").Find(&ps).Error
	return ps, err
}

func (r *repo) FindByID(id, phone string) (*entities.PestReport, error) {
	var p entities.PestReport
	if err := r.db.First(&p, "id = ? AND user_phone = ?", id, phone).Error; err != nil {
		return nil, err
	}
	return &p, nil
}
