package repositoryImp

import (
	"gorm.io/gorm"

	"krishisakhi/entities"
	"krishisakhi/pkg/crop/repository"
)

type cycleRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.CycleRepository { return &cycleRepo{db} }

func (r *cycleRepo) Create(c *entities.CropCycle) error { return r.db.Create(c).Error }

func (r *cycleRepo) FindByID(id, phone string) (*entities.CropCycle, error) {
	var c entities.CropCycle
	if err := r.db.Where("id = ? AND user_phone = ?", id, phone).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *cycleRepo) ListByUser(phone string) ([]entities.CropCycle, error) {
	var out []entities.CropCycle
	if err := r.db.Where("user_phone = ?", phone).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *cycleRepo) Update(c *entities.CropCycle) error { return r.db.Save(c).Error }

func (r *cycleRepo) Delete(id, phone string) error {
	res := r.db.Where("id = ? AND user_phone = ?", id, phone).Delete(&entities.CropCycle{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
