package repositoryImp

import (
	"gorm.io/gorm"

	"krishisakhi/entities"
)

type UserRepo struct{ db *gorm.DB }

func New(db *gorm.DB) *UserRepo { return &UserRepo{db: db} }

func (r *UserRepo) Create(u *entities.User) error {
	return r.db.Create(u).Error
}

func (r *UserRepo) FindByPhone(phone string) (*entities.User, error) {
	var u entities.User
	if err := r.db.First(&u, "phone = ?", phone).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) Update(u *entities.User) error {
	return r.db.Save(u).Error
}
