package repository

import "krishisakhi/entities"

type UserRepository interface {
	Create(u *entities.User) error
	FindByPhone(phone string) (*entities.User, error)
	Update(u *entities.User) error
}
