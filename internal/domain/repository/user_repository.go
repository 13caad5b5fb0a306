package repository

import "github.com/autopecaspro/gestor-api/internal/domain/entity"

// UserRepository define o porto de persistência para usuários.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id int64) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	Update(user *entity.User) error
	Delete(id int64) error
	List(limit, offset int) ([]*entity.User, error)
}
