package repository

import "github.com/jhoicas/projecost-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Los métodos Get* retornan (nil, nil) cuando el registro no existe.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	Delete(id string) error
}
