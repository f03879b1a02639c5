package repository

import "github.com/jhoicas/projecost-api/internal/domain/entity"

// ServiceRepository define el puerto de persistencia para Service (DIP).
// Los métodos Get* retornan (nil, nil) cuando el registro no existe.
type ServiceRepository interface {
	Create(service *entity.Service) error
	GetByID(id string) (*entity.Service, error)
	Update(service *entity.Service) error
	// List lista todos los servicios; category vacío = sin filtro.
	List(category string) ([]*entity.Service, error)
	ListByOwner(ownerID string) ([]*entity.Service, error)
	Delete(id string) error
}
