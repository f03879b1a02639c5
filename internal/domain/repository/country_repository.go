package repository

import "github.com/jhoicas/projecost-api/internal/domain/entity"

// CountryRepository define el puerto de persistencia para Country (DIP).
// Los métodos Get* retornan (nil, nil) cuando el registro no existe.
type CountryRepository interface {
	Create(country *entity.Country) error
	GetByID(id string) (*entity.Country, error)
	GetByName(name string) (*entity.Country, error)
	GetByCode(code string) (*entity.Country, error)
	Update(country *entity.Country) error
	// List ordenado por nombre ascendente.
	List() ([]*entity.Country, error)
	Delete(id string) error
}
