package repository

import (
	"time"

	"github.com/jhoicas/projecost-api/internal/domain/entity"
)

// QuoteRepository define el puerto de persistencia para Quote (DIP).
// Los métodos Get* retornan (nil, nil) cuando el registro no existe.
type QuoteRepository interface {
	Create(quote *entity.Quote) error
	GetByID(id string) (*entity.Quote, error)
	// UpdateStatus cambia solo status y updated_at; el snapshot de pricing
	// es inmutable después de la creación.
	UpdateStatus(id, status string, updatedAt time.Time) error
	List() ([]*entity.Quote, error)
	ListByProvider(providerID string) ([]*entity.Quote, error)
	ListByClient(clientID string) ([]*entity.Quote, error)
	Delete(id string) error
}
