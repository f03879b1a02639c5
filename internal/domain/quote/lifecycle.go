// Package quote contiene las reglas del ciclo de vida de una cotización:
// el grafo de transiciones de estado y el cálculo de vencimiento.
//
// Grafo: pending → accepted | rejected ; accepted → completed.
// rejected y completed son terminales. Una transición fuera del grafo
// rechaza la petición con ErrInvalidTransition.
package quote

import (
	"fmt"
	"time"

	"github.com/jhoicas/projecost-api/internal/domain"
	"github.com/jhoicas/projecost-api/internal/domain/entity"
)

// ValidityDays días de vigencia de una cotización desde su creación.
const ValidityDays = 30

// ValidStatus indica si s pertenece al conjunto de estados conocidos.
func ValidStatus(s string) bool {
	switch s {
	case entity.QuoteStatusPending, entity.QuoteStatusAccepted,
		entity.QuoteStatusRejected, entity.QuoteStatusCompleted:
		return true
	}
	return false
}

// CanTransition indica si la transición from→to está permitida por el grafo.
// Reafirmar el estado actual no es una transición válida.
func CanTransition(from, to string) bool {
	switch from {
	case entity.QuoteStatusPending:
		return to == entity.QuoteStatusAccepted || to == entity.QuoteStatusRejected
	case entity.QuoteStatusAccepted:
		return to == entity.QuoteStatusCompleted
	default:
		// rejected y completed son terminales
		return false
	}
}

// Transition valida la transición y retorna error de dominio si no procede.
func Transition(from, to string) error {
	if !ValidStatus(to) {
		return fmt.Errorf("%w: estado %q desconocido", domain.ErrInvalidInput, to)
	}
	if !CanTransition(from, to) {
		return fmt.Errorf("%w: %s → %s", domain.ErrInvalidTransition, from, to)
	}
	return nil
}

// ExpiresAt calcula el vencimiento de una cotización creada en createdAt:
// exactamente 30 días calendario después. El vencimiento se almacena y se
// expone pero no se aplica activamente: una cotización pendiente vencida
// sigue siendo consultable y accionable.
func ExpiresAt(createdAt time.Time) time.Time {
	return createdAt.AddDate(0, 0, ValidityDays)
}
