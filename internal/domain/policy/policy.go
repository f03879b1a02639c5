// Package policy concentra las reglas de autorización sobre cotizaciones,
// servicios y países. El caller autenticado se pasa como parámetro explícito
// (nunca estado ambiente) para que cada predicado sea puro y testeable.
package policy

import "github.com/jhoicas/projecost-api/internal/domain/entity"

// Caller es la identidad mínima que necesita la política: id y rol.
// El puntero nil representa un caller anónimo (sin token).
type Caller struct {
	ID   string
	Role string
}

// IsAdmin indica si el caller es administrador.
func (c *Caller) IsAdmin() bool {
	return c != nil && c.Role == entity.RoleAdmin
}

// IsProvider indica si el caller es proveedor (freelancer o agencia).
func (c *Caller) IsProvider() bool {
	return c != nil && entity.IsProviderRole(c.Role)
}

// CanViewQuote: admin, el cliente de la cotización o su proveedor.
// Una cotización anónima (ClientID vacío) solo la ven admin y proveedor.
func CanViewQuote(caller *Caller, q *entity.Quote) bool {
	if caller == nil {
		return false
	}
	if caller.IsAdmin() {
		return true
	}
	if q.ClientID != "" && q.ClientID == caller.ID {
		return true
	}
	return q.ProviderID != "" && q.ProviderID == caller.ID
}

// CanManageQuote: cambiar estado o borrar. Solo admin o el proveedor.
func CanManageQuote(caller *Caller, q *entity.Quote) bool {
	if caller == nil {
		return false
	}
	if caller.IsAdmin() {
		return true
	}
	return q.ProviderID != "" && q.ProviderID == caller.ID
}

// QuoteScope describe qué cotizaciones puede listar un caller.
type QuoteScope struct {
	All        bool   // admin: sin filtro
	ProviderID string // freelancer/agency: cotizaciones que provee
	ClientID   string // resto de roles autenticados: cotizaciones propias
}

// ListQuotesScope devuelve el alcance de listado para el caller.
// ok=false significa caller anónimo: no puede listar.
func ListQuotesScope(caller *Caller) (QuoteScope, bool) {
	if caller == nil {
		return QuoteScope{}, false
	}
	if caller.IsAdmin() {
		return QuoteScope{All: true}, true
	}
	if caller.IsProvider() {
		return QuoteScope{ProviderID: caller.ID}, true
	}
	return QuoteScope{ClientID: caller.ID}, true
}

// CanCreateService: solo proveedores publican servicios.
func CanCreateService(caller *Caller) bool {
	return caller.IsProvider()
}

// CanMutateService: actualizar o borrar un servicio. Dueño o admin.
func CanMutateService(caller *Caller, svc *entity.Service) bool {
	if caller == nil {
		return false
	}
	return caller.IsAdmin() || svc.OwnerID == caller.ID
}

// CanManageCountries: el dato de referencia de países solo lo muta un admin.
func CanManageCountries(caller *Caller) bool {
	return caller.IsAdmin()
}
