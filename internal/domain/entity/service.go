package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/projecost-api/internal/domain"
)

// Nombres de tier válidos dentro de un Service.
const (
	TierBasic    = "Basic"
	TierStandard = "Standard"
	TierPremium  = "Premium"
)

// ValidTierName indica si el nombre corresponde a un tier del catálogo.
func ValidTierName(name string) bool {
	return name == TierBasic || name == TierStandard || name == TierPremium
}

// ServiceTier es una opción de precio/nivel dentro de un servicio.
type ServiceTier struct {
	Name             string          `json:"name"` // Basic, Standard, Premium; único por servicio
	Description      string          `json:"description"`
	BasePrice        decimal.Decimal `json:"base_price"`
	DeliveryTimeDays int             `json:"delivery_time_days"`
	Revisions        int             `json:"revisions"`
	Features         []string        `json:"features"`
}

// Service representa una oferta publicada por un proveedor (freelancer o agencia).
// Los tiers se persisten como JSONB; son parte del documento, no una tabla hija.
type Service struct {
	ID          string
	Name        string
	Category    string
	Description string
	OwnerID     string
	Tiers       []ServiceTier
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// FindTier busca el tier cuyo nombre coincide exactamente (case-sensitive).
func (s *Service) FindTier(name string) (*ServiceTier, bool) {
	for i := range s.Tiers {
		if s.Tiers[i].Name == name {
			return &s.Tiers[i], true
		}
	}
	return nil, false
}

// Validate verifica los invariantes de negocio del servicio. La validación
// estructural (campos requeridos, longitudes) se hace en la capa HTTP; aquí
// solo reglas de dominio.
func (s *Service) Validate() error {
	if len(s.Tiers) == 0 {
		return fmt.Errorf("%w: el servicio debe tener al menos un tier", domain.ErrInvalidInput)
	}
	seen := make(map[string]bool, len(s.Tiers))
	for _, t := range s.Tiers {
		if !ValidTierName(t.Name) {
			return fmt.Errorf("%w: tier %q no es válido (Basic, Standard o Premium)", domain.ErrInvalidInput, t.Name)
		}
		if seen[t.Name] {
			return fmt.Errorf("%w: tier %q duplicado", domain.ErrInvalidInput, t.Name)
		}
		seen[t.Name] = true
		if t.BasePrice.IsNegative() {
			return fmt.Errorf("%w: el precio base del tier %q no puede ser negativo", domain.ErrInvalidInput, t.Name)
		}
		if t.DeliveryTimeDays < 1 {
			return fmt.Errorf("%w: el tiempo de entrega del tier %q debe ser al menos 1 día", domain.ErrInvalidInput, t.Name)
		}
		if t.Revisions < 0 {
			return fmt.Errorf("%w: las revisiones del tier %q no pueden ser negativas", domain.ErrInvalidInput, t.Name)
		}
	}
	return nil
}
