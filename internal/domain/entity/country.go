package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/projecost-api/internal/domain"
)

// Country es dato de referencia inmutable para pricing: mapea un país a su
// multiplicador económico y metadatos de moneda. Solo un admin lo mantiene.
// Las cotizaciones copian name+multiplier al crearse; borrar un país no
// altera cotizaciones históricas.
type Country struct {
	ID           string
	Name         string // único
	Code         string // ISO 3166-1 alpha-2, único, mayúsculas
	Region       string
	Currency     string
	CurrencyCode string // ISO 4217, 3 letras, mayúsculas
	Multiplier   decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Validate verifica los invariantes de negocio del país.
func (c *Country) Validate() error {
	if len(c.Code) != 2 {
		return fmt.Errorf("%w: el código de país debe tener 2 caracteres", domain.ErrInvalidInput)
	}
	if len(c.CurrencyCode) != 3 {
		return fmt.Errorf("%w: el código de moneda debe tener 3 caracteres", domain.ErrInvalidInput)
	}
	if c.Multiplier.IsNegative() {
		return fmt.Errorf("%w: el multiplicador no puede ser negativo", domain.ErrInvalidInput)
	}
	return nil
}
