// Package pricing implementa el motor de precios de cotizaciones (servicio de
// dominio puro, sin efectos secundarios).
//
//	AdjustedPrice = BasePrice × CountryMultiplier × ComplexityMultiplier
//
// No se aplica redondeo: el redondeo según la moneda es un asunto de
// presentación, no de cálculo.
package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/projecost-api/internal/domain"
	"github.com/jhoicas/projecost-api/internal/domain/entity"
)

// Multiplicadores por complejidad del proyecto.
var (
	multiplierBasic    = decimal.NewFromInt(1)
	multiplierStandard = decimal.RequireFromString("1.5")
	multiplierAdvanced = decimal.NewFromInt(2)
)

// ComplexityMultiplier devuelve el multiplicador asociado al nivel de
// complejidad: Basic 1.0, Standard 1.5, Advanced 2.0.
func ComplexityMultiplier(complexity string) (decimal.Decimal, error) {
	switch complexity {
	case entity.ComplexityBasic:
		return multiplierBasic, nil
	case entity.ComplexityStandard:
		return multiplierStandard, nil
	case entity.ComplexityAdvanced:
		return multiplierAdvanced, nil
	default:
		return decimal.Zero, fmt.Errorf("%w: complejidad %q desconocida", domain.ErrInvalidInput, complexity)
	}
}

// AdjustedPrice calcula el precio ajustado de una cotización. Determinista:
// mismos insumos, mismo resultado. Rechaza insumos negativos.
func AdjustedPrice(basePrice, countryMultiplier decimal.Decimal, complexity string) (decimal.Decimal, error) {
	if basePrice.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: el precio base no puede ser negativo", domain.ErrInvalidInput)
	}
	if countryMultiplier.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: el multiplicador de país no puede ser negativo", domain.ErrInvalidInput)
	}
	cm, err := ComplexityMultiplier(complexity)
	if err != nil {
		return decimal.Zero, err
	}
	return basePrice.Mul(countryMultiplier).Mul(cm), nil
}
