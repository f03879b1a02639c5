package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCountryRequest entrada para crear un país (solo admin).
type CreateCountryRequest struct {
	Name         string          `json:"name" validate:"required"`
	Code         string          `json:"code" validate:"required,len=2"`
	Region       string          `json:"region" validate:"required"`
	Currency     string          `json:"currency" validate:"required"`
	CurrencyCode string          `json:"currency_code" validate:"required,len=3"`
	Multiplier   decimal.Decimal `json:"multiplier"`
}

// UpdateCountryRequest entrada para actualizar un país; campos nil no cambian.
type UpdateCountryRequest struct {
	Name         *string          `json:"name"`
	Code         *string          `json:"code"`
	Region       *string          `json:"region"`
	Currency     *string          `json:"currency"`
	CurrencyCode *string          `json:"currency_code"`
	Multiplier   *decimal.Decimal `json:"multiplier"`
}

// CountryResponse salida de un país.
type CountryResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Code         string          `json:"code"`
	Region       string          `json:"region"`
	Currency     string          `json:"currency"`
	CurrencyCode string          `json:"currency_code"`
	Multiplier   decimal.Decimal `json:"multiplier"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// CountryListResponse listado de países con su total.
type CountryListResponse struct {
	Countries []CountryResponse `json:"countries"`
	Count     int               `json:"count"`
}
