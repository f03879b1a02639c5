package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateQuoteRequest entrada para solicitar una cotización. Abierta a
// callers anónimos; si hay token, el use case registra client_id.
type CreateQuoteRequest struct {
	ServiceID     string `json:"service_id" validate:"required"`
	ClientName    string `json:"client_name" validate:"required"`
	ClientEmail   string `json:"client_email" validate:"required,email"`
	ClientCountry string `json:"client_country" validate:"required"`
	SelectedTier  string `json:"selected_tier" validate:"required,oneof=Basic Standard Premium"`
	Complexity    string `json:"complexity" validate:"required,oneof=Basic Standard Advanced"`
	Description   string `json:"description" validate:"required"`
}

// UpdateQuoteStatusRequest cuerpo del cambio de estado.
type UpdateQuoteStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending accepted rejected completed"`
}

// QuoteResponse salida de una cotización con su snapshot de pricing completo.
type QuoteResponse struct {
	ID                string          `json:"id"`
	ClientID          string          `json:"client_id,omitempty"`
	ProviderID        string          `json:"provider_id,omitempty"`
	ServiceID         string          `json:"service_id"`
	ClientName        string          `json:"client_name"`
	ClientEmail       string          `json:"client_email"`
	ClientCountry     string          `json:"client_country"`
	ServiceName       string          `json:"service_name"`
	ServiceCategory   string          `json:"service_category"`
	SelectedTier      string          `json:"selected_tier"`
	Complexity        string          `json:"complexity"`
	BasePrice         decimal.Decimal `json:"base_price"`
	AdjustedPrice     decimal.Decimal `json:"adjusted_price"`
	CountryMultiplier decimal.Decimal `json:"country_multiplier"`
	DeliveryTimeDays  int             `json:"delivery_time_days"`
	Description       string          `json:"description"`
	Status            string          `json:"status"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
	ExpiresAt         time.Time       `json:"expires_at"`
}

// QuoteListResponse listado de cotizaciones con su total.
type QuoteListResponse struct {
	Quotes []QuoteResponse `json:"quotes"`
	Count  int             `json:"count"`
}
