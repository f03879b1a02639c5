package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Niveles de complejidad declarados por el cliente al cotizar.
const (
	ComplexityBasic    = "Basic"
	ComplexityStandard = "Standard"
	ComplexityAdvanced = "Advanced"
)

// Estados del ciclo de vida de una cotización.
const (
	QuoteStatusPending   = "pending"
	QuoteStatusAccepted  = "accepted"
	QuoteStatusRejected  = "rejected"
	QuoteStatusCompleted = "completed"
)

// Quote es una cotización con todos sus insumos de pricing congelados
// (denormalizados) al momento de creación: cambios posteriores al Service o
// al Country no alteran cotizaciones históricas. Es una decisión de
// correctitud, no duplicación accidental.
type Quote struct {
	ID                string
	ClientID          string // vacío si la cotización fue anónima
	ProviderID        string // dueño del servicio al momento de cotizar
	ServiceID         string
	ClientName        string
	ClientEmail       string
	ClientCountry     string // snapshot del nombre del país
	ServiceName       string // snapshot
	ServiceCategory   string // snapshot
	SelectedTier      string // Basic, Standard, Premium
	Complexity        string // Basic, Standard, Advanced
	BasePrice         decimal.Decimal // snapshot del tier
	AdjustedPrice     decimal.Decimal // resultado del pricing, nunca se recalcula
	CountryMultiplier decimal.Decimal // snapshot del país
	DeliveryTimeDays  int             // snapshot del tier
	Description       string
	Status            string
	CreatedAt         time.Time
	UpdatedAt         time.Time
	ExpiresAt         time.Time
}
