package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ServiceTierRequest un tier dentro de la creación/actualización de un servicio.
type ServiceTierRequest struct {
	Name             string          `json:"name" validate:"required,oneof=Basic Standard Premium"`
	Description      string          `json:"description" validate:"required"`
	BasePrice        decimal.Decimal `json:"base_price"`
	DeliveryTimeDays int             `json:"delivery_time_days" validate:"min=1"`
	Revisions        int             `json:"revisions" validate:"min=0"`
	Features         []string        `json:"features"`
}

// CreateServiceRequest entrada para publicar un servicio (solo proveedores).
type CreateServiceRequest struct {
	Name        string               `json:"name" validate:"required,max=100"`
	Category    string               `json:"category" validate:"required"`
	Description string               `json:"description" validate:"required,max=1000"`
	Tiers       []ServiceTierRequest `json:"tiers" validate:"required,min=1,dive"`
}

// UpdateServiceRequest entrada para actualizar; campos nil no cambian.
// Si Tiers viene, reemplaza el conjunto completo de tiers.
type UpdateServiceRequest struct {
	Name        *string              `json:"name"`
	Category    *string              `json:"category"`
	Description *string              `json:"description"`
	Tiers       []ServiceTierRequest `json:"tiers"`
	IsActive    *bool                `json:"is_active"`
}

// ServiceTierResponse salida de un tier.
type ServiceTierResponse struct {
	Name             string          `json:"name"`
	Description      string          `json:"description"`
	BasePrice        decimal.Decimal `json:"base_price"`
	DeliveryTimeDays int             `json:"delivery_time_days"`
	Revisions        int             `json:"revisions"`
	Features         []string        `json:"features"`
}

// ServiceResponse salida de un servicio.
type ServiceResponse struct {
	ID          string                `json:"id"`
	Name        string                `json:"name"`
	Category    string                `json:"category"`
	Description string                `json:"description"`
	OwnerID     string                `json:"owner_id"`
	Tiers       []ServiceTierResponse `json:"tiers"`
	IsActive    bool                  `json:"is_active"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
}

// ServiceListResponse listado de servicios con su total.
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
	Count    int               `json:"count"`
}
