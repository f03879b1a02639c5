// Package quoting implementa los casos de uso de cotización: creación con
// snapshot de pricing, consulta y ciclo de vida bajo política de acceso.
package quoting

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/projecost-api/internal/application/dto"
	"github.com/jhoicas/projecost-api/internal/domain"
	"github.com/jhoicas/projecost-api/internal/domain/entity"
	"github.com/jhoicas/projecost-api/internal/domain/policy"
	"github.com/jhoicas/projecost-api/internal/domain/pricing"
	domquote "github.com/jhoicas/projecost-api/internal/domain/quote"
	"github.com/jhoicas/projecost-api/internal/domain/repository"
)

// CreateQuoteUseCase orquesta la creación: resuelve Service, Country y tier,
// invoca el motor de precios y persiste la cotización con el snapshot
// completo. Ninguna lectura posterior recalcula el precio.
type CreateQuoteUseCase struct {
	serviceRepo repository.ServiceRepository
	countryRepo repository.CountryRepository
	quoteRepo   repository.QuoteRepository
	now         func() time.Time
}

// NewCreateQuoteUseCase construye el caso de uso. now permite fijar el reloj
// en tests; en producción se pasa time.Now.
func NewCreateQuoteUseCase(
	serviceRepo repository.ServiceRepository,
	countryRepo repository.CountryRepository,
	quoteRepo repository.QuoteRepository,
	now func() time.Time,
) *CreateQuoteUseCase {
	if now == nil {
		now = time.Now
	}
	return &CreateQuoteUseCase{
		serviceRepo: serviceRepo,
		countryRepo: countryRepo,
		quoteRepo:   quoteRepo,
		now:         now,
	}
}

// Execute crea la cotización. caller nil = anónimo (permitido); si hay
// caller, su id queda como client_id. Falla con ErrNotFound si el servicio,
// el país o el tier no existen; en ese caso no se persiste nada.
func (uc *CreateQuoteUseCase) Execute(caller *policy.Caller, in dto.CreateQuoteRequest) (*dto.QuoteResponse, error) {
	service, err := uc.serviceRepo.GetByID(in.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("cotizar: obtener servicio: %w", err)
	}
	if service == nil {
		return nil, fmt.Errorf("%w: servicio", domain.ErrNotFound)
	}

	country, err := uc.countryRepo.GetByName(in.ClientCountry)
	if err != nil {
		return nil, fmt.Errorf("cotizar: obtener país: %w", err)
	}
	if country == nil {
		return nil, fmt.Errorf("%w: país", domain.ErrNotFound)
	}

	tier, ok := service.FindTier(in.SelectedTier)
	if !ok {
		return nil, fmt.Errorf("%w: tier", domain.ErrNotFound)
	}

	adjusted, err := pricing.AdjustedPrice(tier.BasePrice, country.Multiplier, in.Complexity)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	quote := &entity.Quote{
		ID:                uuid.New().String(),
		ProviderID:        service.OwnerID,
		ServiceID:         service.ID,
		ClientName:        in.ClientName,
		ClientEmail:       in.ClientEmail,
		ClientCountry:     country.Name,
		ServiceName:       service.Name,
		ServiceCategory:   service.Category,
		SelectedTier:      tier.Name,
		Complexity:        in.Complexity,
		BasePrice:         tier.BasePrice,
		AdjustedPrice:     adjusted,
		CountryMultiplier: country.Multiplier,
		DeliveryTimeDays:  tier.DeliveryTimeDays,
		Description:       in.Description,
		Status:            entity.QuoteStatusPending,
		CreatedAt:         now,
		UpdatedAt:         now,
		ExpiresAt:         domquote.ExpiresAt(now),
	}
	if caller != nil {
		quote.ClientID = caller.ID
	}

	if err := uc.quoteRepo.Create(quote); err != nil {
		return nil, fmt.Errorf("cotizar: persistir: %w", err)
	}
	return toQuoteResponse(quote), nil
}
