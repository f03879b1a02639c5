package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/projecost-api/internal/application/dto"
	"github.com/jhoicas/projecost-api/internal/domain"
	"github.com/jhoicas/projecost-api/internal/domain/entity"
	"github.com/jhoicas/projecost-api/internal/domain/policy"
	"github.com/jhoicas/projecost-api/internal/domain/repository"
)

// ServiceUseCase casos de uso del catálogo de servicios. El owner es el
// proveedor que lo creó; mutaciones solo owner o admin.
type ServiceUseCase struct {
	repo repository.ServiceRepository
}

// NewServiceUseCase construye el caso de uso.
func NewServiceUseCase(repo repository.ServiceRepository) *ServiceUseCase {
	return &ServiceUseCase{repo: repo}
}

// Create publica un servicio. Solo freelancer o agency; owner_id = caller.
func (uc *ServiceUseCase) Create(caller *policy.Caller, in dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	if !policy.CanCreateService(caller) {
		return nil, domain.ErrForbidden
	}
	now := time.Now()
	service := &entity.Service{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Category:    in.Category,
		Description: in.Description,
		OwnerID:     caller.ID,
		Tiers:       tiersFromRequest(in.Tiers),
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := service.Validate(); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(service); err != nil {
		return nil, err
	}
	return toServiceResponse(service), nil
}

// GetByID obtiene un servicio por ID (público).
func (uc *ServiceUseCase) GetByID(id string) (*dto.ServiceResponse, error) {
	service, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, nil
	}
	return toServiceResponse(service), nil
}

// List lista servicios, opcionalmente filtrados por categoría (público).
func (uc *ServiceUseCase) List(category string) (*dto.ServiceListResponse, error) {
	list, err := uc.repo.List(category)
	if err != nil {
		return nil, err
	}
	return toServiceListResponse(list), nil
}

// ListByOwner lista los servicios del caller autenticado.
func (uc *ServiceUseCase) ListByOwner(caller *policy.Caller) (*dto.ServiceListResponse, error) {
	if caller == nil {
		return nil, domain.ErrUnauthorized
	}
	list, err := uc.repo.ListByOwner(caller.ID)
	if err != nil {
		return nil, err
	}
	return toServiceListResponse(list), nil
}

// Update actualiza un servicio. Owner o admin; campos nil no cambian.
// Si vienen tiers, reemplazan el conjunto completo y se revalidan.
func (uc *ServiceUseCase) Update(caller *policy.Caller, id string, in dto.UpdateServiceRequest) (*dto.ServiceResponse, error) {
	service, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, nil
	}
	if !policy.CanMutateService(caller, service) {
		return nil, domain.ErrForbidden
	}
	if in.Name != nil {
		service.Name = *in.Name
	}
	if in.Category != nil {
		service.Category = *in.Category
	}
	if in.Description != nil {
		service.Description = *in.Description
	}
	if in.Tiers != nil {
		service.Tiers = tiersFromRequest(in.Tiers)
	}
	if in.IsActive != nil {
		service.IsActive = *in.IsActive
	}
	if err := service.Validate(); err != nil {
		return nil, err
	}
	service.UpdatedAt = time.Now()
	if err := uc.repo.Update(service); err != nil {
		return nil, err
	}
	return toServiceResponse(service), nil
}

// Delete elimina un servicio. Owner o admin.
func (uc *ServiceUseCase) Delete(caller *policy.Caller, id string) error {
	service, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if service == nil {
		return domain.ErrNotFound
	}
	if !policy.CanMutateService(caller, service) {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(id)
}

func tiersFromRequest(in []dto.ServiceTierRequest) []entity.ServiceTier {
	tiers := make([]entity.ServiceTier, 0, len(in))
	for _, t := range in {
		tiers = append(tiers, entity.ServiceTier{
			Name:             t.Name,
			Description:      t.Description,
			BasePrice:        t.BasePrice,
			DeliveryTimeDays: t.DeliveryTimeDays,
			Revisions:        t.Revisions,
			Features:         t.Features,
		})
	}
	return tiers
}

func toServiceResponse(s *entity.Service) *dto.ServiceResponse {
	if s == nil {
		return nil
	}
	tiers := make([]dto.ServiceTierResponse, 0, len(s.Tiers))
	for _, t := range s.Tiers {
		tiers = append(tiers, dto.ServiceTierResponse{
			Name:             t.Name,
			Description:      t.Description,
			BasePrice:        t.BasePrice,
			DeliveryTimeDays: t.DeliveryTimeDays,
			Revisions:        t.Revisions,
			Features:         t.Features,
		})
	}
	return &dto.ServiceResponse{
		ID:          s.ID,
		Name:        s.Name,
		Category:    s.Category,
		Description: s.Description,
		OwnerID:     s.OwnerID,
		Tiers:       tiers,
		IsActive:    s.IsActive,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func toServiceListResponse(list []*entity.Service) *dto.ServiceListResponse {
	items := make([]dto.ServiceResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toServiceResponse(s))
	}
	return &dto.ServiceListResponse{Services: items, Count: len(items)}
}
