package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/projecost-api/internal/application/dto"
	"github.com/jhoicas/projecost-api/internal/application/usecase"
	"github.com/jhoicas/projecost-api/internal/domain"
	"github.com/jhoicas/projecost-api/internal/domain/entity"
	"github.com/jhoicas/projecost-api/internal/domain/policy"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorio en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memServiceRepo struct {
	services map[string]*entity.Service
}

func newMemServiceRepo(services ...*entity.Service) *memServiceRepo {
	m := make(map[string]*entity.Service, len(services))
	for _, s := range services {
		m[s.ID] = s
	}
	return &memServiceRepo{services: m}
}

func (r *memServiceRepo) Create(s *entity.Service) error { r.services[s.ID] = s; return nil }
func (r *memServiceRepo) GetByID(id string) (*entity.Service, error) {
	return r.services[id], nil
}
func (r *memServiceRepo) Update(s *entity.Service) error { r.services[s.ID] = s; return nil }
func (r *memServiceRepo) List(category string) ([]*entity.Service, error) {
	var out []*entity.Service
	for _, s := range r.services {
		if category == "" || s.Category == category {
			out = append(out, s)
		}
	}
	return out, nil
}
func (r *memServiceRepo) ListByOwner(ownerID string) ([]*entity.Service, error) {
	var out []*entity.Service
	for _, s := range r.services {
		if s.OwnerID == ownerID {
			out = append(out, s)
		}
	}
	return out, nil
}
func (r *memServiceRepo) Delete(id string) error { delete(r.services, id); return nil }

// ──────────────────────────────────────────────────────────────────────────────
// Fixtures
// ──────────────────────────────────────────────────────────────────────────────

var (
	freelancer = &policy.Caller{ID: "u-free", Role: entity.RoleFreelancer}
	client     = &policy.Caller{ID: "u-client", Role: entity.RoleClient}
	admin      = &policy.Caller{ID: "u-admin", Role: entity.RoleAdmin}
)

func createRequest() dto.CreateServiceRequest {
	return dto.CreateServiceRequest{
		Name:        "Diseño de logo",
		Category:    "design",
		Description: "Identidad visual para tu marca",
		Tiers: []dto.ServiceTierRequest{
			{Name: entity.TierBasic, Description: "Un concepto", BasePrice: decimal.NewFromInt(50), DeliveryTimeDays: 3, Revisions: 1},
			{Name: entity.TierPremium, Description: "Identidad completa", BasePrice: decimal.NewFromInt(300), DeliveryTimeDays: 10, Revisions: 5},
		},
	}
}

func ownedService(ownerID string) *entity.Service {
	return &entity.Service{
		ID:       "svc-1",
		Name:     "Diseño de logo",
		Category: "design",
		OwnerID:  ownerID,
		IsActive: true,
		Tiers: []entity.ServiceTier{
			{Name: entity.TierBasic, BasePrice: decimal.NewFromInt(50), DeliveryTimeDays: 3, Revisions: 1},
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Create
// ──────────────────────────────────────────────────────────────────────────────

func TestServiceCreate_Proveedor_OK(t *testing.T) {
	repo := newMemServiceRepo()
	uc := usecase.NewServiceUseCase(repo)

	out, err := uc.Create(freelancer, createRequest())
	require.NoError(t, err)
	assert.Equal(t, freelancer.ID, out.OwnerID, "el dueño es el caller, no un campo del body")
	assert.True(t, out.IsActive, "un servicio nuevo nace activo")
	assert.Len(t, out.Tiers, 2)
}

func TestServiceCreate_Cliente_Forbidden(t *testing.T) {
	uc := usecase.NewServiceUseCase(newMemServiceRepo())
	_, err := uc.Create(client, createRequest())
	assert.ErrorIs(t, err, domain.ErrForbidden, "solo proveedores publican servicios")
}

func TestServiceCreate_Anonimo_Forbidden(t *testing.T) {
	uc := usecase.NewServiceUseCase(newMemServiceRepo())
	_, err := uc.Create(nil, createRequest())
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestServiceCreate_SinTiers_InvalidInput(t *testing.T) {
	uc := usecase.NewServiceUseCase(newMemServiceRepo())
	in := createRequest()
	in.Tiers = nil
	_, err := uc.Create(freelancer, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Update y Delete — dueño o admin
// ──────────────────────────────────────────────────────────────────────────────

func TestServiceUpdate_Dueno_OK(t *testing.T) {
	repo := newMemServiceRepo(ownedService(freelancer.ID))
	uc := usecase.NewServiceUseCase(repo)

	name := "Diseño de logo y branding"
	out, err := uc.Update(freelancer, "svc-1", dto.UpdateServiceRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, name, out.Name)
}

func TestServiceUpdate_NoDueno_Forbidden(t *testing.T) {
	repo := newMemServiceRepo(ownedService("otro-prov"))
	uc := usecase.NewServiceUseCase(repo)

	name := "hack"
	_, err := uc.Update(freelancer, "svc-1", dto.UpdateServiceRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestServiceUpdate_Admin_OK(t *testing.T) {
	repo := newMemServiceRepo(ownedService("otro-prov"))
	uc := usecase.NewServiceUseCase(repo)

	inactive := false
	out, err := uc.Update(admin, "svc-1", dto.UpdateServiceRequest{IsActive: &inactive})
	require.NoError(t, err)
	assert.False(t, out.IsActive)
}

func TestServiceUpdate_TiersReemplazaConjunto(t *testing.T) {
	repo := newMemServiceRepo(ownedService(freelancer.ID))
	uc := usecase.NewServiceUseCase(repo)

	out, err := uc.Update(freelancer, "svc-1", dto.UpdateServiceRequest{
		Tiers: []dto.ServiceTierRequest{
			{Name: entity.TierStandard, Description: "Nuevo", BasePrice: decimal.NewFromInt(120), DeliveryTimeDays: 5, Revisions: 2},
		},
	})
	require.NoError(t, err)
	require.Len(t, out.Tiers, 1, "los tiers del request reemplazan el conjunto completo")
	assert.Equal(t, entity.TierStandard, out.Tiers[0].Name)
}

func TestServiceUpdate_NoExiste_RetornaNil(t *testing.T) {
	uc := usecase.NewServiceUseCase(newMemServiceRepo())
	name := "x"
	out, err := uc.Update(freelancer, "svc-404", dto.UpdateServiceRequest{Name: &name})
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestServiceDelete_NoDueno_Forbidden(t *testing.T) {
	repo := newMemServiceRepo(ownedService("otro-prov"))
	uc := usecase.NewServiceUseCase(repo)

	err := uc.Delete(freelancer, "svc-1")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	err = uc.Delete(admin, "svc-1")
	require.NoError(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests ListByOwner
// ──────────────────────────────────────────────────────────────────────────────

func TestServiceListByOwner_SoloLosPropios(t *testing.T) {
	other := ownedService("otro-prov")
	other.ID = "svc-2"
	repo := newMemServiceRepo(ownedService(freelancer.ID), other)
	uc := usecase.NewServiceUseCase(repo)

	out, err := uc.ListByOwner(freelancer)
	require.NoError(t, err)
	assert.Equal(t, 1, out.Count)
	assert.Equal(t, freelancer.ID, out.Services[0].OwnerID)
}

func TestServiceListByOwner_Anonimo_Unauthorized(t *testing.T) {
	uc := usecase.NewServiceUseCase(newMemServiceRepo())
	_, err := uc.ListByOwner(nil)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
