package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/projecost-api/internal/domain"
	"github.com/jhoicas/projecost-api/internal/domain/entity"
)

func validService() *entity.Service {
	return &entity.Service{
		ID:      "s-1",
		Name:    "Desarrollo web",
		OwnerID: "u-1",
		Tiers: []entity.ServiceTier{
			{Name: entity.TierBasic, BasePrice: decimal.NewFromInt(100), DeliveryTimeDays: 7, Revisions: 1},
			{Name: entity.TierStandard, BasePrice: decimal.NewFromInt(250), DeliveryTimeDays: 14, Revisions: 3},
			{Name: entity.TierPremium, BasePrice: decimal.NewFromInt(500), DeliveryTimeDays: 21, Revisions: 5},
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Validate
// ──────────────────────────────────────────────────────────────────────────────

func TestServiceValidate_ServicioValido(t *testing.T) {
	assert.NoError(t, validService().Validate())
}

func TestServiceValidate_SinTiers_RetornaError(t *testing.T) {
	svc := validService()
	svc.Tiers = nil
	err := svc.Validate()
	require.Error(t, err, "un servicio sin tiers no es cotizable")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestServiceValidate_TierDesconocido_RetornaError(t *testing.T) {
	svc := validService()
	svc.Tiers[0].Name = "Deluxe"
	assert.ErrorIs(t, svc.Validate(), domain.ErrInvalidInput)
}

func TestServiceValidate_TierDuplicado_RetornaError(t *testing.T) {
	svc := validService()
	svc.Tiers[1].Name = entity.TierBasic
	assert.ErrorIs(t, svc.Validate(), domain.ErrInvalidInput,
		"dos tiers con el mismo nombre deben rechazarse")
}

func TestServiceValidate_PrecioNegativo_RetornaError(t *testing.T) {
	svc := validService()
	svc.Tiers[0].BasePrice = decimal.NewFromInt(-1)
	assert.ErrorIs(t, svc.Validate(), domain.ErrInvalidInput)
}

func TestServiceValidate_EntregaMenorAUnDia_RetornaError(t *testing.T) {
	svc := validService()
	svc.Tiers[0].DeliveryTimeDays = 0
	assert.ErrorIs(t, svc.Validate(), domain.ErrInvalidInput)
}

func TestServiceValidate_RevisionesNegativas_RetornaError(t *testing.T) {
	svc := validService()
	svc.Tiers[0].Revisions = -1
	assert.ErrorIs(t, svc.Validate(), domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests FindTier
// ──────────────────────────────────────────────────────────────────────────────

func TestFindTier_Encontrado(t *testing.T) {
	svc := validService()
	tier, ok := svc.FindTier(entity.TierStandard)
	require.True(t, ok)
	assert.True(t, tier.BasePrice.Equal(decimal.NewFromInt(250)))
}

func TestFindTier_EsCaseSensitive(t *testing.T) {
	svc := validService()
	_, ok := svc.FindTier("basic")
	assert.False(t, ok, "la búsqueda de tier distingue mayúsculas")
}

func TestFindTier_NoExiste(t *testing.T) {
	svc := validService()
	_, ok := svc.FindTier("Deluxe")
	assert.False(t, ok)
}
