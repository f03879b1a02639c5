package policy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/projecost-api/internal/domain/entity"
	"github.com/jhoicas/projecost-api/internal/domain/policy"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixtures
// ──────────────────────────────────────────────────────────────────────────────

var (
	admin      = &policy.Caller{ID: "u-admin", Role: entity.RoleAdmin}
	freelancer = &policy.Caller{ID: "u-free", Role: entity.RoleFreelancer}
	agency     = &policy.Caller{ID: "u-agency", Role: entity.RoleAgency}
	client     = &policy.Caller{ID: "u-client", Role: entity.RoleClient}
)

func quoteOf(clientID, providerID string) *entity.Quote {
	return &entity.Quote{ID: "q-1", ClientID: clientID, ProviderID: providerID}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests CanViewQuote
// ──────────────────────────────────────────────────────────────────────────────

func TestCanViewQuote_AdminVeTodo(t *testing.T) {
	assert.True(t, policy.CanViewQuote(admin, quoteOf("otro", "otro-prov")))
}

func TestCanViewQuote_ClienteSoloLasSuyas(t *testing.T) {
	assert.True(t, policy.CanViewQuote(client, quoteOf(client.ID, freelancer.ID)))
	assert.False(t, policy.CanViewQuote(client, quoteOf("otro-cliente", freelancer.ID)),
		"un cliente no ve cotizaciones de otro cliente")
}

func TestCanViewQuote_ProveedorVeLasDeSusServicios(t *testing.T) {
	assert.True(t, policy.CanViewQuote(freelancer, quoteOf("cualquiera", freelancer.ID)))
	assert.False(t, policy.CanViewQuote(freelancer, quoteOf("cualquiera", agency.ID)),
		"un proveedor no ve cotizaciones de servicios ajenos")
}

func TestCanViewQuote_AnonimoNoVeNada(t *testing.T) {
	assert.False(t, policy.CanViewQuote(nil, quoteOf("", freelancer.ID)))
}

// Una cotización anónima (ClientID vacío) no es visible para cualquier cliente
// con el campo vacío en común.
func TestCanViewQuote_CotizacionAnonima(t *testing.T) {
	anon := quoteOf("", freelancer.ID)
	assert.False(t, policy.CanViewQuote(client, anon),
		"ClientID vacío no debe coincidir con ningún caller")
	assert.True(t, policy.CanViewQuote(freelancer, anon))
	assert.True(t, policy.CanViewQuote(admin, anon))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests CanManageQuote
// ──────────────────────────────────────────────────────────────────────────────

func TestCanManageQuote_SoloProveedorOAdmin(t *testing.T) {
	q := quoteOf(client.ID, freelancer.ID)
	assert.True(t, policy.CanManageQuote(admin, q))
	assert.True(t, policy.CanManageQuote(freelancer, q))
	assert.False(t, policy.CanManageQuote(client, q),
		"el cliente puede ver su cotización pero no transicionarla")
	assert.False(t, policy.CanManageQuote(agency, q),
		"otro proveedor no gestiona cotizaciones ajenas")
	assert.False(t, policy.CanManageQuote(nil, q))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests ListQuotesScope
// ──────────────────────────────────────────────────────────────────────────────

func TestListQuotesScope_PorRol(t *testing.T) {
	scope, ok := policy.ListQuotesScope(admin)
	require.True(t, ok)
	assert.True(t, scope.All, "admin lista sin filtro")

	scope, ok = policy.ListQuotesScope(freelancer)
	require.True(t, ok)
	assert.Equal(t, freelancer.ID, scope.ProviderID, "proveedor lista por provider_id")
	assert.False(t, scope.All)

	scope, ok = policy.ListQuotesScope(agency)
	require.True(t, ok)
	assert.Equal(t, agency.ID, scope.ProviderID)

	scope, ok = policy.ListQuotesScope(client)
	require.True(t, ok)
	assert.Equal(t, client.ID, scope.ClientID, "cliente lista por client_id")
}

func TestListQuotesScope_Anonimo_NoPuedeListar(t *testing.T) {
	_, ok := policy.ListQuotesScope(nil)
	assert.False(t, ok)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de servicios y países
// ──────────────────────────────────────────────────────────────────────────────

func TestCanCreateService_SoloProveedores(t *testing.T) {
	assert.True(t, policy.CanCreateService(freelancer))
	assert.True(t, policy.CanCreateService(agency))
	assert.False(t, policy.CanCreateService(client))
	assert.False(t, policy.CanCreateService(nil))
}

func TestCanMutateService_DuenoOAdmin(t *testing.T) {
	svc := &entity.Service{ID: "s-1", OwnerID: freelancer.ID}
	assert.True(t, policy.CanMutateService(freelancer, svc))
	assert.True(t, policy.CanMutateService(admin, svc))
	assert.False(t, policy.CanMutateService(agency, svc))
	assert.False(t, policy.CanMutateService(client, svc))
	assert.False(t, policy.CanMutateService(nil, svc))
}

func TestCanManageCountries_SoloAdmin(t *testing.T) {
	assert.True(t, policy.CanManageCountries(admin))
	assert.False(t, policy.CanManageCountries(freelancer))
	assert.False(t, policy.CanManageCountries(client))
	assert.False(t, policy.CanManageCountries(nil))
}
