package quoting_test

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/projecost-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria para los tests del paquete
// ──────────────────────────────────────────────────────────────────────────────

type fakeServiceRepo struct {
	services map[string]*entity.Service
}

func newFakeServiceRepo(services ...*entity.Service) *fakeServiceRepo {
	m := make(map[string]*entity.Service, len(services))
	for _, s := range services {
		m[s.ID] = s
	}
	return &fakeServiceRepo{services: m}
}

func (r *fakeServiceRepo) Create(s *entity.Service) error { r.services[s.ID] = s; return nil }
func (r *fakeServiceRepo) GetByID(id string) (*entity.Service, error) {
	return r.services[id], nil
}
func (r *fakeServiceRepo) Update(s *entity.Service) error { r.services[s.ID] = s; return nil }
func (r *fakeServiceRepo) List(string) ([]*entity.Service, error) {
	out := make([]*entity.Service, 0, len(r.services))
	for _, s := range r.services {
		out = append(out, s)
	}
	return out, nil
}
func (r *fakeServiceRepo) ListByOwner(ownerID string) ([]*entity.Service, error) {
	var out []*entity.Service
	for _, s := range r.services {
		if s.OwnerID == ownerID {
			out = append(out, s)
		}
	}
	return out, nil
}
func (r *fakeServiceRepo) Delete(id string) error { delete(r.services, id); return nil }

type fakeCountryRepo struct {
	countries map[string]*entity.Country // por nombre
}

func newFakeCountryRepo(countries ...*entity.Country) *fakeCountryRepo {
	m := make(map[string]*entity.Country, len(countries))
	for _, c := range countries {
		m[c.Name] = c
	}
	return &fakeCountryRepo{countries: m}
}

func (r *fakeCountryRepo) Create(c *entity.Country) error { r.countries[c.Name] = c; return nil }
func (r *fakeCountryRepo) GetByID(id string) (*entity.Country, error) {
	for _, c := range r.countries {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}
func (r *fakeCountryRepo) GetByName(name string) (*entity.Country, error) {
	return r.countries[name], nil
}
func (r *fakeCountryRepo) GetByCode(code string) (*entity.Country, error) {
	for _, c := range r.countries {
		if c.Code == code {
			return c, nil
		}
	}
	return nil, nil
}
func (r *fakeCountryRepo) Update(c *entity.Country) error { r.countries[c.Name] = c; return nil }
func (r *fakeCountryRepo) List() ([]*entity.Country, error) {
	out := make([]*entity.Country, 0, len(r.countries))
	for _, c := range r.countries {
		out = append(out, c)
	}
	return out, nil
}
func (r *fakeCountryRepo) Delete(id string) error {
	for name, c := range r.countries {
		if c.ID == id {
			delete(r.countries, name)
		}
	}
	return nil
}

type fakeQuoteRepo struct {
	quotes map[string]*entity.Quote
}

func newFakeQuoteRepo(quotes ...*entity.Quote) *fakeQuoteRepo {
	m := make(map[string]*entity.Quote, len(quotes))
	for _, q := range quotes {
		m[q.ID] = q
	}
	return &fakeQuoteRepo{quotes: m}
}

func (r *fakeQuoteRepo) Create(q *entity.Quote) error { r.quotes[q.ID] = q; return nil }
func (r *fakeQuoteRepo) GetByID(id string) (*entity.Quote, error) {
	return r.quotes[id], nil
}
func (r *fakeQuoteRepo) UpdateStatus(id, status string, updatedAt time.Time) error {
	if q, ok := r.quotes[id]; ok {
		q.Status = status
		q.UpdatedAt = updatedAt
	}
	return nil
}
func (r *fakeQuoteRepo) List() ([]*entity.Quote, error) {
	out := make([]*entity.Quote, 0, len(r.quotes))
	for _, q := range r.quotes {
		out = append(out, q)
	}
	return out, nil
}
func (r *fakeQuoteRepo) ListByProvider(providerID string) ([]*entity.Quote, error) {
	var out []*entity.Quote
	for _, q := range r.quotes {
		if q.ProviderID == providerID {
			out = append(out, q)
		}
	}
	return out, nil
}
func (r *fakeQuoteRepo) ListByClient(clientID string) ([]*entity.Quote, error) {
	var out []*entity.Quote
	for _, q := range r.quotes {
		if q.ClientID == clientID {
			out = append(out, q)
		}
	}
	return out, nil
}
func (r *fakeQuoteRepo) Delete(id string) error { delete(r.quotes, id); return nil }

// ──────────────────────────────────────────────────────────────────────────────
// Fixtures
// ──────────────────────────────────────────────────────────────────────────────

func webService(ownerID string) *entity.Service {
	return &entity.Service{
		ID:       "svc-web",
		Name:     "Desarrollo web",
		Category: "development",
		OwnerID:  ownerID,
		IsActive: true,
		Tiers: []entity.ServiceTier{
			{Name: entity.TierBasic, BasePrice: decimal.NewFromInt(100), DeliveryTimeDays: 7, Revisions: 1},
			{Name: entity.TierStandard, BasePrice: decimal.NewFromInt(199), DeliveryTimeDays: 14, Revisions: 3},
			{Name: entity.TierPremium, BasePrice: decimal.NewFromInt(500), DeliveryTimeDays: 21, Revisions: 5},
		},
	}
}

func spainCountry() *entity.Country {
	return &entity.Country{
		ID:           "country-es",
		Name:         "Spain",
		Code:         "ES",
		Region:       "Europe",
		Currency:     "Euro",
		CurrencyCode: "EUR",
		Multiplier:   decimal.RequireFromString("1.2"),
	}
}
