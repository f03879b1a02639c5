package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/projecost-api/internal/application/dto"
	"github.com/jhoicas/projecost-api/internal/domain"
	"github.com/jhoicas/projecost-api/internal/domain/entity"
	"github.com/jhoicas/projecost-api/internal/domain/policy"
	"github.com/jhoicas/projecost-api/internal/domain/repository"
)

// CountryUseCase mantiene el dato de referencia de países. Lectura pública;
// mutaciones solo admin.
type CountryUseCase struct {
	repo repository.CountryRepository
}

// NewCountryUseCase construye el caso de uso.
func NewCountryUseCase(repo repository.CountryRepository) *CountryUseCase {
	return &CountryUseCase{repo: repo}
}

// List lista todos los países ordenados por nombre.
func (uc *CountryUseCase) List() (*dto.CountryListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CountryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCountryResponse(c))
	}
	return &dto.CountryListResponse{Countries: items, Count: len(items)}, nil
}

// GetByID obtiene un país por ID.
func (uc *CountryUseCase) GetByID(id string) (*dto.CountryResponse, error) {
	country, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if country == nil {
		return nil, nil
	}
	return toCountryResponse(country), nil
}

// Create crea un país (solo admin). Rechaza code o name duplicado.
func (uc *CountryUseCase) Create(caller *policy.Caller, in dto.CreateCountryRequest) (*dto.CountryResponse, error) {
	if !policy.CanManageCountries(caller) {
		return nil, domain.ErrForbidden
	}
	now := time.Now()
	country := &entity.Country{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Code:         strings.ToUpper(in.Code),
		Region:       in.Region,
		Currency:     in.Currency,
		CurrencyCode: strings.ToUpper(in.CurrencyCode),
		Multiplier:   in.Multiplier,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := country.Validate(); err != nil {
		return nil, err
	}
	byCode, err := uc.repo.GetByCode(country.Code)
	if err != nil {
		return nil, err
	}
	if byCode != nil {
		return nil, domain.ErrDuplicate
	}
	byName, err := uc.repo.GetByName(country.Name)
	if err != nil {
		return nil, err
	}
	if byName != nil {
		return nil, domain.ErrDuplicate
	}
	if err := uc.repo.Create(country); err != nil {
		return nil, err
	}
	return toCountryResponse(country), nil
}

// Update actualiza un país (solo admin); campos nil no cambian.
func (uc *CountryUseCase) Update(caller *policy.Caller, id string, in dto.UpdateCountryRequest) (*dto.CountryResponse, error) {
	if !policy.CanManageCountries(caller) {
		return nil, domain.ErrForbidden
	}
	country, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if country == nil {
		return nil, nil
	}
	if in.Name != nil {
		country.Name = *in.Name
	}
	if in.Code != nil {
		country.Code = strings.ToUpper(*in.Code)
	}
	if in.Region != nil {
		country.Region = *in.Region
	}
	if in.Currency != nil {
		country.Currency = *in.Currency
	}
	if in.CurrencyCode != nil {
		country.CurrencyCode = strings.ToUpper(*in.CurrencyCode)
	}
	if in.Multiplier != nil {
		country.Multiplier = *in.Multiplier
	}
	if err := country.Validate(); err != nil {
		return nil, err
	}
	country.UpdatedAt = time.Now()
	if err := uc.repo.Update(country); err != nil {
		return nil, err
	}
	return toCountryResponse(country), nil
}

// Delete elimina un país (solo admin). Las cotizaciones históricas conservan
// su snapshot de nombre y multiplicador, así que no quedan huérfanas.
func (uc *CountryUseCase) Delete(caller *policy.Caller, id string) error {
	if !policy.CanManageCountries(caller) {
		return domain.ErrForbidden
	}
	country, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if country == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toCountryResponse(c *entity.Country) *dto.CountryResponse {
	if c == nil {
		return nil
	}
	return &dto.CountryResponse{
		ID:           c.ID,
		Name:         c.Name,
		Code:         c.Code,
		Region:       c.Region,
		Currency:     c.Currency,
		CurrencyCode: c.CurrencyCode,
		Multiplier:   c.Multiplier,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}
