package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/projecost-api/internal/domain"
	"github.com/jhoicas/projecost-api/internal/domain/entity"
	"github.com/jhoicas/projecost-api/internal/domain/repository"
)

var _ repository.CountryRepository = (*CountryRepo)(nil)

// CountryRepo implementación del puerto CountryRepository sobre PostgreSQL.
type CountryRepo struct {
	pool *pgxpool.Pool
}

// NewCountryRepository construye el adaptador de persistencia para países.
func NewCountryRepository(pool *pgxpool.Pool) *CountryRepo {
	return &CountryRepo{pool: pool}
}

const countryColumns = `id, name, code, region, currency, currency_code, multiplier, created_at, updated_at`

// Create persiste un nuevo país.
func (r *CountryRepo) Create(country *entity.Country) error {
	query := `
		INSERT INTO countries (id, name, code, region, currency, currency_code, multiplier, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(context.Background(), query,
		country.ID, country.Name, country.Code, country.Region, country.Currency,
		country.CurrencyCode, country.Multiplier, country.CreatedAt, country.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert country: %w", err)
	}
	return nil
}

// GetByID obtiene un país por ID.
func (r *CountryRepo) GetByID(id string) (*entity.Country, error) {
	return r.getOne(`SELECT `+countryColumns+` FROM countries WHERE id = $1`, id)
}

// GetByName obtiene un país por nombre (único).
func (r *CountryRepo) GetByName(name string) (*entity.Country, error) {
	return r.getOne(`SELECT `+countryColumns+` FROM countries WHERE name = $1`, name)
}

// GetByCode obtiene un país por código ISO (único).
func (r *CountryRepo) GetByCode(code string) (*entity.Country, error) {
	return r.getOne(`SELECT `+countryColumns+` FROM countries WHERE code = $1`, code)
}

func (r *CountryRepo) getOne(query string, arg any) (*entity.Country, error) {
	var c entity.Country
	err := r.pool.QueryRow(context.Background(), query, arg).Scan(
		&c.ID, &c.Name, &c.Code, &c.Region, &c.Currency, &c.CurrencyCode,
		&c.Multiplier, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get country: %w", err)
	}
	return &c, nil
}

// Update actualiza un país.
func (r *CountryRepo) Update(country *entity.Country) error {
	query := `
		UPDATE countries SET name = $2, code = $3, region = $4, currency = $5, currency_code = $6, multiplier = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		country.ID, country.Name, country.Code, country.Region, country.Currency,
		country.CurrencyCode, country.Multiplier, country.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update country: %w", err)
	}
	return nil
}

// List lista todos los países ordenados por nombre.
func (r *CountryRepo) List() ([]*entity.Country, error) {
	query := `SELECT ` + countryColumns + ` FROM countries ORDER BY name ASC`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list countries: %w", err)
	}
	defer rows.Close()
	var list []*entity.Country
	for rows.Next() {
		var c entity.Country
		if err := rows.Scan(&c.ID, &c.Name, &c.Code, &c.Region, &c.Currency, &c.CurrencyCode,
			&c.Multiplier, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan country: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete elimina un país por ID.
func (r *CountryRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM countries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete country: %w", err)
	}
	return nil
}
