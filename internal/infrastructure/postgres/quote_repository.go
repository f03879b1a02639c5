package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/projecost-api/internal/domain/entity"
	"github.com/jhoicas/projecost-api/internal/domain/repository"
)

var _ repository.QuoteRepository = (*QuoteRepo)(nil)

// QuoteRepo implementación del puerto QuoteRepository sobre PostgreSQL.
// El snapshot de pricing se escribe una vez en Create; después solo cambian
// status y updated_at.
type QuoteRepo struct {
	pool *pgxpool.Pool
}

// NewQuoteRepository construye el adaptador de persistencia para cotizaciones.
func NewQuoteRepository(pool *pgxpool.Pool) *QuoteRepo {
	return &QuoteRepo{pool: pool}
}

const quoteColumns = `id, client_id, provider_id, service_id, client_name, client_email, client_country,
		service_name, service_category, selected_tier, complexity, base_price, adjusted_price,
		country_multiplier, delivery_time_days, description, status, created_at, updated_at, expires_at`

// Create persiste una nueva cotización con su snapshot completo.
func (r *QuoteRepo) Create(quote *entity.Quote) error {
	query := `
		INSERT INTO quotes (` + quoteColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`
	_, err := r.pool.Exec(context.Background(), query,
		quote.ID, nullable(quote.ClientID), nullable(quote.ProviderID), quote.ServiceID,
		quote.ClientName, quote.ClientEmail, quote.ClientCountry,
		quote.ServiceName, quote.ServiceCategory, quote.SelectedTier, quote.Complexity,
		quote.BasePrice, quote.AdjustedPrice, quote.CountryMultiplier, quote.DeliveryTimeDays,
		quote.Description, quote.Status, quote.CreatedAt, quote.UpdatedAt, quote.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("insert quote: %w", err)
	}
	return nil
}

// GetByID obtiene una cotización por ID.
func (r *QuoteRepo) GetByID(id string) (*entity.Quote, error) {
	query := `SELECT ` + quoteColumns + ` FROM quotes WHERE id = $1`
	row := r.pool.QueryRow(context.Background(), query, id)
	quote, err := scanQuote(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get quote by id: %w", err)
	}
	return quote, nil
}

// UpdateStatus cambia el estado y updated_at; el resto de la fila es inmutable.
func (r *QuoteRepo) UpdateStatus(id, status string, updatedAt time.Time) error {
	query := `UPDATE quotes SET status = $2, updated_at = $3 WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query, id, status, updatedAt)
	if err != nil {
		return fmt.Errorf("update quote status: %w", err)
	}
	return nil
}

// List lista todas las cotizaciones (alcance admin).
func (r *QuoteRepo) List() ([]*entity.Quote, error) {
	return r.list(`SELECT ` + quoteColumns + ` FROM quotes ORDER BY created_at DESC`)
}

// ListByProvider lista las cotizaciones dirigidas a un proveedor.
func (r *QuoteRepo) ListByProvider(providerID string) ([]*entity.Quote, error) {
	return r.list(`SELECT `+quoteColumns+` FROM quotes WHERE provider_id = $1 ORDER BY created_at DESC`, providerID)
}

// ListByClient lista las cotizaciones solicitadas por un cliente.
func (r *QuoteRepo) ListByClient(clientID string) ([]*entity.Quote, error) {
	return r.list(`SELECT `+quoteColumns+` FROM quotes WHERE client_id = $1 ORDER BY created_at DESC`, clientID)
}

func (r *QuoteRepo) list(query string, args ...any) ([]*entity.Quote, error) {
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Quote
	for rows.Next() {
		quote, err := scanQuote(rows)
		if err != nil {
			return nil, fmt.Errorf("scan quote: %w", err)
		}
		list = append(list, quote)
	}
	return list, rows.Err()
}

// Delete elimina una cotización por ID.
func (r *QuoteRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM quotes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete quote: %w", err)
	}
	return nil
}

func scanQuote(row pgx.Row) (*entity.Quote, error) {
	var q entity.Quote
	var clientID, providerID *string
	err := row.Scan(
		&q.ID, &clientID, &providerID, &q.ServiceID, &q.ClientName, &q.ClientEmail, &q.ClientCountry,
		&q.ServiceName, &q.ServiceCategory, &q.SelectedTier, &q.Complexity, &q.BasePrice, &q.AdjustedPrice,
		&q.CountryMultiplier, &q.DeliveryTimeDays, &q.Description, &q.Status, &q.CreatedAt, &q.UpdatedAt, &q.ExpiresAt,
	)
	if err != nil {
		return nil, err
	}
	if clientID != nil {
		q.ClientID = *clientID
	}
	if providerID != nil {
		q.ProviderID = *providerID
	}
	return &q, nil
}

// nullable convierte "" a NULL para columnas de referencia opcional.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
