package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/projecost-api/internal/domain/entity"
	"github.com/jhoicas/projecost-api/internal/domain/repository"
)

var _ repository.ServiceRepository = (*ServiceRepo)(nil)

// ServiceRepo implementación del puerto ServiceRepository sobre PostgreSQL.
// Los tiers de cada servicio se persisten como JSONB en la misma fila.
type ServiceRepo struct {
	pool *pgxpool.Pool
}

// NewServiceRepository construye el adaptador de persistencia para servicios.
func NewServiceRepository(pool *pgxpool.Pool) *ServiceRepo {
	return &ServiceRepo{pool: pool}
}

// Create persiste un nuevo servicio.
func (r *ServiceRepo) Create(service *entity.Service) error {
	tiers, err := json.Marshal(service.Tiers)
	if err != nil {
		return fmt.Errorf("marshal tiers: %w", err)
	}
	query := `
		INSERT INTO services (id, name, category, description, owner_id, tiers, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err = r.pool.Exec(context.Background(), query,
		service.ID, service.Name, service.Category, service.Description, service.OwnerID,
		tiers, service.IsActive, service.CreatedAt, service.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert service: %w", err)
	}
	return nil
}

// GetByID obtiene un servicio por ID.
func (r *ServiceRepo) GetByID(id string) (*entity.Service, error) {
	query := `
		SELECT id, name, category, description, owner_id, tiers, is_active, created_at, updated_at
		FROM services WHERE id = $1`
	row := r.pool.QueryRow(context.Background(), query, id)
	service, err := scanService(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get service by id: %w", err)
	}
	return service, nil
}

// Update actualiza un servicio (tiers incluidos, como documento completo).
func (r *ServiceRepo) Update(service *entity.Service) error {
	tiers, err := json.Marshal(service.Tiers)
	if err != nil {
		return fmt.Errorf("marshal tiers: %w", err)
	}
	query := `
		UPDATE services SET name = $2, category = $3, description = $4, tiers = $5, is_active = $6, updated_at = $7
		WHERE id = $1`
	_, err = r.pool.Exec(context.Background(), query,
		service.ID, service.Name, service.Category, service.Description,
		tiers, service.IsActive, service.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update service: %w", err)
	}
	return nil
}

// List lista servicios; category vacío = todos.
func (r *ServiceRepo) List(category string) ([]*entity.Service, error) {
	query := `
		SELECT id, name, category, description, owner_id, tiers, is_active, created_at, updated_at
		FROM services`
	args := []any{}
	if category != "" {
		query += ` WHERE category = $1`
		args = append(args, category)
	}
	query += ` ORDER BY created_at DESC`
	return r.list(query, args...)
}

// ListByOwner lista los servicios de un proveedor.
func (r *ServiceRepo) ListByOwner(ownerID string) ([]*entity.Service, error) {
	query := `
		SELECT id, name, category, description, owner_id, tiers, is_active, created_at, updated_at
		FROM services WHERE owner_id = $1 ORDER BY created_at DESC`
	return r.list(query, ownerID)
}

func (r *ServiceRepo) list(query string, args ...any) ([]*entity.Service, error) {
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()
	var list []*entity.Service
	for rows.Next() {
		service, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		list = append(list, service)
	}
	return list, rows.Err()
}

// Delete elimina un servicio por ID.
func (r *ServiceRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete service: %w", err)
	}
	return nil
}

func scanService(row pgx.Row) (*entity.Service, error) {
	var s entity.Service
	var tiersRaw []byte
	err := row.Scan(
		&s.ID, &s.Name, &s.Category, &s.Description, &s.OwnerID,
		&tiersRaw, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(tiersRaw, &s.Tiers); err != nil {
		return nil, fmt.Errorf("unmarshal tiers: %w", err)
	}
	return &s, nil
}
