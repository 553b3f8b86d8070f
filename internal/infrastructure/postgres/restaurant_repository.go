package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/domain"
	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/domain/entity"
	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/domain/repository"
)

var _ repository.RestaurantRepository = (*RestaurantRepo)(nil)

// RestaurantRepo implementación del puerto RestaurantRepository sobre PostgreSQL.
type RestaurantRepo struct {
	q Querier
}

// NewRestaurantRepository construye el adaptador de persistencia para restaurantes.
func NewRestaurantRepository(q Querier) *RestaurantRepo {
	return &RestaurantRepo{q: q}
}

const restaurantColumns = `id, uuid, name, slug, description, phone, address, status, created_at, updated_at`

// Create persiste un restaurante nuevo y fija su ID generado.
func (r *RestaurantRepo) Create(ctx context.Context, rest *entity.Restaurant) error {
	query := `
		INSERT INTO restaurants (uuid, name, slug, description, phone, address, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		rest.UUID, rest.Name, rest.Slug, rest.Description, rest.Phone, rest.Address,
		rest.Status, rest.CreatedAt, rest.UpdatedAt,
	).Scan(&rest.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert restaurant: %w", err)
	}
	return nil
}

// GetByID obtiene un restaurante por ID; nil sin error si no existe.
func (r *RestaurantRepo) GetByID(ctx context.Context, id int64) (*entity.Restaurant, error) {
	query := `SELECT ` + restaurantColumns + ` FROM restaurants WHERE id = $1`
	return r.scanOne(ctx, query, id)
}

// GetBySlug obtiene un restaurante por slug público; nil sin error si no existe.
func (r *RestaurantRepo) GetBySlug(ctx context.Context, slug string) (*entity.Restaurant, error) {
	query := `SELECT ` + restaurantColumns + ` FROM restaurants WHERE slug = $1`
	return r.scanOne(ctx, query, slug)
}

func (r *RestaurantRepo) scanOne(ctx context.Context, query string, arg any) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&rest.ID, &rest.UUID, &rest.Name, &rest.Slug, &rest.Description,
		&rest.Phone, &rest.Address, &rest.Status, &rest.CreatedAt, &rest.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get restaurant: %w", err)
	}
	return &rest, nil
}

// List lista restaurantes con paginación.
func (r *RestaurantRepo) List(ctx context.Context, limit, offset int) ([]*entity.Restaurant, error) {
	query := `SELECT ` + restaurantColumns + `
		FROM restaurants ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list restaurants: %w", err)
	}
	defer rows.Close()
	var list []*entity.Restaurant
	for rows.Next() {
		var rest entity.Restaurant
		if err := rows.Scan(
			&rest.ID, &rest.UUID, &rest.Name, &rest.Slug, &rest.Description,
			&rest.Phone, &rest.Address, &rest.Status, &rest.CreatedAt, &rest.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan restaurant: %w", err)
		}
		list = append(list, &rest)
	}
	return list, rows.Err()
}

// UpdateStatus cambia el estado de un restaurante.
func (r *RestaurantRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	_, err := r.q.Exec(ctx, `UPDATE restaurants SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update restaurant status: %w", err)
	}
	return nil
}
