package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/domain"
	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/domain/entity"
	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/domain/repository"
	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/domain/scope"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

const categoryColumns = `id, uuid, restaurant_id, name, slug, position, created_at, updated_at, deleted_at`

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador de persistencia para categorías.
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

func scanCategory(row pgx.Row) (*entity.Category, error) {
	var c entity.Category
	err := row.Scan(
		&c.ID, &c.UUID, &c.RestaurantID, &c.Name, &c.Slug,
		&c.Position, &c.CreatedAt, &c.UpdatedAt, &c.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

// Create persiste una categoría nueva y fija su ID generado.
func (r *CategoryRepo) Create(ctx context.Context, sc scope.Scope, c *entity.Category) error {
	if sc.Restricted() && sc.RestaurantID() != c.RestaurantID {
		return domain.ErrAccessDenied
	}
	query := `
		INSERT INTO categories (uuid, restaurant_id, name, slug, position, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		c.UUID, c.RestaurantID, c.Name, c.Slug, c.Position, c.CreatedAt, c.UpdatedAt,
	).Scan(&c.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetByID devuelve nil sin error si no existe, está borrada o el scope la oculta.
func (r *CategoryRepo) GetByID(ctx context.Context, sc scope.Scope, id int64) (*entity.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1 AND deleted_at IS NULL`
	args := []any{id}
	query, args = withScope(query, args, sc)
	c, err := scanCategory(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("get category by id: %w", err)
	}
	return c, nil
}

// List lista las categorías del scope ordenadas por posición.
func (r *CategoryRepo) List(ctx context.Context, sc scope.Scope) ([]*entity.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE deleted_at IS NULL`
	args := []any{}
	query, args = withScope(query, args, sc)
	query += " ORDER BY position, id"
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var out []*entity.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Update escribe nombre, slug y posición.
func (r *CategoryRepo) Update(ctx context.Context, sc scope.Scope, c *entity.Category) error {
	query := `
		UPDATE categories
		SET name = $1, slug = $2, position = $3, updated_at = $4
		WHERE id = $5 AND deleted_at IS NULL`
	args := []any{c.Name, c.Slug, c.Position, c.UpdatedAt, c.ID}
	query, args = withScope(query, args, sc)
	tag, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SoftDelete marca la categoría como borrada.
func (r *CategoryRepo) SoftDelete(ctx context.Context, sc scope.Scope, id int64) error {
	query := `UPDATE categories SET deleted_at = now(), updated_at = now() WHERE id = $1 AND deleted_at IS NULL`
	args := []any{id}
	query, args = withScope(query, args, sc)
	tag, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("soft delete category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

var _ repository.DefaultCategoryRepository = (*DefaultCategoryRepo)(nil)

// DefaultCategoryRepo catálogo global de categorías por defecto. No recibe
// scope: la tabla no pertenece a ningún tenant.
type DefaultCategoryRepo struct {
	q Querier
}

// NewDefaultCategoryRepository construye el adaptador del catálogo global.
func NewDefaultCategoryRepository(q Querier) *DefaultCategoryRepo {
	return &DefaultCategoryRepo{q: q}
}

// Create persiste una plantilla nueva y fija su ID generado.
func (r *DefaultCategoryRepo) Create(ctx context.Context, c *entity.DefaultCategory) error {
	query := `
		INSERT INTO default_categories (name, position, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, c.Name, c.Position, c.CreatedAt, c.UpdatedAt).Scan(&c.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert default category: %w", err)
	}
	return nil
}

// List lista el catálogo completo ordenado por posición.
func (r *DefaultCategoryRepo) List(ctx context.Context) ([]*entity.DefaultCategory, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, name, position, created_at, updated_at FROM default_categories ORDER BY position, id`)
	if err != nil {
		return nil, fmt.Errorf("list default categories: %w", err)
	}
	defer rows.Close()
	var out []*entity.DefaultCategory
	for rows.Next() {
		var c entity.DefaultCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.Position, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

// Update escribe nombre y posición de una plantilla.
func (r *DefaultCategoryRepo) Update(ctx context.Context, c *entity.DefaultCategory) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE default_categories SET name = $1, position = $2, updated_at = $3 WHERE id = $4`,
		c.Name, c.Position, c.UpdatedAt, c.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update default category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina la plantilla del catálogo. Los restaurantes ya sembrados
// conservan sus copias.
func (r *DefaultCategoryRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM default_categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete default category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
