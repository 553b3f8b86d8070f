package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/domain"
	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/domain/entity"
	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/domain/repository"
	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/domain/scope"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, uuid, restaurant_id, category_id, name, description, price, image_url, status, position, created_at, updated_at, deleted_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
// Cada consulta pasa por withScope: el predicado de tenant no es opcional.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.UUID, &p.RestaurantID, &p.CategoryID, &p.Name, &p.Description,
		&p.Price, &p.ImageURL, &p.Status, &p.Position, &p.CreatedAt, &p.UpdatedAt, &p.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func collectProducts(rows pgx.Rows) ([]*entity.Product, error) {
	defer rows.Close()
	var out []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Create persiste un producto nuevo y fija su ID generado.
func (r *ProductRepo) Create(ctx context.Context, sc scope.Scope, p *entity.Product) error {
	if sc.Restricted() && sc.RestaurantID() != p.RestaurantID {
		return domain.ErrAccessDenied
	}
	query := `
		INSERT INTO products (uuid, restaurant_id, category_id, name, description, price, image_url, status, position, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		p.UUID, p.RestaurantID, p.CategoryID, p.Name, p.Description,
		p.Price, p.ImageURL, p.Status, p.Position, p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID devuelve nil sin error si el producto no existe, está borrado o el
// scope lo oculta. El llamador no puede distinguir los tres casos.
func (r *ProductRepo) GetByID(ctx context.Context, sc scope.Scope, id int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 AND deleted_at IS NULL`
	args := []any{id}
	query, args = withScope(query, args, sc)
	p, err := scanProduct(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("get product by id: %w", err)
	}
	return p, nil
}

// List lista productos del scope ordenados por posición, con paginación.
func (r *ProductRepo) List(ctx context.Context, sc scope.Scope, limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE deleted_at IS NULL`
	args := []any{}
	query, args = withScope(query, args, sc)
	query += fmt.Sprintf(" ORDER BY position, id LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return collectProducts(rows)
}

// ListApproved lista solo los productos visibles en el menú público.
func (r *ProductRepo) ListApproved(ctx context.Context, sc scope.Scope) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE deleted_at IS NULL AND status = $1`
	args := []any{entity.StatusApproved}
	query, args = withScope(query, args, sc)
	query += " ORDER BY position, id"
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list approved products: %w", err)
	}
	return collectProducts(rows)
}

// ListPendingApproval cola de revisión ordenada por antigüedad.
func (r *ProductRepo) ListPendingApproval(ctx context.Context, sc scope.Scope, limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE deleted_at IS NULL AND status = $1`
	args := []any{entity.StatusPendingApproval}
	query, args = withScope(query, args, sc)
	query += fmt.Sprintf(" ORDER BY updated_at, id LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list pending products: %w", err)
	}
	return collectProducts(rows)
}

// Update escribe los campos editables. El estado no se toca aquí; para eso
// está UpdateStatus con su compare-and-set.
func (r *ProductRepo) Update(ctx context.Context, sc scope.Scope, p *entity.Product) error {
	query := `
		UPDATE products
		SET category_id = $1, name = $2, description = $3, price = $4, image_url = $5, position = $6, updated_at = $7
		WHERE id = $8 AND deleted_at IS NULL`
	args := []any{p.CategoryID, p.Name, p.Description, p.Price, p.ImageURL, p.Position, p.UpdatedAt, p.ID}
	query, args = withScope(query, args, sc)
	tag, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStatus compare-and-set: la fila solo cambia si su estado actual sigue
// siendo from. Devuelve false cuando otra petición ganó la carrera.
func (r *ProductRepo) UpdateStatus(ctx context.Context, sc scope.Scope, id int64, from, to entity.ProductStatus) (bool, error) {
	query := `
		UPDATE products
		SET status = $1, updated_at = now()
		WHERE id = $2 AND status = $3 AND deleted_at IS NULL`
	args := []any{to, id, from}
	query, args = withScope(query, args, sc)
	tag, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("update product status: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// SoftDelete marca el producto como borrado sin destruir la fila.
func (r *ProductRepo) SoftDelete(ctx context.Context, sc scope.Scope, id int64) error {
	query := `UPDATE products SET deleted_at = now(), updated_at = now() WHERE id = $1 AND deleted_at IS NULL`
	args := []any{id}
	query, args = withScope(query, args, sc)
	tag, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("soft delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// PurgeDeleted destruye definitivamente soft-deletes anteriores a olderThan.
func (r *ProductRepo) PurgeDeleted(ctx context.Context, sc scope.Scope, olderThan time.Time) (int64, error) {
	query := `DELETE FROM products WHERE deleted_at IS NOT NULL AND deleted_at < $1`
	args := []any{olderThan}
	query, args = withScope(query, args, sc)
	tag, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("purge deleted products: %w", err)
	}
	return tag.RowsAffected(), nil
}
