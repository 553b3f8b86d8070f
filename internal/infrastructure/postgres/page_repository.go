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

var _ repository.PageRepository = (*PageRepo)(nil)

const pageColumns = `id, uuid, restaurant_id, title, slug, content, is_published, created_at, updated_at, deleted_at`

// PageRepo implementación del puerto PageRepository sobre PostgreSQL.
type PageRepo struct {
	q Querier
}

// NewPageRepository construye el adaptador de persistencia para páginas.
func NewPageRepository(q Querier) *PageRepo {
	return &PageRepo{q: q}
}

func scanPage(row pgx.Row) (*entity.Page, error) {
	var p entity.Page
	err := row.Scan(
		&p.ID, &p.UUID, &p.RestaurantID, &p.Title, &p.Slug, &p.Content,
		&p.IsPublished, &p.CreatedAt, &p.UpdatedAt, &p.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// Create persiste una página nueva y fija su ID generado.
func (r *PageRepo) Create(ctx context.Context, sc scope.Scope, p *entity.Page) error {
	if sc.Restricted() && sc.RestaurantID() != p.RestaurantID {
		return domain.ErrAccessDenied
	}
	query := `
		INSERT INTO pages (uuid, restaurant_id, title, slug, content, is_published, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		p.UUID, p.RestaurantID, p.Title, p.Slug, p.Content, p.IsPublished, p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert page: %w", err)
	}
	return nil
}

// GetByID devuelve nil sin error si no existe, está borrada o el scope la oculta.
func (r *PageRepo) GetByID(ctx context.Context, sc scope.Scope, id int64) (*entity.Page, error) {
	query := `SELECT ` + pageColumns + ` FROM pages WHERE id = $1 AND deleted_at IS NULL`
	args := []any{id}
	query, args = withScope(query, args, sc)
	p, err := scanPage(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("get page by id: %w", err)
	}
	return p, nil
}

// GetPublishedBySlug lectura pública de una página publicada del scope.
func (r *PageRepo) GetPublishedBySlug(ctx context.Context, sc scope.Scope, slug string) (*entity.Page, error) {
	query := `SELECT ` + pageColumns + ` FROM pages WHERE slug = $1 AND is_published = true AND deleted_at IS NULL`
	args := []any{slug}
	query, args = withScope(query, args, sc)
	p, err := scanPage(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("get published page by slug: %w", err)
	}
	return p, nil
}

// List lista las páginas del scope.
func (r *PageRepo) List(ctx context.Context, sc scope.Scope) ([]*entity.Page, error) {
	query := `SELECT ` + pageColumns + ` FROM pages WHERE deleted_at IS NULL`
	args := []any{}
	query, args = withScope(query, args, sc)
	query += " ORDER BY id"
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list pages: %w", err)
	}
	defer rows.Close()
	var out []*entity.Page
	for rows.Next() {
		p, err := scanPage(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Update escribe título, slug, contenido y flag de publicación.
func (r *PageRepo) Update(ctx context.Context, sc scope.Scope, p *entity.Page) error {
	query := `
		UPDATE pages
		SET title = $1, slug = $2, content = $3, is_published = $4, updated_at = $5
		WHERE id = $6 AND deleted_at IS NULL`
	args := []any{p.Title, p.Slug, p.Content, p.IsPublished, p.UpdatedAt, p.ID}
	query, args = withScope(query, args, sc)
	tag, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update page: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SoftDelete marca la página como borrada.
func (r *PageRepo) SoftDelete(ctx context.Context, sc scope.Scope, id int64) error {
	query := `UPDATE pages SET deleted_at = now(), updated_at = now() WHERE id = $1 AND deleted_at IS NULL`
	args := []any{id}
	query, args = withScope(query, args, sc)
	tag, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("soft delete page: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// PurgeDeleted destruye definitivamente soft-deletes anteriores a olderThan.
func (r *PageRepo) PurgeDeleted(ctx context.Context, sc scope.Scope, olderThan time.Time) (int64, error) {
	query := `DELETE FROM pages WHERE deleted_at IS NOT NULL AND deleted_at < $1`
	args := []any{olderThan}
	query, args = withScope(query, args, sc)
	tag, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("purge deleted pages: %w", err)
	}
	return tag.RowsAffected(), nil
}
