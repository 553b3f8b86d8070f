package repository

import (
	"context"

	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/domain/entity"
	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/domain/scope"
)

// CategoryRepository puerto de persistencia para Category (con scope de tenant).
type CategoryRepository interface {
	Create(ctx context.Context, sc scope.Scope, c *entity.Category) error
	GetByID(ctx context.Context, sc scope.Scope, id int64) (*entity.Category, error)
	// List categorías del scope ordenadas por posición.
	List(ctx context.Context, sc scope.Scope) ([]*entity.Category, error)
	Update(ctx context.Context, sc scope.Scope, c *entity.Category) error
	SoftDelete(ctx context.Context, sc scope.Scope, id int64) error
}

// DefaultCategoryRepository catálogo global de categorías por defecto
// (cross-tenant por naturaleza, administrado por el super-admin).
type DefaultCategoryRepository interface {
	Create(ctx context.Context, c *entity.DefaultCategory) error
	List(ctx context.Context) ([]*entity.DefaultCategory, error)
	Update(ctx context.Context, c *entity.DefaultCategory) error
	Delete(ctx context.Context, id int64) error
}
