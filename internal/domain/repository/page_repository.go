package repository

import (
	"context"
	"time"

	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/domain/entity"
	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/domain/scope"
)

// PageRepository puerto de persistencia para Page (con scope de tenant).
type PageRepository interface {
	Create(ctx context.Context, sc scope.Scope, p *entity.Page) error
	GetByID(ctx context.Context, sc scope.Scope, id int64) (*entity.Page, error)
	// GetPublishedBySlug lectura pública dentro del scope del restaurante.
	GetPublishedBySlug(ctx context.Context, sc scope.Scope, slug string) (*entity.Page, error)
	List(ctx context.Context, sc scope.Scope) ([]*entity.Page, error)
	Update(ctx context.Context, sc scope.Scope, p *entity.Page) error
	SoftDelete(ctx context.Context, sc scope.Scope, id int64) error
	// PurgeDeleted ver ProductRepository.PurgeDeleted.
	PurgeDeleted(ctx context.Context, sc scope.Scope, olderThan time.Time) (int64, error)
}
