package repository

import (
	"context"

	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/domain/entity"
)

// RestaurantRepository puerto de persistencia para Restaurant.
// Los restaurantes son la frontera de tenant, no datos dentro de ella:
// solo el super-admin los administra, así que no reciben scope.
type RestaurantRepository interface {
	Create(ctx context.Context, r *entity.Restaurant) error
	GetByID(ctx context.Context, id int64) (*entity.Restaurant, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Restaurant, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Restaurant, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
}
