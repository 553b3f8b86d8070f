package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/application/authz"
	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/application/dto"
	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/domain"
	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/domain/entity"
	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/domain/repository"
	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/domain/scope"
	"github.com/gokhangunesyou-cmd/qrmenu-sub001/pkg/slug"
)

// RestaurantUseCase administración de restaurantes (solo super-admin).
// Al crear un restaurante se siembran las categorías por defecto del catálogo.
type RestaurantUseCase struct {
	restaurants repository.RestaurantRepository
	categories  repository.CategoryRepository
	defaults    repository.DefaultCategoryRepository
}

// NewRestaurantUseCase construye el caso de uso de restaurantes.
func NewRestaurantUseCase(restaurants repository.RestaurantRepository, categories repository.CategoryRepository, defaults repository.DefaultCategoryRepository) *RestaurantUseCase {
	return &RestaurantUseCase{restaurants: restaurants, categories: categories, defaults: defaults}
}

// Create da de alta un restaurante y siembra sus categorías iniciales.
func (uc *RestaurantUseCase) Create(ctx context.Context, p *domain.Principal, in dto.CreateRestaurantRequest) (*dto.RestaurantResponse, error) {
	if !authz.CanManage(p, authz.ActionManageRestaurants) {
		return nil, domain.ErrAccessDenied
	}
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	r := &entity.Restaurant{
		UUID:        uuid.New().String(),
		Name:        in.Name,
		Slug:        slug.Make(in.Name),
		Description: in.Description,
		Phone:       in.Phone,
		Address:     in.Address,
		Status:      entity.RestaurantActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.restaurants.Create(ctx, r); err != nil {
		return nil, err
	}

	// Siembra del catálogo por defecto dentro del tenant recién creado.
	defaults, err := uc.defaults.List(ctx)
	if err != nil {
		return nil, err
	}
	sc := scope.ForRestaurant(r.ID)
	for _, d := range defaults {
		c := &entity.Category{
			UUID:         uuid.New().String(),
			RestaurantID: r.ID,
			Name:         d.Name,
			Slug:         slug.Make(d.Name),
			Position:     d.Position,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := uc.categories.Create(ctx, sc, c); err != nil {
			return nil, err
		}
	}
	return toRestaurantResponse(r), nil
}

// List lista restaurantes (solo super-admin).
func (uc *RestaurantUseCase) List(ctx context.Context, p *domain.Principal, page dto.PageRequest) ([]*dto.RestaurantResponse, error) {
	if !authz.CanManage(p, authz.ActionManageRestaurants) {
		return nil, domain.ErrAccessDenied
	}
	page.DefaultPage()
	list, err := uc.restaurants.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.RestaurantResponse, 0, len(list))
	for _, r := range list {
		out = append(out, toRestaurantResponse(r))
	}
	return out, nil
}

// SetStatus suspende o reactiva un restaurante (solo super-admin).
func (uc *RestaurantUseCase) SetStatus(ctx context.Context, p *domain.Principal, id int64, status string) error {
	if !authz.CanManage(p, authz.ActionManageRestaurants) {
		return domain.ErrAccessDenied
	}
	if status != entity.RestaurantActive && status != entity.RestaurantSuspended {
		return domain.ErrInvalidInput
	}
	r, err := uc.restaurants.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if r == nil {
		return domain.ErrNotFound
	}
	return uc.restaurants.UpdateStatus(ctx, id, status)
}

func toRestaurantResponse(r *entity.Restaurant) *dto.RestaurantResponse {
	return &dto.RestaurantResponse{
		ID:          r.ID,
		UUID:        r.UUID,
		Name:        r.Name,
		Slug:        r.Slug,
		Description: r.Description,
		Phone:       r.Phone,
		Address:     r.Address,
		Status:      r.Status,
		CreatedAt:   r.CreatedAt,
	}
}
