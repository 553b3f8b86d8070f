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

// CategoryUseCase CRUD de categorías del menú (datos de tenant).
type CategoryUseCase struct {
	categories repository.CategoryRepository
	cache      MenuCache
}

// NewCategoryUseCase construye el caso de uso de categorías.
func NewCategoryUseCase(categories repository.CategoryRepository, cache MenuCache) *CategoryUseCase {
	return &CategoryUseCase{categories: categories, cache: cache}
}

// Create crea una categoría dentro del tenant del scope.
func (uc *CategoryUseCase) Create(ctx context.Context, sc scope.Scope, p *domain.Principal, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if !sc.Restricted() {
		// Las categorías siempre nacen dentro de un tenant concreto.
		return nil, domain.ErrAccessDenied
	}
	now := time.Now()
	c := &entity.Category{
		UUID:         uuid.New().String(),
		RestaurantID: sc.RestaurantID(),
		Name:         in.Name,
		Slug:         slug.Make(in.Name),
		Position:     in.Position,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.categories.Create(ctx, sc, c); err != nil {
		return nil, err
	}
	uc.cache.Invalidate(ctx, c.RestaurantID)
	return toCategoryResponse(c), nil
}

// Get obtiene una categoría visible para el scope y el principal.
// Una negación cross-tenant se devuelve como ErrNotFound (anti-enumeración).
func (uc *CategoryUseCase) Get(ctx context.Context, sc scope.Scope, p *domain.Principal, id int64) (*dto.CategoryResponse, error) {
	c, err := uc.loadAuthorized(ctx, sc, p, authz.ActionView, id)
	if err != nil {
		return nil, err
	}
	return toCategoryResponse(c), nil
}

// List lista las categorías del scope ordenadas por posición.
func (uc *CategoryUseCase) List(ctx context.Context, sc scope.Scope) ([]*dto.CategoryResponse, error) {
	list, err := uc.categories.List(ctx, sc)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCategoryResponse(c))
	}
	return out, nil
}

// Update edita nombre y posición de una categoría.
func (uc *CategoryUseCase) Update(ctx context.Context, sc scope.Scope, p *domain.Principal, id int64, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	c, err := uc.loadAuthorized(ctx, sc, p, authz.ActionEdit, id)
	if err != nil {
		return nil, err
	}
	c.Name = in.Name
	c.Slug = slug.Make(in.Name)
	c.Position = in.Position
	c.UpdatedAt = time.Now()
	if err := uc.categories.Update(ctx, sc, c); err != nil {
		return nil, err
	}
	uc.cache.Invalidate(ctx, c.RestaurantID)
	return toCategoryResponse(c), nil
}

// Delete borra (soft) una categoría.
func (uc *CategoryUseCase) Delete(ctx context.Context, sc scope.Scope, p *domain.Principal, id int64) error {
	c, err := uc.loadAuthorized(ctx, sc, p, authz.ActionDelete, id)
	if err != nil {
		return err
	}
	if err := uc.categories.SoftDelete(ctx, sc, id); err != nil {
		return err
	}
	uc.cache.Invalidate(ctx, c.RestaurantID)
	return nil
}

// loadAuthorized carga la fila bajo el scope y pasa el voter de pertenencia.
// Tanto "no existe" como "existe pero es de otro tenant" terminan en
// ErrNotFound: el caller no puede distinguirlos.
func (uc *CategoryUseCase) loadAuthorized(ctx context.Context, sc scope.Scope, p *domain.Principal, action authz.Action, id int64) (*entity.Category, error) {
	c, err := uc.categories.GetByID(ctx, sc, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if !authz.CanAccessOwned(p, action, c.RestaurantID) {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		ID:           c.ID,
		UUID:         c.UUID,
		RestaurantID: c.RestaurantID,
		Name:         c.Name,
		Slug:         c.Slug,
		Position:     c.Position,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}
