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

// PageUseCase CRUD de páginas estáticas del restaurante.
type PageUseCase struct {
	pages repository.PageRepository
}

// NewPageUseCase construye el caso de uso de páginas.
func NewPageUseCase(pages repository.PageRepository) *PageUseCase {
	return &PageUseCase{pages: pages}
}

// Create crea una página dentro del tenant del scope.
func (uc *PageUseCase) Create(ctx context.Context, sc scope.Scope, p *domain.Principal, in dto.PageRequestBody) (*dto.PageResponse, error) {
	if in.Title == "" {
		return nil, domain.ErrInvalidInput
	}
	if !sc.Restricted() {
		return nil, domain.ErrAccessDenied
	}
	now := time.Now()
	pg := &entity.Page{
		UUID:         uuid.New().String(),
		RestaurantID: sc.RestaurantID(),
		Title:        in.Title,
		Slug:         slug.Make(in.Title),
		Content:      in.Content,
		IsPublished:  in.IsPublished,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.pages.Create(ctx, sc, pg); err != nil {
		return nil, err
	}
	return toPageResponse(pg), nil
}

// Get obtiene una página visible para el scope y el principal.
func (uc *PageUseCase) Get(ctx context.Context, sc scope.Scope, p *domain.Principal, id int64) (*dto.PageResponse, error) {
	pg, err := uc.loadAuthorized(ctx, sc, p, authz.ActionView, id)
	if err != nil {
		return nil, err
	}
	return toPageResponse(pg), nil
}

// List lista las páginas del scope.
func (uc *PageUseCase) List(ctx context.Context, sc scope.Scope) ([]*dto.PageResponse, error) {
	list, err := uc.pages.List(ctx, sc)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PageResponse, 0, len(list))
	for _, pg := range list {
		out = append(out, toPageResponse(pg))
	}
	return out, nil
}

// Update edita una página.
func (uc *PageUseCase) Update(ctx context.Context, sc scope.Scope, p *domain.Principal, id int64, in dto.PageRequestBody) (*dto.PageResponse, error) {
	if in.Title == "" {
		return nil, domain.ErrInvalidInput
	}
	pg, err := uc.loadAuthorized(ctx, sc, p, authz.ActionEdit, id)
	if err != nil {
		return nil, err
	}
	pg.Title = in.Title
	pg.Slug = slug.Make(in.Title)
	pg.Content = in.Content
	pg.IsPublished = in.IsPublished
	pg.UpdatedAt = time.Now()
	if err := uc.pages.Update(ctx, sc, pg); err != nil {
		return nil, err
	}
	return toPageResponse(pg), nil
}

// Delete borra (soft) una página.
func (uc *PageUseCase) Delete(ctx context.Context, sc scope.Scope, p *domain.Principal, id int64) error {
	if _, err := uc.loadAuthorized(ctx, sc, p, authz.ActionDelete, id); err != nil {
		return err
	}
	return uc.pages.SoftDelete(ctx, sc, id)
}

func (uc *PageUseCase) loadAuthorized(ctx context.Context, sc scope.Scope, p *domain.Principal, action authz.Action, id int64) (*entity.Page, error) {
	pg, err := uc.pages.GetByID(ctx, sc, id)
	if err != nil {
		return nil, err
	}
	if pg == nil {
		return nil, domain.ErrNotFound
	}
	if !authz.CanAccessOwned(p, action, pg.RestaurantID) {
		return nil, domain.ErrNotFound
	}
	return pg, nil
}

func toPageResponse(p *entity.Page) *dto.PageResponse {
	return &dto.PageResponse{
		ID:           p.ID,
		UUID:         p.UUID,
		RestaurantID: p.RestaurantID,
		Title:        p.Title,
		Slug:         p.Slug,
		Content:      p.Content,
		IsPublished:  p.IsPublished,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
