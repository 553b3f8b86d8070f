package usecase

import (
	"context"
	"time"

	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/application/authz"
	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/application/dto"
	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/domain"
	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/domain/entity"
	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/domain/repository"
)

// DefaultCategoryUseCase catálogo global de categorías por defecto (admin).
type DefaultCategoryUseCase struct {
	defaults repository.DefaultCategoryRepository
}

// NewDefaultCategoryUseCase construye el caso de uso del catálogo por defecto.
func NewDefaultCategoryUseCase(defaults repository.DefaultCategoryRepository) *DefaultCategoryUseCase {
	return &DefaultCategoryUseCase{defaults: defaults}
}

// List lista el catálogo por defecto.
func (uc *DefaultCategoryUseCase) List(ctx context.Context, p *domain.Principal) ([]*dto.DefaultCategoryResponse, error) {
	if !authz.CanManage(p, authz.ActionManageDefaults) {
		return nil, domain.ErrAccessDenied
	}
	list, err := uc.defaults.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.DefaultCategoryResponse, 0, len(list))
	for _, d := range list {
		out = append(out, &dto.DefaultCategoryResponse{ID: d.ID, Name: d.Name, Position: d.Position})
	}
	return out, nil
}

// Create agrega una categoría al catálogo por defecto.
func (uc *DefaultCategoryUseCase) Create(ctx context.Context, p *domain.Principal, in dto.DefaultCategoryRequest) (*dto.DefaultCategoryResponse, error) {
	if !authz.CanManage(p, authz.ActionManageDefaults) {
		return nil, domain.ErrAccessDenied
	}
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	d := &entity.DefaultCategory{Name: in.Name, Position: in.Position, CreatedAt: now, UpdatedAt: now}
	if err := uc.defaults.Create(ctx, d); err != nil {
		return nil, err
	}
	return &dto.DefaultCategoryResponse{ID: d.ID, Name: d.Name, Position: d.Position}, nil
}

// Update edita una categoría del catálogo por defecto.
func (uc *DefaultCategoryUseCase) Update(ctx context.Context, p *domain.Principal, id int64, in dto.DefaultCategoryRequest) (*dto.DefaultCategoryResponse, error) {
	if !authz.CanManage(p, authz.ActionManageDefaults) {
		return nil, domain.ErrAccessDenied
	}
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	d := &entity.DefaultCategory{ID: id, Name: in.Name, Position: in.Position, UpdatedAt: time.Now()}
	if err := uc.defaults.Update(ctx, d); err != nil {
		return nil, err
	}
	return &dto.DefaultCategoryResponse{ID: d.ID, Name: d.Name, Position: d.Position}, nil
}

// Delete elimina una categoría del catálogo por defecto.
func (uc *DefaultCategoryUseCase) Delete(ctx context.Context, p *domain.Principal, id int64) error {
	if !authz.CanManage(p, authz.ActionManageDefaults) {
		return domain.ErrAccessDenied
	}
	return uc.defaults.Delete(ctx, id)
}
