package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/application/authz"
	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/application/dto"
	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/domain"
	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/domain/entity"
	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/domain/repository"
	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/domain/scope"
)

// ProductUseCase CRUD y workflow de publicación de productos.
// Las operaciones del panel reciben el scope del tenant; las de aprobación
// (super-admin) corren con scope sin restricción.
type ProductUseCase struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	cache      MenuCache
}

// NewProductUseCase construye el caso de uso de productos.
func NewProductUseCase(products repository.ProductRepository, categories repository.CategoryRepository, cache MenuCache) *ProductUseCase {
	return &ProductUseCase{products: products, categories: categories, cache: cache}
}

// Create crea un producto en DRAFT dentro del tenant del scope.
func (uc *ProductUseCase) Create(ctx context.Context, sc scope.Scope, p *domain.Principal, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.CategoryID == 0 {
		return nil, domain.ErrInvalidInput
	}
	if !sc.Restricted() {
		return nil, domain.ErrAccessDenied
	}
	price, err := decimal.NewFromString(in.Price)
	if err != nil || price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	// La categoría debe ser visible bajo el mismo scope: referenciar una
	// categoría ajena es indistinguible de referenciar una inexistente.
	cat, err := uc.categories.GetByID(ctx, sc, in.CategoryID)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	prod := &entity.Product{
		UUID:         uuid.New().String(),
		RestaurantID: sc.RestaurantID(),
		CategoryID:   in.CategoryID,
		Name:         in.Name,
		Description:  in.Description,
		Price:        price,
		ImageURL:     in.ImageURL,
		Status:       entity.StatusDraft,
		Position:     in.Position,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.products.Create(ctx, sc, prod); err != nil {
		return nil, err
	}
	return toProductResponse(prod), nil
}

// Get obtiene un producto visible para el scope y el principal.
func (uc *ProductUseCase) Get(ctx context.Context, sc scope.Scope, p *domain.Principal, id int64) (*dto.ProductResponse, error) {
	prod, err := uc.loadAuthorized(ctx, sc, p, authz.ActionView, id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(prod), nil
}

// List lista productos del scope.
func (uc *ProductUseCase) List(ctx context.Context, sc scope.Scope, page dto.PageRequest) ([]*dto.ProductResponse, error) {
	page.DefaultPage()
	list, err := uc.products.List(ctx, sc, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(list))
	for _, prod := range list {
		out = append(out, toProductResponse(prod))
	}
	return out, nil
}

// Update edita los campos editables de un producto (no su estado).
func (uc *ProductUseCase) Update(ctx context.Context, sc scope.Scope, p *domain.Principal, id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.CategoryID == 0 {
		return nil, domain.ErrInvalidInput
	}
	price, err := decimal.NewFromString(in.Price)
	if err != nil || price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	prod, err := uc.loadAuthorized(ctx, sc, p, authz.ActionEdit, id)
	if err != nil {
		return nil, err
	}
	cat, err := uc.categories.GetByID(ctx, sc, in.CategoryID)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, domain.ErrNotFound
	}
	prod.CategoryID = in.CategoryID
	prod.Name = in.Name
	prod.Description = in.Description
	prod.Price = price
	prod.ImageURL = in.ImageURL
	prod.Position = in.Position
	prod.UpdatedAt = time.Now()
	if err := uc.products.Update(ctx, sc, prod); err != nil {
		return nil, err
	}
	uc.cache.Invalidate(ctx, prod.RestaurantID)
	return toProductResponse(prod), nil
}

// Delete borra (soft) un producto.
func (uc *ProductUseCase) Delete(ctx context.Context, sc scope.Scope, p *domain.Principal, id int64) error {
	prod, err := uc.loadAuthorized(ctx, sc, p, authz.ActionDelete, id)
	if err != nil {
		return err
	}
	if err := uc.products.SoftDelete(ctx, sc, id); err != nil {
		return err
	}
	uc.cache.Invalidate(ctx, prod.RestaurantID)
	return nil
}

// Submit envía un producto a aprobación (DRAFT o REJECTED -> PENDING_APPROVAL).
func (uc *ProductUseCase) Submit(ctx context.Context, sc scope.Scope, p *domain.Principal, id int64) (*dto.ProductResponse, error) {
	prod, err := uc.loadAuthorized(ctx, sc, p, authz.ActionEdit, id)
	if err != nil {
		return nil, err
	}
	return uc.applyStatusAction(ctx, sc, p, authz.ActionSubmit, prod)
}

// ListPendingApproval cola cross-tenant de productos a aprobar (super-admin).
func (uc *ProductUseCase) ListPendingApproval(ctx context.Context, p *domain.Principal, page dto.PageRequest) ([]*dto.ProductResponse, error) {
	if !authz.CanManage(p, authz.ActionManageCatalog) {
		return nil, domain.ErrAccessDenied
	}
	page.DefaultPage()
	list, err := uc.products.ListPendingApproval(ctx, scope.Unrestricted(), page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(list))
	for _, prod := range list {
		out = append(out, toProductResponse(prod))
	}
	return out, nil
}

// Approve aprueba un producto pendiente (super-admin).
func (uc *ProductUseCase) Approve(ctx context.Context, p *domain.Principal, id int64) (*dto.ProductResponse, error) {
	return uc.review(ctx, p, authz.ActionApprove, id)
}

// Reject rechaza un producto pendiente (super-admin).
func (uc *ProductUseCase) Reject(ctx context.Context, p *domain.Principal, id int64) (*dto.ProductResponse, error) {
	return uc.review(ctx, p, authz.ActionReject, id)
}

func (uc *ProductUseCase) review(ctx context.Context, p *domain.Principal, action authz.Action, id int64) (*dto.ProductResponse, error) {
	sc := scope.Unrestricted()
	prod, err := uc.products.GetByID(ctx, sc, id)
	if err != nil {
		return nil, err
	}
	if prod == nil {
		return nil, domain.ErrNotFound
	}
	return uc.applyStatusAction(ctx, sc, p, action, prod)
}

// applyStatusAction evalúa el voter de workflow y aplica la transición con un
// compare-and-set sobre el estado leído: de dos peticiones concurrentes solo
// una escribe, la otra recibe ErrConflict.
func (uc *ProductUseCase) applyStatusAction(ctx context.Context, sc scope.Scope, p *domain.Principal, action authz.Action, prod *entity.Product) (*dto.ProductResponse, error) {
	if err := authz.CheckProductAction(p, action, prod); err != nil {
		return nil, err
	}
	to, _ := authz.StatusTarget(action)
	ok, err := uc.products.UpdateStatus(ctx, sc, prod.ID, prod.Status, to)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrConflict
	}
	prod.Status = to
	prod.UpdatedAt = time.Now()
	uc.cache.Invalidate(ctx, prod.RestaurantID)
	return toProductResponse(prod), nil
}

// loadAuthorized ver CategoryUseCase.loadAuthorized.
func (uc *ProductUseCase) loadAuthorized(ctx context.Context, sc scope.Scope, p *domain.Principal, action authz.Action, id int64) (*entity.Product, error) {
	prod, err := uc.products.GetByID(ctx, sc, id)
	if err != nil {
		return nil, err
	}
	if prod == nil {
		return nil, domain.ErrNotFound
	}
	if !authz.CanAccessOwned(p, action, prod.RestaurantID) {
		return nil, domain.ErrNotFound
	}
	return prod, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:           p.ID,
		UUID:         p.UUID,
		RestaurantID: p.RestaurantID,
		CategoryID:   p.CategoryID,
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price.StringFixed(2),
		ImageURL:     p.ImageURL,
		Status:       string(p.Status),
		Position:     p.Position,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
