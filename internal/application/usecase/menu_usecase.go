package usecase

import (
	"context"

	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/application/dto"
	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/domain"
	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/domain/entity"
	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/domain/repository"
	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/domain/scope"
)

// MenuUseCase lectura pública del menú: sin autenticación, solo productos
// APPROVED, con cache read-through en Redis.
type MenuUseCase struct {
	restaurants repository.RestaurantRepository
	categories  repository.CategoryRepository
	products    repository.ProductRepository
	cache       MenuCache
}

// NewMenuUseCase construye el caso de uso del menú público.
func NewMenuUseCase(restaurants repository.RestaurantRepository, categories repository.CategoryRepository, products repository.ProductRepository, cache MenuCache) *MenuUseCase {
	return &MenuUseCase{restaurants: restaurants, categories: categories, products: products, cache: cache}
}

// Get arma el menú público de un restaurante por slug. Un restaurante
// suspendido no publica menú.
func (uc *MenuUseCase) Get(ctx context.Context, restaurantSlug string) (*dto.MenuResponse, error) {
	r, err := uc.restaurants.GetBySlug(ctx, restaurantSlug)
	if err != nil {
		return nil, err
	}
	if r == nil || r.Status != entity.RestaurantActive {
		return nil, domain.ErrNotFound
	}

	if menu, ok := uc.cache.Get(ctx, r.ID); ok {
		return menu, nil
	}

	// La lectura pública también corre bajo el predicado del tenant: el slug
	// resuelve el restaurante y el scope acota todas las consultas siguientes.
	sc := scope.ForRestaurant(r.ID)
	cats, err := uc.categories.List(ctx, sc)
	if err != nil {
		return nil, err
	}
	prods, err := uc.products.ListApproved(ctx, sc)
	if err != nil {
		return nil, err
	}

	byCategory := make(map[int64][]dto.MenuItem, len(cats))
	for _, p := range prods {
		byCategory[p.CategoryID] = append(byCategory[p.CategoryID], dto.MenuItem{
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price.StringFixed(2),
			ImageURL:    p.ImageURL,
		})
	}

	menu := &dto.MenuResponse{
		Restaurant: dto.MenuRestaurant{
			Name:        r.Name,
			Slug:        r.Slug,
			Description: r.Description,
			Phone:       r.Phone,
			Address:     r.Address,
		},
	}
	for _, c := range cats {
		items, ok := byCategory[c.ID]
		if !ok {
			continue // categorías sin productos aprobados no se muestran
		}
		menu.Categories = append(menu.Categories, dto.MenuCategory{
			Name:     c.Name,
			Slug:     c.Slug,
			Products: items,
		})
	}

	uc.cache.Set(ctx, r.ID, menu)
	return menu, nil
}
