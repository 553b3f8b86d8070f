package repository

import (
	"context"
	"time"

	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/domain/entity"
	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/domain/scope"
)

// ProductRepository puerto de persistencia para Product. Toda operación recibe
// el scope de tenant de la petición; la implementación añade el predicado
// restaurant_id a cada consulta cuando el scope está restringido.
type ProductRepository interface {
	Create(ctx context.Context, sc scope.Scope, p *entity.Product) error
	// GetByID devuelve nil sin error si no existe o el scope lo oculta.
	GetByID(ctx context.Context, sc scope.Scope, id int64) (*entity.Product, error)
	List(ctx context.Context, sc scope.Scope, limit, offset int) ([]*entity.Product, error)
	ListApproved(ctx context.Context, sc scope.Scope) ([]*entity.Product, error)
	// ListPendingApproval cola de aprobación cross-tenant (solo super-admin,
	// llamar con scope.Unrestricted()).
	ListPendingApproval(ctx context.Context, sc scope.Scope, limit, offset int) ([]*entity.Product, error)
	Update(ctx context.Context, sc scope.Scope, p *entity.Product) error
	// UpdateStatus compare-and-set sobre la columna status: solo escribe si el
	// estado actual sigue siendo from. Devuelve false si otra petición ganó.
	UpdateStatus(ctx context.Context, sc scope.Scope, id int64, from, to entity.ProductStatus) (bool, error)
	SoftDelete(ctx context.Context, sc scope.Scope, id int64) error
	// PurgeDeleted borra definitivamente soft-deletes anteriores a olderThan.
	// El job de limpieza lo invoca con scope.Unrestricted().
	PurgeDeleted(ctx context.Context, sc scope.Scope, olderThan time.Time) (int64, error)
}
