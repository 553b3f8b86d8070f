// Package authz implementa los voters de autorización por recurso: funciones
// puras de (acción, sujeto, principal) evaluadas por los handlers antes de
// ejecutar una mutación. Ningún voter toca la base de datos.
package authz

import (
	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/domain"
	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/domain/entity"
)

// Action acción protegida sobre un recurso.
type Action string

const (
	// Sobre cualquier entidad de menú (voter de pertenencia).
	ActionView   Action = "view"
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"

	// Workflow de publicación de productos.
	ActionSubmit  Action = "submit"
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"

	// Capacidades de super-admin, no ligadas a un recurso concreto.
	ActionManageRestaurants Action = "manage_restaurants"
	ActionManageCatalog     Action = "manage_catalog"
	ActionManageDefaults    Action = "manage_defaults"
)

// CanAccessOwned es el voter de pertenencia para VIEW/EDIT/DELETE sobre una
// entidad del tenant ownerRestaurantID. Super-admin siempre pasa; el resto
// necesita un set accesible no vacío que contenga al tenant del sujeto.
// Una negación aquí se presenta al caller como not-found (anti-enumeración).
func CanAccessOwned(p *domain.Principal, action Action, ownerRestaurantID int64) bool {
	switch action {
	case ActionView, ActionEdit, ActionDelete:
	default:
		return false
	}
	if p == nil {
		return false
	}
	if p.IsSuperAdmin() {
		return true
	}
	if len(p.AccessibleRestaurantIDs) == 0 {
		return false
	}
	return p.CanAccessRestaurant(ownerRestaurantID)
}

// CanManage es el voter de capacidades globales: concede si y solo si el
// principal tiene el rol de super-admin.
func CanManage(p *domain.Principal, action Action) bool {
	switch action {
	case ActionManageRestaurants, ActionManageCatalog, ActionManageDefaults:
	default:
		return false
	}
	return p != nil && p.IsSuperAdmin()
}

// statusTarget estado destino de cada acción del workflow.
var statusTarget = map[Action]entity.ProductStatus{
	ActionSubmit:  entity.StatusPendingApproval,
	ActionApprove: entity.StatusApproved,
	ActionReject:  entity.StatusRejected,
}

// StatusTarget expone el estado destino de una acción del workflow
// (para el compare-and-set del caller tras un voto favorable).
func StatusTarget(action Action) (entity.ProductStatus, bool) {
	to, ok := statusTarget[action]
	return to, ok
}

// CheckProductAction es el voter del workflow de publicación.
//
// Tabla de decisión:
//   submit  -> dueño/editor que NO sea super-admin, y transición legal a PENDING_APPROVAL
//   approve -> solo super-admin, y estado actual PENDING_APPROVAL
//   reject  -> solo super-admin, y estado actual PENDING_APPROVAL
//
// La elegibilidad del principal se evalúa antes que la precondición de estado:
// un caller no elegible recibe ErrAccessDenied sin importar el estado, y un
// caller elegible con estado inválido recibe InvalidStatusTransitionError,
// para que el cliente distinga "nunca puedes" de "ahora no se puede".
func CheckProductAction(p *domain.Principal, action Action, product *entity.Product) error {
	to, ok := statusTarget[action]
	if !ok {
		return domain.ErrAccessDenied
	}

	switch action {
	case ActionSubmit:
		if p == nil || p.IsSuperAdmin() {
			return domain.ErrAccessDenied
		}
		if !p.HasRole(entity.RoleOwner) && !p.HasRole(entity.RoleEditor) {
			return domain.ErrAccessDenied
		}
	case ActionApprove, ActionReject:
		if p == nil || !p.IsSuperAdmin() {
			return domain.ErrAccessDenied
		}
	}

	if !entity.CanTransition(product.Status, to) {
		return &entity.InvalidStatusTransitionError{From: product.Status, To: to}
	}
	return nil
}
