package domain

import "github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/domain/entity"

// Principal es el actor autenticado de una petición, resuelto desde el bearer
// token y cargado desde DB. Es inmutable durante la petición.
type Principal struct {
	ID             int64
	UUID           string
	Email          string
	Roles          []string
	RestaurantID   int64 // restaurante propio; 0 = no posee
	RestaurantUUID string
	// AccessibleRestaurantIDs restaurantes sobre los que el principal puede
	// operar (dueños multi-restaurante incluyen el propio).
	AccessibleRestaurantIDs []int64
	BillingAccountID        int64 // 0 = sin cuenta de facturación
}

// PrincipalFromUser arma el principal de la petición a partir del registro de usuario.
func PrincipalFromUser(u *entity.User) *Principal {
	p := &Principal{
		ID:                      u.ID,
		UUID:                    u.UUID,
		Email:                   u.Email,
		Roles:                   u.Roles,
		RestaurantUUID:          u.RestaurantUUID,
		AccessibleRestaurantIDs: u.AccessibleRestaurantIDs,
	}
	if u.RestaurantID != nil {
		p.RestaurantID = *u.RestaurantID
	}
	if u.BillingAccountID != nil {
		p.BillingAccountID = *u.BillingAccountID
	}
	return p
}

// HasRole verifica pertenencia en el set de roles.
func (p *Principal) HasRole(role string) bool {
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// IsSuperAdmin indica si el principal administra el catálogo cross-tenant.
func (p *Principal) IsSuperAdmin() bool { return p.HasRole(entity.RoleSuperAdmin) }

// IsOwner indica si el principal es dueño de restaurante.
func (p *Principal) IsOwner() bool { return p.HasRole(entity.RoleOwner) }

// CanAccessRestaurant verifica si restaurantID está en el set accesible.
// No aplica el bypass de super-admin: eso lo decide el voter.
func (p *Principal) CanAccessRestaurant(restaurantID int64) bool {
	for _, id := range p.AccessibleRestaurantIDs {
		if id == restaurantID {
			return true
		}
	}
	return false
}
