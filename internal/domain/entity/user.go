package entity

import "time"

// Roles válidos para User.
const (
	RoleSuperAdmin = "ROLE_SUPER_ADMIN"
	RoleOwner      = "ROLE_OWNER"
	RoleEditor     = "ROLE_EDITOR"
)

// User representa una cuenta del sistema. Los dueños referencian su
// restaurante propio y, si operan varios, el set de restaurantes accesibles.
type User struct {
	ID           int64
	UUID         string
	Email        string
	PasswordHash string // bcrypt, nunca plano después de persistir
	Name         string
	Roles        []string
	IsActive     bool
	// RestaurantID restaurante propio del dueño; nil para super-admins.
	RestaurantID   *int64
	RestaurantUUID string
	// AccessibleRestaurantIDs ids de restaurantes que el usuario puede operar.
	AccessibleRestaurantIDs []int64
	// BillingAccountID cuenta de facturación vinculada; nil = sin suscripción exigible.
	BillingAccountID *int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        *time.Time // soft delete
}

// HasRole verifica pertenencia en el set de roles.
func (u *User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Usable indica si la cuenta puede autenticar: activa y no borrada.
func (u *User) Usable() bool {
	return u.IsActive && u.DeletedAt == nil
}
