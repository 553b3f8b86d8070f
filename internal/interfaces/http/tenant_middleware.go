package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/domain/scope"
)

// TenantScope instala el scope de tenant de la petición en Locals. Es un
// valor explícito por petición: no hay estado ambiente que activar o
// desactivar, y las rutas públicas y de admin simplemente no montan este
// middleware.
//
// Un super-admin opera cross-tenant: recibe el scope sin restricción aunque
// además posea un restaurante. No-op (deja el scope ausente) para peticiones
// anónimas y principals sin restaurante propio: GetScope devuelve entonces el
// valor cero de Scope, restringido al restaurante 0, y ninguna fila calza.
// El olvido falla cerrado.
func TenantScope() fiber.Handler {
	return func(c *fiber.Ctx) error {
		p := GetPrincipal(c)
		switch {
		case p == nil:
		case p.IsSuperAdmin():
			c.Locals(LocalScope, scope.Unrestricted())
		case p.RestaurantID != 0:
			c.Locals(LocalScope, scope.ForRestaurant(p.RestaurantID))
		}
		return c.Next()
	}
}

// GetScope devuelve el scope de tenant instalado por TenantScope. Si no hay
// ninguno devuelve el valor cero (restringido, sin filas visibles).
func GetScope(c *fiber.Ctx) scope.Scope {
	sc, _ := c.Locals(LocalScope).(scope.Scope)
	return sc
}
