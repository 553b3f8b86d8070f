package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/domain"
	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/domain/entity"
	"github.com/gokhangunesyou-cmd/qrmenu-sub001/pkg/token"
)

// Locals keys del pipeline de middlewares.
const (
	LocalPrincipal = "principal"
	LocalScope     = "tenant_scope"
)

// Mensajes 401 del resolver. Son contrato con los clientes existentes; no
// traducir ni reescribir.
const (
	msgMissingToken   = "Missing JWT token."
	msgInvalidToken   = "Invalid or expired token."
	msgInvalidType    = "Invalid token type."
	msgInvalidPayload = "Invalid token payload."
	msgUserNotFound   = "User not found or inactive."
)

// bearerPrefix se compara sensible a mayúsculas y con exactamente un espacio.
const bearerPrefix = "Bearer "

// userFinder contrato mínimo del resolver para cargar el usuario del token.
// Lo implementa el UserRepository de postgres; la interfaz permite fakes en tests.
type userFinder interface {
	FindByID(ctx context.Context, id int64) (*entity.User, error)
}

// ResolvePrincipal resuelve el actor de la petición desde el header
// Authorization. Sin header (o con un scheme distinto de Bearer) la petición
// sigue como anónima: negar es responsabilidad de RequireAuth o RequireRole.
// Con header Bearer presente, cualquier defecto del token corta con 401.
func ResolvePrincipal(codec *token.Codec, users userFinder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		// fasthttp recorta el espacio final del header: "Bearer " llega como
		// "Bearer" a secas. El scheme está, el token no.
		if header == "Bearer" {
			return unauthorized(c, msgMissingToken)
		}
		if !strings.HasPrefix(header, bearerPrefix) {
			return c.Next()
		}
		raw := header[len(bearerPrefix):]
		if raw == "" {
			return unauthorized(c, msgMissingToken)
		}
		claims, err := codec.Verify(raw)
		if err != nil {
			return unauthorized(c, msgInvalidToken)
		}
		if !claims.IsAccess() {
			return unauthorized(c, msgInvalidType)
		}
		if claims.Sub == 0 {
			return unauthorized(c, msgInvalidPayload)
		}
		// El token solo identifica: roles, restaurantes accesibles y estado de
		// cuenta salen de la DB en cada petición.
		user, err := users.FindByID(c.Context(), claims.Sub)
		if err != nil {
			return respondError(c, err)
		}
		if user == nil || !user.Usable() {
			return unauthorized(c, msgUserNotFound)
		}
		c.Locals(LocalPrincipal, domain.PrincipalFromUser(user))
		return c.Next()
	}
}

// GetPrincipal devuelve el principal de la petición, o nil si es anónima.
func GetPrincipal(c *fiber.Ctx) *domain.Principal {
	p, _ := c.Locals(LocalPrincipal).(*domain.Principal)
	return p
}

// RequireAuth corta con 401 las peticiones anónimas.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetPrincipal(c) == nil {
			return unauthorized(c, msgMissingToken)
		}
		return c.Next()
	}
}

// RequireRole corta con 403 a los principals que no tienen ninguno de los
// roles indicados (401 si la petición es anónima).
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p := GetPrincipal(c)
		if p == nil {
			return unauthorized(c, msgMissingToken)
		}
		for _, role := range roles {
			if p.HasRole(role) {
				return c.Next()
			}
		}
		return forbidden(c, "rol insuficiente")
	}
}
