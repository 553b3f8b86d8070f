package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/domain/entity"
	apphttp "github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/interfaces/http"
	"github.com/gokhangunesyou-cmd/qrmenu-sub001/pkg/token"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const testSecret = "test-secret-key-for-unit-tests"

// fakeUserFinder implementa la búsqueda de usuarios del resolver en memoria.
type fakeUserFinder struct {
	users map[int64]*entity.User
}

func (f *fakeUserFinder) FindByID(_ context.Context, id int64) (*entity.User, error) {
	return f.users[id], nil
}

func ownerUser(id int64, restaurantID int64) *entity.User {
	return &entity.User{
		ID:                      id,
		UUID:                    "00000000-0000-0000-0000-000000000001",
		Email:                   "dueno@example.com",
		Roles:                   []string{entity.RoleOwner},
		IsActive:                true,
		RestaurantID:            &restaurantID,
		AccessibleRestaurantIDs: []int64{restaurantID},
	}
}

// buildApp arma una app mínima con el resolver y una ruta que reporta quién es
// el principal (o "anonimo" si no hay).
func buildApp(users *fakeUserFinder) *fiber.App {
	codec := token.New(testSecret)
	app := fiber.New()
	app.Get("/whoami", apphttp.ResolvePrincipal(codec, users), func(c *fiber.Ctx) error {
		p := apphttp.GetPrincipal(c)
		if p == nil {
			return c.JSON(fiber.Map{"anonimo": true})
		}
		return c.JSON(fiber.Map{"anonimo": false, "email": p.Email})
	})
	return app
}

func issueToken(t *testing.T, user *entity.User, tokenType string, ttl time.Duration) string {
	t.Helper()
	codec := token.New(testSecret)
	id := token.Identity{ID: user.ID, UUID: user.UUID, Email: user.Email, Roles: user.Roles}
	if user.RestaurantID != nil {
		id.RestaurantID = *user.RestaurantID
	}
	tok, err := codec.Issue(id, tokenType, ttl)
	require.NoError(t, err)
	return tok
}

func doWhoami(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests ResolvePrincipal
// ──────────────────────────────────────────────────────────────────────────────

// Sin header Authorization la petición sigue como anónima: negar es trabajo
// de RequireAuth/RequireRole, no del resolver.
func TestResolvePrincipal_SinHeader_PasaComoAnonimo(t *testing.T) {
	app := buildApp(&fakeUserFinder{})
	resp := doWhoami(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, true, body["anonimo"])
}

// Un scheme distinto de Bearer tampoco es un token: anónimo.
func TestResolvePrincipal_SchemeDistinto_PasaComoAnonimo(t *testing.T) {
	app := buildApp(&fakeUserFinder{})
	resp := doWhoami(t, app, "Basic dXN1YXJpbzpjbGF2ZQ==")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// El prefijo es sensible a mayúsculas: "bearer" minúscula no matchea.
func TestResolvePrincipal_PrefijoMinuscula_PasaComoAnonimo(t *testing.T) {
	user := ownerUser(1, 10)
	app := buildApp(&fakeUserFinder{users: map[int64]*entity.User{1: user}})
	resp := doWhoami(t, app, "bearer "+issueToken(t, user, token.TypeAccess, time.Hour))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, true, body["anonimo"])
}

// Header Bearer presente pero sin token → 401 con el mensaje de contrato.
// fasthttp recorta el espacio final, así que "Bearer " llega como "Bearer".
func TestResolvePrincipal_TokenVacio_Retorna401(t *testing.T) {
	app := buildApp(&fakeUserFinder{})
	resp := doWhoami(t, app, "Bearer ")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "unauthorized", body["type"])
	assert.Equal(t, "Missing JWT token.", body["message"])
}

// Scheme Bearer a secas, sin espacio ni token: mismo 401 de token faltante.
func TestResolvePrincipal_SchemeBearerSinToken_Retorna401(t *testing.T) {
	app := buildApp(&fakeUserFinder{})
	resp := doWhoami(t, app, "Bearer")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "Missing JWT token.", body["message"])
}

func TestResolvePrincipal_TokenInvalido_Retorna401(t *testing.T) {
	app := buildApp(&fakeUserFinder{})
	resp := doWhoami(t, app, "Bearer no.es.jwt")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid or expired token.", decodeBody(t, resp)["message"])
}

func TestResolvePrincipal_TokenExpirado_Retorna401(t *testing.T) {
	user := ownerUser(1, 10)
	app := buildApp(&fakeUserFinder{users: map[int64]*entity.User{1: user}})
	resp := doWhoami(t, app, "Bearer "+issueToken(t, user, token.TypeAccess, -time.Hour))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid or expired token.", decodeBody(t, resp)["message"])
}

// Un refresh token no abre rutas: solo sirve en /api/auth/refresh.
func TestResolvePrincipal_RefreshToken_Retorna401(t *testing.T) {
	user := ownerUser(1, 10)
	app := buildApp(&fakeUserFinder{users: map[int64]*entity.User{1: user}})
	resp := doWhoami(t, app, "Bearer "+issueToken(t, user, token.TypeRefresh, time.Hour))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid token type.", decodeBody(t, resp)["message"])
}

// El token identifica pero no autoriza: si el usuario ya no existe en DB, el
// token vigente no alcanza.
func TestResolvePrincipal_UsuarioInexistente_Retorna401(t *testing.T) {
	user := ownerUser(99, 10)
	app := buildApp(&fakeUserFinder{users: map[int64]*entity.User{}})
	resp := doWhoami(t, app, "Bearer "+issueToken(t, user, token.TypeAccess, time.Hour))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "User not found or inactive.", decodeBody(t, resp)["message"])
}

func TestResolvePrincipal_UsuarioInactivo_Retorna401(t *testing.T) {
	user := ownerUser(1, 10)
	user.IsActive = false
	app := buildApp(&fakeUserFinder{users: map[int64]*entity.User{1: user}})
	resp := doWhoami(t, app, "Bearer "+issueToken(t, user, token.TypeAccess, time.Hour))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "User not found or inactive.", decodeBody(t, resp)["message"])
}

func TestResolvePrincipal_UsuarioBorrado_Retorna401(t *testing.T) {
	user := ownerUser(1, 10)
	deleted := time.Now()
	user.DeletedAt = &deleted
	app := buildApp(&fakeUserFinder{users: map[int64]*entity.User{1: user}})
	resp := doWhoami(t, app, "Bearer "+issueToken(t, user, token.TypeAccess, time.Hour))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestResolvePrincipal_TokenValido_CargaPrincipal(t *testing.T) {
	user := ownerUser(1, 10)
	app := buildApp(&fakeUserFinder{users: map[int64]*entity.User{1: user}})
	resp := doWhoami(t, app, "Bearer "+issueToken(t, user, token.TypeAccess, time.Hour))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, false, body["anonimo"])
	assert.Equal(t, "dueno@example.com", body["email"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireAuth y RequireRole
// ──────────────────────────────────────────────────────────────────────────────

func buildAuthOnlyApp(users *fakeUserFinder) *fiber.App {
	codec := token.New(testSecret)
	app := fiber.New()
	app.Post("/salir",
		apphttp.ResolvePrincipal(codec, users),
		apphttp.RequireAuth(),
		func(c *fiber.Ctx) error { return c.SendStatus(http.StatusNoContent) },
	)
	return app
}

// RequireAuth acepta cualquier principal autenticado, sin mirar roles.
func TestRequireAuth_AutenticadoPasa(t *testing.T) {
	user := ownerUser(1, 10)
	app := buildAuthOnlyApp(&fakeUserFinder{users: map[int64]*entity.User{1: user}})

	req := httptest.NewRequest(http.MethodPost, "/salir", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, user, token.TypeAccess, time.Hour))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestRequireAuth_AnonimoRetorna401(t *testing.T) {
	app := buildAuthOnlyApp(&fakeUserFinder{})

	req := httptest.NewRequest(http.MethodPost, "/salir", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Missing JWT token.", decodeBody(t, resp)["message"])
}

func buildRoleApp(users *fakeUserFinder, roles ...string) *fiber.App {
	codec := token.New(testSecret)
	app := fiber.New()
	app.Get("/protegida",
		apphttp.ResolvePrincipal(codec, users),
		apphttp.RequireRole(roles...),
		func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) },
	)
	return app
}

func TestRequireRole_DuenoAccedeRutaDueno(t *testing.T) {
	user := ownerUser(1, 10)
	app := buildRoleApp(&fakeUserFinder{users: map[int64]*entity.User{1: user}}, entity.RoleOwner)

	req := httptest.NewRequest(http.MethodGet, "/protegida", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, user, token.TypeAccess, time.Hour))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireRole_DuenoBloqueadoEnRutaAdmin(t *testing.T) {
	user := ownerUser(1, 10)
	app := buildRoleApp(&fakeUserFinder{users: map[int64]*entity.User{1: user}}, entity.RoleSuperAdmin)

	req := httptest.NewRequest(http.MethodGet, "/protegida", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, user, token.TypeAccess, time.Hour))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "forbidden", decodeBody(t, resp)["type"])
}

func TestRequireRole_AnonimoRetorna401(t *testing.T) {
	app := buildRoleApp(&fakeUserFinder{}, entity.RoleOwner)

	req := httptest.NewRequest(http.MethodGet, "/protegida", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Missing JWT token.", decodeBody(t, resp)["message"])
}
