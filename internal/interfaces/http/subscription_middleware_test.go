package http_test

import (
	"context"
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

// fakeSubscriptions implementa el contrato del gate en memoria y registra las
// desactivaciones para poder afirmar sobre la expiración perezosa.
type fakeSubscriptions struct {
	latest      *entity.Subscription
	deactivated []int64
	// renewDuringCheck simula una renovación concurrente: ExistsActive ve una
	// suscripción activa aunque la última observada acabe de vencer.
	renewDuringCheck bool
}

func (f *fakeSubscriptions) LatestActive(_ context.Context, _ int64) (*entity.Subscription, error) {
	if f.latest != nil && !f.latest.IsActive {
		return nil, nil
	}
	return f.latest, nil
}

func (f *fakeSubscriptions) ExistsActive(_ context.Context, _ int64) (bool, error) {
	if f.renewDuringCheck {
		return true, nil
	}
	return f.latest != nil && f.latest.IsActive, nil
}

func (f *fakeSubscriptions) Deactivate(_ context.Context, id int64) error {
	f.deactivated = append(f.deactivated, id)
	if f.latest != nil && f.latest.ID == id {
		f.latest.IsActive = false
	}
	return nil
}

// la fecha "hoy" de todos los tests del gate
var gateNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func billedOwner(id int64) *entity.User {
	restaurantID := int64(10)
	accountID := int64(5)
	u := ownerUser(id, restaurantID)
	u.BillingAccountID = &accountID
	return u
}

// buildGateApp arma el pipeline completo del panel: resolver + gate + handler.
func buildGateApp(users *fakeUserFinder, subs *fakeSubscriptions) *fiber.App {
	codec := token.New(testSecret)
	app := fiber.New()
	panel := app.Group("/api/panel",
		apphttp.ResolvePrincipal(codec, users),
		apphttp.SubscriptionGate(subs, apphttp.SubscriptionGateConfig{
			RenewalPath: "/panel/subscription/renew",
			ExemptPaths: []string{"/api/panel/subscription"},
			Now:         func() time.Time { return gateNow },
		}),
	)
	panel.Get("/products", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	panel.Get("/subscription", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	return app
}

func doPanel(t *testing.T, app *fiber.App, user *entity.User, path string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if user != nil {
		req.Header.Set("Authorization", "Bearer "+issueToken(t, user, token.TypeAccess, time.Hour))
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests SubscriptionGate
// ──────────────────────────────────────────────────────────────────────────────

// Suscripción vigente → pasa sin tocar nada.
func TestSubscriptionGate_SuscripcionVigente_Pasa(t *testing.T) {
	user := billedOwner(1)
	subs := &fakeSubscriptions{latest: &entity.Subscription{
		ID: 1, AccountID: 5, EndsAt: gateNow.AddDate(0, 1, 0), IsActive: true,
	}}
	app := buildGateApp(&fakeUserFinder{users: map[int64]*entity.User{1: user}}, subs)

	resp := doPanel(t, app, user, "/api/panel/products")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, subs.deactivated, "una suscripción vigente no debe desactivarse")
}

// Fecha de fin exactamente hoy: vencida significa ESTRICTAMENTE anterior a
// hoy, así que todavía pasa.
func TestSubscriptionGate_VenceHoy_TodaviaPasa(t *testing.T) {
	user := billedOwner(1)
	endsToday := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	subs := &fakeSubscriptions{latest: &entity.Subscription{
		ID: 1, AccountID: 5, EndsAt: endsToday, IsActive: true,
	}}
	app := buildGateApp(&fakeUserFinder{users: map[int64]*entity.User{1: user}}, subs)

	resp := doPanel(t, app, user, "/api/panel/products")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, subs.deactivated)
}

// Primera petición después del vencimiento: el gate persiste la desactivación
// en ese momento y redirige con la causa "período vencido".
func TestSubscriptionGate_ExpiracionPerezosa_DesactivaYRedirige(t *testing.T) {
	user := billedOwner(1)
	subs := &fakeSubscriptions{latest: &entity.Subscription{
		ID: 7, AccountID: 5, EndsAt: gateNow.AddDate(0, 0, -1), IsActive: true,
	}}
	app := buildGateApp(&fakeUserFinder{users: map[int64]*entity.User{1: user}}, subs)

	resp := doPanel(t, app, user, "/api/panel/products")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	loc := resp.Header.Get("Location")
	assert.Contains(t, loc, "/panel/subscription/renew")
	assert.Contains(t, loc, "suspended+because+subscription+period+ended")
	assert.Equal(t, []int64{7}, subs.deactivated, "la expiración debe persistirse de inmediato")
}

// Segunda petición: la suscripción ya quedó inactiva, la causa cambia a
// "sin suscripción activa" y no hay otra desactivación.
func TestSubscriptionGate_SegundaPeticion_CausaSinSuscripcion(t *testing.T) {
	user := billedOwner(1)
	subs := &fakeSubscriptions{latest: &entity.Subscription{
		ID: 7, AccountID: 5, EndsAt: gateNow.AddDate(0, 0, -1), IsActive: true,
	}}
	app := buildGateApp(&fakeUserFinder{users: map[int64]*entity.User{1: user}}, subs)

	resp1 := doPanel(t, app, user, "/api/panel/products")
	resp1.Body.Close()
	resp2 := doPanel(t, app, user, "/api/panel/products")
	defer resp2.Body.Close()

	assert.Equal(t, http.StatusFound, resp2.StatusCode)
	assert.Contains(t, resp2.Header.Get("Location"), "no+active+subscription")
	assert.Equal(t, []int64{7}, subs.deactivated, "no debe desactivarse dos veces")
}

// Renovación entre la desactivación y la re-verificación: ExistsActive ve la
// suscripción nueva y la petición pasa sin redirect espurio.
func TestSubscriptionGate_RenovacionConcurrente_Pasa(t *testing.T) {
	user := billedOwner(1)
	subs := &fakeSubscriptions{
		latest: &entity.Subscription{
			ID: 7, AccountID: 5, EndsAt: gateNow.AddDate(0, 0, -1), IsActive: true,
		},
		renewDuringCheck: true,
	}
	app := buildGateApp(&fakeUserFinder{users: map[int64]*entity.User{1: user}}, subs)

	resp := doPanel(t, app, user, "/api/panel/products")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []int64{7}, subs.deactivated, "la vencida igual se desactiva")
}

// Dueño sin cuenta de facturación: no hay nada que exigir.
func TestSubscriptionGate_SinCuentaFacturacion_Pasa(t *testing.T) {
	user := ownerUser(1, 10)
	subs := &fakeSubscriptions{}
	app := buildGateApp(&fakeUserFinder{users: map[int64]*entity.User{1: user}}, subs)

	resp := doPanel(t, app, user, "/api/panel/products")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// Super-admin no paga suscripción: el gate lo ignora.
func TestSubscriptionGate_SuperAdmin_Pasa(t *testing.T) {
	accountID := int64(5)
	user := &entity.User{
		ID: 2, Email: "admin@example.com", Roles: []string{entity.RoleSuperAdmin},
		IsActive: true, BillingAccountID: &accountID,
	}
	subs := &fakeSubscriptions{}
	app := buildGateApp(&fakeUserFinder{users: map[int64]*entity.User{2: user}}, subs)

	resp := doPanel(t, app, user, "/api/panel/products")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// La ruta de suscripción está exenta: con la suscripción vencida todavía se
// puede llegar a verla y renovarla.
func TestSubscriptionGate_RutaExenta_PasaSinSuscripcion(t *testing.T) {
	user := billedOwner(1)
	subs := &fakeSubscriptions{}
	app := buildGateApp(&fakeUserFinder{users: map[int64]*entity.User{1: user}}, subs)

	resp := doPanel(t, app, user, "/api/panel/subscription")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, subs.deactivated)
}
