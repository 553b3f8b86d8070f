package http_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/application/usecase"
	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/domain/entity"
	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/domain/scope"
	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/infrastructure/cache"
	apphttp "github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/interfaces/http"
	"github.com/gokhangunesyou-cmd/qrmenu-sub001/pkg/token"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de repositorio con scope en memoria
// ──────────────────────────────────────────────────────────────────────────────

// fakeProductRepo respeta el scope igual que el repo real: una fila fuera del
// scope es invisible, no prohibida.
type fakeProductRepo struct {
	products map[int64]*entity.Product
}

func (f *fakeProductRepo) Create(_ context.Context, _ scope.Scope, p *entity.Product) error {
	p.ID = int64(len(f.products) + 1)
	f.products[p.ID] = p
	return nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, sc scope.Scope, id int64) (*entity.Product, error) {
	p, ok := f.products[id]
	if !ok || !sc.Allows(p.RestaurantID) {
		return nil, nil
	}
	return p, nil
}

func (f *fakeProductRepo) List(_ context.Context, sc scope.Scope, _, _ int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range f.products {
		if sc.Allows(p.RestaurantID) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) ListApproved(_ context.Context, sc scope.Scope) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range f.products {
		if sc.Allows(p.RestaurantID) && p.Status == entity.StatusApproved {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) ListPendingApproval(_ context.Context, sc scope.Scope, _, _ int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range f.products {
		if sc.Allows(p.RestaurantID) && p.Status == entity.StatusPendingApproval {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) Update(_ context.Context, sc scope.Scope, p *entity.Product) error {
	f.products[p.ID] = p
	return nil
}

func (f *fakeProductRepo) UpdateStatus(_ context.Context, sc scope.Scope, id int64, from, to entity.ProductStatus) (bool, error) {
	p, ok := f.products[id]
	if !ok || !sc.Allows(p.RestaurantID) || p.Status != from {
		return false, nil
	}
	p.Status = to
	return true, nil
}

func (f *fakeProductRepo) SoftDelete(_ context.Context, sc scope.Scope, id int64) error {
	delete(f.products, id)
	return nil
}

func (f *fakeProductRepo) PurgeDeleted(_ context.Context, _ scope.Scope, _ time.Time) (int64, error) {
	return 0, nil
}

type fakeCategoryRepo struct {
	categories map[int64]*entity.Category
}

func (f *fakeCategoryRepo) Create(_ context.Context, _ scope.Scope, c *entity.Category) error {
	c.ID = int64(len(f.categories) + 1)
	f.categories[c.ID] = c
	return nil
}

func (f *fakeCategoryRepo) GetByID(_ context.Context, sc scope.Scope, id int64) (*entity.Category, error) {
	c, ok := f.categories[id]
	if !ok || !sc.Allows(c.RestaurantID) {
		return nil, nil
	}
	return c, nil
}

func (f *fakeCategoryRepo) List(_ context.Context, sc scope.Scope) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range f.categories {
		if sc.Allows(c.RestaurantID) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCategoryRepo) Update(_ context.Context, _ scope.Scope, c *entity.Category) error {
	f.categories[c.ID] = c
	return nil
}

func (f *fakeCategoryRepo) SoftDelete(_ context.Context, _ scope.Scope, id int64) error {
	delete(f.categories, id)
	return nil
}

// buildPanelApp arma el pipeline real del panel (resolver + rol + scope) sobre
// los fakes, sin gate de suscripción.
func buildPanelApp(users *fakeUserFinder, products *fakeProductRepo, categories *fakeCategoryRepo) *fiber.App {
	codec := token.New(testSecret)
	uc := usecase.NewProductUseCase(products, categories, cache.NoopMenuCache{})
	handler := apphttp.NewProductHandler(uc)

	app := fiber.New()
	panel := app.Group("/api/panel",
		apphttp.ResolvePrincipal(codec, users),
		apphttp.RequireRole(entity.RoleOwner, entity.RoleEditor),
		apphttp.TenantScope(),
	)
	panel.Get("/products/:id", handler.Get)
	panel.Post("/products/:id/submit", handler.Submit)
	return app
}

func getProduct(t *testing.T, app *fiber.App, user *entity.User, id string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/panel/products/"+id, nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, user, token.TypeAccess, time.Hour))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de aislamiento de tenant
// ──────────────────────────────────────────────────────────────────────────────

// El dueño ve su propio producto.
func TestProductGet_ProductoPropio_Retorna200(t *testing.T) {
	owner := ownerUser(1, 10)
	products := &fakeProductRepo{products: map[int64]*entity.Product{
		1: {ID: 1, RestaurantID: 10, Name: "Ceviche", Status: entity.StatusDraft},
	}}
	app := buildPanelApp(
		&fakeUserFinder{users: map[int64]*entity.User{1: owner}},
		products, &fakeCategoryRepo{categories: map[int64]*entity.Category{}},
	)

	resp := getProduct(t, app, owner, "1")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// Un producto de otro tenant responde 404 con un cuerpo byte-idéntico al de
// un id inexistente: desde afuera no se puede saber si el recurso existe.
func TestProductGet_CrossTenant_404IndistinguibleDeInexistente(t *testing.T) {
	owner := ownerUser(1, 10)
	products := &fakeProductRepo{products: map[int64]*entity.Product{
		2: {ID: 2, RestaurantID: 20, Name: "Ajeno", Status: entity.StatusDraft},
	}}
	app := buildPanelApp(
		&fakeUserFinder{users: map[int64]*entity.User{1: owner}},
		products, &fakeCategoryRepo{categories: map[int64]*entity.Category{}},
	)

	respAjeno := getProduct(t, app, owner, "2")
	defer respAjeno.Body.Close()
	respInexistente := getProduct(t, app, owner, "999")
	defer respInexistente.Body.Close()

	assert.Equal(t, http.StatusNotFound, respAjeno.StatusCode)
	assert.Equal(t, http.StatusNotFound, respInexistente.StatusCode)

	bodyAjeno, err := io.ReadAll(respAjeno.Body)
	require.NoError(t, err)
	bodyInexistente, err := io.ReadAll(respInexistente.Body)
	require.NoError(t, err)
	assert.Equal(t, bodyInexistente, bodyAjeno,
		"los cuerpos de 404 deben ser idénticos byte a byte")
}

// Un principal con rol super-admin además de dueño opera cross-tenant: el
// scope instalado no restringe y sus propios recursos del panel siguen visibles.
func TestProductGet_SuperAdminConRestaurante_VeSuProducto(t *testing.T) {
	admin := ownerUser(1, 10)
	admin.Roles = []string{entity.RoleSuperAdmin, entity.RoleOwner}
	products := &fakeProductRepo{products: map[int64]*entity.Product{
		1: {ID: 1, RestaurantID: 10, Name: "Ceviche", Status: entity.StatusDraft},
		2: {ID: 2, RestaurantID: 20, Name: "Ajeno", Status: entity.StatusDraft},
	}}
	app := buildPanelApp(
		&fakeUserFinder{users: map[int64]*entity.User{1: admin}},
		products, &fakeCategoryRepo{categories: map[int64]*entity.Category{}},
	)

	respPropio := getProduct(t, app, admin, "1")
	defer respPropio.Body.Close()
	respAjeno := getProduct(t, app, admin, "2")
	defer respAjeno.Body.Close()

	assert.Equal(t, http.StatusOK, respPropio.StatusCode)
	// El voter de pertenencia siempre concede a un super-admin.
	assert.Equal(t, http.StatusOK, respAjeno.StatusCode)
}

// Enviar a aprobación un producto ajeno también es 404, no 403: el workflow
// no filtra existencia.
func TestProductSubmit_CrossTenant_Retorna404(t *testing.T) {
	owner := ownerUser(1, 10)
	products := &fakeProductRepo{products: map[int64]*entity.Product{
		2: {ID: 2, RestaurantID: 20, Name: "Ajeno", Status: entity.StatusDraft},
	}}
	app := buildPanelApp(
		&fakeUserFinder{users: map[int64]*entity.User{1: owner}},
		products, &fakeCategoryRepo{categories: map[int64]*entity.Category{}},
	)

	req := httptest.NewRequest(http.MethodPost, "/api/panel/products/2/submit", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, owner, token.TypeAccess, time.Hour))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, entity.StatusDraft, products.products[2].Status,
		"el producto ajeno no debe cambiar de estado")
}

// Enviar a aprobación desde DRAFT funciona y deja el producto en PENDING_APPROVAL.
func TestProductSubmit_Propio_CambiaEstado(t *testing.T) {
	owner := ownerUser(1, 10)
	products := &fakeProductRepo{products: map[int64]*entity.Product{
		1: {ID: 1, RestaurantID: 10, Name: "Ceviche", Status: entity.StatusDraft},
	}}
	app := buildPanelApp(
		&fakeUserFinder{users: map[int64]*entity.User{1: owner}},
		products, &fakeCategoryRepo{categories: map[int64]*entity.Category{}},
	)

	req := httptest.NewRequest(http.MethodPost, "/api/panel/products/1/submit", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, owner, token.TypeAccess, time.Hour))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, entity.StatusPendingApproval, products.products[1].Status)
}

// Enviar un producto ya aprobado es una transición ilegal: 400, no 403 ni 404.
func TestProductSubmit_Aprobado_Retorna400(t *testing.T) {
	owner := ownerUser(1, 10)
	products := &fakeProductRepo{products: map[int64]*entity.Product{
		1: {ID: 1, RestaurantID: 10, Name: "Ceviche", Status: entity.StatusApproved},
	}}
	app := buildPanelApp(
		&fakeUserFinder{users: map[int64]*entity.User{1: owner}},
		products, &fakeCategoryRepo{categories: map[int64]*entity.Category{}},
	)

	req := httptest.NewRequest(http.MethodPost, "/api/panel/products/1/submit", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, owner, token.TypeAccess, time.Hour))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "bad_request", decodeBody(t, resp)["type"])
}
