package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/application/auth"
	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/application/usecase"
	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/domain/entity"
	"github.com/gokhangunesyou-cmd/qrmenu-sub001/pkg/token"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC            *auth.UseCase
	CategoryUC        *usecase.CategoryUseCase
	ProductUC         *usecase.ProductUseCase
	PageUC            *usecase.PageUseCase
	QRCodeUC          *usecase.QRCodeUseCase
	SubscriptionUC    *usecase.SubscriptionUseCase
	RestaurantUC      *usecase.RestaurantUseCase
	DefaultCategoryUC *usecase.DefaultCategoryUseCase
	MenuUC            *usecase.MenuUseCase

	Codec         *token.Codec
	Users         userFinder
	Subscriptions subscriptionChecker
	RenewalPath   string
	Now           func() time.Time
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// El resolver corre para toda la API: resuelve el principal si hay Bearer
	// y deja pasar lo demás como anónimo.
	api := app.Group("/api", ResolvePrincipal(deps.Codec, deps.Users))

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/refresh", authHandler.Refresh)
	authGroup.Post("/logout", RequireAuth(), authHandler.Logout)

	// Menú público (sin auth, sin scope, con cache)
	menuHandler := NewMenuHandler(deps.MenuUC)
	api.Get("/menu/:slug", menuHandler.Get)

	// Panel del dueño: auth + scope de tenant + gate de suscripción.
	// La ruta de suscripción queda exenta del gate: con la suscripción
	// vencida todavía hay que poder verla y renovarla.
	panel := api.Group("/panel",
		RequireRole(entity.RoleOwner, entity.RoleEditor),
		TenantScope(),
		SubscriptionGate(deps.Subscriptions, SubscriptionGateConfig{
			RenewalPath: deps.RenewalPath,
			ExemptPaths: []string{"/api/panel/subscription"},
			Now:         deps.Now,
		}),
	)

	categories := panel.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.Get)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	products := panel.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.Get)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Post("/:id/submit", productHandler.Submit)

	pages := panel.Group("/pages")
	pageHandler := NewPageHandler(deps.PageUC)
	pages.Post("/", pageHandler.Create)
	pages.Get("/", pageHandler.List)
	pages.Get("/:id", pageHandler.Get)
	pages.Put("/:id", pageHandler.Update)
	pages.Delete("/:id", pageHandler.Delete)

	qrcodes := panel.Group("/qrcodes")
	qrHandler := NewQRCodeHandler(deps.QRCodeUC)
	qrcodes.Post("/", qrHandler.Create)
	qrcodes.Get("/", qrHandler.List)
	qrcodes.Get("/:id/png", qrHandler.Download)
	qrcodes.Delete("/:id", qrHandler.Delete)

	subscription := panel.Group("/subscription")
	subscriptionHandler := NewSubscriptionHandler(deps.SubscriptionUC)
	subscription.Get("/", subscriptionHandler.Current)
	subscription.Post("/renew", subscriptionHandler.Renew)

	// Admin (solo super-admin, sin scope de tenant: la revisión es cross-tenant)
	admin := api.Group("/admin", RequireRole(entity.RoleSuperAdmin))

	restaurants := admin.Group("/restaurants")
	restaurantHandler := NewRestaurantHandler(deps.RestaurantUC)
	restaurants.Post("/", restaurantHandler.Create)
	restaurants.Get("/", restaurantHandler.List)
	restaurants.Post("/:id/suspend", restaurantHandler.Suspend)
	restaurants.Post("/:id/activate", restaurantHandler.Activate)

	approvals := admin.Group("/approvals")
	approvalHandler := NewApprovalHandler(deps.ProductUC)
	approvals.Get("/", approvalHandler.ListPending)
	approvals.Post("/:id/approve", approvalHandler.Approve)
	approvals.Post("/:id/reject", approvalHandler.Reject)

	defaults := admin.Group("/default-categories")
	defaultHandler := NewDefaultCategoryHandler(deps.DefaultCategoryUC)
	defaults.Get("/", defaultHandler.List)
	defaults.Post("/", defaultHandler.Create)
	defaults.Put("/:id", defaultHandler.Update)
	defaults.Delete("/:id", defaultHandler.Delete)
}
