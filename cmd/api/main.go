package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"

	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/application/auth"
	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/application/usecase"
	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/infrastructure/cache"
	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/infrastructure/postgres"
	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/infrastructure/qr"
	httpRouter "github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/interfaces/http"
	"github.com/gokhangunesyou-cmd/qrmenu-sub001/pkg/config"
	"github.com/gokhangunesyou-cmd/qrmenu-sub001/pkg/logger"
	"github.com/gokhangunesyou-cmd/qrmenu-sub001/pkg/token"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	restaurantRepo := postgres.NewRestaurantRepository(pool)
	subscriptionRepo := postgres.NewSubscriptionRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	defaultCategoryRepo := postgres.NewDefaultCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	pageRepo := postgres.NewPageRepository(pool)
	qrRepo := postgres.NewQRCodeRepository(pool)

	// Cache de menú público. Sin Redis el cache es no-op y todo sale de la DB.
	var menuCache usecase.MenuCache = cache.NoopMenuCache{}
	if cfg.Redis.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()
		menuCache = cache.NewRedisMenuCache(rdb, time.Duration(cfg.Redis.MenuTTLSeconds)*time.Second, log)
	}

	codec := token.New(cfg.JWT.Secret)
	authUC := auth.NewUseCase(userRepo, codec, auth.TokenTTLs{
		Access:  time.Duration(cfg.JWT.AccessTTLSeconds) * time.Second,
		Refresh: time.Duration(cfg.JWT.RefreshTTLSeconds) * time.Second,
	})

	categoryUC := usecase.NewCategoryUseCase(categoryRepo, menuCache)
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo, menuCache)
	pageUC := usecase.NewPageUseCase(pageRepo)
	qrUC := usecase.NewQRCodeUseCase(qrRepo, restaurantRepo, qr.Encoder{}, cfg.App.PublicBaseURL)
	subscriptionUC := usecase.NewSubscriptionUseCase(subscriptionRepo)
	restaurantUC := usecase.NewRestaurantUseCase(restaurantRepo, categoryRepo, defaultCategoryRepo)
	defaultCategoryUC := usecase.NewDefaultCategoryUseCase(defaultCategoryRepo)
	menuUC := usecase.NewMenuUseCase(restaurantRepo, categoryRepo, productRepo, menuCache)

	// Purga periódica de soft-deletes viejos (cross-tenant, scope sin restricción).
	cleanupUC := usecase.NewCleanupUseCase(
		productRepo, pageRepo,
		time.Duration(cfg.Cleanup.RetentionDays)*24*time.Hour,
		log,
	)
	cleanupCtx, stopCleanup := context.WithCancel(ctx)
	defer stopCleanup()
	go cleanupUC.Start(cleanupCtx, time.Duration(cfg.Cleanup.IntervalMinutes)*time.Minute)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "QR Menu API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:            authUC,
		CategoryUC:        categoryUC,
		ProductUC:         productUC,
		PageUC:            pageUC,
		QRCodeUC:          qrUC,
		SubscriptionUC:    subscriptionUC,
		RestaurantUC:      restaurantUC,
		DefaultCategoryUC: defaultCategoryUC,
		MenuUC:            menuUC,
		Codec:             codec,
		Users:             userRepo,
		Subscriptions:     subscriptionRepo,
		RenewalPath:       cfg.App.RenewalPath,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
