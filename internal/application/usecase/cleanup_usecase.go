package usecase

import (
	"context"
	"time"

	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/domain/repository"
	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/domain/scope"
	"github.com/gokhangunesyou-cmd/qrmenu-sub001/pkg/logger"
)

// CleanupUseCase purga definitiva de soft-deletes viejos en todos los
// tenants. Es el único caller legítimo de scope.Unrestricted() fuera de las
// rutas de super-admin; el scope sin restricción vive solo dentro de Run.
type CleanupUseCase struct {
	products  repository.ProductRepository
	pages     repository.PageRepository
	retention time.Duration
	log       *logger.Logger
}

// NewCleanupUseCase construye el job de limpieza.
func NewCleanupUseCase(products repository.ProductRepository, pages repository.PageRepository, retention time.Duration, log *logger.Logger) *CleanupUseCase {
	return &CleanupUseCase{products: products, pages: pages, retention: retention, log: log}
}

// Run ejecuta una pasada de purgado.
func (uc *CleanupUseCase) Run(ctx context.Context) error {
	sc := scope.Unrestricted()
	olderThan := time.Now().Add(-uc.retention)

	nProducts, err := uc.products.PurgeDeleted(ctx, sc, olderThan)
	if err != nil {
		return err
	}
	nPages, err := uc.pages.PurgeDeleted(ctx, sc, olderThan)
	if err != nil {
		return err
	}
	uc.log.Info().
		Int64("products", nProducts).
		Int64("pages", nPages).
		Time("older_than", olderThan).
		Msg("purgado de soft-deletes completado")
	return nil
}

// Start lanza el job periódico hasta que ctx se cancele.
func (uc *CleanupUseCase) Start(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := uc.Run(ctx); err != nil {
				uc.log.Error().Err(err).Msg("pasada de limpieza fallida")
			}
		}
	}
}
