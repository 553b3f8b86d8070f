package usecase

import (
	"context"

	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/application/dto"
)

// MenuCache cache de lectura del menú público. Es best-effort: las
// implementaciones absorben y registran sus propios errores, nunca bloquean
// la petición por una falla de cache.
type MenuCache interface {
	Get(ctx context.Context, restaurantID int64) (*dto.MenuResponse, bool)
	Set(ctx context.Context, restaurantID int64, menu *dto.MenuResponse)
	Invalidate(ctx context.Context, restaurantID int64)
}

// QREncoder genera la imagen PNG de un código QR.
type QREncoder interface {
	EncodePNG(content string, sizePx int) ([]byte, error)
}
