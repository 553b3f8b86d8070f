package repository

import (
	"context"

	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/domain/entity"
	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/domain/scope"
)

// QRCodeRepository puerto de persistencia para QRCode (con scope de tenant).
type QRCodeRepository interface {
	Create(ctx context.Context, sc scope.Scope, q *entity.QRCode) error
	GetByID(ctx context.Context, sc scope.Scope, id int64) (*entity.QRCode, error)
	List(ctx context.Context, sc scope.Scope) ([]*entity.QRCode, error)
	Delete(ctx context.Context, sc scope.Scope, id int64) error
}
