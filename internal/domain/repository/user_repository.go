package repository

import (
	"context"

	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// No recibe scope: los usuarios no son datos de menú y la resolución del
// principal ocurre antes de instalar el scope de tenant.
type UserRepository interface {
	// FindByID devuelve nil sin error si no existe.
	FindByID(ctx context.Context, id int64) (*entity.User, error)
	// FindByEmail devuelve nil sin error si no existe.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
