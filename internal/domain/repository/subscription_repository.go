package repository

import (
	"context"

	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/domain/entity"
)

// SubscriptionRepository puerto de persistencia para Subscription.
// Las consultas son por cuenta de facturación, no por tenant.
type SubscriptionRepository interface {
	Create(ctx context.Context, s *entity.Subscription) error
	// LatestActive la suscripción más reciente marcada activa de la cuenta;
	// nil sin error si no hay ninguna.
	LatestActive(ctx context.Context, accountID int64) (*entity.Subscription, error)
	// ExistsActive indica si la cuenta tiene alguna suscripción con flag activo.
	ExistsActive(ctx context.Context, accountID int64) (bool, error)
	// Deactivate apaga el flag activo de una suscripción y persiste de inmediato.
	// Es la única mutación de suscripciones que hace el subsistema de acceso.
	Deactivate(ctx context.Context, subscriptionID int64) error
}
