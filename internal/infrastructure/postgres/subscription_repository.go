package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/domain/entity"
	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/domain/repository"
)

var _ repository.SubscriptionRepository = (*SubscriptionRepo)(nil)

// SubscriptionRepo implementación del puerto SubscriptionRepository sobre PostgreSQL.
type SubscriptionRepo struct {
	q Querier
}

// NewSubscriptionRepository construye el adaptador de persistencia para suscripciones.
func NewSubscriptionRepository(q Querier) *SubscriptionRepo {
	return &SubscriptionRepo{q: q}
}

// Create persiste una suscripción nueva y fija su ID generado.
func (r *SubscriptionRepo) Create(ctx context.Context, s *entity.Subscription) error {
	query := `
		INSERT INTO subscriptions (account_id, starts_at, ends_at, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		s.AccountID, s.StartsAt, s.EndsAt, s.IsActive, s.CreatedAt, s.UpdatedAt,
	).Scan(&s.ID)
	if err != nil {
		return fmt.Errorf("insert subscription: %w", err)
	}
	return nil
}

// LatestActive devuelve la suscripción activa más reciente de la cuenta;
// nil sin error si no hay ninguna marcada activa.
func (r *SubscriptionRepo) LatestActive(ctx context.Context, accountID int64) (*entity.Subscription, error) {
	query := `
		SELECT id, account_id, starts_at, ends_at, is_active, created_at, updated_at
		FROM subscriptions
		WHERE account_id = $1 AND is_active = true
		ORDER BY ends_at DESC
		LIMIT 1`
	var s entity.Subscription
	err := r.q.QueryRow(ctx, query, accountID).Scan(
		&s.ID, &s.AccountID, &s.StartsAt, &s.EndsAt, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get latest active subscription: %w", err)
	}
	return &s, nil
}

// ExistsActive indica si la cuenta tiene alguna suscripción con flag activo.
func (r *SubscriptionRepo) ExistsActive(ctx context.Context, accountID int64) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM subscriptions WHERE account_id = $1 AND is_active = true)`,
		accountID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists active subscription: %w", err)
	}
	return exists, nil
}

// Deactivate apaga el flag activo de una suscripción. El commit ocurre aquí
// mismo: el gate decide después de que la escritura quedó persistida.
func (r *SubscriptionRepo) Deactivate(ctx context.Context, subscriptionID int64) error {
	_, err := r.q.Exec(ctx,
		`UPDATE subscriptions SET is_active = false, updated_at = now() WHERE id = $1`,
		subscriptionID,
	)
	if err != nil {
		return fmt.Errorf("deactivate subscription: %w", err)
	}
	return nil
}
