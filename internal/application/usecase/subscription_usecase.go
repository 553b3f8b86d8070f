package usecase

import (
	"context"
	"time"

	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/application/dto"
	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/domain"
	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/domain/entity"
	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/domain/repository"
)

// SubscriptionUseCase consulta y renovación de la suscripción de la cuenta
// del principal. El cobro real queda fuera: renovar crea el período nuevo
// como lo haría el callback de un pago exitoso.
type SubscriptionUseCase struct {
	subscriptions repository.SubscriptionRepository
	now           func() time.Time
}

// NewSubscriptionUseCase construye el caso de uso de suscripciones.
func NewSubscriptionUseCase(subscriptions repository.SubscriptionRepository) *SubscriptionUseCase {
	return &SubscriptionUseCase{subscriptions: subscriptions, now: time.Now}
}

// Current devuelve la suscripción activa más reciente de la cuenta del
// principal; ErrNotFound si no hay suscripción activa o no hay cuenta.
func (uc *SubscriptionUseCase) Current(ctx context.Context, p *domain.Principal) (*dto.SubscriptionResponse, error) {
	if p.BillingAccountID == 0 {
		return nil, domain.ErrNotFound
	}
	s, err := uc.subscriptions.LatestActive(ctx, p.BillingAccountID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return toSubscriptionResponse(s), nil
}

// Renew reemplaza la suscripción vigente: desactiva la activa (si la hay) y
// crea el período nuevo activo. Así se conserva el invariante de a lo sumo
// una suscripción activa por cuenta.
func (uc *SubscriptionUseCase) Renew(ctx context.Context, p *domain.Principal, in dto.RenewSubscriptionRequest) (*dto.SubscriptionResponse, error) {
	if p.BillingAccountID == 0 {
		return nil, domain.ErrInvalidInput
	}
	months := in.Months
	if months <= 0 {
		months = 1
	}

	current, err := uc.subscriptions.LatestActive(ctx, p.BillingAccountID)
	if err != nil {
		return nil, err
	}
	if current != nil {
		if err := uc.subscriptions.Deactivate(ctx, current.ID); err != nil {
			return nil, err
		}
	}

	now := uc.now()
	s := &entity.Subscription{
		AccountID: p.BillingAccountID,
		StartsAt:  now,
		EndsAt:    now.AddDate(0, months, 0),
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.subscriptions.Create(ctx, s); err != nil {
		return nil, err
	}
	return toSubscriptionResponse(s), nil
}

func toSubscriptionResponse(s *entity.Subscription) *dto.SubscriptionResponse {
	return &dto.SubscriptionResponse{
		ID:       s.ID,
		StartsAt: s.StartsAt,
		EndsAt:   s.EndsAt,
		IsActive: s.IsActive,
	}
}
