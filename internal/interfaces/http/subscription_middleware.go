package http

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/domain/entity"
)

// Mensajes de causa del gate; viajan como query param hacia la pantalla de
// renovación para que el front distinga vencimiento de ausencia.
const (
	msgSubscriptionEnded = "suspended because subscription period ended"
	msgNoSubscription    = "no active subscription"
)

// subscriptionChecker contrato mínimo del gate sobre las suscripciones.
// Lo implementa el SubscriptionRepository de postgres.
type subscriptionChecker interface {
	LatestActive(ctx context.Context, accountID int64) (*entity.Subscription, error)
	ExistsActive(ctx context.Context, accountID int64) (bool, error)
	Deactivate(ctx context.Context, subscriptionID int64) error
}

// SubscriptionGateConfig configuración del gate de suscripción.
type SubscriptionGateConfig struct {
	// RenewalPath destino del redirect cuando la cuenta no tiene suscripción vigente.
	RenewalPath string
	// ExemptPaths prefijos de ruta que el gate deja pasar siempre (la pantalla
	// de renovación tiene que ser alcanzable con la suscripción vencida).
	ExemptPaths []string
	// Now inyectable para tests; nil = time.Now.
	Now func() time.Time
}

// SubscriptionGate exige suscripción vigente a los dueños de restaurante en
// el panel. Corre después de ResolvePrincipal y antes de cualquier handler.
//
// El vencimiento es perezoso: no hay job que apague suscripciones vencidas.
// La primera petición protegida posterior al vencimiento observa la fecha,
// persiste la desactivación en ese momento y recién entonces decide. La
// segunda verificación (ExistsActive) es deliberada: una renovación creada
// entre ambas lecturas mantiene a la cuenta adentro sin redirect espurio.
func SubscriptionGate(subs subscriptionChecker, cfg SubscriptionGateConfig) fiber.Handler {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return func(c *fiber.Ctx) error {
		for _, prefix := range cfg.ExemptPaths {
			if strings.HasPrefix(c.Path(), prefix) {
				return c.Next()
			}
		}
		p := GetPrincipal(c)
		if p == nil || p.IsSuperAdmin() || !p.IsOwner() {
			return c.Next()
		}
		// Sin cuenta de facturación no hay nada que exigir.
		if p.BillingAccountID == 0 {
			return c.Next()
		}

		expiredNow := false
		latest, err := subs.LatestActive(c.Context(), p.BillingAccountID)
		if err != nil {
			return respondError(c, err)
		}
		if latest != nil && latest.ExpiredAsOf(now()) {
			if err := subs.Deactivate(c.Context(), latest.ID); err != nil {
				return respondError(c, err)
			}
			expiredNow = true
		}

		active, err := subs.ExistsActive(c.Context(), p.BillingAccountID)
		if err != nil {
			return respondError(c, err)
		}
		if active {
			return c.Next()
		}

		cause := msgNoSubscription
		if expiredNow {
			cause = msgSubscriptionEnded
		}
		return c.Redirect(cfg.RenewalPath+"?message="+url.QueryEscape(cause), fiber.StatusFound)
	}
}
