package entity

import "time"

// BillingAccount agrupa las suscripciones de uno o más dueños.
// Invariante procedural (no hay constraint de unicidad en DB): a lo sumo una
// suscripción con is_active = true y fecha de fin futura por cuenta, por eso
// el gate re-verifica en cada petición protegida.
type BillingAccount struct {
	ID        int64
	UUID      string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Subscription es un período pagado de una cuenta de facturación.
// Nace activa al comprar o renovar; pasa a inactiva cuando la reemplaza una
// renovación o cuando el gate observa que ya venció (expiración perezosa).
type Subscription struct {
	ID        int64
	AccountID int64
	StartsAt  time.Time
	EndsAt    time.Time
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ExpiredAsOf indica si la suscripción venció: la fecha de fin es
// estrictamente anterior a la fecha (no al instante) de now.
func (s *Subscription) ExpiredAsOf(now time.Time) bool {
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	return s.EndsAt.Before(today)
}
