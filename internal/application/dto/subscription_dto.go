package dto

import "time"

// RenewSubscriptionRequest renovación de la suscripción de la cuenta.
type RenewSubscriptionRequest struct {
	Months int `json:"months"` // duración del período nuevo; default 1
}

// SubscriptionResponse estado de la suscripción vigente de la cuenta.
type SubscriptionResponse struct {
	ID       int64     `json:"id"`
	StartsAt time.Time `json:"starts_at"`
	EndsAt   time.Time `json:"ends_at"`
	IsActive bool      `json:"is_active"`
}
