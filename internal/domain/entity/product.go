package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ProductStatus estado de publicación de un producto.
type ProductStatus string

const (
	StatusDraft           ProductStatus = "DRAFT"
	StatusPendingApproval ProductStatus = "PENDING_APPROVAL"
	StatusApproved        ProductStatus = "APPROVED"
	StatusRejected        ProductStatus = "REJECTED"
)

// ProductStatuses todos los estados válidos (para validación y tests).
var ProductStatuses = []ProductStatus{StatusDraft, StatusPendingApproval, StatusApproved, StatusRejected}

// Valid indica si el valor pertenece al set cerrado de estados.
func (s ProductStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusPendingApproval, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// CanTransition decide la legalidad de una transición de estado como función
// pura del par (from, to). El switch cubre explícitamente cada origen para que
// agregar un estado obligue a decidir cada caso. APPROVED es terminal.
func CanTransition(from, to ProductStatus) bool {
	switch from {
	case StatusDraft:
		return to == StatusPendingApproval
	case StatusPendingApproval:
		return to == StatusApproved || to == StatusRejected
	case StatusRejected:
		return to == StatusDraft || to == StatusPendingApproval
	case StatusApproved:
		return false
	}
	return false
}

// InvalidStatusTransitionError transición ilegal del workflow de publicación.
// Es distinto de una negación de acceso: "ahora no se puede" vs "nunca puedes".
type InvalidStatusTransitionError struct {
	From ProductStatus
	To   ProductStatus
}

func (e *InvalidStatusTransitionError) Error() string {
	return fmt.Sprintf("transición de estado inválida: %s -> %s", e.From, e.To)
}

// Product es un plato del menú de un restaurante. Solo los productos APPROVED
// aparecen en el menú público.
type Product struct {
	ID           int64
	UUID         string
	RestaurantID int64
	CategoryID   int64
	Name         string
	Description  string
	Price        decimal.Decimal
	ImageURL     string
	Status       ProductStatus
	Position     int
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time // soft delete
}

// TransitionTo cambia el estado si la transición es legal.
// La elegibilidad del principal para invocarla se decide en el authorizer.
func (p *Product) TransitionTo(to ProductStatus) error {
	if !CanTransition(p.Status, to) {
		return &InvalidStatusTransitionError{From: p.Status, To: to}
	}
	p.Status = to
	return nil
}
