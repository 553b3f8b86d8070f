package entity

import "time"

// Estados de un restaurante.
const (
	RestaurantActive    = "active"
	RestaurantSuspended = "suspended"
)

// Restaurant representa un tenant: la frontera de aislamiento del sistema.
// Toda entidad de menú (categoría, producto, página, QR) referencia exactamente
// un restaurante, asignado al crearla y nunca reasignado.
type Restaurant struct {
	ID          int64
	UUID        string
	Name        string
	Slug        string // identificador público del menú (/api/menu/:slug)
	Description string
	Phone       string
	Address     string
	Status      string // active, suspended
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
