package entity

import "time"

// Category agrupa productos dentro del menú de un restaurante.
type Category struct {
	ID           int64
	UUID         string
	RestaurantID int64
	Name         string
	Slug         string
	Position     int
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time // soft delete
}

// DefaultCategory plantilla de categoría del catálogo global: el super-admin
// las administra y se siembran en cada restaurante nuevo.
type DefaultCategory struct {
	ID        int64
	Name      string
	Position  int
	CreatedAt time.Time
	UpdatedAt time.Time
}
