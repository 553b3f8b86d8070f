package entity

import "time"

// Page es una página estática del restaurante (acerca de, contacto, etc.).
type Page struct {
	ID           int64
	UUID         string
	RestaurantID int64
	Title        string
	Slug         string
	Content      string
	IsPublished  bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time // soft delete
}
