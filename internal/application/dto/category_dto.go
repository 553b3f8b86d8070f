package dto

import "time"

// CategoryRequest alta/edición de categoría.
type CategoryRequest struct {
	Name     string `json:"name"`
	Position int    `json:"position"`
}

// CategoryResponse representación de una categoría en el panel.
type CategoryResponse struct {
	ID           int64     `json:"id"`
	UUID         string    `json:"uuid"`
	RestaurantID int64     `json:"restaurant_id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Position     int       `json:"position"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// DefaultCategoryRequest alta/edición de categoría por defecto (admin).
type DefaultCategoryRequest struct {
	Name     string `json:"name"`
	Position int    `json:"position"`
}

// DefaultCategoryResponse categoría del catálogo global.
type DefaultCategoryResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Position int    `json:"position"`
}
