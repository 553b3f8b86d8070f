package dto

import "time"

// PageRequestBody alta/edición de página estática.
type PageRequestBody struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	IsPublished bool   `json:"is_published"`
}

// PageResponse representación de una página en el panel.
type PageResponse struct {
	ID           int64     `json:"id"`
	UUID         string    `json:"uuid"`
	RestaurantID int64     `json:"restaurant_id"`
	Title        string    `json:"title"`
	Slug         string    `json:"slug"`
	Content      string    `json:"content"`
	IsPublished  bool      `json:"is_published"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
