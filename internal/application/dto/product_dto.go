package dto

import "time"

// CreateProductRequest alta de producto (nace en DRAFT).
type CreateProductRequest struct {
	CategoryID  int64  `json:"category_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"` // decimal como string, p. ej. "12.50"
	ImageURL    string `json:"image_url"`
	Position    int    `json:"position"`
}

// UpdateProductRequest edición de los campos editables de un producto.
type UpdateProductRequest struct {
	CategoryID  int64  `json:"category_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	ImageURL    string `json:"image_url"`
	Position    int    `json:"position"`
}

// ProductResponse representación de un producto en el panel.
type ProductResponse struct {
	ID           int64     `json:"id"`
	UUID         string    `json:"uuid"`
	RestaurantID int64     `json:"restaurant_id"`
	CategoryID   int64     `json:"category_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	Price        string    `json:"price"`
	ImageURL     string    `json:"image_url,omitempty"`
	Status       string    `json:"status"`
	Position     int       `json:"position"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
