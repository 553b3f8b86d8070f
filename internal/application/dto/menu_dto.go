package dto

// MenuResponse menú público de un restaurante: solo productos aprobados,
// agrupados por categoría. Es lo que se cachea en Redis.
type MenuResponse struct {
	Restaurant MenuRestaurant `json:"restaurant"`
	Categories []MenuCategory `json:"categories"`
}

// MenuRestaurant encabezado del menú público.
type MenuRestaurant struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Address     string `json:"address,omitempty"`
}

// MenuCategory categoría con sus productos visibles.
type MenuCategory struct {
	Name     string     `json:"name"`
	Slug     string     `json:"slug"`
	Products []MenuItem `json:"products"`
}

// MenuItem producto visible en el menú público.
type MenuItem struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       string `json:"price"`
	ImageURL    string `json:"image_url,omitempty"`
}
