package entity

import "time"

// QRCode es un código QR generado para el menú público de un restaurante
// (p. ej. uno por mesa). El PNG se genera una vez y se persiste.
type QRCode struct {
	ID           int64
	UUID         string
	RestaurantID int64
	Label        string // "Mesa 4", "Barra", ...
	TargetURL    string
	PNG          []byte
	CreatedAt    time.Time
}
