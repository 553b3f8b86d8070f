package dto

import "time"

// CreateQRCodeRequest genera un QR para el menú público del restaurante.
type CreateQRCodeRequest struct {
	Label string `json:"label"`
}

// QRCodeResponse metadatos del QR; el PNG se descarga por endpoint aparte.
type QRCodeResponse struct {
	ID        int64     `json:"id"`
	UUID      string    `json:"uuid"`
	Label     string    `json:"label"`
	TargetURL string    `json:"target_url"`
	CreatedAt time.Time `json:"created_at"`
}
