package qr

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/gokhangunesyou-cmd/qrmenu-sub001/internal/application/usecase"
)

var _ usecase.QREncoder = Encoder{}

// Encoder genera imágenes PNG de códigos QR con nivel de corrección medio,
// suficiente para un QR impreso en una mesa.
type Encoder struct{}

// EncodePNG codifica content como PNG cuadrado de sizePx píxeles.
func (Encoder) EncodePNG(content string, sizePx int) ([]byte, error) {
	png, err := qrcode.Encode(content, qrcode.Medium, sizePx)
	if err != nil {
		return nil, fmt.Errorf("encode qr png: %w", err)
	}
	return png, nil
}
