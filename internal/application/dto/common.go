package dto

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// DefaultPage aplica valores por defecto si Limit/Offset son cero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 || p.Limit > 100 {
		p.Limit = 20
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// Tipos de error expuestos en el boundary HTTP.
const (
	ErrTypeUnauthorized = "unauthorized"
	ErrTypeForbidden    = "forbidden"
	ErrTypeNotFound     = "not_found"
	ErrTypeBadRequest   = "bad_request"
	ErrTypeConflict     = "conflict"
	ErrTypeInternal     = "internal"
)

// ErrorResponse cuerpo de error HTTP. El shape {status, type, message} es
// contrato con los clientes existentes.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Type    string `json:"type"`
	Message string `json:"message"`
}
