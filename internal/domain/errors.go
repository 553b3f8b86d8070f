package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrUnauthorized = errors.New("no autorizado")
	// ErrAccessDenied deniega una capacidad. Para negaciones cross-tenant el
	// boundary lo traduce al mismo cuerpo que un not-found (anti-enumeración).
	ErrAccessDenied = errors.New("acceso denegado")
	ErrConflict     = errors.New("conflicto con el estado actual")
)
