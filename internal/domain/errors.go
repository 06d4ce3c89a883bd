package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrMethodNotAllowed = errors.New("método no permitido")
	ErrDuplicate        = errors.New("recurso duplicado")

	// Autenticación / autorización.
	ErrNoToken        = errors.New("token no proporcionado")
	ErrInvalidToken   = errors.New("token inválido")
	ErrRoleNotAllowed = errors.New("rol no autorizado")

	// Validación de entrada.
	ErrInvalidBody   = errors.New("cuerpo JSON inválido")
	ErrMissingFields = errors.New("faltan campos requeridos")
	ErrInvalidPrice  = errors.New("precio inválido")
)
