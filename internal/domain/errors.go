package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrUnauthenticated  = errors.New("credencial ausente o inválida")
	ErrForbidden        = errors.New("rol sin permiso para la operación")
	ErrValidation       = errors.New("entrada inválida")
	ErrStoreUnavailable = errors.New("document store no disponible")
)
