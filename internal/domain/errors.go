package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrMissingColumns    = errors.New("faltan columnas obligatorias")
	ErrInvalidNumber     = errors.New("valor numérico inválido")
	ErrUnsupportedFormat = errors.New("formato de archivo no soportado")
	ErrNotCompareMode    = errors.New("la sesión no es de comparación entre empresas")
	ErrUnknownCompany    = errors.New("empresa no presente en el archivo")
)
