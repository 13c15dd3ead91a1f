package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidInput = errors.New("entrada inválida")

	// ErrEngineUnavailable: el motor de renderizado no pudo adquirirse
	// (binario de Chromium ausente, entorno restringido, etc.).
	ErrEngineUnavailable = errors.New("motor de renderizado no disponible")

	// ErrRenderFailed: el motor arrancó pero el documento no se completó
	// (timeout, crash interno). Nunca se devuelve un PDF parcial con este error.
	ErrRenderFailed = errors.New("renderizado del documento fallido")
)
