package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrConflict     = errors.New("conflicto con el estado actual")
	ErrLastCompany  = errors.New("no se puede eliminar la única empresa registrada")
	ErrStorage      = errors.New("error de almacenamiento")
	ErrAIFailure    = errors.New("fallo en el servicio de IA")
)

// InvalidInput envuelve ErrInvalidInput con un detalle legible para el cliente.
func InvalidInput(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
