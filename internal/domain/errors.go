package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrMissingPayload  = errors.New("cuerpo de la petición ausente")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrConflict        = errors.New("conflicto con un recurso existente")
	ErrVersionConflict = errors.New("el documento fue modificado por otra petición")
)

// FieldError es una violación de regla asociada a la ruta de un campo (ej. address.postCode).
type FieldError struct {
	Field   string
	Message string
}

// ValidationError agrupa todas las violaciones encontradas en un payload.
type ValidationError struct {
	Object string
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+"="+f.Message)
	}
	return fmt.Sprintf("validación fallida en %s: %s", e.Object, strings.Join(parts, ", "))
}

// Is permite errors.Is(err, ErrInvalidInput) sobre un ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// StoreError envuelve un fallo del almacén de documentos. No se reintenta.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *StoreError) Unwrap() error { return e.Err }

// NewStoreError construye un StoreError; devuelve nil si err es nil.
func NewStoreError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Err: err}
}

// ConflictError indica la colisión de una clave natural (code de empresa o username).
func ConflictError(kind, key string) error {
	return fmt.Errorf("%w: %s=%s", ErrConflict, kind, key)
}
