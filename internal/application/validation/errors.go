// Package validation contiene las reglas de negocio sobre los payloads de la API.
// Son funciones puras: no hacen I/O y acumulan todas las violaciones sin cortar en la primera.
package validation

import (
	"strings"

	"github.com/jhoicas/sm-customers/internal/domain"
)

// Errors acumulador de violaciones, en el orden en que se detectan.
type Errors []domain.FieldError

// Reject agrega una violación sobre field con el código de mensaje code.
func (e *Errors) Reject(field, code string) {
	*e = append(*e, domain.FieldError{Field: field, Message: code})
}

// RejectIfBlank agrega la violación si value está vacío o solo tiene espacios.
func (e *Errors) RejectIfBlank(field, value, code string) {
	if isBlank(value) {
		e.Reject(field, code)
	}
}

// Merge agrega todas las violaciones de other.
func (e *Errors) Merge(other Errors) {
	*e = append(*e, other...)
}

// Has informa si hay alguna violación sobre field.
func (e Errors) Has(field string) bool {
	for _, f := range e {
		if f.Field == field {
			return true
		}
	}
	return false
}

// Err devuelve nil si no hay violaciones, o un *domain.ValidationError para object.
func (e Errors) Err(object string) error {
	if len(e) == 0 {
		return nil
	}
	fields := make([]domain.FieldError, len(e))
	copy(fields, e)
	return &domain.ValidationError{Object: object, Fields: fields}
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
