package domain

import (
	"errors"
	"fmt"
)

// Kind clasifica los fallos del dominio. El conjunto es cerrado: la capa HTTP
// traduce cada Kind a un código de estado.
type Kind string

const (
	KindDatabase         Kind = "DATABASE_ERROR"
	KindDuplicatedKey    Kind = "DUPLICATED_KEY"
	KindValidationFailed Kind = "VALIDATION_FAILED"
	KindNotFound         Kind = "NOT_FOUND"
	KindBusinessRule     Kind = "BUSINESS_RULE"
	KindInvalidInput     Kind = "INVALID_INPUT"
)

// Kinds devuelve todas las clasificaciones en orden estable.
func Kinds() []Kind {
	return []Kind{
		KindDatabase, KindDuplicatedKey, KindValidationFailed,
		KindNotFound, KindBusinessRule, KindInvalidInput,
	}
}

// Error es un fallo clasificado: Kind + mensaje legible para el usuario.
// Field identifica el campo que violó una regla (solo validaciones).
// Err conserva la causa original del adaptador, sin exponerla en el mensaje.
type Error struct {
	Kind    Kind
	Message string
	Field   string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is compara por Kind, de modo que errors.Is(err, domain.ErrNotFound) funciona
// con cualquier mensaje.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinelas por Kind, para usar con errors.Is.
var (
	ErrDatabase         = &Error{Kind: KindDatabase, Message: "error de base de datos"}
	ErrDuplicatedKey    = &Error{Kind: KindDuplicatedKey, Message: "recurso duplicado"}
	ErrValidationFailed = &Error{Kind: KindValidationFailed, Message: "el documento no cumple con el esquema definido"}
	ErrNotFound         = &Error{Kind: KindNotFound, Message: "recurso no encontrado"}
	ErrBusinessRule     = &Error{Kind: KindBusinessRule, Message: "regla de negocio incumplida"}
	ErrInvalidInput     = &Error{Kind: KindInvalidInput, Message: "entrada inválida"}
)

// KindOf devuelve el Kind de err si es un fallo clasificado.
func KindOf(err error) (Kind, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind, true
	}
	return "", false
}

// Business construye un fallo BUSINESS_RULE.
func Business(message string) *Error {
	return &Error{Kind: KindBusinessRule, Message: message}
}

// BusinessField construye un fallo BUSINESS_RULE asociado a un campo.
func BusinessField(field, message string) *Error {
	return &Error{Kind: KindBusinessRule, Message: message, Field: field}
}

// NotFound construye un fallo NOT_FOUND.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// InvalidInput indica un parámetro obligatorio ausente, ej. "id del usuario es requerido".
// owner lleva la preposición y el artículo: "del usuario", "de la venta".
func InvalidInput(property, owner string) *Error {
	return &Error{
		Kind:    KindInvalidInput,
		Message: fmt.Sprintf("%s %s es requerido", property, owner),
		Field:   property,
	}
}

// DBError envuelve un fallo genérico del almacén.
func DBError(message string, cause error) *Error {
	return &Error{Kind: KindDatabase, Message: message, Err: cause}
}

// DuplicatedKey envuelve una violación de índice único.
func DuplicatedKey(message string, cause error) *Error {
	return &Error{Kind: KindDuplicatedKey, Message: message, Err: cause}
}

// ValidationFailed envuelve un rechazo de esquema del almacén.
func ValidationFailed(message string, cause error) *Error {
	return &Error{Kind: KindValidationFailed, Message: message, Err: cause}
}
