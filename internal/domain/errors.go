package domain

import "errors"

// Tipos de error de dominio (sin dependencias externas). La capa HTTP traduce cada tipo a un
// código de estado; los casos de uso los devuelven directamente o envueltos en *Error.
var (
	ErrValidation      = errors.New("entrada inválida")
	ErrConflict        = errors.New("recurso duplicado")
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrUnauthenticated = errors.New("no autorizado")
	ErrForbidden       = errors.New("acceso denegado")
	ErrStorage         = errors.New("error en la base de datos")
	ErrUnsupportedFile = errors.New("tipo de archivo no soportado")
	ErrProcessing      = errors.New("error al procesar los datos")
)

// Error es el resultado de error etiquetado de una operación: Kind indica la categoría
// (uno de los Err* de arriba), Message el texto para el usuario y Err la causa técnica.
type Error struct {
	Kind    error
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap permite errors.Is tanto contra el tipo como contra la causa.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// NewError construye un error etiquetado sin causa.
func NewError(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// WrapError construye un error etiquetado conservando la causa.
func WrapError(kind error, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// Validation, Conflict, NotFound... atajos para los tipos más usados.
func Validation(message string) *Error { return NewError(ErrValidation, message) }
func Conflict(message string) *Error   { return NewError(ErrConflict, message) }
func NotFound(message string) *Error   { return NewError(ErrNotFound, message) }

// Storage envuelve un fallo de persistencia conservando el mensaje subyacente.
func Storage(err error) *Error {
	return WrapError(ErrStorage, ErrStorage.Error(), err)
}

// KindOf devuelve la categoría de err, o nil si no es un error de dominio.
func KindOf(err error) error {
	for _, kind := range []error{
		ErrValidation, ErrConflict, ErrNotFound, ErrUnauthenticated,
		ErrForbidden, ErrStorage, ErrUnsupportedFile, ErrProcessing,
	} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}

// MessageOf devuelve el mensaje para el usuario de err.
func MessageOf(err error) string {
	var de *Error
	if errors.As(err, &de) {
		if de.Kind == ErrStorage && de.Err != nil {
			return de.Error()
		}
		return de.Message
	}
	return err.Error()
}

// Errores que devuelven los adaptadores de persistencia; los casos de uso los traducen a un
// tipo de dominio con el mensaje adecuado.
var (
	ErrDuplicateKey = errors.New("clave duplicada")
	ErrForeignKey   = errors.New("referencia a un registro inexistente o en uso")
)

// RuleViolation indica que una regla validada dentro de la base de datos (RAISE EXCEPTION en un
// procedimiento almacenado) rechazó la operación. Message es el texto emitido por la regla.
type RuleViolation struct {
	Message string
}

func (e *RuleViolation) Error() string {
	return "regla de base de datos: " + e.Message
}
