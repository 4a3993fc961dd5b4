package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrDuplicate        = errors.New("recurso duplicado")
	ErrInvalidReference = errors.New("referencia a un registro inexistente")
	ErrUnknownTable     = errors.New("tabla desconocida")
	ErrUnknownQuery     = errors.New("consulta desconocida")
	ErrUnauthorized     = errors.New("no autorizado")
	ErrForbidden        = errors.New("acceso denegado")

	// Reglas de integridad de la jerarquía; las verifica la base de datos.
	ErrCycle            = errors.New("no se puede cambiar el padre porque se crea un ciclo")
	ErrNonTerminalClass = errors.New("un producto solo puede pertenecer a una clase terminal")
	ErrRuleViolation    = errors.New("violación de una regla de la base de datos")
)

// RuleError conserva el mensaje original de la base de datos (excepción de un
// procedimiento almacenado, violación de constraint) sin perder el error de dominio.
type RuleError struct {
	Err     error
	Message string
}

func (e *RuleError) Error() string {
	if e.Message == "" {
		return e.Err.Error()
	}
	return e.Message
}

func (e *RuleError) Unwrap() error { return e.Err }
