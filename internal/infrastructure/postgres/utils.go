package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/clasificador/internal/domain"
)

// Códigos SQLSTATE propios que levantan los procedimientos y triggers de migrations/.
const (
	codeCycle          = "CY001"
	codeNonTerminal    = "CT001"
	codeRaiseException = "P0001"
)

// mapError traduce errores de PostgreSQL a errores de dominio conservando el
// mensaje del servidor. Los errores que no son de PostgreSQL se devuelven igual.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	var target error
	switch pgErr.Code {
	case codeCycle:
		target = domain.ErrCycle
	case codeNonTerminal:
		target = domain.ErrNonTerminalClass
	case codeRaiseException:
		target = domain.ErrRuleViolation
	case "23505": // unique_violation
		target = domain.ErrDuplicate
	case "23503": // foreign_key_violation
		target = domain.ErrInvalidReference
	case "23502", "23514", "22P02", "22003", "22001": // not_null, check, texto/número inválido, fuera de rango, demasiado largo
		target = domain.ErrInvalidInput
	default:
		return err
	}
	return &domain.RuleError{Err: target, Message: pgErr.Message}
}
