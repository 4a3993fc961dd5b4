package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/clasificador/internal/domain"
)

func TestMapError(t *testing.T) {
	cases := []struct {
		code string
		want error
	}{
		{"CY001", domain.ErrCycle},
		{"CT001", domain.ErrNonTerminalClass},
		{"P0001", domain.ErrRuleViolation},
		{"23505", domain.ErrDuplicate},
		{"23503", domain.ErrInvalidReference},
		{"22P02", domain.ErrInvalidInput},
		{"23502", domain.ErrInvalidInput},
	}
	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			pgErr := &pgconn.PgError{Code: tc.code, Message: "mensaje del servidor"}
			err := mapError(fmt.Errorf("envuelto: %w", pgErr))

			assert.ErrorIs(t, err, tc.want)
			assert.Equal(t, "mensaje del servidor", err.Error(), "se conserva el mensaje de PostgreSQL")
		})
	}
}

func TestMapError_SinTraduccion(t *testing.T) {
	assert.NoError(t, mapError(nil))

	plain := errors.New("conexión cerrada")
	assert.Same(t, plain, mapError(plain))

	other := &pgconn.PgError{Code: "40001"}
	assert.Equal(t, error(other), mapError(other))
}
