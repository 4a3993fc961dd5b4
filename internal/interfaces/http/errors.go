package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/clasificador/internal/application/dto"
	"github.com/jhoicas/clasificador/internal/domain"
)

// errorMapping asocia errores de dominio con status y código. El orden importa:
// se usa el primero que coincida con errors.Is.
var errorMapping = []struct {
	err    error
	status int
	code   string
}{
	{domain.ErrInvalidInput, fiber.StatusBadRequest, "VALIDATION"},
	{domain.ErrUnknownTable, fiber.StatusNotFound, "UNKNOWN_TABLE"},
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{domain.ErrDuplicate, fiber.StatusConflict, "DUPLICATE"},
	{domain.ErrInvalidReference, fiber.StatusConflict, "INVALID_REFERENCE"},
	{domain.ErrCycle, fiber.StatusUnprocessableEntity, "CYCLE"},
	{domain.ErrNonTerminalClass, fiber.StatusUnprocessableEntity, "NON_TERMINAL_CLASS"},
	{domain.ErrRuleViolation, fiber.StatusUnprocessableEntity, "RULE_VIOLATION"},
	{domain.ErrUnauthorized, fiber.StatusUnauthorized, "UNAUTHORIZED"},
	{domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN"},
}

// respondError escribe el error como dto.ErrorResponse. Los errores no mapeados
// se registran y se devuelven como 500.
func respondError(c *fiber.Ctx, err error) error {
	for _, m := range errorMapping {
		if errors.Is(err, m.err) {
			return c.Status(m.status).JSON(dto.ErrorResponse{Code: m.code, Message: err.Error()})
		}
	}
	log.Error().Err(err).Str("path", c.Path()).Msg("error no controlado")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}
