package usecase

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jhoicas/clasificador/internal/domain"
)

// ParseID convierte el texto de un campo de formulario en un id positivo.
func ParseID(field, raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("%w: %s es requerido", domain.ErrInvalidInput, field)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s debe ser un número entero positivo", domain.ErrInvalidInput, field)
	}
	return id, nil
}

// ParseOptionalID es ParseID pero acepta vacío (nil).
func ParseOptionalID(field, raw string) (*int64, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	id, err := ParseID(field, raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func requireText(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s es requerido", domain.ErrInvalidInput, field)
	}
	return nil
}

func requireID(field string, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: %s debe ser un número entero positivo", domain.ErrInvalidInput, field)
	}
	return nil
}
