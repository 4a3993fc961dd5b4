package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/clasificador/internal/application/dto"
	"github.com/jhoicas/clasificador/internal/domain/entity"
	"github.com/jhoicas/clasificador/internal/domain/repository"
)

// UnitUseCase alta de unidades de medida.
type UnitUseCase struct {
	repo repository.UnitRepository
}

// NewUnitUseCase construye el caso de uso.
func NewUnitUseCase(repo repository.UnitRepository) *UnitUseCase {
	return &UnitUseCase{repo: repo}
}

// Create crea una unidad vía create_unit. Code se guarda como texto.
func (uc *UnitUseCase) Create(ctx context.Context, in dto.CreateUnitRequest) (*dto.UnitResponse, error) {
	if err := requireText("short_name", in.ShortName); err != nil {
		return nil, err
	}
	if err := requireText("name", in.Name); err != nil {
		return nil, err
	}
	if err := requireText("code", in.Code); err != nil {
		return nil, err
	}
	unit := &entity.Unit{
		ShortName: strings.TrimSpace(in.ShortName),
		Name:      strings.TrimSpace(in.Name),
		Code:      strings.TrimSpace(in.Code),
	}
	id, err := uc.repo.Create(ctx, unit)
	if err != nil {
		return nil, err
	}
	unit.ID = id
	return &dto.UnitResponse{ID: unit.ID, ShortName: unit.ShortName, Name: unit.Name, Code: unit.Code}, nil
}
