package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/clasificador/internal/application/dto"
	"github.com/jhoicas/clasificador/internal/domain"
	"github.com/jhoicas/clasificador/internal/domain/entity"
	"github.com/jhoicas/clasificador/internal/domain/repository"
)

// ClassificationUseCase alta y consultas de clases, y cambio de clase padre.
// La ausencia de ciclos la decide la base de datos (cycle()); aquí solo se actúa sobre su respuesta.
type ClassificationUseCase struct {
	repo repository.ClassificationRepository
	tx   TxRunner
}

// NewClassificationUseCase construye el caso de uso.
func NewClassificationUseCase(repo repository.ClassificationRepository, tx TxRunner) *ClassificationUseCase {
	return &ClassificationUseCase{repo: repo, tx: tx}
}

// Create crea una clase vía create_class.
func (uc *ClassificationUseCase) Create(ctx context.Context, in dto.CreateClassificationRequest) (*dto.ClassificationResponse, error) {
	if err := requireText("short_name", in.ShortName); err != nil {
		return nil, err
	}
	if err := requireText("name", in.Name); err != nil {
		return nil, err
	}
	if err := requireID("id_unit", in.UnitID); err != nil {
		return nil, err
	}
	if in.ParentID != nil {
		if err := requireID("id_main_class", *in.ParentID); err != nil {
			return nil, err
		}
	}
	class := &entity.Classification{
		ShortName: strings.TrimSpace(in.ShortName),
		Name:      strings.TrimSpace(in.Name),
		UnitID:    in.UnitID,
		ParentID:  in.ParentID,
	}
	id, err := uc.repo.Create(ctx, class)
	if err != nil {
		return nil, err
	}
	class.ID = id
	return toClassificationResponse(class), nil
}

// List devuelve todas las clases.
func (uc *ClassificationUseCase) List(ctx context.Context) ([]dto.ClassificationResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ClassificationResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toClassificationResponse(c))
	}
	return items, nil
}

// Children devuelve la clase y sus descendientes tal como los entrega find_children.
func (uc *ClassificationUseCase) Children(ctx context.Context, classID int64) ([]dto.ClassChildResponse, error) {
	if err := requireID("id_class", classID); err != nil {
		return nil, err
	}
	refs, err := uc.repo.FindChildren(ctx, classID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ClassChildResponse, 0, len(refs))
	for _, r := range refs {
		items = append(items, dto.ClassChildResponse{ID: r.ID, ShortName: r.ShortName})
	}
	return items, nil
}

// ChangeParent cambia id_main_class de la clase si cycle() no lo impide.
func (uc *ClassificationUseCase) ChangeParent(ctx context.Context, classID, parentID int64) error {
	if err := requireID("id_class", classID); err != nil {
		return err
	}
	if err := requireID("id_main_class", parentID); err != nil {
		return err
	}
	return uc.tx.RunHierarchy(ctx, func(repo repository.HierarchyRepository) error {
		if err := repo.Lock(ctx); err != nil {
			return err
		}
		cycle, err := repo.HasCycle(ctx, classID, parentID)
		if err != nil {
			return err
		}
		if cycle {
			return domain.ErrCycle
		}
		return repo.SetParent(ctx, classID, parentID)
	})
}

func toClassificationResponse(c *entity.Classification) *dto.ClassificationResponse {
	return &dto.ClassificationResponse{
		ID:        c.ID,
		ShortName: c.ShortName,
		Name:      c.Name,
		UnitID:    c.UnitID,
		ParentID:  c.ParentID,
	}
}
