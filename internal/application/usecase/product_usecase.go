package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/clasificador/internal/application/dto"
	"github.com/jhoicas/clasificador/internal/domain"
	"github.com/jhoicas/clasificador/internal/domain/entity"
	"github.com/jhoicas/clasificador/internal/domain/repository"
)

// ProductUseCase alta de productos, búsqueda por clase y reclasificación.
type ProductUseCase struct {
	repo repository.ProductRepository
	tx   TxRunner
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, tx TxRunner) *ProductUseCase {
	return &ProductUseCase{repo: repo, tx: tx}
}

// Create crea un producto vía create_product (que rechaza clases no terminales).
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := requireText("short_name", in.ShortName); err != nil {
		return nil, err
	}
	if err := requireText("name", in.Name); err != nil {
		return nil, err
	}
	if err := requireID("id_class", in.ClassID); err != nil {
		return nil, err
	}
	product := &entity.Product{
		ShortName: strings.TrimSpace(in.ShortName),
		Name:      strings.TrimSpace(in.Name),
		ClassID:   in.ClassID,
	}
	id, err := uc.repo.Create(ctx, product)
	if err != nil {
		return nil, err
	}
	product.ID = id
	return toProductResponse(product), nil
}

// ByClass lista los productos de la clase; una lista vacía no es error.
func (uc *ProductUseCase) ByClass(ctx context.Context, classID int64) ([]dto.ProductResponse, error) {
	if err := requireID("id_class", classID); err != nil {
		return nil, err
	}
	list, err := uc.repo.ListByClass(ctx, classID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// ChangeClass reasigna el producto si find_children(newClassID) indica que la clase es terminal.
func (uc *ProductUseCase) ChangeClass(ctx context.Context, productID, classID int64) error {
	if err := requireID("id_product", productID); err != nil {
		return err
	}
	if err := requireID("id_class", classID); err != nil {
		return err
	}
	return uc.tx.RunHierarchy(ctx, func(repo repository.HierarchyRepository) error {
		if err := repo.Lock(ctx); err != nil {
			return err
		}
		size, err := repo.SubtreeSize(ctx, classID)
		if err != nil {
			return err
		}
		if size > 1 {
			return domain.ErrNonTerminalClass
		}
		return repo.SetProductClass(ctx, productID, classID)
	})
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:        p.ID,
		ShortName: p.ShortName,
		Name:      p.Name,
		ClassID:   p.ClassID,
	}
}
