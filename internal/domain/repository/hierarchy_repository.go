package repository

import "context"

// HierarchyRepository agrupa las operaciones que cambian la jerarquía. Se usa
// siempre atado a una transacción (ver TxRunner en application/usecase).
type HierarchyRepository interface {
	// Lock toma el lock transaccional que serializa los cambios de jerarquía.
	Lock(ctx context.Context) error
	// SubtreeSize es count(*) de find_children(classID); 1 significa clase terminal.
	SubtreeSize(ctx context.Context, classID int64) (int, error)
	// HasCycle pregunta a cycle(childID, newParentID).
	HasCycle(ctx context.Context, childID, newParentID int64) (bool, error)
	// SetParent y SetProductClass devuelven domain.ErrNotFound si no se actualizó ninguna fila.
	SetParent(ctx context.Context, classID, parentID int64) error
	SetProductClass(ctx context.Context, productID, classID int64) error
}
