package repository

import (
	"context"

	"github.com/varmintworks/varmint-server/internal/domain"
)

// ProgressTx is a scoped transaction over one progress aggregate. All writes
// of a reconciliation request go through a single ProgressTx and become
// visible together on Commit; Rollback after Commit is a no-op, so callers
// can `defer tx.Rollback(ctx)` to guarantee rollback on every early exit.
//
// GetPet/GetHomeObject/GetInventoryEntry look up by id regardless of owner
// and return (nil, nil) on miss; the reconciliation engine owns the
// ownership check.
type ProgressTx interface {
	Get(ctx context.Context, progressID int64) (*domain.Progress, error)
	UpdateScalars(ctx context.Context, progress *domain.Progress) error

	GetPet(ctx context.Context, petID int64) (*domain.Pet, error)
	InsertPet(ctx context.Context, pet *domain.Pet) error
	UpdatePet(ctx context.Context, pet *domain.Pet) error
	ListPets(ctx context.Context, progressID int64) ([]domain.Pet, error)

	GetHomeObject(ctx context.Context, homeObjectID int64) (*domain.HomeObject, error)
	InsertHomeObject(ctx context.Context, obj *domain.HomeObject) error
	UpdateHomeObject(ctx context.Context, obj *domain.HomeObject) error
	ListHomeObjects(ctx context.Context, progressID int64) ([]domain.HomeObject, error)

	GetInventoryEntry(ctx context.Context, entryID int64) (*domain.InventoryEntry, error)
	InsertInventoryEntry(ctx context.Context, entry *domain.InventoryEntry) error
	UpdateInventoryEntry(ctx context.Context, entry *domain.InventoryEntry) error
	ListInventory(ctx context.Context, progressID int64) ([]domain.InventoryEntry, error)

	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
