package repository

import (
	"context"

	"github.com/varmintworks/varmint-server/internal/domain"
)

// Progress defines the interface for progress aggregate persistence.
// Mutations to the aggregate happen exclusively through ProgressTx so that
// one reconciliation request commits as a single all-or-nothing unit.
type Progress interface {
	// Get returns domain.ErrProgressNotFound on miss.
	Get(ctx context.Context, progressID int64) (*domain.Progress, error)

	// Sub-collection reads return records in creation order.
	ListPets(ctx context.Context, progressID int64) ([]domain.Pet, error)
	ListHomeObjects(ctx context.Context, progressID int64) ([]domain.HomeObject, error)
	ListInventory(ctx context.Context, progressID int64) ([]domain.InventoryEntry, error)

	// DeleteHomeObject removes the object and returns its owning progress id.
	// Returns domain.ErrHomeObjectNotFound on miss.
	DeleteHomeObject(ctx context.Context, homeObjectID int64) (int64, error)

	BeginTx(ctx context.Context) (ProgressTx, error)
}
