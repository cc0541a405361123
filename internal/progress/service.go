package progress

import (
	"context"
	"fmt"

	"github.com/varmintworks/varmint-server/internal/concurrency"
	"github.com/varmintworks/varmint-server/internal/domain"
	"github.com/varmintworks/varmint-server/internal/logger"
	"github.com/varmintworks/varmint-server/internal/metrics"
	"github.com/varmintworks/varmint-server/internal/repository"
)

// Service defines the progress synchronization business logic interface
type Service interface {
	// Fetch returns the full aggregate for accountID.
	// Returns domain.ErrAccountNotFound for unknown accounts.
	Fetch(ctx context.Context, accountID int64) (*Aggregate, error)

	// Update reconciles a client save into the stored aggregate and returns
	// the post-commit state. The whole save commits or none of it does.
	Update(ctx context.Context, accountID int64, patch *Patch) (*Aggregate, error)

	// DeleteHomeObject removes one placed object by its id and returns the
	// owning account's progress id.
	// Returns domain.ErrHomeObjectNotFound on miss.
	DeleteHomeObject(ctx context.Context, homeObjectID int64) (int64, error)
}

type service struct {
	accounts repository.Account
	repo     repository.Progress
	items    ItemSource
	locks    *concurrency.LockManager
}

// NewService creates a new progress service
func NewService(accounts repository.Account, repo repository.Progress, items ItemSource) Service {
	return &service{
		accounts: accounts,
		repo:     repo,
		items:    items,
		locks:    concurrency.NewLockManager(),
	}
}

func (s *service) Fetch(ctx context.Context, accountID int64) (*Aggregate, error) {
	log := logger.FromContext(ctx)

	agg, err := s.fetch(ctx, accountID)
	if err != nil {
		return nil, err
	}

	log.Debug(LogMsgProgressFetched, "account_id", accountID,
		"pets", len(agg.Pets), "home_objects", len(agg.HomeObjects), "inventory", len(agg.Inventory))
	return agg, nil
}

func (s *service) Update(ctx context.Context, accountID int64, patch *Patch) (*Aggregate, error) {
	log := logger.FromContext(ctx)

	if patch == nil {
		return nil, fmt.Errorf("%w: empty request body", domain.ErrInvalidInput)
	}

	// Saves for the same account are serialized; two in-flight PUTs for one
	// player cannot interleave their reconciliations.
	unlock := s.locks.LockID(accountID)
	defer unlock()

	// Resolve the account outside the transaction; unknown accounts fail
	// before any write begins.
	if _, err := s.accounts.GetByID(ctx, accountID); err != nil {
		return nil, err
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	outcomes := make(map[string]map[Outcome]int, 3)
	if err := s.applyPatch(ctx, tx, accountID, patch, outcomes); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	metrics.ProgressUpdates.Inc()
	for kind, counts := range outcomes {
		for outcome, n := range counts {
			metrics.ReconciledRecords.WithLabelValues(kind, string(outcome)).Add(float64(n))
		}
	}

	log.Info(LogMsgProgressUpdated, "account_id", accountID,
		"pets", len(patch.Pets), "home_objects", len(patch.HomeObjects), "inventory", len(patch.Inventory))

	return s.fetch(ctx, accountID)
}

func (s *service) DeleteHomeObject(ctx context.Context, homeObjectID int64) (int64, error) {
	log := logger.FromContext(ctx)

	ownerID, err := s.repo.DeleteHomeObject(ctx, homeObjectID)
	if err != nil {
		return 0, err
	}

	log.Info(LogMsgHomeObjectDeleted, "home_object_id", homeObjectID, "account_id", ownerID)
	return ownerID, nil
}

// applyPatch runs every reconciliation of one save inside tx. Record order
// within each collection is client order, but the result is order
// independent: each record resolves against storage, not its neighbors.
func (s *service) applyPatch(ctx context.Context, tx repository.ProgressTx, accountID int64, patch *Patch, outcomes map[string]map[Outcome]int) error {
	state, err := tx.Get(ctx, accountID)
	if err != nil {
		return err
	}

	if patch.TutorialCompleted != nil {
		state.TutorialCompleted = *patch.TutorialCompleted
	}
	if patch.Currency != nil {
		state.Currency = *patch.Currency
	}
	if err := tx.UpdateScalars(ctx, state); err != nil {
		return err
	}

	record := func(kind string, outcome Outcome) {
		if outcomes[kind] == nil {
			outcomes[kind] = make(map[Outcome]int, 2)
		}
		outcomes[kind][outcome]++
	}

	for _, petPatch := range patch.Pets {
		outcome, err := reconcilePet(ctx, tx, accountID, petPatch)
		if err != nil {
			return err
		}
		record(KindPet, outcome)
	}

	for _, objPatch := range patch.HomeObjects {
		outcome, err := reconcileHomeObject(ctx, tx, accountID, objPatch)
		if err != nil {
			return err
		}
		record(KindHomeObject, outcome)
	}

	for _, invPatch := range patch.Inventory {
		outcome, err := reconcileInventoryEntry(ctx, tx, accountID, invPatch)
		if err != nil {
			return err
		}
		record(KindInventory, outcome)
	}

	return nil
}

func (s *service) fetch(ctx context.Context, accountID int64) (*Aggregate, error) {
	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	state, err := s.repo.Get(ctx, accountID)
	if err != nil {
		return nil, err
	}

	pets, err := s.repo.ListPets(ctx, accountID)
	if err != nil {
		return nil, err
	}
	objects, err := s.repo.ListHomeObjects(ctx, accountID)
	if err != nil {
		return nil, err
	}
	entries, err := s.repo.ListInventory(ctx, accountID)
	if err != nil {
		return nil, err
	}

	return assembleAggregate(ctx, s.items, account, state, pets, objects, entries)
}
