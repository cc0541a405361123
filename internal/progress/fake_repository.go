package progress

import (
	"context"
	"errors"
	"maps"
	"sort"
	"sync"

	"github.com/varmintworks/varmint-server/internal/domain"
	"github.com/varmintworks/varmint-server/internal/repository"
)

var errCommitFailed = errors.New("commit failed")

// fakeStore is the in-memory backing state shared by the fake repositories.
type fakeStore struct {
	mu sync.Mutex

	accounts map[int64]domain.Account
	progress map[int64]domain.Progress
	pets     map[int64]domain.Pet
	objects  map[int64]domain.HomeObject
	entries  map[int64]domain.InventoryEntry

	nextID int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		accounts: make(map[int64]domain.Account),
		progress: make(map[int64]domain.Progress),
		pets:     make(map[int64]domain.Pet),
		objects:  make(map[int64]domain.HomeObject),
		entries:  make(map[int64]domain.InventoryEntry),
		nextID:   1,
	}
}

// addAccount seeds an account with its empty progress record.
func (s *fakeStore) addAccount(username string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.accounts[id] = domain.Account{ID: id, Username: username}
	s.progress[id] = domain.Progress{ID: id}
	return id
}

func (s *fakeStore) allocID() int64 {
	id := s.nextID
	s.nextID++
	return id
}

// fakeAccountRepository implements repository.Account over a fakeStore.
type fakeAccountRepository struct {
	store *fakeStore
}

var _ repository.Account = (*fakeAccountRepository)(nil)

func (f *fakeAccountRepository) CreateWithProgress(_ context.Context, account *domain.Account) error {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	for _, existing := range f.store.accounts {
		if existing.Username == account.Username {
			return domain.ErrDuplicateUsername
		}
	}
	account.ID = f.store.allocID()
	f.store.accounts[account.ID] = *account
	f.store.progress[account.ID] = domain.Progress{ID: account.ID}
	return nil
}

func (f *fakeAccountRepository) GetByUsername(_ context.Context, username string) (*domain.Account, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	for _, account := range f.store.accounts {
		if account.Username == username {
			a := account
			return &a, nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func (f *fakeAccountRepository) GetByID(_ context.Context, accountID int64) (*domain.Account, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	account, ok := f.store.accounts[accountID]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return &account, nil
}

// fakeProgressRepository implements repository.Progress over a fakeStore.
type fakeProgressRepository struct {
	store *fakeStore

	// failCommit makes the next Commit fail, for atomicity tests.
	failCommit bool
}

var _ repository.Progress = (*fakeProgressRepository)(nil)

func (f *fakeProgressRepository) Get(_ context.Context, progressID int64) (*domain.Progress, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	state, ok := f.store.progress[progressID]
	if !ok {
		return nil, domain.ErrProgressNotFound
	}
	return &state, nil
}

func (f *fakeProgressRepository) ListPets(_ context.Context, progressID int64) ([]domain.Pet, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	return collectByOwner(f.store.pets, progressID, func(p domain.Pet) (int64, int64) { return p.ID, p.ProgressID }), nil
}

func (f *fakeProgressRepository) ListHomeObjects(_ context.Context, progressID int64) ([]domain.HomeObject, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	return collectByOwner(f.store.objects, progressID, func(o domain.HomeObject) (int64, int64) { return o.ID, o.ProgressID }), nil
}

func (f *fakeProgressRepository) ListInventory(_ context.Context, progressID int64) ([]domain.InventoryEntry, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	return collectByOwner(f.store.entries, progressID, func(e domain.InventoryEntry) (int64, int64) { return e.ID, e.ProgressID }), nil
}

func (f *fakeProgressRepository) DeleteHomeObject(_ context.Context, homeObjectID int64) (int64, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	obj, ok := f.store.objects[homeObjectID]
	if !ok {
		return 0, domain.ErrHomeObjectNotFound
	}
	delete(f.store.objects, homeObjectID)
	return obj.ProgressID, nil
}

func (f *fakeProgressRepository) BeginTx(_ context.Context) (repository.ProgressTx, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	// Stage clones of the shared state; Commit swaps them in atomically.
	return &fakeTx{
		repo:     f,
		progress: maps.Clone(f.store.progress),
		pets:     maps.Clone(f.store.pets),
		objects:  maps.Clone(f.store.objects),
		entries:  maps.Clone(f.store.entries),
	}, nil
}

// fakeTx implements repository.ProgressTx by staging writes in cloned maps
// and publishing them to the store on Commit, so tests see real
// all-or-nothing behavior.
type fakeTx struct {
	repo *fakeProgressRepository

	progress map[int64]domain.Progress
	pets     map[int64]domain.Pet
	objects  map[int64]domain.HomeObject
	entries  map[int64]domain.InventoryEntry

	committed  bool
	rolledBack bool
}

var _ repository.ProgressTx = (*fakeTx)(nil)

func (t *fakeTx) Get(_ context.Context, progressID int64) (*domain.Progress, error) {
	state, ok := t.progress[progressID]
	if !ok {
		return nil, domain.ErrProgressNotFound
	}
	return &state, nil
}

func (t *fakeTx) UpdateScalars(_ context.Context, progress *domain.Progress) error {
	t.progress[progress.ID] = *progress
	return nil
}

func (t *fakeTx) GetPet(_ context.Context, petID int64) (*domain.Pet, error) {
	pet, ok := t.pets[petID]
	if !ok {
		return nil, nil
	}
	return &pet, nil
}

func (t *fakeTx) InsertPet(_ context.Context, pet *domain.Pet) error {
	t.repo.store.mu.Lock()
	pet.ID = t.repo.store.allocID()
	t.repo.store.mu.Unlock()
	t.pets[pet.ID] = *pet
	return nil
}

func (t *fakeTx) UpdatePet(_ context.Context, pet *domain.Pet) error {
	t.pets[pet.ID] = *pet
	return nil
}

func (t *fakeTx) ListPets(_ context.Context, progressID int64) ([]domain.Pet, error) {
	return collectByOwner(t.pets, progressID, func(p domain.Pet) (int64, int64) { return p.ID, p.ProgressID }), nil
}

func (t *fakeTx) GetHomeObject(_ context.Context, homeObjectID int64) (*domain.HomeObject, error) {
	obj, ok := t.objects[homeObjectID]
	if !ok {
		return nil, nil
	}
	return &obj, nil
}

func (t *fakeTx) InsertHomeObject(_ context.Context, obj *domain.HomeObject) error {
	t.repo.store.mu.Lock()
	obj.ID = t.repo.store.allocID()
	t.repo.store.mu.Unlock()
	t.objects[obj.ID] = *obj
	return nil
}

func (t *fakeTx) UpdateHomeObject(_ context.Context, obj *domain.HomeObject) error {
	t.objects[obj.ID] = *obj
	return nil
}

func (t *fakeTx) ListHomeObjects(_ context.Context, progressID int64) ([]domain.HomeObject, error) {
	return collectByOwner(t.objects, progressID, func(o domain.HomeObject) (int64, int64) { return o.ID, o.ProgressID }), nil
}

func (t *fakeTx) GetInventoryEntry(_ context.Context, entryID int64) (*domain.InventoryEntry, error) {
	entry, ok := t.entries[entryID]
	if !ok {
		return nil, nil
	}
	return &entry, nil
}

func (t *fakeTx) InsertInventoryEntry(_ context.Context, entry *domain.InventoryEntry) error {
	t.repo.store.mu.Lock()
	entry.ID = t.repo.store.allocID()
	t.repo.store.mu.Unlock()
	t.entries[entry.ID] = *entry
	return nil
}

func (t *fakeTx) UpdateInventoryEntry(_ context.Context, entry *domain.InventoryEntry) error {
	t.entries[entry.ID] = *entry
	return nil
}

func (t *fakeTx) ListInventory(_ context.Context, progressID int64) ([]domain.InventoryEntry, error) {
	return collectByOwner(t.entries, progressID, func(e domain.InventoryEntry) (int64, int64) { return e.ID, e.ProgressID }), nil
}

func (t *fakeTx) Commit(_ context.Context) error {
	if t.repo.failCommit {
		t.repo.failCommit = false
		return errCommitFailed
	}
	t.repo.store.mu.Lock()
	defer t.repo.store.mu.Unlock()
	t.repo.store.progress = t.progress
	t.repo.store.pets = t.pets
	t.repo.store.objects = t.objects
	t.repo.store.entries = t.entries
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(_ context.Context) error {
	if !t.committed {
		t.rolledBack = true
	}
	return nil
}

// fakeItemSource resolves items from a fixed map; missing ids resolve to nil.
type fakeItemSource struct {
	items map[int]domain.Item
}

func (f *fakeItemSource) GetItemOrNil(_ context.Context, itemID int) (*domain.Item, error) {
	item, ok := f.items[itemID]
	if !ok {
		return nil, nil
	}
	return &item, nil
}

func collectByOwner[T any](records map[int64]T, ownerID int64, keyFn func(T) (id, owner int64)) []T {
	type keyed struct {
		id  int64
		val T
	}
	matched := []keyed{}
	for _, record := range records {
		id, owner := keyFn(record)
		if owner == ownerID {
			matched = append(matched, keyed{id: id, val: record})
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].id < matched[j].id })
	out := make([]T, 0, len(matched))
	for _, m := range matched {
		out = append(out, m.val)
	}
	return out
}
