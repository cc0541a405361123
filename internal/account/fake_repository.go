package account

import (
	"context"
	"sync"

	"github.com/varmintworks/varmint-server/internal/domain"
	"github.com/varmintworks/varmint-server/internal/repository"
)

// fakeAccountRepository is an in-memory repository.Account for tests.
type fakeAccountRepository struct {
	mu         sync.Mutex
	byID       map[int64]domain.Account
	byUsername map[string]int64
	nextID     int64

	getByUsernameCalls int
}

func newFakeAccountRepository() *fakeAccountRepository {
	return &fakeAccountRepository{
		byID:       make(map[int64]domain.Account),
		byUsername: make(map[string]int64),
		nextID:     1,
	}
}

var _ repository.Account = (*fakeAccountRepository)(nil)

func (f *fakeAccountRepository) CreateWithProgress(_ context.Context, account *domain.Account) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.byUsername[account.Username]; exists {
		return domain.ErrDuplicateUsername
	}
	account.ID = f.nextID
	f.nextID++
	f.byID[account.ID] = *account
	f.byUsername[account.Username] = account.ID
	return nil
}

func (f *fakeAccountRepository) GetByUsername(_ context.Context, username string) (*domain.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.getByUsernameCalls++
	id, ok := f.byUsername[username]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	account := f.byID[id]
	return &account, nil
}

func (f *fakeAccountRepository) GetByID(_ context.Context, accountID int64) (*domain.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	account, ok := f.byID[accountID]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return &account, nil
}
