package repository

import (
	"context"

	"github.com/varmintworks/varmint-server/internal/domain"
)

// Account defines the interface for account persistence
type Account interface {
	// CreateWithProgress inserts the account and its empty-default progress
	// record atomically, assigning the shared id. Returns
	// domain.ErrDuplicateUsername when the username is taken.
	CreateWithProgress(ctx context.Context, account *domain.Account) error

	// GetByUsername returns domain.ErrAccountNotFound on miss.
	GetByUsername(ctx context.Context, username string) (*domain.Account, error)

	// GetByID returns domain.ErrAccountNotFound on miss.
	GetByID(ctx context.Context, accountID int64) (*domain.Account, error)
}
