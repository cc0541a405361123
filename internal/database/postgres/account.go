package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/varmintworks/varmint-server/internal/domain"
	"github.com/varmintworks/varmint-server/internal/repository"
)

const (
	queryInsertAccount = `
		INSERT INTO accounts (username, credential)
		VALUES ($1, $2)
		RETURNING account_id`

	queryInsertProgress = `
		INSERT INTO progress (progress_id)
		VALUES ($1)`

	queryGetAccountByUsername = `
		SELECT account_id, username, credential
		FROM accounts
		WHERE username = $1`

	queryGetAccountByID = `
		SELECT account_id, username, credential
		FROM accounts
		WHERE account_id = $1`
)

type accountRepository struct {
	db *pgxpool.Pool
}

// NewAccountRepository creates a new PostgreSQL account repository
func NewAccountRepository(db *pgxpool.Pool) repository.Account {
	return &accountRepository{db: db}
}

// CreateWithProgress inserts the account and its empty-default progress record
// in one transaction. The progress row reuses the generated account id.
func (r *accountRepository) CreateWithProgress(ctx context.Context, account *domain.Account) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTx, err)
	}
	defer SafeRollback(ctx, tx)

	err = tx.QueryRow(ctx, queryInsertAccount, account.Username, account.Credential).Scan(&account.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return domain.ErrDuplicateUsername
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToCreateAccount, err)
	}

	if _, err := tx.Exec(ctx, queryInsertProgress, account.ID); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCreateAccount, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTx, err)
	}
	return nil
}

func (r *accountRepository) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	return scanAccount(r.db.QueryRow(ctx, queryGetAccountByUsername, username))
}

func (r *accountRepository) GetByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	return scanAccount(r.db.QueryRow(ctx, queryGetAccountByID, accountID))
}

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var account domain.Account
	err := row.Scan(&account.ID, &account.Username, &account.Credential)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetAccount, err)
	}
	return &account, nil
}
