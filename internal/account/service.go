package account

import (
	"context"
	"fmt"
	"strings"

	"github.com/varmintworks/varmint-server/internal/domain"
	"github.com/varmintworks/varmint-server/internal/logger"
	"github.com/varmintworks/varmint-server/internal/metrics"
	"github.com/varmintworks/varmint-server/internal/repository"
)

// Service defines the account business logic interface
type Service interface {
	// Register creates the account and its empty progress record.
	// Returns domain.ErrDuplicateUsername when the username is taken.
	Register(ctx context.Context, username, credential string) (*domain.Account, error)

	// Authenticate returns domain.ErrAccountNotFound for unknown usernames
	// and domain.ErrInvalidCredential for a wrong credential. The two cases
	// stay distinct because the client shows different prompts for them.
	Authenticate(ctx context.Context, username, credential string) (*domain.Account, error)
}

type service struct {
	repo  repository.Account
	cache *accountCache
}

// NewService creates a new account service
func NewService(repo repository.Account) Service {
	return &service{
		repo:  repo,
		cache: newAccountCache(DefaultCacheSize, DefaultCacheTTL),
	}
}

func (s *service) Register(ctx context.Context, username, credential string) (*domain.Account, error) {
	log := logger.FromContext(ctx)

	username = strings.TrimSpace(username)
	if err := validateRegistration(username, credential); err != nil {
		return nil, err
	}

	account := &domain.Account{
		Username:   username,
		Credential: credential,
	}

	if err := s.repo.CreateWithProgress(ctx, account); err != nil {
		return nil, err
	}

	metrics.AccountsRegistered.Inc()
	log.Info(LogMsgAccountRegistered, "account_id", account.ID, "username", username)

	s.cache.Set(username, account)
	return account, nil
}

func (s *service) Authenticate(ctx context.Context, username, credential string) (*domain.Account, error) {
	log := logger.FromContext(ctx)

	username = strings.TrimSpace(username)

	account, ok := s.cache.Get(username)
	if !ok {
		var err error
		account, err = s.repo.GetByUsername(ctx, username)
		if err != nil {
			log.Info(LogMsgLoginFailed, "username", username, "reason", "unknown username")
			return nil, err
		}
		s.cache.Set(username, account)
	}

	// Credentials are opaque strings compared verbatim; the client owns
	// whatever hashing happens before transmission.
	if account.Credential != credential {
		log.Info(LogMsgLoginFailed, "account_id", account.ID, "reason", "wrong credential")
		return nil, domain.ErrInvalidCredential
	}

	log.Info(LogMsgLoginSucceeded, "account_id", account.ID)
	return account, nil
}

func validateRegistration(username, credential string) error {
	if username == "" {
		return fmt.Errorf("%w: username is required", domain.ErrInvalidInput)
	}
	if len(username) > MaxUsernameLength {
		return fmt.Errorf("%w: username exceeds %d characters", domain.ErrInvalidInput, MaxUsernameLength)
	}
	if credential == "" {
		return fmt.Errorf("%w: credential is required", domain.ErrInvalidInput)
	}
	if len(credential) > MaxCredentialLength {
		return fmt.Errorf("%w: credential exceeds %d characters", domain.ErrInvalidInput, MaxCredentialLength)
	}
	return nil
}
