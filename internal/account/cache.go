package account

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/varmintworks/varmint-server/internal/domain"
)

// accountCache is an in-memory LRU cache for username lookups with
// time-based expiration. Accounts are immutable after registration, so
// entries never need explicit invalidation; the TTL bounds staleness if
// that ever changes.
type accountCache struct {
	lru *expirable.LRU[string, *domain.Account]
}

func newAccountCache(size int, ttl time.Duration) *accountCache {
	return &accountCache{
		lru: expirable.NewLRU[string, *domain.Account](size, nil, ttl),
	}
}

func (c *accountCache) Get(username string) (*domain.Account, bool) {
	return c.lru.Get(username)
}

func (c *accountCache) Set(username string, account *domain.Account) {
	c.lru.Add(username, account)
}
