package catalog

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/varmintworks/varmint-server/internal/domain"
)

// itemCache provides an in-memory LRU cache for item lookups with
// time-based expiration. The catalog is read-mostly (it only changes on a
// config re-sync), so a short TTL keeps reads hot without an invalidation
// protocol.
type itemCache struct {
	lru *expirable.LRU[int, *domain.Item]
}

func newItemCache(size int, ttl time.Duration) *itemCache {
	return &itemCache{
		lru: expirable.NewLRU[int, *domain.Item](size, nil, ttl),
	}
}

func (c *itemCache) Get(itemID int) (*domain.Item, bool) {
	return c.lru.Get(itemID)
}

func (c *itemCache) Set(itemID int, item *domain.Item) {
	c.lru.Add(itemID, item)
}

// Clear removes all entries, used after a catalog re-sync.
func (c *itemCache) Clear() {
	c.lru.Purge()
}
