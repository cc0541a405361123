package concurrency

import (
	"strconv"
	"sync"
)

// LockManager handles named locks. Mutexes live for the life of the
// process; the map is bounded by the number of distinct keys seen.
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns a mutex for the given key
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// LockID acquires the mutex for a numeric id and returns its unlock
// function. Two holders of different ids never contend.
func (lm *LockManager) LockID(id int64) func() {
	mu := lm.GetLock(strconv.FormatInt(id, 10))
	mu.Lock()
	return mu.Unlock
}
