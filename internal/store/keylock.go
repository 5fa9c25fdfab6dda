package store

import (
	"context"
	"sync"

	"wordsync/internal/domain"
)

// keyLock serializes operations on the same word.
// Entries are dropped once nobody holds or waits for them.
type keyLock struct {
	mu    sync.Mutex
	locks map[domain.WordID]*keyEntry
}

type keyEntry struct {
	sem  chan struct{}
	refs int
}

func newKeyLock() *keyLock {
	return &keyLock{locks: make(map[domain.WordID]*keyEntry)}
}

// Lock blocks until id is free or ctx is done. The returned func releases the lock.
func (k *keyLock) Lock(ctx context.Context, id domain.WordID) (func(), error) {
	k.mu.Lock()
	entry, exists := k.locks[id]
	if !exists {
		entry = &keyEntry{sem: make(chan struct{}, 1)}
		k.locks[id] = entry
	}
	entry.refs++
	k.mu.Unlock()

	select {
	case entry.sem <- struct{}{}:
		var once sync.Once
		return func() {
			once.Do(func() {
				<-entry.sem
				k.release(id, entry)
			})
		}, nil
	case <-ctx.Done():
		k.release(id, entry)
		return nil, ctx.Err()
	}
}

func (k *keyLock) release(id domain.WordID, entry *keyEntry) {
	k.mu.Lock()
	defer k.mu.Unlock()

	entry.refs--
	if entry.refs == 0 {
		delete(k.locks, id)
	}
}

// size returns the number of tracked keys
func (k *keyLock) size() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.locks)
}
