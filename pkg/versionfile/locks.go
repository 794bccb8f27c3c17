package versionfile

import (
	"path/filepath"
	"sync"
)

// pathLocks hands out one RWMutex per cleaned file path, so that readers of
// a file never observe a write in progress through the same [Store].
type pathLocks struct {
	locks map[string]*sync.RWMutex
	mu    sync.Mutex
}

func (pl *pathLocks) get(path string) *sync.RWMutex {
	path = filepath.Clean(path)

	pl.mu.Lock()
	defer pl.mu.Unlock()

	if pl.locks == nil {
		pl.locks = make(map[string]*sync.RWMutex)
	}

	l, ok := pl.locks[path]
	if !ok {
		l = &sync.RWMutex{}
		pl.locks[path] = l
	}

	return l
}

func (pl *pathLocks) lock(path string) func() {
	l := pl.get(path)
	l.Lock()

	return l.Unlock
}

func (pl *pathLocks) rlock(path string) func() {
	l := pl.get(path)
	l.RLock()

	return l.RUnlock
}
