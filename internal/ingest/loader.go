package ingest

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/sync/singleflight"

	"jobmarket-engine/internal/domain"
)

// CachedLoader memoizes dataset loads keyed by path plus file mtime and
// size, so re-running analysis against an unchanged file skips the parse.
// The cache is owned by whoever constructs the loader; there is no package
// global. Editing the file invalidates the entry on the next Load.
type CachedLoader struct {
	mu    sync.Mutex
	cache map[string][]domain.RawRecord
	group singleflight.Group
}

func NewCachedLoader() *CachedLoader {
	return &CachedLoader{cache: make(map[string][]domain.RawRecord)}
}

func (l *CachedLoader) Load(path string) ([]domain.RawRecord, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat dataset: %w", err)
	}
	key := fmt.Sprintf("%s|%d|%d", path, fi.ModTime().UnixNano(), fi.Size())

	l.mu.Lock()
	if batch, ok := l.cache[key]; ok {
		l.mu.Unlock()
		return batch, nil
	}
	l.mu.Unlock()

	v, err, _ := l.group.Do(key, func() (any, error) {
		batch, err := ReadCSV(path)
		if err != nil {
			return nil, err
		}
		l.mu.Lock()
		// One live entry per path; a rewrite of the file should not leave
		// stale generations pinned in memory.
		for k := range l.cache {
			if len(k) > len(path) && k[:len(path)] == path && k[len(path)] == '|' {
				delete(l.cache, k)
			}
		}
		l.cache[key] = batch
		l.mu.Unlock()
		return batch, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.RawRecord), nil
}
