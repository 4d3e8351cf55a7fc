package gwy

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"

	"github.com/christian-sahlmann/gwyddion-sub013/internal/funcuse"
)

// FuncUseEntry is one tracked function name with its dual-decay usage
// score (spec.md §4.G).
type FuncUseEntry = funcuse.Entry

// FuncUseStore is the process-wide recently-used-function ranker: the
// one singleton this module carries, mirroring the application's single
// shared instance (spec.md §4.G, §5).
type FuncUseStore struct {
	mu   sync.Mutex
	path string
	list *funcuse.List
}

var (
	funcUseOnce  sync.Once
	funcUseStore *FuncUseStore
)

// GetFuncUseStore returns the process-wide FuncUseStore, loading it from
// its on-disk location on first call. A load failure (including a
// missing file) yields an empty, still-usable store rather than an
// error: the ranker degrades gracefully with no history.
func GetFuncUseStore() *FuncUseStore {
	funcUseOnce.Do(func() {
		path := funcUseStorePath()
		store := &FuncUseStore{path: path, list: funcuse.New()}
		if f, err := os.Open(path); err == nil {
			defer f.Close()
			if l, err := funcuse.Load(f); err == nil {
				store.list = l
			}
		}
		funcUseStore = store
	})
	return funcUseStore
}

func funcUseStorePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "gwyddion-sub013", "funcuse")
}

// RecordUse registers one use of the named function (spec.md §4.G).
func (s *FuncUseStore) RecordUse(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.list.Use(name)
}

// Ranked returns the tracked functions, most-used first. The returned
// slice must not be mutated.
func (s *FuncUseStore) Ranked() []FuncUseEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.list.Entries()
}

// Save persists the store to its on-disk location, creating the parent
// directory if necessary.
func (s *FuncUseStore) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return errors.Wrap(err, "funcuse: creating store directory")
	}
	f, err := os.Create(s.path)
	if err != nil {
		return errors.Wrap(err, "funcuse: creating store file")
	}
	defer f.Close()
	return s.list.Save(f)
}
