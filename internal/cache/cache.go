package cache

import (
	"sync"

	"go.uber.org/zap"
)

type entry struct {
	value      any
	generation uint64
}

// Store is the process-wide query cache. Invalidation is all-or-nothing:
// InvalidateAll bumps the generation, which makes every entry stored under
// an older generation miss and every registered consumer stale.
type Store struct {
	mu         sync.Mutex
	generation uint64
	entries    map[string]entry
	logger     *zap.Logger
}

func NewStore(logger *zap.Logger) *Store {
	return &Store{
		entries: map[string]entry{},
		logger:  logger.Named("cache"),
	}
}

func (s *Store) Put(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = entry{value: value, generation: s.generation}
}

// Get returns the cached value for key if it was stored under the current
// generation.
func (s *Store) Get(key string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[key]
	if !ok || e.generation != s.generation {
		return nil, false
	}
	return e.value, true
}

// InvalidateAll discards every cached result. Entries are dropped lazily;
// consumers compare generations to decide whether to refetch.
func (s *Store) InvalidateAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.entries = map[string]entry{}
	s.logger.Debug("cache invalidated", zap.Uint64("generation", s.generation))
}

func (s *Store) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}
