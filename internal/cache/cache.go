package cache

import (
	"sync"
	"time"
)

// Cache de pages à durée de vie fixe. L'expiration est la seule invalidation :
// une réponse peut donc rester visible au plus TTL après une mutation.

type Entry struct {
	Status      int
	ContentType string
	Body        []byte
	expiresAt   time.Time
}

type Store struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]Entry
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		ttl:     ttl,
		entries: make(map[string]Entry),
	}
}

func (s *Store) Get(key string) (Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return Entry{}, false
	}
	if time.Now().After(e.expiresAt) {
		delete(s.entries, key)
		return Entry{}, false
	}
	return e, true
}

func (s *Store) Set(key string, e Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e.expiresAt = time.Now().Add(s.ttl)
	s.entries[key] = e
}
