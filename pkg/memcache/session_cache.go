package mem

import (
	"sync"
	"time"
)

// SessionSnapshot is the derived view of one swipe session: the venues with
// a live decision and whether the candidate pool is exhausted. It is a pure
// cache; the append-only event log in the database stays authoritative.
type SessionSnapshot struct {
	Decided   map[string]string // venue id -> "like" | "skip"
	Exhausted bool
}

type SessionCacheInterface interface {
	Set(userID, sessionContext string, snap SessionSnapshot, ttl time.Duration)
	Get(userID, sessionContext string) (SessionSnapshot, bool)
	Invalidate(userID, sessionContext string)
}

type entry struct {
	snap      SessionSnapshot
	expiresAt time.Time
}

type SessionCache struct {
	mu   sync.RWMutex
	data map[string]entry
}

func NewSessionCache() *SessionCache {
	return &SessionCache{
		data: make(map[string]entry),
	}
}

func cacheKey(userID, sessionContext string) string {
	return userID + "|" + sessionContext
}

func (s *SessionCache) Set(userID, sessionContext string, snap SessionSnapshot, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[cacheKey(userID, sessionContext)] = entry{
		snap:      snap,
		expiresAt: time.Now().Add(ttl),
	}
}

func (s *SessionCache) Get(userID, sessionContext string) (SessionSnapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[cacheKey(userID, sessionContext)]
	if !ok || time.Now().After(e.expiresAt) {
		return SessionSnapshot{}, false
	}
	return e.snap, true
}

func (s *SessionCache) Invalidate(userID, sessionContext string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, cacheKey(userID, sessionContext))
}
