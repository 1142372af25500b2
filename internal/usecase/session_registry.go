package usecase

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	// sessionIdleTTL is how long a session survives without a request
	// before the sweep drops it.
	sessionIdleTTL = 30 * time.Minute

	sessionSweepEvery = 5 * time.Minute
)

type sessionEntry struct {
	session  *SearchSession
	lastSeen time.Time
}

// SessionRegistry holds live search sessions keyed by an opaque id the HTTP
// layer round-trips in a header. Sessions share nothing with each other.
// Idle entries are evicted so an unknown-id request cannot grow the map
// forever.
type SessionRegistry struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*sessionEntry
	factory  func() *SearchSession
	logger   *log.Logger

	now func() time.Time
}

func NewSessionRegistry(factory func() *SearchSession, logger *log.Logger) *SessionRegistry {
	return &SessionRegistry{
		sessions: make(map[uuid.UUID]*sessionEntry),
		factory:  factory,
		logger:   logger,
		now:      time.Now,
	}
}

// GetOrCreate returns the session for id, creating a fresh one when id is
// uuid.Nil or unknown. The returned id is the one the client should keep.
func (r *SessionRegistry) GetOrCreate(id uuid.UUID) (uuid.UUID, *SearchSession) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if id != uuid.Nil {
		if e, ok := r.sessions[id]; ok {
			e.lastSeen = r.now()
			return id, e.session
		}
	}

	id = uuid.New()
	r.sessions[id] = &sessionEntry{session: r.factory(), lastSeen: r.now()}
	return id, r.sessions[id].session
}

// Get returns the session for id without creating one, refreshing its
// idle clock on a hit.
func (r *SessionRegistry) Get(id uuid.UUID) (*SearchSession, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.sessions[id]
	if !ok {
		return nil, false
	}
	e.lastSeen = r.now()
	return e.session, true
}

// EvictIdle drops every session that has not been touched within
// sessionIdleTTL and reports how many were removed.
func (r *SessionRegistry) EvictIdle() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-sessionIdleTTL)
	evicted := 0
	for id, e := range r.sessions {
		if e.lastSeen.Before(cutoff) {
			delete(r.sessions, id)
			evicted++
		}
	}
	return evicted
}

// Len reports the number of live sessions.
func (r *SessionRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Run sweeps idle sessions until the process exits. Meant to be launched
// as a goroutine next to the hub.
func (r *SessionRegistry) Run() {
	ticker := time.NewTicker(sessionSweepEvery)
	defer ticker.Stop()

	for range ticker.C {
		if n := r.EvictIdle(); n > 0 && r.logger != nil {
			r.logger.Printf("[Sessions] Evicted idle | count=%d remaining=%d", n, r.Len())
		}
	}
}
