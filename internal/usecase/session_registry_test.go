package usecase

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func newTestRegistry() *SessionRegistry {
	return NewSessionRegistry(func() *SearchSession {
		return NewSearchSession(nil, quietReader{}, nil)
	}, nil)
}

func TestSessionRegistry_GetOrCreate(t *testing.T) {
	r := newTestRegistry()

	id, s := r.GetOrCreate(uuid.Nil)
	if id == uuid.Nil || s == nil {
		t.Fatalf("expected a fresh session with a real id, got id=%s", id)
	}

	again, same := r.GetOrCreate(id)
	if again != id || same != s {
		t.Fatalf("known id must return the stored session")
	}

	other, created := r.GetOrCreate(uuid.New())
	if other == id || created == s {
		t.Fatalf("unknown id must create a new session, not reuse another")
	}
	if r.Len() != 2 {
		t.Fatalf("expected 2 live sessions, got %d", r.Len())
	}
}

func TestSessionRegistry_EvictsIdleSessions(t *testing.T) {
	r := newTestRegistry()

	base := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	now := base
	r.now = func() time.Time { return now }

	stale, _ := r.GetOrCreate(uuid.Nil)

	now = base.Add(sessionIdleTTL - time.Minute)
	fresh, _ := r.GetOrCreate(uuid.Nil)

	now = base.Add(sessionIdleTTL + time.Minute)
	if n := r.EvictIdle(); n != 1 {
		t.Fatalf("expected 1 eviction, got %d", n)
	}
	if _, ok := r.Get(stale); ok {
		t.Fatalf("idle session must be gone")
	}
	if _, ok := r.Get(fresh); !ok {
		t.Fatalf("recently used session must survive the sweep")
	}
}

func TestSessionRegistry_UseRefreshesIdleClock(t *testing.T) {
	r := newTestRegistry()

	base := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	now := base
	r.now = func() time.Time { return now }

	id, _ := r.GetOrCreate(uuid.Nil)

	// Touch the session just before it would expire.
	now = base.Add(sessionIdleTTL - time.Minute)
	if _, ok := r.Get(id); !ok {
		t.Fatalf("session must still be live before the ttl")
	}

	now = base.Add(sessionIdleTTL + time.Minute)
	if n := r.EvictIdle(); n != 0 {
		t.Fatalf("refreshed session must not be evicted, got %d evictions", n)
	}
	if _, ok := r.Get(id); !ok {
		t.Fatalf("refreshed session must survive")
	}
}
