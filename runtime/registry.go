package runtime

import (
	"sync"
	"voice-relay/domain"
)

type sessionEntry struct {
	mu      sync.Mutex
	session *domain.Session
}

// SessionRegistry keeps one Session per chat for the lifetime of the process.
// Each entry carries its own mutex: a turn holds it from start to end so two
// updates of the same chat never interleave, while other chats proceed in parallel.
// The registry lock itself only guards the map and is never held during a turn.
type SessionRegistry struct {
	mu       sync.RWMutex
	sessions map[domain.ChatID]*sessionEntry
}

func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{
		sessions: make(map[domain.ChatID]*sessionEntry),
	}
}

// Acquire blocks until the chat's session is free and returns it with its release function.
// The release function must be called exactly once, typically deferred.
func (r *SessionRegistry) Acquire(chatID domain.ChatID) (*domain.Session, func()) {
	entry := r.entry(chatID)
	entry.mu.Lock()
	return entry.session, entry.mu.Unlock
}

// Len returns the number of chats that have a session.
func (r *SessionRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

func (r *SessionRegistry) entry(chatID domain.ChatID) *sessionEntry {
	r.mu.RLock()
	entry, ok := r.sessions[chatID]
	r.mu.RUnlock()
	if ok {
		return entry
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	// Another goroutine may have created it between the two locks
	if entry, ok = r.sessions[chatID]; ok {
		return entry
	}
	entry = &sessionEntry{session: domain.NewSession(chatID)}
	r.sessions[chatID] = entry
	return entry
}
