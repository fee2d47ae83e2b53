package http

import (
	"sync"
	"time"

	"github.com/NeonGeckoCom/neon-hub-config/internal/service"
	"github.com/NeonGeckoCom/neon-hub-config/internal/utils"
	"github.com/NeonGeckoCom/neon-hub-config/models"
)

// webSession is the isolated client state of one logged-in browser.
type webSession struct {
	ID        string
	Username  string
	Services  *service.ClientServices
	ExpiresAt time.Time

	mu        sync.Mutex
	revealed  map[string]bool
	rawLoaded map[models.RawTarget]bool
	flash     *flash
}

type flash struct {
	Error bool
	Text  string
}

func newWebSession(id, username string, services *service.ClientServices, expiresAt time.Time) *webSession {
	return &webSession{
		ID:        id,
		Username:  username,
		Services:  services,
		ExpiresAt: expiresAt,
		revealed:  map[string]bool{},
		rawLoaded: map[models.RawTarget]bool{},
	}
}

// toggleReveal flips the visibility of a secret field and returns the new
// state.
func (s *webSession) toggleReveal(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revealed[id] = !s.revealed[id]
	return s.revealed[id]
}

func (s *webSession) isRevealed(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.revealed[id]
}

func (s *webSession) markRawLoaded(target models.RawTarget) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rawLoaded[target] = true
}

func (s *webSession) needsRawLoad(target models.RawTarget) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.rawLoaded[target]
}

// forgetRaw makes every raw editor reload, e.g. after the backend changed.
func (s *webSession) forgetRaw() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rawLoaded = map[models.RawTarget]bool{}
}

// setFlash stores a one-shot banner for the next rendered page.
func (s *webSession) setFlash(text string, isErr bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flash = &flash{Text: text, Error: isErr}
}

func (s *webSession) popFlash() *flash {
	s.mu.Lock()
	defer s.mu.Unlock()
	f := s.flash
	s.flash = nil
	return f
}

// SessionRegistry keeps the web sessions in memory. Nothing is shared across
// sessions.
type SessionRegistry struct {
	mu       sync.RWMutex
	sessions map[string]*webSession
	ttl      time.Duration
	now      func() time.Time
}

func NewSessionRegistry(ttl time.Duration) *SessionRegistry {
	return &SessionRegistry{
		sessions: map[string]*webSession{},
		ttl:      ttl,
		now:      time.Now,
	}
}

// Add registers services under a new session id.
func (r *SessionRegistry) Add(username string, services *service.ClientServices) *webSession {
	s := newWebSession(utils.NewID(), username, services, r.now().Add(r.ttl))

	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()
	return s
}

// Get returns a live session. Expired sessions are treated as missing.
func (r *SessionRegistry) Get(id string) (*webSession, bool) {
	r.mu.RLock()
	s, ok := r.sessions[id]
	r.mu.RUnlock()
	if !ok || !r.now().Before(s.ExpiresAt) {
		return nil, false
	}
	return s, true
}

// Remove drops a session and returns it, if it existed.
func (r *SessionRegistry) Remove(id string) (*webSession, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	delete(r.sessions, id)
	return s, ok
}

// EvictExpired drops every session expired at now and returns how many were
// dropped.
func (r *SessionRegistry) EvictExpired(now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	evicted := 0
	for id, s := range r.sessions {
		if !now.Before(s.ExpiresAt) {
			delete(r.sessions, id)
			evicted++
		}
	}
	return evicted
}

// Len returns the number of stored sessions, expired ones included.
func (r *SessionRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
