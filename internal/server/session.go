package server

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-certform/pkg/page"
)

// SessionStore keeps one page controller per page load and forgets sessions
// idle for longer than the TTL.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*session
	ttl      time.Duration
	now      func() time.Time
	factory  func() *page.Controller
}

type session struct {
	controller *page.Controller
	lastSeen   time.Time
}

// NewSessionStore returns an empty store. factory seeds each new session.
func NewSessionStore(ttl time.Duration, factory func() *page.Controller) *SessionStore {
	if factory == nil {
		factory = func() *page.Controller { return page.NewController() }
	}
	return &SessionStore{
		sessions: make(map[string]*session),
		ttl:      ttl,
		now:      time.Now,
		factory:  factory,
	}
}

// Create starts a session and returns its id.
func (s *SessionStore) Create() (string, *page.Controller) {
	id := uuid.NewString()
	ctrl := s.factory()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = &session{controller: ctrl, lastSeen: s.now()}
	return id, ctrl
}

// Lookup returns the controller for id and marks the session as active.
// Expired sessions are dropped.
func (s *SessionStore) Lookup(id string) (*page.Controller, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	now := s.now()
	if s.expired(sess, now) {
		delete(s.sessions, id)
		return nil, false
	}
	sess.lastSeen = now
	return sess.controller, true
}

// Sweep removes expired sessions and reports how many were removed.
func (s *SessionStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for id, sess := range s.sessions {
		if s.expired(sess, now) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// Len reports the number of live sessions.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Run sweeps every interval until ctx is done.
func (s *SessionStore) Run(ctx context.Context, interval time.Duration, onSweep func(removed int)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := s.Sweep(); removed > 0 && onSweep != nil {
				onSweep(removed)
			}
		}
	}
}

func (s *SessionStore) expired(sess *session, now time.Time) bool {
	return s.ttl > 0 && now.Sub(sess.lastSeen) > s.ttl
}
