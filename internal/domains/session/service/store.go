package service

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// store holds live sessions in memory. Sessions idle beyond the configured
// TTL are swept by a background janitor, which also cancels any availability
// fetch still running for them.
type store struct {
	mu       sync.RWMutex
	sessions map[string]*state
	ttl      time.Duration
	stop     chan struct{}
	stopOnce sync.Once
}

func newStore(ttl, sweepInterval time.Duration) *store {
	s := &store{
		sessions: make(map[string]*state),
		ttl:      ttl,
		stop:     make(chan struct{}),
	}

	go s.janitor(sweepInterval)

	return s
}

func (s *store) put(st *state) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[st.id] = st
}

func (s *store) get(id string) (*state, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, ok := s.sessions[id]

	return st, ok
}

func (s *store) remove(id string) (*state, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.sessions[id]
	if ok {
		delete(s.sessions, id)
	}

	return st, ok
}

func (s *store) shutdown() {
	s.stopOnce.Do(func() {
		close(s.stop)
	})
}

func (s *store) janitor(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *store) sweep() {
	cutoff := time.Now().Add(-s.ttl)

	s.mu.Lock()

	expired := []*state{}

	for id, st := range s.sessions {
		if st.touchedBefore(cutoff) {
			expired = append(expired, st)
			delete(s.sessions, id)
		}
	}

	s.mu.Unlock()

	for _, st := range expired {
		st.discard()

		log.Info().Str("sessionID", st.id).Msg("expired idle booking session")
	}
}
