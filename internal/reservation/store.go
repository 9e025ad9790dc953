package reservation

import (
	"sync"

	"github.com/hikarisalon/concierge/internal/domain"
)

// Store keeps in-flight dialogue state, one entry per user. State lives in
// memory only and is lost on restart.
type Store struct {
	mu     sync.Mutex
	locks  map[string]*sync.Mutex
	states map[string]*domain.Reservation
}

func NewStore() *Store {
	return &Store{
		locks:  make(map[string]*sync.Mutex),
		states: make(map[string]*domain.Reservation),
	}
}

// Acquire returns the mutex serializing dialogue turns for one user. Callers
// hold it for a whole read-modify-write turn, so concurrent messages from the
// same user are processed one at a time while other users proceed in parallel.
func (s *Store) Acquire(userID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[userID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[userID] = lock
	}
	return lock
}

// Get returns a copy of the user's dialogue state.
func (s *Store) Get(userID string) (domain.Reservation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, ok := s.states[userID]
	if !ok {
		return domain.Reservation{}, false
	}
	return *res, true
}

// Put stores the dialogue state, replacing any existing entry for the user.
func (s *Store) Put(res domain.Reservation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[res.UserID] = &res
}

// Delete discards the user's dialogue state, if any.
func (s *Store) Delete(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.states, userID)
}

// Len reports how many dialogues are in flight.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.states)
}
