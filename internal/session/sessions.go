// Package session tracks the last-issued token per customer. The map is
// process-local bookkeeping only: it does not survive restarts and is not
// consulted when authorizing requests.
package session

import "sync"

type Store struct {
	mu     sync.Mutex
	tokens map[int64]string
}

func NewStore() *Store {
	return &Store{tokens: make(map[int64]string)}
}

// Replace records token as the active session for the customer and reports
// whether an older session was displaced.
func (s *Store) Replace(customerID int64, token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, had := s.tokens[customerID]
	s.tokens[customerID] = token
	return had
}

// Token returns the last-issued token for the customer, if any.
func (s *Store) Token(customerID int64) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tokens[customerID]
	return t, ok
}

// Clear drops the customer's session entry.
func (s *Store) Clear(customerID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, customerID)
}
