package checkout

import "sync"

// Store keeps at most one wizard per user, in memory only. Drafts do not
// survive a process restart, matching the ephemeral nature of the flow.
type Store struct {
	mu      sync.RWMutex
	wizards map[string]*Wizard
}

func NewStore() *Store {
	return &Store{wizards: make(map[string]*Wizard)}
}

// Get returns the user's wizard if one is active.
func (s *Store) Get(userID string) (*Wizard, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	w, ok := s.wizards[userID]
	return w, ok
}

// Start returns the user's active wizard, creating a fresh one if none exists
// or the previous flow already finished.
func (s *Store) Start(userID string) *Wizard {
	s.mu.Lock()
	defer s.mu.Unlock()

	if w, ok := s.wizards[userID]; ok && w.State().Submission != SubmissionSucceeded {
		return w
	}
	w := NewWizard(userID)
	s.wizards[userID] = w
	return w
}

// Discard drops the user's draft without confirmation.
func (s *Store) Discard(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.wizards, userID)
}
