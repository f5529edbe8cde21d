// Package store holds the in-memory member, pending-approval, activity-log
// and template collections. Data lives for the lifetime of the process only.
package store

import (
	"sync"
	"time"

	"tokomember-backend/models"
)

// Store is the canonical data layer. All exported methods take the lock, so
// each call runs to completion before the next mutation is applied.
type Store struct {
	mu        sync.RWMutex
	members   []models.Member
	pending   []models.Member
	logs      []models.LogItem
	templates map[models.StoreCode]string
	users     []models.User

	now func() time.Time
}

func New() *Store {
	return &Store{
		templates: make(map[models.StoreCode]string),
		now:       time.Now,
	}
}

// SetClock overrides the time source. Used by tests and the birthday job.
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// Members returns a copy of the member collection.
func (s *Store) Members() []models.Member {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Member{}, s.members...)
}

// Pending returns a copy of the pending-approval collection.
func (s *Store) Pending() []models.Member {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Member{}, s.pending...)
}

// FindMember looks up a member by id.
func (s *Store) FindMember(id string) (models.Member, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.members {
		if m.ID == id {
			return m, true
		}
	}
	return models.Member{}, false
}

// FindUser looks up an admin account by username.
func (s *Store) FindUser(username string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Username == username {
			return u, true
		}
	}
	return models.User{}, false
}

// CustomMessage returns the promotional template for a store.
func (s *Store) CustomMessage(store models.StoreCode) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.templates[store]
}

// SetCustomMessage overwrites the per-store template unconditionally.
func (s *Store) SetCustomMessage(store models.StoreCode, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.templates[store] = text
}

// CustomMessages returns a copy of all templates keyed by store.
func (s *Store) CustomMessages() map[models.StoreCode]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[models.StoreCode]string, len(s.templates))
	for k, v := range s.templates {
		out[k] = v
	}
	return out
}
