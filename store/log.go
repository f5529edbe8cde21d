package store

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"tokomember-backend/models"
)

// DefaultActor is attributed to log entries written without an explicit actor.
const DefaultActor = "SuperAdmin"

// LogFilter narrows a log read. Zero values mean "no constraint".
// To and From are naive dates ("2006-01-02"); To is inclusive of the whole
// end day. Scope, when non-nil, hides entries whose store is unset or not in
// the list.
type LogFilter struct {
	Type   models.LogType
	Store  models.StoreCode
	Search string
	From   string
	To     string
	Scope  []models.StoreCode
}

// AddLog prepends a fully-populated entry. The log is write-once: nothing
// ever updates or removes an entry.
func (s *Store) AddLog(entry models.LogItem) models.LogItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addLogLocked(entry)
}

func (s *Store) addLogLocked(entry models.LogItem) models.LogItem {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Actor == "" {
		entry.Actor = DefaultActor
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = s.now()
	}
	s.logs = append([]models.LogItem{entry}, s.logs...)
	return entry
}

// Logs returns matching entries newest first.
func (s *Store) Logs(f LogFilter) []models.LogItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var from, to time.Time
	if f.From != "" {
		from, _ = time.Parse("2006-01-02", f.From)
	}
	if f.To != "" {
		if t, err := time.Parse("2006-01-02", f.To); err == nil {
			to = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
		}
	}

	q := strings.ToLower(strings.TrimSpace(f.Search))

	out := []models.LogItem{}
	for _, l := range s.logs {
		if f.Scope != nil && !storeInScope(l.Store, f.Scope) {
			continue
		}
		if f.Type != "" && l.Type != f.Type {
			continue
		}
		if f.Store != "" && (l.Store == nil || *l.Store != f.Store) {
			continue
		}
		if !from.IsZero() && l.CreatedAt.Before(from) {
			continue
		}
		if !to.IsZero() && l.CreatedAt.After(to) {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(l.Title+" "+l.Description), q) {
			continue
		}
		out = append(out, l)
	}
	return out
}

func storeInScope(store *models.StoreCode, scope []models.StoreCode) bool {
	if store == nil {
		return false
	}
	for _, s := range scope {
		if s == *store {
			return true
		}
	}
	return false
}
