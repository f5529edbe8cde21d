package store

import (
	"time"

	"tokomember-backend/models"
)

// SeriesPoint is one labeled point of the dashboard activity charts.
type SeriesPoint struct {
	Label string `json:"label"`
	Total int    `json:"total"`
}

// DashboardStats is derived from the live member collection and never stored;
// callers recompute it after every mutation.
type DashboardStats struct {
	CountByStore             map[models.StoreCode]int `json:"countByStore"`
	ActiveTotal              int                      `json:"activeTotal"`
	ActiveWeekly             []SeriesPoint            `json:"activeWeekly"`
	ActiveMonthly            []SeriesPoint            `json:"activeMonthly"`
	MessagesByStore          map[models.StoreCode]int `json:"messagesByStore"`
	MessagesTotal            int                      `json:"messagesTotal"`
	BirthdayThisMonthByStore map[models.StoreCode]int `json:"birthdayThisMonthByStore"`
	BirthdayThisMonthTotal   int                      `json:"birthdayThisMonthTotal"`
}

// Illustrative activity series shown on the dashboard. Static placeholder
// data, not derived from the member collection.
var (
	activeWeekly = []SeriesPoint{
		{Label: "W1", Total: 48},
		{Label: "W2", Total: 52},
		{Label: "W3", Total: 55},
		{Label: "W4", Total: 58},
	}
	activeMonthly = []SeriesPoint{
		{Label: "Jan", Total: 160},
		{Label: "Feb", Total: 190},
		{Label: "Mar", Total: 210},
		{Label: "Apr", Total: 205},
		{Label: "Mei", Total: 215},
		{Label: "Jun", Total: 220},
	}
)

// DashboardStats computes the derived dashboard view over the current
// snapshot, restricted to the caller's store scope. Members of stores
// outside the scope contribute nothing; their counts stay zero.
// Pure apart from taking the read lock.
func (s *Store) DashboardStats(now time.Time, scope []models.StoreCode) DashboardStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	scoped := make([]models.Member, 0, len(s.members))
	for _, m := range s.members {
		for _, code := range scope {
			if m.Store == code {
				scoped = append(scoped, m)
				break
			}
		}
	}
	return computeDashboardStats(scoped, now)
}

func computeDashboardStats(members []models.Member, now time.Time) DashboardStats {
	countByStore := map[models.StoreCode]int{models.StoreA: 0, models.StoreB: 0, models.StoreC: 0}
	birthdays := map[models.StoreCode]int{models.StoreA: 0, models.StoreB: 0, models.StoreC: 0}

	activeTotal := 0
	for _, m := range members {
		if m.Status != models.StatusActive {
			continue
		}
		activeTotal++
		countByStore[m.Store]++
		if bd, err := time.Parse("2006-01-02", m.BirthDate); err == nil && bd.Month() == now.Month() {
			birthdays[m.Store]++
		}
	}

	// Fixed per-store coefficients, kept for compatibility with the
	// original dashboard. Not real message counts.
	messagesByStore := map[models.StoreCode]int{
		models.StoreA: countByStore[models.StoreA]*10 + 900,
		models.StoreB: countByStore[models.StoreB]*8 + 700,
		models.StoreC: countByStore[models.StoreC]*5 + 200,
	}

	messagesTotal := 0
	for _, v := range messagesByStore {
		messagesTotal += v
	}
	birthdayTotal := 0
	for _, v := range birthdays {
		birthdayTotal += v
	}

	return DashboardStats{
		CountByStore:             countByStore,
		ActiveTotal:              activeTotal,
		ActiveWeekly:             activeWeekly,
		ActiveMonthly:            activeMonthly,
		MessagesByStore:          messagesByStore,
		MessagesTotal:            messagesTotal,
		BirthdayThisMonthByStore: birthdays,
		BirthdayThisMonthTotal:   birthdayTotal,
	}
}
