package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tokomember-backend/models"
)

func TestDashboardStatsSeededData(t *testing.T) {
	s := New()
	s.Seed()

	now := time.Date(2026, time.February, 14, 12, 0, 0, 0, time.UTC)
	stats := s.DashboardStats(now, models.AllStores)

	// 13 seeded members, one inactive (Siti Rahma, store C).
	assert.Equal(t, 12, stats.ActiveTotal)
	assert.Equal(t, 10, stats.CountByStore[models.StoreA])
	assert.Equal(t, 2, stats.CountByStore[models.StoreB])
	assert.Equal(t, 0, stats.CountByStore[models.StoreC])

	sum := 0
	for _, code := range models.AllStores {
		sum += stats.CountByStore[code]
	}
	assert.Equal(t, stats.ActiveTotal, sum)

	// Fixed per-store formulas: A count*10+900, B count*8+700, C count*5+200.
	assert.Equal(t, 1000, stats.MessagesByStore[models.StoreA])
	assert.Equal(t, 716, stats.MessagesByStore[models.StoreB])
	assert.Equal(t, 200, stats.MessagesByStore[models.StoreC])
	assert.Equal(t, 1916, stats.MessagesTotal)

	// February birthdays among active members.
	assert.Equal(t, 2, stats.BirthdayThisMonthByStore[models.StoreA])
	assert.Equal(t, 2, stats.BirthdayThisMonthByStore[models.StoreB])
	assert.Equal(t, 0, stats.BirthdayThisMonthByStore[models.StoreC])
	assert.Equal(t, 4, stats.BirthdayThisMonthTotal)
}

func TestDashboardStatsScoped(t *testing.T) {
	s := New()
	s.Seed()

	now := time.Date(2026, time.February, 14, 12, 0, 0, 0, time.UTC)
	stats := s.DashboardStats(now, []models.StoreCode{models.StoreB})

	// Only store B's members may contribute; the other stores read as empty.
	assert.Equal(t, 2, stats.ActiveTotal)
	assert.Equal(t, 0, stats.CountByStore[models.StoreA])
	assert.Equal(t, 2, stats.CountByStore[models.StoreB])
	assert.Equal(t, 0, stats.CountByStore[models.StoreC])

	assert.Equal(t, 900, stats.MessagesByStore[models.StoreA])
	assert.Equal(t, 716, stats.MessagesByStore[models.StoreB])

	assert.Equal(t, 0, stats.BirthdayThisMonthByStore[models.StoreA])
	assert.Equal(t, 2, stats.BirthdayThisMonthByStore[models.StoreB])
	assert.Equal(t, 2, stats.BirthdayThisMonthTotal)

	empty := s.DashboardStats(now, nil)
	assert.Equal(t, 0, empty.ActiveTotal)
}

func TestDashboardStatsEmptyStore(t *testing.T) {
	s := New()
	stats := s.DashboardStats(time.Now(), models.AllStores)

	assert.Equal(t, 0, stats.ActiveTotal)
	for _, code := range models.AllStores {
		assert.Equal(t, 0, stats.CountByStore[code], "store %s must default to zero", code)
		assert.Equal(t, 0, stats.BirthdayThisMonthByStore[code])
	}
	// The additive constants remain even with no members.
	assert.Equal(t, 900, stats.MessagesByStore[models.StoreA])
	assert.Equal(t, 700, stats.MessagesByStore[models.StoreB])
	assert.Equal(t, 200, stats.MessagesByStore[models.StoreC])
	assert.Equal(t, 1800, stats.MessagesTotal)
}

func TestDashboardStatsSeries(t *testing.T) {
	s := New()
	stats := s.DashboardStats(time.Now(), models.AllStores)

	require.Len(t, stats.ActiveWeekly, 4)
	require.Len(t, stats.ActiveMonthly, 6)
	assert.Equal(t, "W1", stats.ActiveWeekly[0].Label)
	assert.Equal(t, "Jan", stats.ActiveMonthly[0].Label)
}

func TestDashboardStatsRecomputesAfterMutation(t *testing.T) {
	s := New()
	now := time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC)

	before := s.DashboardStats(now, models.AllStores)
	assert.Equal(t, 0, before.CountByStore[models.StoreC])

	m := s.AddMember(AddMemberInput{Store: models.StoreC, Name: "Z", WaNumber: "62809", BirthDate: "1990-07-21"})

	after := s.DashboardStats(now, models.AllStores)
	assert.Equal(t, 1, after.CountByStore[models.StoreC])
	assert.Equal(t, 1, after.BirthdayThisMonthByStore[models.StoreC])
	assert.Equal(t, 205, after.MessagesByStore[models.StoreC])

	inactive := models.StatusInactive
	s.UpdateMember(m.ID, MemberPatch{Status: &inactive})
	assert.Equal(t, 0, s.DashboardStats(now, models.AllStores).CountByStore[models.StoreC])
}
