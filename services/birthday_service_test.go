package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tokomember-backend/models"
	"tokomember-backend/store"
)

func TestMembersThisMonth(t *testing.T) {
	s := store.New()
	s.Seed()
	svc := NewBirthdayService(s)

	feb := time.Date(2026, time.February, 14, 0, 0, 0, 0, time.UTC)

	listA := svc.MembersThisMonth(models.StoreA, feb)
	require.Len(t, listA, 2)
	assert.Equal(t, "Dewi Lestari", listA[0].Name)
	assert.Equal(t, "Agus Firmansyah", listA[1].Name)

	listB := svc.MembersThisMonth(models.StoreB, feb)
	require.Len(t, listB, 2)
	assert.Equal(t, "Budi Santoso", listB[0].Name, "sorted by birth date")

	assert.Empty(t, svc.MembersThisMonth(models.StoreC, feb))

	july := time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC)
	listC := svc.MembersThisMonth(models.StoreC, july)
	require.Len(t, listC, 1)
	assert.Equal(t, "Siti Rahma", listC[0].Name, "birthday view includes inactive members")
}

func TestProcessBirthdayReminders(t *testing.T) {
	s := store.New()
	s.Seed()
	svc := NewBirthdayService(s)

	// Dewi Lestari's birthday is Feb 10.
	count := svc.ProcessBirthdayReminders(time.Date(2026, time.February, 10, 7, 0, 0, 0, time.UTC))
	assert.Equal(t, 1, count)

	logs := s.Logs(store.LogFilter{Type: models.LogBirthday})
	require.NotEmpty(t, logs)
	assert.Equal(t, "System", logs[0].Actor)
	assert.Contains(t, logs[0].Description, "Dewi Lestari")
	require.NotNil(t, logs[0].Store)
	assert.Equal(t, models.StoreA, *logs[0].Store)
}

func TestProcessBirthdayRemindersSkipsInactive(t *testing.T) {
	s := store.New()
	s.Seed()
	svc := NewBirthdayService(s)

	// Siti Rahma (Jul 21) is inactive.
	count := svc.ProcessBirthdayReminders(time.Date(2026, time.July, 21, 7, 0, 0, 0, time.UTC))
	assert.Equal(t, 0, count)
}
