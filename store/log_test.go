package store

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tokomember-backend/models"
)

func TestAddLogDefaults(t *testing.T) {
	s := New()
	s.SetClock(fixedClock("2026-02-14T10:00:00"))

	entry := s.AddLog(models.LogItem{Type: models.LogOther, Title: "T", Description: "D"})

	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, DefaultActor, entry.Actor)
	assert.Equal(t, fixedClock("2026-02-14T10:00:00")(), entry.CreatedAt)

	custom := s.AddLog(models.LogItem{Type: models.LogBirthday, Title: "T", Description: "D", Actor: "System"})
	assert.Equal(t, "System", custom.Actor)
}

func TestLogsNewestFirst(t *testing.T) {
	s := New()

	for i := 0; i < 5; i++ {
		s.AddLog(models.LogItem{Type: models.LogOther, Title: fmt.Sprintf("entry-%d", i), Description: "x"})
	}

	logs := s.Logs(LogFilter{})
	require.Len(t, logs, 5)
	for i := 0; i < 5; i++ {
		assert.Equal(t, fmt.Sprintf("entry-%d", 4-i), logs[i].Title)
	}
}

func TestMutationsProduceOneLogEach(t *testing.T) {
	s := New()
	s.SetClock(fixedClock("2026-02-14T10:00:00"))

	m1 := s.AddMember(AddMemberInput{Store: models.StoreA, Name: "A", WaNumber: "62801", BirthDate: "1990-01-01"})
	s.AddMember(AddMemberInput{Store: models.StoreB, Name: "B", WaNumber: "62802", BirthDate: "1991-01-01"})
	s.ResetStatuses(m1.ID)
	s.MarkPromoSent(m1.ID)
	s.DeleteMember(m1.ID)

	logs := s.Logs(LogFilter{})
	require.Len(t, logs, 5)
	assert.Equal(t, models.LogMemberDelete, logs[0].Type)
	assert.Equal(t, models.LogPromoMark, logs[1].Type)
	assert.Equal(t, models.LogReset, logs[2].Type)
	assert.Equal(t, models.LogMemberAdd, logs[3].Type)
	assert.Equal(t, models.LogMemberAdd, logs[4].Type)
}

func TestLogFilters(t *testing.T) {
	s := New()
	s.Seed()

	t.Run("by type", func(t *testing.T) {
		logs := s.Logs(LogFilter{Type: models.LogApproval})
		require.Len(t, logs, 2)
		for _, l := range logs {
			assert.Equal(t, models.LogApproval, l.Type)
		}
	})

	t.Run("by store", func(t *testing.T) {
		logs := s.Logs(LogFilter{Store: models.StoreC})
		require.Len(t, logs, 3)
		for _, l := range logs {
			require.NotNil(t, l.Store)
			assert.Equal(t, models.StoreC, *l.Store)
		}
	})

	t.Run("free text search over title and description", func(t *testing.T) {
		logs := s.Logs(LogFilter{Search: "rina putri"})
		require.Len(t, logs, 1)
		assert.Equal(t, "log-2", logs[0].ID)

		logs = s.Logs(LogFilter{Search: "RESET"})
		assert.Len(t, logs, 1)
	})

	t.Run("date range includes the whole end day", func(t *testing.T) {
		// log-1 is at 2026-02-03T09:15, log-9 at 2026-02-03T09:00.
		logs := s.Logs(LogFilter{From: "2026-02-03", To: "2026-02-03"})
		assert.Len(t, logs, 2)

		logs = s.Logs(LogFilter{From: "2026-02-04"})
		require.Len(t, logs, 2)
		for _, l := range logs {
			assert.False(t, l.CreatedAt.Before(time.Date(2026, 2, 4, 0, 0, 0, 0, time.UTC)))
		}
	})

	t.Run("scope hides other stores and storeless entries", func(t *testing.T) {
		s.AddLog(models.LogItem{Type: models.LogOther, Title: "no store", Description: "x"})

		logs := s.Logs(LogFilter{Scope: []models.StoreCode{models.StoreB}})
		require.Len(t, logs, 2)
		for _, l := range logs {
			require.NotNil(t, l.Store)
			assert.Equal(t, models.StoreB, *l.Store)
		}
	})
}
