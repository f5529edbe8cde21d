// services/birthday_service.go
package services

import (
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/robfig/cron/v3"

	"tokomember-backend/models"
	"tokomember-backend/store"
	"tokomember-backend/utils"
)

// BirthdayService backs the per-store birthday outreach view and the daily
// reminder job.
type BirthdayService struct {
	store *store.Store
	cron  *cron.Cron
}

func NewBirthdayService(s *store.Store) *BirthdayService {
	return &BirthdayService{store: s, cron: cron.New()}
}

// StartScheduler runs the reminder pass every day at 7 AM.
func (s *BirthdayService) StartScheduler() {
	s.cron.AddFunc("0 7 * * *", func() {
		s.ProcessBirthdayReminders(time.Now())
	})
	s.cron.Start()
	log.Println("Birthday reminder scheduler started")
}

func (s *BirthdayService) StopScheduler() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// MembersThisMonth lists the store's members whose birth month matches now,
// sorted by birth date.
func (s *BirthdayService) MembersThisMonth(code models.StoreCode, now time.Time) []models.Member {
	list := []models.Member{}
	for _, m := range s.store.Members() {
		if m.Store != code {
			continue
		}
		bd, err := utils.ParseDate(m.BirthDate)
		if err != nil || bd.Month() != now.Month() {
			continue
		}
		list = append(list, m)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].BirthDate < list[j].BirthDate
	})
	return list
}

// ProcessBirthdayReminders writes a birthday log entry for every active
// member whose birthday falls on the given day. No message is delivered;
// admins follow up from the birthday view.
func (s *BirthdayService) ProcessBirthdayReminders(now time.Time) int {
	count := 0
	for _, m := range s.store.Members() {
		if m.Status != models.StatusActive {
			continue
		}
		bd, err := utils.ParseDate(m.BirthDate)
		if err != nil || bd.Month() != now.Month() || bd.Day() != now.Day() {
			continue
		}
		member := m
		s.store.AddLog(models.LogItem{
			Type:        models.LogBirthday,
			Title:       "Reminder Ultah",
			Description: fmt.Sprintf("Kirim ucapan ultah ke %s - Toko %s", member.Name, member.Store),
			Store:       &member.Store,
			Actor:       "System",
		})
		count++
	}
	if count > 0 {
		log.Printf("Birthday reminders written for %d member(s)", count)
	}
	return count
}
