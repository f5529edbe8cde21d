package store

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/google/uuid"

	"tokomember-backend/models"
)

// AddMemberInput carries the caller-supplied fields of a new member.
// Validation happens at the controller; the store assumes well-formed input.
type AddMemberInput struct {
	Store     models.StoreCode
	Name      string
	WaNumber  string
	BirthDate string
}

// MemberPatch is a partial update. Nil fields are left untouched.
type MemberPatch struct {
	Store        *models.StoreCode
	Name         *string
	WaNumber     *string
	BirthDate    *string
	Status       *models.MemberStatus
	WhatsappSent *bool
	PromoSent    *bool
}

var nonDigits = regexp.MustCompile(`\D+`)

// nextMemberNo scans every record in the given collection, parses the digit
// suffix of each member number, and returns max+1 zero-padded to 4 digits.
// Never trusts a counter, so externally seeded or out-of-order numbers are
// tolerated.
func nextMemberNo(existing []models.Member) string {
	max := 0
	for _, m := range existing {
		n, err := strconv.Atoi(nonDigits.ReplaceAllString(m.MemberNo, ""))
		if err == nil && n > max {
			max = n
		}
	}
	return fmt.Sprintf("AUTO-%04d", max+1)
}

// AddMember inserts an active member with a fresh id and the next member
// number, and logs the addition.
func (s *Store) AddMember(in AddMemberInput) models.Member {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := models.Member{
		ID:        uuid.NewString(),
		Store:     in.Store,
		MemberNo:  nextMemberNo(s.members),
		Name:      in.Name,
		WaNumber:  in.WaNumber,
		BirthDate: in.BirthDate,
		Status:    models.StatusActive,
		CreatedAt: s.now().Format("2006-01-02"),
	}
	s.members = append(s.members, m)
	s.addLogLocked(models.LogItem{
		Type:        models.LogMemberAdd,
		Title:       "Tambah Member",
		Description: fmt.Sprintf("Menambahkan %s ke Toko %s", m.Name, m.Store),
		Store:       &m.Store,
	})
	return m
}

// UpdateMember merges the patch into the matching member. Silent no-op when
// the id is unknown; writes no log, dedicated operations log themselves.
func (s *Store) UpdateMember(id string, patch MemberPatch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updateMemberLocked(id, patch)
}

func (s *Store) updateMemberLocked(id string, patch MemberPatch) bool {
	for i := range s.members {
		if s.members[i].ID != id {
			continue
		}
		m := &s.members[i]
		if patch.Store != nil {
			m.Store = *patch.Store
		}
		if patch.Name != nil {
			m.Name = *patch.Name
		}
		if patch.WaNumber != nil {
			m.WaNumber = *patch.WaNumber
		}
		if patch.BirthDate != nil {
			m.BirthDate = *patch.BirthDate
		}
		if patch.Status != nil {
			m.Status = *patch.Status
		}
		if patch.WhatsappSent != nil {
			m.WhatsappSent = *patch.WhatsappSent
		}
		if patch.PromoSent != nil {
			m.PromoSent = *patch.PromoSent
		}
		return true
	}
	return false
}

// DeleteMember removes the member permanently and logs the deletion.
// Idempotent: a second call with the same id is a no-op.
func (s *Store) DeleteMember(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, m := range s.members {
		if m.ID != id {
			continue
		}
		s.members = append(s.members[:i], s.members[i+1:]...)
		s.addLogLocked(models.LogItem{
			Type:        models.LogMemberDelete,
			Title:       "Hapus Member",
			Description: fmt.Sprintf("Hapus %s (%s)", m.Name, m.MemberNo),
			Store:       &m.Store,
		})
		return true
	}
	return false
}

// AddPending records a submitted registration awaiting approval. The member
// number is provisional, scanned from the pending collection; approval
// assigns the real one.
func (s *Store) AddPending(in AddMemberInput) models.Member {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := models.Member{
		ID:        uuid.NewString(),
		Store:     in.Store,
		MemberNo:  nextMemberNo(s.pending),
		Name:      in.Name,
		WaNumber:  in.WaNumber,
		BirthDate: in.BirthDate,
		Status:    models.StatusPending,
		CreatedAt: s.now().Format("2006-01-02"),
	}
	s.pending = append(s.pending, m)
	s.addLogLocked(models.LogItem{
		Type:        models.LogOther,
		Title:       "Pendaftaran Member",
		Description: fmt.Sprintf("Pengajuan member baru %s - Toko %s", m.Name, m.Store),
		Store:       &m.Store,
	})
	return m
}

// ApprovePending promotes a pending record into the member collection with a
// new identity and a member number freshly computed against the member
// collection, then logs the approval. No-op when the id is not pending.
func (s *Store) ApprovePending(id string) (models.Member, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.pending {
		if item.ID != id {
			continue
		}
		s.pending = append(s.pending[:i], s.pending[i+1:]...)

		promoted := item
		promoted.ID = uuid.NewString()
		promoted.MemberNo = nextMemberNo(s.members)
		promoted.Status = models.StatusActive
		s.members = append(s.members, promoted)

		s.addLogLocked(models.LogItem{
			Type:        models.LogApproval,
			Title:       "Approve Member Pending",
			Description: fmt.Sprintf("Menyetujui %s (%s) - Toko %s", item.Name, item.MemberNo, item.Store),
			Store:       &item.Store,
		})
		return promoted, true
	}
	return models.Member{}, false
}

// RejectPending discards a pending record without promotion and logs the
// rejection. No-op when the id is not pending.
func (s *Store) RejectPending(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.pending {
		if item.ID != id {
			continue
		}
		s.pending = append(s.pending[:i], s.pending[i+1:]...)
		s.addLogLocked(models.LogItem{
			Type:        models.LogApproval,
			Title:       "Reject Member Pending",
			Description: fmt.Sprintf("Menolak %s (%s) - Toko %s", item.Name, item.MemberNo, item.Store),
			Store:       &item.Store,
		})
		return true
	}
	return false
}

// ResetStatuses clears both send flags and logs the reset.
func (s *Store) ResetStatuses(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	f := false
	if !s.updateMemberLocked(id, MemberPatch{WhatsappSent: &f, PromoSent: &f}) {
		return false
	}
	for _, m := range s.members {
		if m.ID == id {
			s.addLogLocked(models.LogItem{
				Type:        models.LogReset,
				Title:       "Reset Status",
				Description: fmt.Sprintf("Reset status %s", m.Name),
				Store:       &m.Store,
			})
			break
		}
	}
	return true
}

// MarkPromoSent flags the member's promo as delivered and logs it.
func (s *Store) MarkPromoSent(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := true
	if !s.updateMemberLocked(id, MemberPatch{PromoSent: &t}) {
		return false
	}
	for _, m := range s.members {
		if m.ID == id {
			s.addLogLocked(models.LogItem{
				Type:        models.LogPromoMark,
				Title:       "Tandai Promo Terkirim",
				Description: fmt.Sprintf("Promo ditandai terkirim ke %s - Toko %s", m.Name, m.Store),
				Store:       &m.Store,
			})
			break
		}
	}
	return true
}
