package store

import (
	"time"

	"tokomember-backend/models"
	"tokomember-backend/utils"
)

func sc(code models.StoreCode) *models.StoreCode { return &code }

func ts(value string) time.Time {
	t, _ := time.Parse("2006-01-02T15:04:05", value)
	return t
}

// Seed loads the demo dataset: members, pending registrations, per-store
// templates, historical logs and the admin accounts.
func (s *Store) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.members = []models.Member{
		{ID: "m-1", Store: models.StoreA, MemberNo: "AUTO-0001", Name: "Dewi Lestari", WaNumber: "628123400001", BirthDate: "1995-02-10", WhatsappSent: true, PromoSent: true, CreatedAt: "2026-01-20", Status: models.StatusActive},
		{ID: "m-2", Store: models.StoreB, MemberNo: "AUTO-0002", Name: "Budi Santoso", WaNumber: "628123400002", BirthDate: "1992-02-15", CreatedAt: "2026-01-18", Status: models.StatusActive},
		{ID: "m-3", Store: models.StoreC, MemberNo: "AUTO-0003", Name: "Siti Rahma", WaNumber: "628123400003", BirthDate: "1990-07-21", PromoSent: true, CreatedAt: "2025-12-10", Status: models.StatusInactive},
		{ID: "m-4", Store: models.StoreA, MemberNo: "AUTO-0004", Name: "Agus Firmansyah", WaNumber: "628123400004", BirthDate: "1998-02-28", CreatedAt: "2026-01-05", Status: models.StatusActive},
		{ID: "m-5", Store: models.StoreB, MemberNo: "AUTO-0005", Name: "Maria Widya", WaNumber: "628123400005", BirthDate: "1999-02-02", WhatsappSent: true, CreatedAt: "2026-01-02", Status: models.StatusActive},
		{ID: "m-6", Store: models.StoreA, MemberNo: "AUTO-0006", Name: "Yoga Pratama", WaNumber: "628123400006", BirthDate: "1993-06-12", CreatedAt: "2026-01-25", Status: models.StatusActive},
		{ID: "m-7", Store: models.StoreA, MemberNo: "AUTO-0007", Name: "Lestari Handayani", WaNumber: "628123400007", BirthDate: "1988-03-03", WhatsappSent: true, PromoSent: true, CreatedAt: "2026-01-24", Status: models.StatusActive},
		{ID: "m-8", Store: models.StoreA, MemberNo: "AUTO-0008", Name: "Rama Dwi Putra", WaNumber: "628123400008", BirthDate: "1996-09-18", PromoSent: true, CreatedAt: "2026-01-23", Status: models.StatusActive},
		{ID: "m-9", Store: models.StoreA, MemberNo: "AUTO-0009", Name: "Mega Puspita", WaNumber: "628123400009", BirthDate: "1994-12-01", CreatedAt: "2026-01-22", Status: models.StatusActive},
		{ID: "m-10", Store: models.StoreA, MemberNo: "AUTO-0010", Name: "Ardiansyah Putu", WaNumber: "628123400010", BirthDate: "1991-05-27", WhatsappSent: true, CreatedAt: "2026-01-21", Status: models.StatusActive},
		{ID: "m-11", Store: models.StoreA, MemberNo: "AUTO-0011", Name: "Nia Kurniasih", WaNumber: "628123400011", BirthDate: "1997-08-08", CreatedAt: "2026-01-19", Status: models.StatusActive},
		{ID: "m-12", Store: models.StoreA, MemberNo: "AUTO-0012", Name: "Bagus Hartanto", WaNumber: "628123400012", BirthDate: "1989-04-14", WhatsappSent: true, PromoSent: true, CreatedAt: "2026-01-17", Status: models.StatusActive},
		{ID: "m-13", Store: models.StoreA, MemberNo: "AUTO-0013", Name: "Citra Melani", WaNumber: "628123400013", BirthDate: "1995-10-30", PromoSent: true, CreatedAt: "2026-01-15", Status: models.StatusActive},
	}

	s.pending = []models.Member{
		{ID: "p-1", Store: models.StoreA, MemberNo: "AUTO-0101", Name: "Rina Putri", WaNumber: "628777111222", BirthDate: "2001-09-14", CreatedAt: "2026-02-03", Status: models.StatusPending},
		{ID: "p-2", Store: models.StoreC, MemberNo: "AUTO-0102", Name: "Galih Pratama", WaNumber: "628899000111", BirthDate: "1997-11-30", CreatedAt: "2026-02-02", Status: models.StatusPending},
	}

	s.templates = map[models.StoreCode]string{
		models.StoreA: "Halo, ini promo spesial dari Toko A! Klaim diskonmu sekarang.",
		models.StoreB: "Hi, promo menarik dari Toko B untukmu hari ini.",
		models.StoreC: "Salam dari Toko C, dapatkan penawaran terbaik minggu ini.",
	}

	s.logs = []models.LogItem{
		{ID: "log-1", Type: models.LogMemberAdd, Title: "Tambah Member", Description: "Menambahkan Dewi Lestari (AUTO-0001) ke Toko A", Store: sc(models.StoreA), Actor: "SuperAdmin", CreatedAt: ts("2026-02-03T09:15:00")},
		{ID: "log-2", Type: models.LogApproval, Title: "Approve Member Pending", Description: "Menyetujui Rina Putri (AUTO-0101) Toko A", Store: sc(models.StoreA), Actor: "SuperAdmin", CreatedAt: ts("2026-02-04T08:00:00")},
		{ID: "log-3", Type: models.LogWhatsappSend, Title: "Kirim WhatsApp Promo", Description: "Promo dikirim ke Budi Santoso (628123400002) - Toko B", Store: sc(models.StoreB), Actor: "SuperAdmin", CreatedAt: ts("2026-02-02T12:45:00")},
		{ID: "log-4", Type: models.LogReset, Title: "Reset Status Kirim", Description: "Reset status WA & promo untuk Agus Firmansyah - Toko A", Store: sc(models.StoreA), Actor: "SuperAdmin", CreatedAt: ts("2026-02-01T10:10:00")},
		{ID: "log-5", Type: models.LogPromoMark, Title: "Tandai Promo Terkirim", Description: "Promo ditandai terkirim ke Siti Rahma - Toko C", Store: sc(models.StoreC), Actor: "SuperAdmin", CreatedAt: ts("2026-01-29T16:05:00")},
		{ID: "log-6", Type: models.LogMemberEdit, Title: "Edit Data Member", Description: "Edit data Maria Widya (AUTO-0005) - Toko B", Store: sc(models.StoreB), Actor: "SuperAdmin", CreatedAt: ts("2026-01-28T11:00:00")},
		{ID: "log-7", Type: models.LogMemberDelete, Title: "Hapus Member", Description: "Hapus member non-aktif AUTO-0099 - Toko C", Store: sc(models.StoreC), Actor: "SuperAdmin", CreatedAt: ts("2025-12-20T09:30:00")},
		{ID: "log-8", Type: models.LogBirthday, Title: "Reminder Ultah", Description: "Kirim ucapan ultah ke Dewi Lestari - Toko A", Store: sc(models.StoreA), Actor: "System", CreatedAt: ts("2026-02-10T07:00:00")},
		{ID: "log-9", Type: models.LogApproval, Title: "Reject Member Pending", Description: "Menolak pengajuan Galih Pratama - Toko C", Store: sc(models.StoreC), Actor: "SuperAdmin", CreatedAt: ts("2026-02-03T09:00:00")},
	}

	s.users = seedUsers()
}

func seedUsers() []models.User {
	demo := []struct {
		username string
		password string
		name     string
		role     models.Role
		store    *models.StoreCode
	}{
		{"admin", "admin123", "Super Admin", models.RoleSuperAdmin, nil},
		{"adminA", "adminA123", "Admin Toko A", models.RoleStoreAdmin, sc(models.StoreA)},
		{"adminB", "adminB123", "Admin Toko B", models.RoleStoreAdmin, sc(models.StoreB)},
		{"adminC", "adminC123", "Admin Toko C", models.RoleStoreAdmin, sc(models.StoreC)},
	}

	users := make([]models.User, 0, len(demo))
	for _, d := range demo {
		hashed, err := utils.HashPassword(d.password)
		if err != nil {
			continue
		}
		users = append(users, models.User{
			Username: d.username,
			Password: hashed,
			Name:     d.name,
			Role:     d.role,
			Store:    d.store,
		})
	}
	return users
}
