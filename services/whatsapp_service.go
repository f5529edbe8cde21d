// services/whatsapp_service.go
package services

import (
	"fmt"
	"net/url"
	"strings"

	"tokomember-backend/models"
	"tokomember-backend/store"
	"tokomember-backend/utils"
)

// NamePlaceholder is the token admins put in a template where the member's
// name should be inserted. The English spelling is accepted as an alias.
const (
	NamePlaceholder      = "{nama}"
	NamePlaceholderAlias = "{name}"
)

// WhatsAppService renders per-store message templates and builds wa.me deep
// links. It never delivers anything itself; callers open the returned URL.
type WhatsAppService struct {
	store *store.Store
}

func NewWhatsAppService(s *store.Store) *WhatsAppService {
	return &WhatsAppService{store: s}
}

// Personalize substitutes the member name into the template. Templates
// without a placeholder get the name prepended instead.
func Personalize(template, name string) string {
	if strings.Contains(template, NamePlaceholder) {
		return strings.Replace(template, NamePlaceholder, name, 1)
	}
	if strings.Contains(template, NamePlaceholderAlias) {
		return strings.Replace(template, NamePlaceholderAlias, name, 1)
	}
	return strings.TrimSpace(fmt.Sprintf("%s, %s", name, template))
}

// BuildLink builds the deep link handed to the external messaging client.
// Spaces are percent-encoded, not form-encoded as "+", so the link matches
// what a browser produces for the same message.
func BuildLink(waNumber, message string) string {
	escaped := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return fmt.Sprintf("https://wa.me/%s?text=%s",
		utils.NormalizePhone(waNumber), escaped)
}

// SendPromo personalizes the member's store template, marks the member as
// contacted, logs the send and returns the deep link. Returns false when the
// member does not exist.
func (s *WhatsAppService) SendPromo(id string) (string, bool) {
	member, ok := s.store.FindMember(id)
	if !ok {
		return "", false
	}

	message := Personalize(s.store.CustomMessage(member.Store), member.Name)
	link := BuildLink(member.WaNumber, message)

	sent := true
	s.store.UpdateMember(id, store.MemberPatch{WhatsappSent: &sent})
	s.store.AddLog(models.LogItem{
		Type:        models.LogWhatsappSend,
		Title:       "Kirim WhatsApp",
		Description: fmt.Sprintf("WA dikirim ke %s (%s) - Toko %s", member.Name, member.WaNumber, member.Store),
		Store:       &member.Store,
	})

	return link, true
}

// SendBirthday builds a birthday greeting link from the same template and
// personalization rule. Flips the contacted flag silently; the scheduled
// reminder job owns the birthday log entries.
func (s *WhatsAppService) SendBirthday(id string) (string, bool) {
	member, ok := s.store.FindMember(id)
	if !ok {
		return "", false
	}

	message := Personalize(s.store.CustomMessage(member.Store), member.Name)
	link := BuildLink(member.WaNumber, message)

	sent := true
	s.store.UpdateMember(id, store.MemberPatch{WhatsappSent: &sent})

	return link, true
}
