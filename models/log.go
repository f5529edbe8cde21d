// models/log.go
package models

import "time"

type LogType string

const (
	LogMemberAdd    LogType = "member_add"
	LogMemberDelete LogType = "member_delete"
	LogMemberEdit   LogType = "member_edit"
	LogApproval     LogType = "approval"
	LogWhatsappSend LogType = "whatsapp_send"
	LogPromoMark    LogType = "promo_mark"
	LogReset        LogType = "reset"
	LogBirthday     LogType = "birthday"
	LogOther        LogType = "other"
)

// LogItem is one entry of the append-only activity log. Entries are never
// updated or deleted after being written; the canonical read order is
// newest first.
type LogItem struct {
	ID          string         `json:"id"`
	Type        LogType        `json:"type"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Store       *StoreCode     `json:"store,omitempty"`
	Actor       string         `json:"actor"`
	CreatedAt   time.Time      `json:"createdAt"`
	Meta        map[string]any `json:"meta,omitempty"`
}
