package models

// StoreCode identifies one of the three retail branches.
type StoreCode string

const (
	StoreA StoreCode = "A"
	StoreB StoreCode = "B"
	StoreC StoreCode = "C"
)

// AllStores in display order.
var AllStores = []StoreCode{StoreA, StoreB, StoreC}

func (s StoreCode) Valid() bool {
	return s == StoreA || s == StoreB || s == StoreC
}

type MemberStatus string

const (
	StatusActive   MemberStatus = "active"
	StatusInactive MemberStatus = "inactive"
	StatusPending  MemberStatus = "pending"
)

// Member is a loyalty-program participant. Pending registrations share the
// same shape but live in a separate collection with StatusPending until an
// admin approves or rejects them.
//
// BirthDate and CreatedAt are naive calendar dates in "2006-01-02" form.
type Member struct {
	ID           string       `json:"id"`
	Store        StoreCode    `json:"store"`
	MemberNo     string       `json:"memberNo"`
	Name         string       `json:"name"`
	WaNumber     string       `json:"waNumber"`
	BirthDate    string       `json:"birthDate"`
	WhatsappSent bool         `json:"whatsappSent"`
	PromoSent    bool         `json:"promoSent"`
	CreatedAt    string       `json:"createdAt"`
	Status       MemberStatus `json:"status"`
}
