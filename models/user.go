package models

type Role string

const (
	RoleSuperAdmin Role = "superadmin"
	RoleStoreAdmin Role = "store_admin"
)

// User is an admin account. Password holds a bcrypt hash.
// A store_admin is scoped to exactly one store; a superadmin to all three.
type User struct {
	Username string     `json:"username"`
	Password string     `json:"-"`
	Name     string     `json:"name"`
	Role     Role       `json:"role"`
	Store    *StoreCode `json:"store,omitempty"`
}

// AllowedStores derives the store-access scope used by every scoped read
// and write. A store_admin without a store gets no access at all.
func (u *User) AllowedStores() []StoreCode {
	if u == nil {
		return nil
	}
	switch u.Role {
	case RoleSuperAdmin:
		return append([]StoreCode{}, AllStores...)
	case RoleStoreAdmin:
		if u.Store != nil {
			return []StoreCode{*u.Store}
		}
	}
	return nil
}

func (u *User) CanAccess(store StoreCode) bool {
	for _, s := range u.AllowedStores() {
		if s == store {
			return true
		}
	}
	return false
}
