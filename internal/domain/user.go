package domain

import "time"

type UserRole string

const (
	UserRoleCustomer      UserRole = "CUSTOMER"
	UserRolePartnerAdmin  UserRole = "PARTNER_ADMIN"
	UserRolePlatformAdmin UserRole = "PLATFORM_ADMIN"
)

func (r UserRole) Valid() bool {
	switch r {
	case UserRoleCustomer, UserRolePartnerAdmin, UserRolePlatformAdmin:
		return true
	}
	return false
}

// User is an authenticated account. PartnerID is set only for partner admins
// and names the single partner whose resources they may touch.
type User struct {
	ID           int32     `json:"id"`
	Email        string    `json:"email"`
	PhoneNumber  string    `json:"phone_number"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Role         UserRole  `json:"role"`
	PartnerID    *int32    `json:"partner_id,omitempty"`
	CreatedOn    time.Time `json:"created_on"`
	UpdatedOn    time.Time `json:"updated_on"`
}
