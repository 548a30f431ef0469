// models/user.go
package models

import "time"

// AccountType distinguishes the marketplace roles.
type AccountType string

const (
	AccountTourist AccountType = "tourist"
	AccountUser    AccountType = "user"
	AccountArtisan AccountType = "artisan"
)

// ParseAccountType normalizes a stored account type, defaulting unknown or
// empty values to tourist.
func ParseAccountType(raw string) AccountType {
	switch AccountType(raw) {
	case AccountTourist, AccountUser, AccountArtisan:
		return AccountType(raw)
	default:
		return AccountTourist
	}
}

// CanBook reports whether the account type is allowed to create bookings.
// Artisans manage bookings; they do not request them.
func (t AccountType) CanBook() bool {
	return t == AccountTourist || t == AccountUser
}

// User is the profile document stored in the "users" collection, keyed by the
// auth provider's UID.
type User struct {
	UID         string      `bson:"uid" json:"uid"`
	FullName    string      `bson:"fullName" json:"fullName"`
	Email       string      `bson:"email" json:"email"`
	PhoneNumber string      `bson:"phoneNumber" json:"phoneNumber"`
	City        string      `bson:"city" json:"city"`
	AccountType AccountType `bson:"accountType" json:"accountType"`
	AvatarURL   string      `bson:"avatarUrl,omitempty" json:"avatarUrl,omitempty"`
	CreatedAt   time.Time   `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt   time.Time   `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// Normalize coerces a freshly decoded profile into a safe shape.
func (u *User) Normalize() {
	u.AccountType = ParseAccountType(string(u.AccountType))
}
