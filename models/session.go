// models/session.go
package models

// Session is the transient identity handed around after authentication. It is
// rebuilt from the auth provider on every request and never persisted here.
type Session struct {
	UID         string      `json:"uid"`
	Email       string      `json:"email"`
	AccountType AccountType `json:"accountType"`
	Ready       bool        `json:"ready"`
}

// IsArtisan reports whether the session belongs to a provider account.
func (s Session) IsArtisan() bool {
	return s.AccountType == AccountArtisan
}
