package auth

import "context"

// Identity is the minimal identity handed back by the auth provider.
type Identity struct {
	UID         string
	Email       string
	DisplayName string
}

// Bridge wraps the external auth provider. Profile bookkeeping (read the
// profile document, create it on first login) is the caller's responsibility,
// not the bridge's.
type Bridge interface {
	// SignIn verifies an email/password credential. Fails with
	// ErrInvalidCredential when the provider rejects it.
	SignIn(ctx context.Context, email, password string) (*Identity, error)
	// Register creates a new account with a display name. Fails with
	// ErrEmailInUse, ErrWeakPassword or ErrInvalidEmail.
	Register(ctx context.Context, email, password, displayName string) (*Identity, error)
	// SendPasswordReset dispatches a password-reset email. Unknown addresses
	// are not an error; callers report generic success either way.
	SendPasswordReset(ctx context.Context, email string) error
}
