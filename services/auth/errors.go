package auth

import (
	"errors"

	"github.com/voueil/Herafona-website/i18n"
)

// Provider failures are collapsed into a fixed set so the handlers can map
// them onto the localized message table instead of showing raw codes.
var (
	// ErrInvalidCredential covers wrong password, unknown email and the
	// provider's combined invalid-login response.
	ErrInvalidCredential = errors.New("invalid email or password")
	// ErrUserDisabled means the account was disabled by an administrator.
	ErrUserDisabled = errors.New("account disabled")
	// ErrTooManyAttempts means the provider throttled the credential.
	ErrTooManyAttempts = errors.New("too many attempts")
	// ErrEmailInUse means registration hit an existing account.
	ErrEmailInUse = errors.New("email already in use")
	// ErrWeakPassword means the password failed the provider's policy.
	ErrWeakPassword = errors.New("weak password")
	// ErrInvalidEmail means the address is not a valid email.
	ErrInvalidEmail = errors.New("invalid email")
	// ErrNotEnabled means password authentication is disabled for the project.
	ErrNotEnabled = errors.New("password auth not enabled")
	// ErrNetwork covers transport failures talking to the provider.
	ErrNetwork = errors.New("network failure")
)

// MessageKey maps a bridge error onto its localized message key. Unknown
// errors map to the generic key so nothing raw ever reaches the user.
func MessageKey(err error) string {
	switch {
	case errors.Is(err, ErrInvalidCredential):
		return i18n.KeyAuthInvalidCredential
	case errors.Is(err, ErrUserDisabled):
		return i18n.KeyAuthUserDisabled
	case errors.Is(err, ErrTooManyAttempts):
		return i18n.KeyAuthTooManyRequests
	case errors.Is(err, ErrEmailInUse):
		return i18n.KeyAuthEmailInUse
	case errors.Is(err, ErrWeakPassword):
		return i18n.KeyAuthWeakPassword
	case errors.Is(err, ErrInvalidEmail):
		return i18n.KeyAuthInvalidEmail
	case errors.Is(err, ErrNotEnabled):
		return i18n.KeyAuthNotEnabled
	case errors.Is(err, ErrNetwork):
		return i18n.KeyAuthNetworkFailed
	default:
		return i18n.KeyAuthGeneric
	}
}
