package auth

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/voueil/Herafona-website/i18n"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapToolkitError(t *testing.T) {
	tests := []struct {
		code string
		want error
	}{
		{"EMAIL_NOT_FOUND", ErrInvalidCredential},
		{"INVALID_PASSWORD", ErrInvalidCredential},
		{"INVALID_LOGIN_CREDENTIALS", ErrInvalidCredential},
		{"USER_DISABLED", ErrUserDisabled},
		{"TOO_MANY_ATTEMPTS_TRY_LATER", ErrTooManyAttempts},
		{"TOO_MANY_ATTEMPTS_TRY_LATER : Try again later.", ErrTooManyAttempts},
		{"EMAIL_EXISTS", ErrEmailInUse},
		{"WEAK_PASSWORD : Password should be at least 6 characters", ErrWeakPassword},
		{"INVALID_EMAIL", ErrInvalidEmail},
		{"OPERATION_NOT_ALLOWED", ErrNotEnabled},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.ErrorIs(t, mapToolkitError(tt.code), tt.want)
		})
	}
}

func TestMapToolkitErrorUnknownCodeIsOpaque(t *testing.T) {
	err := mapToolkitError("QUOTA_EXCEEDED")
	require.Error(t, err)
	for _, known := range []error{
		ErrInvalidCredential, ErrUserDisabled, ErrTooManyAttempts,
		ErrEmailInUse, ErrWeakPassword, ErrInvalidEmail, ErrNotEnabled,
	} {
		assert.NotErrorIs(t, err, known)
	}
}

func TestMessageKey(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{ErrInvalidCredential, i18n.KeyAuthInvalidCredential},
		{ErrUserDisabled, i18n.KeyAuthUserDisabled},
		{ErrTooManyAttempts, i18n.KeyAuthTooManyRequests},
		{ErrEmailInUse, i18n.KeyAuthEmailInUse},
		{ErrWeakPassword, i18n.KeyAuthWeakPassword},
		{ErrInvalidEmail, i18n.KeyAuthInvalidEmail},
		{ErrNotEnabled, i18n.KeyAuthNotEnabled},
		{ErrNetwork, i18n.KeyAuthNetworkFailed},
		{errors.New("something else"), i18n.KeyAuthGeneric},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MessageKey(tt.err))
	}
}

// roundTripFunc lets tests stand in for the Identity Toolkit endpoint.
type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}
}

func bridgeWith(rt roundTripFunc) *FirebaseBridge {
	return &FirebaseBridge{
		APIKey:     "test-key",
		HTTPClient: &http.Client{Transport: rt},
	}
}

func TestSignInReturnsIdentity(t *testing.T) {
	b := bridgeWith(func(req *http.Request) (*http.Response, error) {
		assert.Contains(t, req.URL.Path, "accounts:signInWithPassword")
		assert.Equal(t, "test-key", req.URL.Query().Get("key"))
		return jsonResponse(200, `{"localId":"uid-1","email":"noura@example.com","displayName":"Noura"}`), nil
	})

	id, err := b.SignIn(context.Background(), "noura@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "uid-1", id.UID)
	assert.Equal(t, "noura@example.com", id.Email)
	assert.Equal(t, "Noura", id.DisplayName)
}

func TestSignInMapsProviderRejection(t *testing.T) {
	b := bridgeWith(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(400, `{"error":{"message":"INVALID_LOGIN_CREDENTIALS"}}`), nil
	})

	_, err := b.SignIn(context.Background(), "noura@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestSignInTransportFailureIsNetworkError(t *testing.T) {
	b := bridgeWith(func(req *http.Request) (*http.Response, error) {
		return nil, errors.New("connection refused")
	})

	_, err := b.SignIn(context.Background(), "noura@example.com", "secret123")
	assert.ErrorIs(t, err, ErrNetwork)
}

func TestRegisterRejectsBadInputBeforeProviderCall(t *testing.T) {
	// Admin is nil; reaching the provider would panic, which is the point.
	b := &FirebaseBridge{}

	_, err := b.Register(context.Background(), "not-an-email", "secret123", "Noura")
	assert.ErrorIs(t, err, ErrInvalidEmail)

	_, err = b.Register(context.Background(), "noura@example.com", "short", "Noura")
	assert.ErrorIs(t, err, ErrWeakPassword)
}

func TestSendPasswordResetSwallowsUnknownAddress(t *testing.T) {
	b := bridgeWith(func(req *http.Request) (*http.Response, error) {
		assert.Contains(t, req.URL.Path, "accounts:sendOobCode")
		return jsonResponse(400, `{"error":{"message":"EMAIL_NOT_FOUND"}}`), nil
	})

	assert.NoError(t, b.SendPasswordReset(context.Background(), "nobody@example.com"))
}

func TestSendPasswordResetPropagatesOtherFailures(t *testing.T) {
	b := bridgeWith(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(400, `{"error":{"message":"TOO_MANY_ATTEMPTS_TRY_LATER"}}`), nil
	})

	err := b.SendPasswordReset(context.Background(), "noura@example.com")
	assert.ErrorIs(t, err, ErrTooManyAttempts)
}
