package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	fbauth "firebase.google.com/go/v4/auth"
)

const identityToolkitURL = "https://identitytoolkit.googleapis.com/v1"

// emailPattern is the same loose address check the registration form applies.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// FirebaseBridge implements Bridge against Firebase Authentication. Password
// verification and reset-email dispatch go through the public Identity
// Toolkit REST API (the endpoint the web SDK itself calls); account creation
// uses the Admin SDK.
type FirebaseBridge struct {
	Admin      *fbauth.Client
	APIKey     string
	HTTPClient *http.Client
}

// NewFirebaseBridge wires a bridge with a sane HTTP timeout.
func NewFirebaseBridge(admin *fbauth.Client, apiKey string) *FirebaseBridge {
	return &FirebaseBridge{
		Admin:      admin,
		APIKey:     apiKey,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type signInResponse struct {
	LocalID     string `json:"localId"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
}

type toolkitError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// SignIn verifies the credential with the Identity Toolkit password verifier.
func (b *FirebaseBridge) SignIn(ctx context.Context, email, password string) (*Identity, error) {
	payload := map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	}

	var resp signInResponse
	if err := b.post(ctx, "accounts:signInWithPassword", payload, &resp); err != nil {
		return nil, err
	}
	return &Identity{UID: resp.LocalID, Email: resp.Email, DisplayName: resp.DisplayName}, nil
}

// Register creates the account through the Admin SDK. The email and password
// policies are checked up front so rejections map to typed errors instead of
// SDK argument errors.
func (b *FirebaseBridge) Register(ctx context.Context, email, password, displayName string) (*Identity, error) {
	if !emailPattern.MatchString(email) {
		return nil, ErrInvalidEmail
	}
	if len(password) < 6 {
		return nil, ErrWeakPassword
	}

	params := (&fbauth.UserToCreate{}).
		Email(email).
		Password(password)
	if displayName != "" {
		params = params.DisplayName(displayName)
	}

	record, err := b.Admin.CreateUser(ctx, params)
	if err != nil {
		if fbauth.IsEmailAlreadyExists(err) {
			return nil, ErrEmailInUse
		}
		return nil, fmt.Errorf("failed to create account: %w", err)
	}
	return &Identity{UID: record.UID, Email: record.Email, DisplayName: record.DisplayName}, nil
}

// SendPasswordReset dispatches the reset email. An unknown address is treated
// as success so the endpoint does not leak which emails are registered.
func (b *FirebaseBridge) SendPasswordReset(ctx context.Context, email string) error {
	payload := map[string]any{
		"requestType": "PASSWORD_RESET",
		"email":       strings.TrimSpace(email),
	}
	err := b.post(ctx, "accounts:sendOobCode", payload, &struct{}{})
	if errors.Is(err, ErrInvalidCredential) {
		// EMAIL_NOT_FOUND maps here; an unknown address still reports success.
		return nil
	}
	return err
}

func (b *FirebaseBridge) post(ctx context.Context, endpoint string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode %s request: %w", endpoint, err)
	}

	url := fmt.Sprintf("%s/%s?key=%s", identityToolkitURL, endpoint, b.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build %s request: %w", endpoint, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var te toolkitError
		if err := json.NewDecoder(resp.Body).Decode(&te); err != nil {
			return fmt.Errorf("%w: status %d", ErrNetwork, resp.StatusCode)
		}
		return mapToolkitError(te.Error.Message)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", endpoint, err)
	}
	return nil
}

// mapToolkitError collapses the Identity Toolkit error codes into the fixed
// error set. The provider sometimes suffixes codes with " : explanation".
func mapToolkitError(code string) error {
	switch {
	case strings.HasPrefix(code, "EMAIL_NOT_FOUND"),
		strings.HasPrefix(code, "INVALID_PASSWORD"),
		strings.HasPrefix(code, "INVALID_LOGIN_CREDENTIALS"):
		return ErrInvalidCredential
	case strings.HasPrefix(code, "USER_DISABLED"):
		return ErrUserDisabled
	case strings.HasPrefix(code, "TOO_MANY_ATTEMPTS_TRY_LATER"):
		return ErrTooManyAttempts
	case strings.HasPrefix(code, "EMAIL_EXISTS"):
		return ErrEmailInUse
	case strings.HasPrefix(code, "WEAK_PASSWORD"):
		return ErrWeakPassword
	case strings.HasPrefix(code, "INVALID_EMAIL"):
		return ErrInvalidEmail
	case strings.HasPrefix(code, "OPERATION_NOT_ALLOWED"):
		return ErrNotEnabled
	default:
		return fmt.Errorf("auth provider rejected request: %s", code)
	}
}
