// Package profile maps authenticated identities to profile documents in the
// users collection.
package profile

import (
	"fmt"

	userRepo "github.com/voueil/Herafona-website/database/repository/user"
	"github.com/voueil/Herafona-website/models"
	"github.com/voueil/Herafona-website/services/auth"
	"github.com/voueil/Herafona-website/utils"

	"go.uber.org/zap"
)

// UpdateInput carries the owner-mutable profile fields. Nil means "leave
// unchanged"; account type and email cannot be changed at all.
type UpdateInput struct {
	FullName    *string `json:"fullName"`
	PhoneNumber *string `json:"phoneNumber"`
	City        *string `json:"city"`
	AvatarURL   *string `json:"avatarUrl"`
}

// RegistrationInput is the full profile captured by the registration form.
type RegistrationInput struct {
	FullName    string
	PhoneNumber string
	City        string
	AccountType models.AccountType
}

// Service manages profile documents.
type Service interface {
	// Get fetches a profile, (nil, nil) when absent.
	Get(uid string) (*models.User, error)
	// EnsureProfile fetches the profile for an identity, creating a default
	// tourist profile on first login. Returns the profile and whether it was
	// just created.
	EnsureProfile(identity *auth.Identity) (*models.User, bool, error)
	// CreateFromRegistration writes the profile captured at registration.
	CreateFromRegistration(identity *auth.Identity, input RegistrationInput) (*models.User, error)
	// Update applies owner-mutable fields to an existing profile.
	Update(uid string, input UpdateInput) (*models.User, error)
}

// DefaultProfileService is the production implementation.
type DefaultProfileService struct {
	Repo userRepo.UserRepository
}

// Get fetches a profile by UID.
func (s *DefaultProfileService) Get(uid string) (*models.User, error) {
	return s.Repo.GetByUID(uid)
}

// EnsureProfile looks the identity up and creates a default profile if none
// exists yet. The default mirrors a fresh social/first login: tourist account,
// display name taken from the provider.
func (s *DefaultProfileService) EnsureProfile(identity *auth.Identity) (*models.User, bool, error) {
	existing, err := s.Repo.GetByUID(identity.UID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to look up profile: %w", err)
	}
	if existing != nil {
		return existing, false, nil
	}

	user := &models.User{
		UID:         identity.UID,
		FullName:    identity.DisplayName,
		Email:       identity.Email,
		AccountType: models.AccountTourist,
	}
	if err := s.Repo.Create(user); err != nil {
		return nil, false, fmt.Errorf("failed to create profile: %w", err)
	}
	utils.GetLogger().Info("created profile on first login", zap.String("uid", identity.UID))
	return user, true, nil
}

// CreateFromRegistration writes the registration-form profile.
func (s *DefaultProfileService) CreateFromRegistration(identity *auth.Identity, input RegistrationInput) (*models.User, error) {
	user := &models.User{
		UID:         identity.UID,
		FullName:    input.FullName,
		Email:       identity.Email,
		PhoneNumber: input.PhoneNumber,
		City:        input.City,
		AccountType: models.ParseAccountType(string(input.AccountType)),
	}
	if err := s.Repo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	return user, nil
}

// Update applies the owner-mutable fields.
func (s *DefaultProfileService) Update(uid string, input UpdateInput) (*models.User, error) {
	return s.Repo.UpdateProfile(uid, userRepo.ProfileUpdate{
		FullName:    input.FullName,
		PhoneNumber: input.PhoneNumber,
		City:        input.City,
		AvatarURL:   input.AvatarURL,
	})
}
