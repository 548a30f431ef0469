package userRepo

import "github.com/voueil/Herafona-website/models"

// ProfileUpdate carries the owner-mutable profile fields. Account type and
// email are immutable after creation and deliberately absent here.
type ProfileUpdate struct {
	FullName    *string
	PhoneNumber *string
	City        *string
	AvatarURL   *string
}

// UserRepository defines methods for profile data access.
type UserRepository interface {
	// GetByUID retrieves a profile by the auth provider's UID. Returns
	// (nil, nil) when no profile document exists.
	GetByUID(uid string) (*models.User, error)
	// Create inserts a new profile document.
	Create(user *models.User) error
	// UpdateProfile applies the owner-mutable fields to an existing profile.
	UpdateProfile(uid string, update ProfileUpdate) (*models.User, error)
}
