// Package booking implements the reservation workflow: checkout validation,
// total derivation, the role-scoped booking feed and the status update with
// its legacy-collection fallback.
package booking

import (
	"context"
	"errors"
	"fmt"
	"math"
	"regexp"
	"sort"
	"time"

	bookingRepo "github.com/voueil/Herafona-website/database/repository/booking"
	"github.com/voueil/Herafona-website/i18n"
	"github.com/voueil/Herafona-website/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

// emailPattern is the loose address check the checkout form applies.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// CheckoutInput is the checkout form payload. Date and Time arrive as the
// form fields produce them ("2006-01-02" and "15:04").
type CheckoutInput struct {
	FullName       string   `json:"fullName"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
	Date           string   `json:"date"`
	Time           string   `json:"time"`
	NumberOfPeople int      `json:"numberOfPeople"`
	TotalPrice     *float64 `json:"totalPrice"`
}

// Snapshot is one full state of a role-scoped booking feed.
type Snapshot struct {
	Bookings []models.Booking
	Err      error
}

// Service is the booking workflow.
type Service interface {
	// CreateBooking validates the checkout form and writes a pending booking
	// whose provider is copied from the experience owner.
	CreateBooking(ctx context.Context, requester *models.User, exp models.Experience, input CheckoutInput) (*models.Booking, error)
	// ListFor returns the requester-scoped or provider-scoped bookings,
	// newest first.
	ListFor(ctx context.Context, user *models.User) ([]models.Booking, error)
	// UpdateStatus sets a booking's status on behalf of its provider,
	// resolving the document against the primary collection and then the
	// legacy one. A booking held by another provider resolves to NotFound.
	UpdateStatus(ctx context.Context, provider *models.User, bookingID string, status models.BookingStatus) (bookingRepo.Resolution, error)
	// Subscribe streams full role-scoped snapshots until ctx is cancelled.
	Subscribe(ctx context.Context, user *models.User) (<-chan Snapshot, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo bookingRepo.BookingRepository
}

// CreateBooking runs the blocking client-side validation, derives the total
// and writes the record with status pending.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, requester *models.User, exp models.Experience, input CheckoutInput) (*models.Booking, error) {
	if input.Date == "" || input.Time == "" {
		return nil, &ValidationError{Field: "date", Key: i18n.KeyDateTimeRequired}
	}
	when, err := time.Parse("2006-01-02T15:04", input.Date+"T"+input.Time)
	if err != nil {
		return nil, &ValidationError{Field: "date", Key: i18n.KeyDateTimeInvalid}
	}
	if input.FullName == "" {
		return nil, &ValidationError{Field: "fullName", Key: i18n.KeyFullNameRequired}
	}
	if !emailPattern.MatchString(input.Email) {
		return nil, &ValidationError{Field: "email", Key: i18n.KeyEmailInvalid}
	}

	persons := input.NumberOfPeople
	if persons < 1 {
		return nil, &ValidationError{Field: "numberOfPeople", Key: i18n.KeyPersonsMin}
	}
	if exp.MaxPersons > 0 && persons > exp.MaxPersons {
		return nil, &ValidationError{Field: "numberOfPeople", Key: i18n.KeyExceedsMaxPersons, Max: exp.MaxPersons}
	}

	total := exp.PricePerPerson * float64(persons)
	if input.TotalPrice != nil {
		total = *input.TotalPrice
	}
	if math.IsNaN(total) || math.IsInf(total, 0) {
		total = 0
	}

	b := &models.Booking{
		ID:              uuid.New().String(),
		ExperienceID:    exp.ID,
		ExperienceTitle: exp.Title,
		UserID:          requester.UID,
		ArtisanID:       exp.ArtisanUID,
		BookingDate:     when,
		NumberOfPeople:  persons,
		TotalPrice:      total,
		Status:          models.BookingPending,
		UserName:        input.FullName,
		UserEmail:       input.Email,
		UserPhone:       input.Phone,
	}

	if err := s.Repo.Create(b); err != nil {
		if isPermissionDenied(err) {
			return nil, fmt.Errorf("%w: %v", ErrNotAuthorized, err)
		}
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	return b, nil
}

// ListFor scopes the feed by role: artisans see bookings they provide,
// everyone else sees bookings they requested. Sorted newest-first with
// missing timestamps treated as earliest.
func (s *DefaultBookingService) ListFor(ctx context.Context, user *models.User) ([]models.Booking, error) {
	var (
		bookings []models.Booking
		err      error
	)
	if user.AccountType == models.AccountArtisan {
		bookings, err = s.Repo.ListByArtisan(ctx, user.UID)
	} else {
		bookings, err = s.Repo.ListByUser(ctx, user.UID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	sort.SliceStable(bookings, func(i, j int) bool {
		return bookings[i].CreatedAtSeconds() > bookings[j].CreatedAtSeconds()
	})
	for i := range bookings {
		bookings[i].Normalize()
	}
	return bookings, nil
}

// UpdateStatus accepts any of the three valid statuses; there is no enforced
// transition graph beyond the enum itself. Only the provider a booking belongs
// to can change it: the repo filter carries the provider UID, so someone
// else's booking resolves to NotFound.
func (s *DefaultBookingService) UpdateStatus(ctx context.Context, provider *models.User, bookingID string, status models.BookingStatus) (bookingRepo.Resolution, error) {
	if !status.IsValid() {
		return bookingRepo.NotFound, ErrInvalidStatus
	}
	return s.Repo.UpdateStatus(ctx, bookingID, provider.UID, status)
}

// Subscribe pushes an initial snapshot and a fresh one after every change
// event. The feed is bound to the identity and role captured at call time;
// callers cancel and resubscribe when either changes.
func (s *DefaultBookingService) Subscribe(ctx context.Context, user *models.User) (<-chan Snapshot, error) {
	events, err := s.Repo.Watch(ctx)
	if err != nil {
		return nil, err
	}

	out := make(chan Snapshot, 1)
	go func() {
		defer close(out)

		// Sends race against cancellation: a consumer that stopped reading
		// must not pin this goroutine on a full buffer.
		push := func() {
			bookings, err := s.ListFor(ctx, user)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				select {
				case out <- Snapshot{Err: err}:
				case <-ctx.Done():
				}
				return
			}
			select {
			case out <- Snapshot{Bookings: bookings}:
			case <-ctx.Done():
			}
		}

		push()
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-events:
				if !ok {
					return
				}
				push()
			}
		}
	}()
	return out, nil
}

// isPermissionDenied recognizes the backend's unauthorized command error.
func isPermissionDenied(err error) bool {
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Code == 13 || cmdErr.Name == "Unauthorized"
	}
	return false
}
