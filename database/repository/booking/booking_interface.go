package bookingRepo

import (
	"context"

	"github.com/voueil/Herafona-website/models"
)

// Resolution reports where a status update landed. Updates try the primary
// collection first and retry the legacy location on a miss, so callers can
// tell the two apart instead of swallowing a bare exception.
type Resolution int

const (
	// NotFound means neither the primary nor the legacy location holds the
	// booking.
	NotFound Resolution = iota
	// FoundPrimary means the primary collection held the booking.
	FoundPrimary
	// FoundLegacy means only the legacy collection held the booking.
	FoundLegacy
)

// BookingRepository defines data access for reservations. Listing is
// deliberately unsorted server-side; callers sort client-side to avoid the
// index fragility the catalog query suffers from.
type BookingRepository interface {
	// Create inserts a new booking document, stamping its creation time.
	Create(booking *models.Booking) error
	// ListByArtisan retrieves bookings where the given UID is the provider.
	ListByArtisan(ctx context.Context, artisanID string) ([]models.Booking, error)
	// ListByUser retrieves bookings where the given UID is the requester.
	ListByUser(ctx context.Context, userID string) ([]models.Booking, error)
	// UpdateStatus sets the status of one booking owned by the given provider,
	// resolving the document against the primary collection first and the
	// legacy one second. A booking held by a different provider resolves to
	// NotFound; the ownership filter is part of the update itself.
	UpdateStatus(ctx context.Context, bookingID, artisanID string, status models.BookingStatus) (Resolution, error)
	// Watch emits a signal for every change to the primary collection until
	// ctx is cancelled.
	Watch(ctx context.Context) (<-chan struct{}, error)
}
