package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/voueil/Herafona-website/database"
	"github.com/voueil/Herafona-website/models"
	"github.com/voueil/Herafona-website/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const (
	// primaryCollection is where new bookings are written.
	primaryCollection = "booking"
	// legacyCollection is the historical location still holding older
	// bookings; status updates fall back to it when the primary misses.
	legacyCollection = "bookings"
)

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	primary *mongo.Collection
	legacy  *mongo.Collection
}

// NewMongoBookingRepo creates a new booking repository.
func NewMongoBookingRepo() BookingRepository {
	db := database.DB()
	return &MongoBookingRepo{
		primary: db.Collection(primaryCollection),
		legacy:  db.Collection(legacyCollection),
	}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// Create inserts a new booking document into the primary collection.
func (r *MongoBookingRepo) Create(booking *models.Booking) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	booking.CreatedAt = time.Now()

	if _, err := r.primary.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// ListByArtisan retrieves bookings where the UID is the provider.
func (r *MongoBookingRepo) ListByArtisan(ctx context.Context, artisanID string) ([]models.Booking, error) {
	return r.list(ctx, bson.M{"artisanID": artisanID})
}

// ListByUser retrieves bookings where the UID is the requester.
func (r *MongoBookingRepo) ListByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	return r.list(ctx, bson.M{"userID": userID})
}

func (r *MongoBookingRepo) list(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	cursor, err := r.primary.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	for cursor.Next(ctx) {
		var b models.Booking
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("failed to decode booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("booking cursor failed: %w", err)
	}
	return bookings, nil
}

// UpdateStatus sets the booking status, trying the primary collection first
// and the legacy collection on a miss. The filter carries the provider UID so
// a booking owned by someone else matches nothing.
func (r *MongoBookingRepo) UpdateStatus(ctx context.Context, bookingID, artisanID string, status models.BookingStatus) (Resolution, error) {
	filter := bson.M{"id": bookingID, "artisanID": artisanID}
	update := bson.M{"$set": bson.M{"status": status}}

	result, err := r.primary.UpdateOne(ctx, filter, update)
	if err != nil {
		return NotFound, fmt.Errorf("failed to update booking %s: %w", bookingID, err)
	}
	if result.MatchedCount > 0 {
		return FoundPrimary, nil
	}

	result, err = r.legacy.UpdateOne(ctx, filter, update)
	if err != nil {
		return NotFound, fmt.Errorf("failed to update legacy booking %s: %w", bookingID, err)
	}
	if result.MatchedCount > 0 {
		return FoundLegacy, nil
	}
	return NotFound, nil
}

// Watch opens a change stream on the primary collection and signals on every
// event.
func (r *MongoBookingRepo) Watch(ctx context.Context) (<-chan struct{}, error) {
	stream, err := r.primary.Watch(ctx, mongo.Pipeline{})
	if err != nil {
		return nil, fmt.Errorf("failed to watch bookings: %w", err)
	}

	events := make(chan struct{}, 1)
	go func() {
		defer close(events)
		defer stream.Close(context.Background())
		for stream.Next(ctx) {
			select {
			case events <- struct{}{}:
			default:
			}
		}
		if err := stream.Err(); err != nil && ctx.Err() == nil {
			utils.GetLogger().Warn("booking change stream closed", zap.Error(err))
		}
	}()
	return events, nil
}
