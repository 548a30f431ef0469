package booking

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	bookingRepo "github.com/voueil/Herafona-website/database/repository/booking"
	"github.com/voueil/Herafona-website/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBookingRepo is an in-memory BookingRepository.
type fakeBookingRepo struct {
	created   []models.Booking
	createErr error

	primary map[string]*models.Booking
	legacy  map[string]*models.Booking

	byArtisan map[string][]models.Booking
	byUser    map[string][]models.Booking
	listErr   error

	events chan struct{}
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{
		primary:   map[string]*models.Booking{},
		legacy:    map[string]*models.Booking{},
		byArtisan: map[string][]models.Booking{},
		byUser:    map[string][]models.Booking{},
		events:    make(chan struct{}, 8),
	}
}

func (f *fakeBookingRepo) Create(b *models.Booking) error {
	if f.createErr != nil {
		return f.createErr
	}
	b.CreatedAt = time.Now()
	f.created = append(f.created, *b)
	return nil
}

func (f *fakeBookingRepo) ListByArtisan(ctx context.Context, artisanID string) ([]models.Booking, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.byArtisan[artisanID], nil
}

func (f *fakeBookingRepo) ListByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.byUser[userID], nil
}

func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, bookingID, artisanID string, status models.BookingStatus) (bookingRepo.Resolution, error) {
	if b, ok := f.primary[bookingID]; ok && b.ArtisanID == artisanID {
		b.Status = status
		return bookingRepo.FoundPrimary, nil
	}
	if b, ok := f.legacy[bookingID]; ok && b.ArtisanID == artisanID {
		b.Status = status
		return bookingRepo.FoundLegacy, nil
	}
	return bookingRepo.NotFound, nil
}

func (f *fakeBookingRepo) Watch(ctx context.Context) (<-chan struct{}, error) {
	return f.events, nil
}

func saduBasics() models.Experience {
	return models.Experience{
		ID:             "exp-1",
		ArtisanUID:     "artisan-7",
		Title:          "Sadu Basics",
		PricePerPerson: 90,
		MaxPersons:     15,
	}
}

func tourist() *models.User {
	return &models.User{UID: "user-1", AccountType: models.AccountTourist}
}

func validCheckout() CheckoutInput {
	return CheckoutInput{
		FullName:       "Noura S",
		Email:          "noura@example.com",
		Date:           "2025-06-01",
		Time:           "14:00",
		NumberOfPeople: 3,
	}
}

func TestCreateBookingDerivesTotalAndCopiesProvider(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := &DefaultBookingService{Repo: repo}

	b, err := svc.CreateBooking(context.Background(), tourist(), saduBasics(), validCheckout())
	require.NoError(t, err)

	assert.Equal(t, float64(270), b.TotalPrice)
	assert.Equal(t, models.BookingPending, b.Status)
	assert.Equal(t, "artisan-7", b.ArtisanID)
	assert.Equal(t, "user-1", b.UserID)
	assert.Equal(t, "Sadu Basics", b.ExperienceTitle)
	assert.Equal(t, time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC), b.BookingDate)
	require.Len(t, repo.created, 1)
}

func TestCreateBookingExplicitTotalWins(t *testing.T) {
	svc := &DefaultBookingService{Repo: newFakeBookingRepo()}

	input := validCheckout()
	total := 200.0
	input.TotalPrice = &total

	b, err := svc.CreateBooking(context.Background(), tourist(), saduBasics(), input)
	require.NoError(t, err)
	assert.Equal(t, float64(200), b.TotalPrice)
}

func TestCreateBookingNonFiniteTotalClampsToZero(t *testing.T) {
	svc := &DefaultBookingService{Repo: newFakeBookingRepo()}

	exp := saduBasics()
	exp.PricePerPerson = math.Inf(1)

	b, err := svc.CreateBooking(context.Background(), tourist(), exp, validCheckout())
	require.NoError(t, err)
	assert.Equal(t, float64(0), b.TotalPrice)
}

func TestCreateBookingValidation(t *testing.T) {
	svc := &DefaultBookingService{Repo: newFakeBookingRepo()}

	tests := []struct {
		name    string
		mutate  func(*CheckoutInput)
		field   string
	}{
		{"missing date", func(in *CheckoutInput) { in.Date = "" }, "date"},
		{"missing time", func(in *CheckoutInput) { in.Time = "" }, "date"},
		{"bad date format", func(in *CheckoutInput) { in.Date = "01/06/2025" }, "date"},
		{"empty full name", func(in *CheckoutInput) { in.FullName = "" }, "fullName"},
		{"bad email", func(in *CheckoutInput) { in.Email = "not-an-email" }, "email"},
		{"zero persons", func(in *CheckoutInput) { in.NumberOfPeople = 0 }, "numberOfPeople"},
		{"exceeds max persons", func(in *CheckoutInput) { in.NumberOfPeople = 16 }, "numberOfPeople"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validCheckout()
			tt.mutate(&input)

			_, err := svc.CreateBooking(context.Background(), tourist(), saduBasics(), input)
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.field, vErr.Field)
		})
	}
}

func TestCreateBookingMaxPersonsCarriesLimit(t *testing.T) {
	svc := &DefaultBookingService{Repo: newFakeBookingRepo()}

	input := validCheckout()
	input.NumberOfPeople = 20

	_, err := svc.CreateBooking(context.Background(), tourist(), saduBasics(), input)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, 15, vErr.Max)
}

func provider() *models.User {
	return &models.User{UID: "artisan-7", AccountType: models.AccountArtisan}
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	svc := &DefaultBookingService{Repo: newFakeBookingRepo()}

	_, err := svc.UpdateStatus(context.Background(), provider(), "b1", models.BookingStatus("archived"))
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatusResolvesLegacyLocation(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.legacy["b-legacy"] = &models.Booking{ID: "b-legacy", ArtisanID: "artisan-7", Status: models.BookingPending}
	svc := &DefaultBookingService{Repo: repo}

	res, err := svc.UpdateStatus(context.Background(), provider(), "b-legacy", models.BookingConfirmed)
	require.NoError(t, err)
	assert.Equal(t, bookingRepo.FoundLegacy, res)
	assert.Equal(t, models.BookingConfirmed, repo.legacy["b-legacy"].Status)

	res, err = svc.UpdateStatus(context.Background(), provider(), "missing", models.BookingCancelled)
	require.NoError(t, err)
	assert.Equal(t, bookingRepo.NotFound, res)
}

func TestUpdateStatusOnlyReachesOwnBookings(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.primary["b1"] = &models.Booking{ID: "b1", ArtisanID: "artisan-7", Status: models.BookingPending}
	repo.legacy["b2"] = &models.Booking{ID: "b2", ArtisanID: "artisan-7", Status: models.BookingPending}
	svc := &DefaultBookingService{Repo: repo}

	other := &models.User{UID: "artisan-9", AccountType: models.AccountArtisan}

	res, err := svc.UpdateStatus(context.Background(), other, "b1", models.BookingConfirmed)
	require.NoError(t, err)
	assert.Equal(t, bookingRepo.NotFound, res)
	assert.Equal(t, models.BookingPending, repo.primary["b1"].Status)

	res, err = svc.UpdateStatus(context.Background(), other, "b2", models.BookingCancelled)
	require.NoError(t, err)
	assert.Equal(t, bookingRepo.NotFound, res)
	assert.Equal(t, models.BookingPending, repo.legacy["b2"].Status)

	res, err = svc.UpdateStatus(context.Background(), provider(), "b1", models.BookingConfirmed)
	require.NoError(t, err)
	assert.Equal(t, bookingRepo.FoundPrimary, res)
	assert.Equal(t, models.BookingConfirmed, repo.primary["b1"].Status)
}

func TestListForScopesByRole(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.byArtisan["artisan-7"] = []models.Booking{
		{ID: "a1", ArtisanID: "artisan-7", Status: models.BookingPending},
	}
	repo.byUser["user-1"] = []models.Booking{
		{ID: "u1", UserID: "user-1", Status: models.BookingPending},
		{ID: "u2", UserID: "user-1", Status: models.BookingConfirmed},
	}
	svc := &DefaultBookingService{Repo: repo}

	artisan := &models.User{UID: "artisan-7", AccountType: models.AccountArtisan}
	got, err := svc.ListFor(context.Background(), artisan)
	require.NoError(t, err)
	require.Len(t, got, 1)
	for _, b := range got {
		assert.Equal(t, "artisan-7", b.ArtisanID)
	}

	got, err = svc.ListFor(context.Background(), tourist())
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, b := range got {
		assert.Equal(t, "user-1", b.UserID)
	}
}

func TestListForSortsNewestFirstMissingTimestampsEarliest(t *testing.T) {
	now := time.Now()
	repo := newFakeBookingRepo()
	repo.byUser["user-1"] = []models.Booking{
		{ID: "old", UserID: "user-1", CreatedAt: now.Add(-time.Hour)},
		{ID: "untimed", UserID: "user-1"},
		{ID: "new", UserID: "user-1", CreatedAt: now},
	}
	svc := &DefaultBookingService{Repo: repo}

	got, err := svc.ListFor(context.Background(), tourist())
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "new", got[0].ID)
	assert.Equal(t, "old", got[1].ID)
	assert.Equal(t, "untimed", got[2].ID)
}

func TestSubscribePushesReplacementSnapshots(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.byUser["user-1"] = []models.Booking{{ID: "u1", UserID: "user-1"}}
	svc := &DefaultBookingService{Repo: repo}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	snapshots, err := svc.Subscribe(ctx, tourist())
	require.NoError(t, err)

	first := <-snapshots
	require.NoError(t, first.Err)
	require.Len(t, first.Bookings, 1)

	repo.byUser["user-1"] = []models.Booking{
		{ID: "u1", UserID: "user-1"},
		{ID: "u2", UserID: "user-1"},
	}
	repo.events <- struct{}{}

	second := <-snapshots
	require.NoError(t, second.Err)
	assert.Len(t, second.Bookings, 2)
}

func TestSubscribeClosesAfterCancelWithoutDraining(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.byUser["user-1"] = []models.Booking{{ID: "u1", UserID: "user-1"}}
	svc := &DefaultBookingService{Repo: repo}

	ctx, cancel := context.WithCancel(context.Background())

	snapshots, err := svc.Subscribe(ctx, tourist())
	require.NoError(t, err)
	<-snapshots

	// Two change events with no reader: the first refill occupies the buffer,
	// the second leaves the sender blocked unless cancellation frees it.
	repo.events <- struct{}{}
	repo.events <- struct{}{}
	cancel()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-snapshots:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("snapshot channel did not close after cancellation")
		}
	}
}

func TestSubscribeSurfacesListErrors(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := &DefaultBookingService{Repo: repo}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	snapshots, err := svc.Subscribe(ctx, tourist())
	require.NoError(t, err)

	first := <-snapshots
	require.NoError(t, first.Err)

	repo.listErr = errors.New("backend unavailable")
	repo.events <- struct{}{}

	second := <-snapshots
	assert.Error(t, second.Err)
	assert.Empty(t, second.Bookings)
}
