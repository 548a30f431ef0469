package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/voueil/Herafona-website/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExperienceRepo struct {
	sorted    []models.Experience
	sortedErr error
	unsorted  []models.Experience

	created []models.Experience
	byID    map[string]*models.Experience

	events chan struct{}
}

func newFakeExperienceRepo() *fakeExperienceRepo {
	return &fakeExperienceRepo{
		byID:   map[string]*models.Experience{},
		events: make(chan struct{}, 8),
	}
}

func (f *fakeExperienceRepo) Create(exp *models.Experience) error {
	exp.CreatedAt = time.Now()
	f.created = append(f.created, *exp)
	return nil
}

func (f *fakeExperienceRepo) GetByID(ctx context.Context, id string) (*models.Experience, error) {
	return f.byID[id], nil
}

func (f *fakeExperienceRepo) ListSorted(ctx context.Context) ([]models.Experience, error) {
	if f.sortedErr != nil {
		return nil, f.sortedErr
	}
	return f.sorted, nil
}

func (f *fakeExperienceRepo) ListUnsorted(ctx context.Context) ([]models.Experience, error) {
	return f.unsorted, nil
}

func (f *fakeExperienceRepo) Watch(ctx context.Context) (<-chan struct{}, error) {
	return f.events, nil
}

// fakeUploader records calls so tests can assert the no-image path skips it.
type fakeUploader struct {
	calls int
	url   string
	err   error
}

func (f *fakeUploader) UploadDataURL(ctx context.Context, dataURL string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.url, nil
}

func artisan() *models.User {
	return &models.User{UID: "artisan-7", FullName: "Abu Khalid", AccountType: models.AccountArtisan}
}

func TestListPrefersSortedQuery(t *testing.T) {
	repo := newFakeExperienceRepo()
	repo.sorted = []models.Experience{
		{ID: "b", Title: "Pottery"},
		{ID: "a", Title: "Weaving"},
	}
	svc := &DefaultCatalogService{Repo: repo}

	got, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].ID)
	assert.Equal(t, "a", got[1].ID)
}

func TestListFallbackStillNewestFirst(t *testing.T) {
	now := time.Now()
	repo := newFakeExperienceRepo()
	repo.sortedErr = errors.New("query requires an index")
	repo.unsorted = []models.Experience{
		{ID: "oldest", CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "newest", CreatedAt: now},
		{ID: "untimed"},
		{ID: "middle", CreatedAt: now.Add(-time.Hour)},
	}
	svc := &DefaultCatalogService{Repo: repo}

	got, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.Equal(t, "newest", got[0].ID)
	assert.Equal(t, "middle", got[1].ID)
	assert.Equal(t, "oldest", got[2].ID)
	assert.Equal(t, "untimed", got[3].ID)
}

func TestListNormalizesRecords(t *testing.T) {
	repo := newFakeExperienceRepo()
	repo.sorted = []models.Experience{{ID: "a", Title: "Weaving"}}
	svc := &DefaultCatalogService{Repo: repo}

	got, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, got[0].MaxPersons)
	assert.Equal(t, float64(1), got[0].DurationHours)
	assert.Equal(t, "any", got[0].AllowedGender)
}

func TestCreateExperienceRequiresTitle(t *testing.T) {
	uploader := &fakeUploader{url: "https://img.example/x.jpg"}
	svc := &DefaultCatalogService{Repo: newFakeExperienceRepo(), Uploader: uploader}

	_, err := svc.CreateExperience(context.Background(), artisan(), CreateInput{Image: "data:image/png;base64,aGk="})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "title", vErr.Field)
	assert.Zero(t, uploader.calls)
}

func TestCreateExperienceWithoutImageSkipsUpload(t *testing.T) {
	repo := newFakeExperienceRepo()
	uploader := &fakeUploader{url: "https://img.example/x.jpg"}
	svc := &DefaultCatalogService{Repo: repo, Uploader: uploader}

	exp, err := svc.CreateExperience(context.Background(), artisan(), CreateInput{Title: "Sadu Basics"})
	require.NoError(t, err)

	assert.Zero(t, uploader.calls)
	assert.Nil(t, exp.Image)
	require.Len(t, repo.created, 1)
}

func TestCreateExperienceResolvesImageBeforeWrite(t *testing.T) {
	repo := newFakeExperienceRepo()
	uploader := &fakeUploader{url: "https://img.example/sadu.jpg"}
	svc := &DefaultCatalogService{Repo: repo, Uploader: uploader}

	exp, err := svc.CreateExperience(context.Background(), artisan(), CreateInput{
		Title: "Sadu Basics",
		Image: "data:image/jpeg;base64,aGk=",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, uploader.calls)
	require.NotNil(t, exp.Image)
	assert.Equal(t, "https://img.example/sadu.jpg", *exp.Image)
}

func TestCreateExperienceUploadFailureAbortsWrite(t *testing.T) {
	repo := newFakeExperienceRepo()
	uploader := &fakeUploader{err: errors.New("upload rejected")}
	svc := &DefaultCatalogService{Repo: repo, Uploader: uploader}

	_, err := svc.CreateExperience(context.Background(), artisan(), CreateInput{
		Title: "Sadu Basics",
		Image: "data:image/jpeg;base64,aGk=",
	})
	require.Error(t, err)
	assert.Empty(t, repo.created)
}

func TestCreateExperienceStampsOwnerAndDefaults(t *testing.T) {
	repo := newFakeExperienceRepo()
	svc := &DefaultCatalogService{Repo: repo, Uploader: &fakeUploader{}}

	exp, err := svc.CreateExperience(context.Background(), artisan(), CreateInput{Title: "Sadu Basics"})
	require.NoError(t, err)

	assert.NotEmpty(t, exp.ID)
	assert.Equal(t, "artisan-7", exp.ArtisanUID)
	assert.Equal(t, "artisan-7", exp.CreatedBy)
	assert.Equal(t, "Abu Khalid", exp.ArtisanName)
	assert.Equal(t, 1, exp.MaxPersons)
	assert.Equal(t, "any", exp.AllowedGender)
}

func TestSubscribeClosesAfterCancelWithoutDraining(t *testing.T) {
	repo := newFakeExperienceRepo()
	repo.sorted = []models.Experience{{ID: "a", Title: "Weaving"}}
	svc := &DefaultCatalogService{Repo: repo}

	ctx, cancel := context.WithCancel(context.Background())

	snapshots, err := svc.Subscribe(ctx)
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

func TestSubscribeReplacesSnapshots(t *testing.T) {
	repo := newFakeExperienceRepo()
	repo.sorted = []models.Experience{{ID: "a", Title: "Weaving"}}
	svc := &DefaultCatalogService{Repo: repo}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	snapshots, err := svc.Subscribe(ctx)
	require.NoError(t, err)

	first := <-snapshots
	require.NoError(t, first.Err)
	require.Len(t, first.Experiences, 1)

	repo.sorted = []models.Experience{
		{ID: "b", Title: "Pottery"},
		{ID: "a", Title: "Weaving"},
	}
	repo.events <- struct{}{}

	second := <-snapshots
	require.NoError(t, second.Err)
	assert.Len(t, second.Experiences, 2)
	assert.Equal(t, "b", second.Experiences[0].ID)
}
