// Package catalog produces the live, newest-first experience feed and handles
// artisan experience creation.
package catalog

import (
	"context"
	"fmt"
	"sort"

	experienceRepo "github.com/voueil/Herafona-website/database/repository/experience"
	"github.com/voueil/Herafona-website/i18n"
	"github.com/voueil/Herafona-website/models"
	"github.com/voueil/Herafona-website/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateInput is the add-experience form payload. Image, when present, is a
// base64 data URL that must be resolved to a remote URL before the record is
// written.
type CreateInput struct {
	Category       string  `json:"category"`
	Title          string  `json:"title"`
	MaxPersons     int     `json:"maxPersons"`
	AllowedGender  string  `json:"allowedGender"`
	City           string  `json:"city"`
	Description    string  `json:"description"`
	PricePerPerson float64 `json:"pricePerPerson"`
	DurationHours  float64 `json:"durationHours"`
	Image          string  `json:"image"`
}

// ValidationError is a field-level rejection carrying its translation key.
type ValidationError struct {
	Field string
	Key   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s", e.Field)
}

// ImageUploader is the slice of the storage adapter the catalog needs.
type ImageUploader interface {
	UploadDataURL(ctx context.Context, dataURL string) (string, error)
}

// Service is the experience catalog.
type Service interface {
	// List returns all experiences newest-first, using the sorted query when
	// the backend supports it and a client-side sort otherwise.
	List(ctx context.Context) ([]models.Experience, error)
	// GetByID fetches one normalized experience, (nil, nil) when absent.
	GetByID(ctx context.Context, id string) (*models.Experience, error)
	// CreateExperience uploads the attached image (if any) and writes the
	// record on behalf of the owning artisan.
	CreateExperience(ctx context.Context, owner *models.User, input CreateInput) (*models.Experience, error)
	// Subscribe streams full catalog snapshots until ctx is cancelled. Each
	// element replaces the previous collection entirely.
	Subscribe(ctx context.Context) (<-chan Snapshot, error)
}

// Snapshot is one full catalog state, or the error that prevented reading it.
// Errors come with an empty collection so consumers never render stale data
// as current.
type Snapshot struct {
	Experiences []models.Experience
	Err         error
}

// DefaultCatalogService is the production implementation.
type DefaultCatalogService struct {
	Repo     experienceRepo.ExperienceRepository
	Uploader ImageUploader
}

// List retrieves the catalog newest-first. The sorted query is attempted
// first; when the backend rejects it (missing index, sort memory limit) the
// unsorted query plus a client-side sort on creation seconds takes over.
// Consumers cannot tell the two paths apart.
func (s *DefaultCatalogService) List(ctx context.Context) ([]models.Experience, error) {
	exps, err := s.Repo.ListSorted(ctx)
	if err != nil {
		utils.GetLogger().Warn("sorted catalog query rejected, falling back", zap.Error(err))
		exps, err = s.Repo.ListUnsorted(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list experiences: %w", err)
		}
		sort.SliceStable(exps, func(i, j int) bool {
			return exps[i].CreatedAtSeconds() > exps[j].CreatedAtSeconds()
		})
	}

	for i := range exps {
		exps[i].Normalize()
	}
	return exps, nil
}

// GetByID fetches one normalized experience.
func (s *DefaultCatalogService) GetByID(ctx context.Context, id string) (*models.Experience, error) {
	exp, err := s.Repo.GetByID(ctx, id)
	if err != nil || exp == nil {
		return exp, err
	}
	exp.Normalize()
	return exp, nil
}

// CreateExperience resolves the image first and only then writes the record,
// so the store never holds a reference to an unresolved image.
func (s *DefaultCatalogService) CreateExperience(ctx context.Context, owner *models.User, input CreateInput) (*models.Experience, error) {
	if input.Title == "" {
		return nil, &ValidationError{Field: "title", Key: i18n.KeyTitleRequired}
	}

	var image *string
	if input.Image != "" {
		url, err := s.Uploader.UploadDataURL(ctx, input.Image)
		if err != nil {
			return nil, err
		}
		image = &url
	}

	exp := &models.Experience{
		ID:             uuid.New().String(),
		ArtisanUID:     owner.UID,
		ArtisanName:    owner.FullName,
		Category:       input.Category,
		Title:          input.Title,
		MaxPersons:     input.MaxPersons,
		AllowedGender:  input.AllowedGender,
		City:           input.City,
		Description:    input.Description,
		PricePerPerson: input.PricePerPerson,
		DurationHours:  input.DurationHours,
		Image:          image,
		CreatedBy:      owner.UID,
	}
	exp.Normalize()

	if err := s.Repo.Create(exp); err != nil {
		return nil, fmt.Errorf("failed to save experience: %w", err)
	}
	return exp, nil
}

// Subscribe pushes an initial snapshot and a fresh one after every change
// event. Snapshots always replace the previous collection; they are never
// merged.
func (s *DefaultCatalogService) Subscribe(ctx context.Context) (<-chan Snapshot, error) {
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
			exps, err := s.List(ctx)
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
			case out <- Snapshot{Experiences: exps}:
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
