package experienceRepo

import (
	"context"

	"github.com/voueil/Herafona-website/models"
)

// ExperienceRepository defines data access for the experience catalog.
// Experiences are write-once: created by artisans, never updated or deleted.
type ExperienceRepository interface {
	// Create inserts a new experience document, stamping its creation time.
	Create(exp *models.Experience) error
	// GetByID retrieves one experience, (nil, nil) when absent.
	GetByID(ctx context.Context, id string) (*models.Experience, error)
	// ListSorted retrieves all experiences sorted newest-first on the server.
	// It fails when the backend rejects the sorted query (e.g. no supporting
	// index); callers fall back to ListUnsorted plus a client-side sort.
	ListSorted(ctx context.Context) ([]models.Experience, error)
	// ListUnsorted retrieves all experiences in storage order.
	ListUnsorted(ctx context.Context) ([]models.Experience, error)
	// Watch emits a signal for every change to the collection until ctx is
	// cancelled. Consumers re-read the full snapshot on each signal.
	Watch(ctx context.Context) (<-chan struct{}, error)
}
