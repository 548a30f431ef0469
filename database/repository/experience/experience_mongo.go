package experienceRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/voueil/Herafona-website/database"
	"github.com/voueil/Herafona-website/models"
	"github.com/voueil/Herafona-website/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const collectionName = "experiences"

// MongoExperienceRepo implements ExperienceRepository using MongoDB.
type MongoExperienceRepo struct {
	coll *mongo.Collection
}

// NewMongoExperienceRepo creates a new catalog repository.
func NewMongoExperienceRepo() ExperienceRepository {
	coll := database.DB().Collection(collectionName)
	return &MongoExperienceRepo{coll: coll}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// Create inserts a new experience document.
func (r *MongoExperienceRepo) Create(exp *models.Experience) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	exp.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, exp); err != nil {
		return fmt.Errorf("failed to create experience: %w", err)
	}
	return nil
}

// GetByID retrieves one experience, (nil, nil) when absent.
func (r *MongoExperienceRepo) GetByID(ctx context.Context, id string) (*models.Experience, error) {
	var exp models.Experience
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&exp); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch experience %s: %w", id, err)
	}
	return &exp, nil
}

// ListSorted retrieves all experiences newest-first using a server-side sort.
func (r *MongoExperienceRepo) ListSorted(ctx context.Context) ([]models.Experience, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return r.list(ctx, opts)
}

// ListUnsorted retrieves all experiences in storage order.
func (r *MongoExperienceRepo) ListUnsorted(ctx context.Context) ([]models.Experience, error) {
	return r.list(ctx, options.Find())
}

func (r *MongoExperienceRepo) list(ctx context.Context, opts *options.FindOptions) ([]models.Experience, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve experiences: %w", err)
	}
	defer cursor.Close(ctx)

	var exps []models.Experience
	for cursor.Next(ctx) {
		var e models.Experience
		if err := cursor.Decode(&e); err != nil {
			return nil, fmt.Errorf("failed to decode experience: %w", err)
		}
		exps = append(exps, e)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("experience cursor failed: %w", err)
	}
	return exps, nil
}

// Watch opens a change stream on the collection and signals on every event.
func (r *MongoExperienceRepo) Watch(ctx context.Context) (<-chan struct{}, error) {
	stream, err := r.coll.Watch(ctx, mongo.Pipeline{})
	if err != nil {
		return nil, fmt.Errorf("failed to watch experiences: %w", err)
	}

	events := make(chan struct{}, 1)
	go func() {
		defer close(events)
		defer stream.Close(context.Background())
		for stream.Next(ctx) {
			select {
			case events <- struct{}{}:
			default: // a signal is already pending, snapshot reads coalesce
			}
		}
		if err := stream.Err(); err != nil && ctx.Err() == nil {
			utils.GetLogger().Warn("experience change stream closed", zap.Error(err))
		}
	}()
	return events, nil
}
