package mongo

import (
	"context"
	"errors"
	"time"

	"manisera/affirmation-app/internal/domain"
	"manisera/affirmation-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const premiumCollectionName = "premium_status"

// mongoPremiumRepository implements repository.PremiumRepository.
type mongoPremiumRepository struct {
	collection *mongo.Collection
}

// NewMongoPremiumRepository creates a new instance of mongoPremiumRepository.
func NewMongoPremiumRepository(db *mongo.Database) repository.PremiumRepository {
	return &mongoPremiumRepository{
		collection: db.Collection(premiumCollectionName),
	}
}

// GetByUserID retrieves a user's subscription record.
func (r *mongoPremiumRepository) GetByUserID(ctx context.Context, userID primitive.ObjectID) (*domain.PremiumStatus, error) {
	var status domain.PremiumStatus
	filter := bson.M{"userId": userID}

	err := r.collection.FindOne(ctx, filter).Decode(&status)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &status, nil
}

// Upsert writes the subscription record for a user, replacing any previous one.
func (r *mongoPremiumRepository) Upsert(ctx context.Context, status *domain.PremiumStatus) error {
	status.UpdatedAt = time.Now().UTC()
	filter := bson.M{"userId": status.UserID}

	_, err := r.collection.ReplaceOne(ctx, filter, status, options.Replace().SetUpsert(true))
	return err
}

// EnsurePremiumIndexes creates necessary indexes for the premium collection.
// The collection is resolved here from the same constant the repository uses
// so the unique userId index always lands on the collection Upsert writes to.
func EnsurePremiumIndexes(ctx context.Context, db *mongo.Database) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := db.Collection(premiumCollectionName).Indexes().CreateMany(ctx, indexes)
	if err != nil {
		// Non-fatal.
	}
}
