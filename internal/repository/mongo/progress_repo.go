package mongo

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"manisera/affirmation-app/internal/domain"
	"manisera/affirmation-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const progressCollectionName = "progress"

// mongoProgressRepository implements repository.ProgressRepository. One
// document per user holds the whole progress state; every mutation is a
// single targeted $set so there is no read-modify-write race between
// concurrent session events.
type mongoProgressRepository struct {
	collection *mongo.Collection
}

// NewMongoProgressRepository creates a new instance of mongoProgressRepository.
func NewMongoProgressRepository(db *mongo.Database) repository.ProgressRepository {
	return &mongoProgressRepository{
		collection: db.Collection(progressCollectionName),
	}
}

// GetByUserID returns the user's progress document, or the empty state when
// none exists. A document that fails to decode is treated as corrupt state:
// it is logged, reset in storage, and the empty state is returned.
func (r *mongoProgressRepository) GetByUserID(ctx context.Context, userID primitive.ObjectID) (*domain.Progress, error) {
	var progress domain.Progress
	filter := bson.M{"userId": userID}

	err := r.collection.FindOne(ctx, filter).Decode(&progress)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.EmptyProgress(userID), nil
		}
		if isDecodeError(err) {
			log.Printf("WARN: corrupt progress state for user %s, resetting: %v", userID.Hex(), err)
			if resetErr := r.Reset(ctx, userID); resetErr != nil {
				return nil, resetErr
			}
			return domain.EmptyProgress(userID), nil
		}
		return nil, err
	}

	if progress.Sessions == nil {
		progress.Sessions = map[string]map[domain.SessionType]bool{}
	}
	if progress.Cursors == nil {
		progress.Cursors = map[string]map[domain.SessionType]domain.SessionCursor{}
	}
	return &progress, nil
}

// SaveCursor upserts the within-session cursor for one day/session.
func (r *mongoProgressRepository) SaveCursor(ctx context.Context, userID primitive.ObjectID, day int, session domain.SessionType, cursor domain.SessionCursor) error {
	field := fmt.Sprintf("cursors.%s.%s", domain.DayKey(day), session)
	return r.upsert(ctx, userID, bson.M{field: cursor})
}

// MarkSessionComplete sets the atomic session-completion fact and clears the
// session's cursor in one write, so the two can never disagree.
func (r *mongoProgressRepository) MarkSessionComplete(ctx context.Context, userID primitive.ObjectID, day int, session domain.SessionType) error {
	sessionField := fmt.Sprintf("sessions.%s.%s", domain.DayKey(day), session)
	cursorField := fmt.Sprintf("cursors.%s.%s", domain.DayKey(day), session)

	filter := bson.M{"userId": userID}
	update := bson.M{
		"$set": bson.M{
			sessionField: true,
			"updatedAt":  time.Now().UTC(),
		},
		"$unset":       bson.M{cursorField: ""},
		"$setOnInsert": bson.M{"userId": userID},
	}

	_, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

// SetLastCompletedDayDate stamps the daily-quota date.
func (r *mongoProgressRepository) SetLastCompletedDayDate(ctx context.Context, userID primitive.ObjectID, date string) error {
	return r.upsert(ctx, userID, bson.M{"lastCompletedDayDate": date})
}

// RollToNewDay applies the calendar-day rollover: new access date, quota
// stamp cleared.
func (r *mongoProgressRepository) RollToNewDay(ctx context.Context, userID primitive.ObjectID, today string) error {
	return r.upsert(ctx, userID, bson.M{
		"lastAccessDate":       today,
		"lastCompletedDayDate": "",
	})
}

// Reset replaces the user's progress with the empty state.
func (r *mongoProgressRepository) Reset(ctx context.Context, userID primitive.ObjectID) error {
	filter := bson.M{"userId": userID}
	empty := domain.EmptyProgress(userID)
	empty.UpdatedAt = time.Now().UTC()

	_, err := r.collection.ReplaceOne(ctx, filter, empty, options.Replace().SetUpsert(true))
	return err
}

func (r *mongoProgressRepository) upsert(ctx context.Context, userID primitive.ObjectID, set bson.M) error {
	set["updatedAt"] = time.Now().UTC()
	filter := bson.M{"userId": userID}
	update := bson.M{
		"$set":         set,
		"$setOnInsert": bson.M{"userId": userID},
	}

	_, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

// isDecodeError distinguishes "the document is malformed" from transport
// errors, so only the former triggers a reset. The driver surfaces decode
// problems as bsoncodec errors with no exported type, hence the message check.
func isDecodeError(err error) bool {
	if mongo.IsNetworkError(err) || mongo.IsTimeout(err) ||
		errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "cannot decode") || strings.Contains(msg, "error decoding")
}

// EnsureProgressIndexes creates necessary indexes for the progress collection.
func EnsureProgressIndexes(ctx context.Context, db *mongo.Database) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := db.Collection(progressCollectionName).Indexes().CreateMany(ctx, indexes)
	if err != nil {
		// Non-fatal; the unique constraint is also enforced by upsert filters.
	}
}
