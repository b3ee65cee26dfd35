package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"antiquify-backend/internal/domains/artifact/model"
)

const collectionName = "artifacts"

// =====================================================
// MONGO REPOSITORY IMPLEMENTATION
// =====================================================

type mongoArtifactRepository struct {
	coll *mongo.Collection
}

func NewMongoArtifactRepository(db *mongo.Database) ArtifactRepository {
	return &mongoArtifactRepository{coll: db.Collection(collectionName)}
}

// storeErr classifies driver failures: timeouts and network errors become
// the Unavailable sentinel, everything else is wrapped as-is.
func storeErr(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || mongo.IsTimeout(err) || mongo.IsNetworkError(err) {
		return fmt.Errorf("%s: %w", op, model.NewStoreUnavailableError(err))
	}
	return fmt.Errorf("%s: %w", op, err)
}

func (r *mongoArtifactRepository) findAll(ctx context.Context, op string, filter bson.M, opts ...*options.FindOptions) ([]*model.Artifact, error) {
	cursor, err := r.coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, storeErr(op, err)
	}
	defer cursor.Close(ctx)

	var artifacts []*model.Artifact
	if err := cursor.All(ctx, &artifacts); err != nil {
		return nil, storeErr(op, err)
	}

	return artifacts, nil
}

// =====================================================
// READS
// =====================================================

func (r *mongoArtifactRepository) ListAll(ctx context.Context) ([]*model.Artifact, error) {
	return r.findAll(ctx, "failed to list artifacts", bson.M{})
}

func (r *mongoArtifactRepository) ListTop(ctx context.Context, n int64) ([]*model.Artifact, error) {
	// Bounded top-k via the store's sort+limit; no full scan in-process.
	opts := options.Find().
		SetSort(bson.D{{Key: "likes", Value: -1}}).
		SetLimit(n)

	return r.findAll(ctx, "failed to list top artifacts", bson.M{}, opts)
}

func (r *mongoArtifactRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Artifact, error) {
	artifact := &model.Artifact{}

	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(artifact)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrArtifactNotFound
		}
		return nil, storeErr("failed to get artifact", err)
	}

	return artifact, nil
}

func (r *mongoArtifactRepository) ListByOwner(ctx context.Context, email string) ([]*model.Artifact, error) {
	return r.findAll(ctx, "failed to list artifacts by owner", bson.M{"addedByEmail": email})
}

func (r *mongoArtifactRepository) ListLikedBy(ctx context.Context, email string) ([]*model.Artifact, error) {
	// Matching a scalar against the likedBy array is set membership.
	return r.findAll(ctx, "failed to list liked artifacts", bson.M{"likedBy": email})
}

// =====================================================
// WRITES
// =====================================================

func (r *mongoArtifactRepository) Create(ctx context.Context, artifact *model.Artifact) (primitive.ObjectID, error) {
	res, err := r.coll.InsertOne(ctx, artifact)
	if err != nil {
		return primitive.NilObjectID, storeErr("failed to create artifact", err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}

	return id, nil
}

func (r *mongoArtifactRepository) Update(ctx context.Context, id primitive.ObjectID, fields model.UpdateArtifactRequest) error {
	// Only the mutable fields appear in the $set document; _id,
	// addedByEmail, likes and likedBy stay untouched.
	update := bson.M{"$set": bson.M{
		"name":              fields.Name,
		"image":             fields.Image,
		"type":              fields.Type,
		"historicalContext": fields.HistoricalContext,
		"createdAt":         fields.CreatedAt,
		"discoveredAt":      fields.DiscoveredAt,
		"discoveredBy":      fields.DiscoveredBy,
		"presentLocation":   fields.PresentLocation,
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return storeErr("failed to update artifact", err)
	}

	if res.MatchedCount == 0 {
		return model.ErrArtifactNotFound
	}

	return nil
}

func (r *mongoArtifactRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return storeErr("failed to delete artifact", err)
	}

	if res.DeletedCount == 0 {
		return model.ErrArtifactNotFound
	}

	return nil
}

// =====================================================
// LIKE TOGGLING
// =====================================================

// Like increments the counter and adds the email in one atomic update.
// The membership predicate lives in the filter, so the counter moves only
// when the set actually changes and concurrent toggles cannot lose updates.
func (r *mongoArtifactRepository) Like(ctx context.Context, id primitive.ObjectID, email string) (*model.Artifact, error) {
	filter := bson.M{
		"_id":     id,
		"likedBy": bson.M{"$ne": email},
	}
	update := bson.M{
		"$inc":      bson.M{"likes": 1},
		"$addToSet": bson.M{"likedBy": email},
	}

	return r.toggle(ctx, id, filter, update)
}

// Dislike is the inverse: decrement and pull, only while email is a member.
func (r *mongoArtifactRepository) Dislike(ctx context.Context, id primitive.ObjectID, email string) (*model.Artifact, error) {
	filter := bson.M{
		"_id":     id,
		"likedBy": email,
	}
	update := bson.M{
		"$inc":  bson.M{"likes": -1},
		"$pull": bson.M{"likedBy": email},
	}

	return r.toggle(ctx, id, filter, update)
}

func (r *mongoArtifactRepository) toggle(ctx context.Context, id primitive.ObjectID, filter, update bson.M) (*model.Artifact, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	artifact := &model.Artifact{}
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(artifact)
	if err == nil {
		return artifact, nil
	}

	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, storeErr("failed to toggle like", err)
	}

	// No match: either the artifact does not exist (NotFound) or it is
	// already in the requested state (no-op; return it unchanged).
	return r.GetByID(ctx, id)
}
