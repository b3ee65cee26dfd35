package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"antiquify-backend/internal/domains/artifact/model"
)

// ArtifactRepository owns artifact persistence. Implementations map store
// errors to the model sentinels (ErrArtifactNotFound, ErrStoreUnavailable)
// and guarantee that Like/Dislike mutate the counter and the likedBy set in
// one atomic per-document operation.
type ArtifactRepository interface {
	// ListAll returns every artifact in store order. No pagination.
	ListAll(ctx context.Context) ([]*model.Artifact, error)

	// ListTop returns at most n artifacts ordered by likes descending,
	// using the store's sort+limit. Ties are store order.
	ListTop(ctx context.Context, n int64) ([]*model.Artifact, error)

	// GetByID returns ErrArtifactNotFound when the id resolves to nothing.
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Artifact, error)

	// ListByOwner returns artifacts with addedByEmail == email.
	ListByOwner(ctx context.Context, email string) ([]*model.Artifact, error)

	// ListLikedBy returns artifacts whose likedBy set contains email.
	ListLikedBy(ctx context.Context, email string) ([]*model.Artifact, error)

	// Create inserts the artifact and returns the store-assigned id.
	Create(ctx context.Context, artifact *model.Artifact) (primitive.ObjectID, error)

	// Update overwrites the mutable fields only.
	// Returns ErrArtifactNotFound when nothing matched.
	Update(ctx context.Context, id primitive.ObjectID, fields model.UpdateArtifactRequest) error

	// Delete removes the artifact. Returns ErrArtifactNotFound when
	// nothing matched; a repeated delete reports NotFound again.
	Delete(ctx context.Context, id primitive.ObjectID) error

	// Like adds email to likedBy and increments likes, atomically and only
	// if email is not already a member. Returns the post-update artifact
	// (the unchanged one when the like was already present).
	Like(ctx context.Context, id primitive.ObjectID, email string) (*model.Artifact, error)

	// Dislike removes email from likedBy and decrements likes, atomically
	// and only if email is a member. Returns the post-update artifact.
	Dislike(ctx context.Context, id primitive.ObjectID, email string) (*model.Artifact, error)
}
