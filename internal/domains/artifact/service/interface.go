package service

import (
	"context"

	"antiquify-backend/internal/domains/artifact/model"
)

// DefaultTopN is how many artifacts the top listing returns when the
// caller does not ask for a specific count.
const DefaultTopN = 6

// ArtifactService exposes the catalog's business operations to the HTTP
// layer. All ids are the 24-hex string form; malformed ids fail with
// ErrInvalidID before any store round-trip.
type ArtifactService interface {
	ListAll(ctx context.Context) ([]*model.Artifact, error)
	ListTop(ctx context.Context, n int64) ([]*model.Artifact, error)
	GetByID(ctx context.Context, id string) (*model.Artifact, error)
	GetDetails(ctx context.Context, id, requesterEmail string) (*model.ArtifactDetails, error)
	ListByOwner(ctx context.Context, email string) ([]*model.Artifact, error)
	ListLikedBy(ctx context.Context, email string) ([]*model.Artifact, error)
	Create(ctx context.Context, req model.CreateArtifactRequest) (*model.CreateArtifactResponse, error)
	Update(ctx context.Context, id string, req model.UpdateArtifactRequest) error
	Delete(ctx context.Context, id string) error
	ToggleLike(ctx context.Context, id string, req model.ToggleLikeRequest) (*model.Artifact, error)
}
