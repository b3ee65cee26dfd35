package service

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"antiquify-backend/internal/domains/artifact/model"
	"antiquify-backend/internal/domains/artifact/repository"
)

// =====================================================
// SERVICE IMPLEMENTATION
// =====================================================

type artifactService struct {
	artifactRepo repository.ArtifactRepository
}

func NewArtifactService(artifactRepo repository.ArtifactRepository) ArtifactService {
	return &artifactService{
		artifactRepo: artifactRepo,
	}
}

// parseID rejects malformed ids before any store query, so a bad id is
// InvalidArgument rather than NotFound.
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, model.NewInvalidIDError(id)
	}
	return oid, nil
}

// =====================================================
// LISTINGS
// =====================================================

func (s *artifactService) ListAll(ctx context.Context) ([]*model.Artifact, error) {
	artifacts, err := s.artifactRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list artifacts: %w", err)
	}
	return artifacts, nil
}

func (s *artifactService) ListTop(ctx context.Context, n int64) ([]*model.Artifact, error) {
	if n <= 0 {
		n = DefaultTopN
	}

	artifacts, err := s.artifactRepo.ListTop(ctx, n)
	if err != nil {
		return nil, fmt.Errorf("failed to list top artifacts: %w", err)
	}
	return artifacts, nil
}

// ListByOwner trusts its caller: the route layer has already verified that
// the authenticated identity matches email (owner middleware). The service
// itself performs no authorization.
func (s *artifactService) ListByOwner(ctx context.Context, email string) ([]*model.Artifact, error) {
	artifacts, err := s.artifactRepo.ListByOwner(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to list artifacts by owner: %w", err)
	}
	return artifacts, nil
}

func (s *artifactService) ListLikedBy(ctx context.Context, email string) ([]*model.Artifact, error) {
	artifacts, err := s.artifactRepo.ListLikedBy(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to list liked artifacts: %w", err)
	}
	return artifacts, nil
}

// =====================================================
// SINGLE ARTIFACT
// =====================================================

func (s *artifactService) GetByID(ctx context.Context, id string) (*model.Artifact, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	artifact, err := s.artifactRepo.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, model.ErrArtifactNotFound) {
			return nil, model.NewArtifactNotFoundError()
		}
		return nil, fmt.Errorf("failed to get artifact: %w", err)
	}

	return artifact, nil
}

// GetDetails returns the artifact plus the derived isLikedByUser flag.
// An empty requester email simply yields false.
func (s *artifactService) GetDetails(ctx context.Context, id, requesterEmail string) (*model.ArtifactDetails, error) {
	artifact, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &model.ArtifactDetails{
		Artifact:      artifact,
		IsLikedByUser: artifact.IsLikedBy(requesterEmail),
	}, nil
}

// =====================================================
// MUTATIONS
// =====================================================

func (s *artifactService) Create(ctx context.Context, req model.CreateArtifactRequest) (*model.CreateArtifactResponse, error) {
	// No field-content validation: the create contract is permissive.
	id, err := s.artifactRepo.Create(ctx, req.ToEntity())
	if err != nil {
		return nil, fmt.Errorf("failed to create artifact: %w", err)
	}

	return &model.CreateArtifactResponse{InsertedID: id.Hex()}, nil
}

func (s *artifactService) Update(ctx context.Context, id string, req model.UpdateArtifactRequest) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	if err := s.artifactRepo.Update(ctx, oid, req); err != nil {
		if errors.Is(err, model.ErrArtifactNotFound) {
			return model.NewArtifactNotFoundError()
		}
		return fmt.Errorf("failed to update artifact: %w", err)
	}

	return nil
}

func (s *artifactService) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	if err := s.artifactRepo.Delete(ctx, oid); err != nil {
		if errors.Is(err, model.ErrArtifactNotFound) {
			return model.NewArtifactNotFoundError()
		}
		return fmt.Errorf("failed to delete artifact: %w", err)
	}

	return nil
}

// ToggleLike applies the like or dislike and returns the post-update
// artifact. Repeating the same action for the same email is a no-op: the
// counter moves only when the membership actually changes, keeping
// likes == len(likedBy).
func (s *artifactService) ToggleLike(ctx context.Context, id string, req model.ToggleLikeRequest) (*model.Artifact, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	if err := req.Validate(); err != nil {
		return nil, &model.ArtifactError{
			Code:    model.ErrCodeInvalidAction,
			Message: err.Error(),
			Err:     model.ErrInvalidAction,
		}
	}

	var artifact *model.Artifact
	switch req.Action {
	case model.ActionLike:
		artifact, err = s.artifactRepo.Like(ctx, oid, req.Email)
	case model.ActionDislike:
		artifact, err = s.artifactRepo.Dislike(ctx, oid, req.Email)
	default:
		return nil, model.NewInvalidActionError(req.Action)
	}

	if err != nil {
		if errors.Is(err, model.ErrArtifactNotFound) {
			return nil, model.NewArtifactNotFoundError()
		}
		return nil, fmt.Errorf("failed to toggle like: %w", err)
	}

	return artifact, nil
}
