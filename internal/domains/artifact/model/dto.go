package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// =====================================================
// REQUEST DTOs
// =====================================================

// Like actions accepted by the toggle endpoint.
const (
	ActionLike    = "like"
	ActionDislike = "dislike"
)

// CreateArtifactRequest carries the contributor-supplied fields.
// Field contents are deliberately not validated (any shape of values is
// accepted, matching the catalog's permissive create contract); the typed
// struct only fixes which keys are stored. Likes and likedBy are never
// taken from the caller.
type CreateArtifactRequest struct {
	Name              string `json:"name"`
	Image             string `json:"image"`
	Type              string `json:"type"`
	HistoricalContext string `json:"historicalContext"`
	CreatedAt         string `json:"createdAt"`
	DiscoveredAt      string `json:"discoveredAt"`
	DiscoveredBy      string `json:"discoveredBy"`
	PresentLocation   string `json:"presentLocation"`
	AddedByEmail      string `json:"addedByEmail"`
}

// ToEntity builds a fresh artifact with the voting state zeroed.
func (r CreateArtifactRequest) ToEntity() *Artifact {
	return &Artifact{
		Name:              r.Name,
		Image:             r.Image,
		Type:              r.Type,
		HistoricalContext: r.HistoricalContext,
		CreatedAt:         r.CreatedAt,
		DiscoveredAt:      r.DiscoveredAt,
		DiscoveredBy:      r.DiscoveredBy,
		PresentLocation:   r.PresentLocation,
		AddedByEmail:      r.AddedByEmail,
		Likes:             0,
		LikedBy:           []string{},
	}
}

// UpdateArtifactRequest carries the mutable fields only. Identifier,
// addedByEmail, likes and likedBy are not part of this type, so they can
// never be overwritten through an update even if the caller sends them.
type UpdateArtifactRequest struct {
	Name              string `json:"name"`
	Image             string `json:"image"`
	Type              string `json:"type"`
	HistoricalContext string `json:"historicalContext"`
	CreatedAt         string `json:"createdAt"`
	DiscoveredAt      string `json:"discoveredAt"`
	DiscoveredBy      string `json:"discoveredBy"`
	PresentLocation   string `json:"presentLocation"`
}

// ToggleLikeRequest is the body of PUT /artifacts/:id/like.
type ToggleLikeRequest struct {
	Action string `json:"action"`
	Email  string `json:"email"`
}

func (r ToggleLikeRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Action,
			validation.Required.Error("action is required"),
			validation.In(ActionLike, ActionDislike).Error("action must be like or dislike"),
		),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.Email.Error("invalid email format"),
		),
	)
}

// =====================================================
// RESPONSE DTOs
// =====================================================

// ArtifactDetails is an artifact plus the requester-derived like flag.
type ArtifactDetails struct {
	Artifact      *Artifact `json:"artifact"`
	IsLikedByUser bool      `json:"isLikedByUser"`
}

// CreateArtifactResponse returns the store-assigned identifier.
type CreateArtifactResponse struct {
	InsertedID string `json:"insertedId"`
}
