package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Artifact represents a catalogued historical artifact.
//
// Likes is a stored counter derived from LikedBy; the repository updates
// both in a single store operation so likes == len(likedBy) holds at all
// times. AddedByEmail is set at creation and never modified afterwards.
type Artifact struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"_id"`

	Name              string `bson:"name" json:"name"`
	Image             string `bson:"image" json:"image"`
	Type              string `bson:"type" json:"type"`
	HistoricalContext string `bson:"historicalContext" json:"historicalContext"`

	// CreatedAt and DiscoveredAt are free-form era texts supplied by the
	// contributor ("circa 1200 BC"), not timestamps.
	CreatedAt    string `bson:"createdAt" json:"createdAt"`
	DiscoveredAt string `bson:"discoveredAt" json:"discoveredAt"`
	DiscoveredBy string `bson:"discoveredBy" json:"discoveredBy"`

	PresentLocation string `bson:"presentLocation" json:"presentLocation"`

	AddedByEmail string   `bson:"addedByEmail" json:"addedByEmail"`
	Likes        int64    `bson:"likes" json:"likes"`
	LikedBy      []string `bson:"likedBy" json:"likedBy"`
}

// IsLikedBy reports whether email is in the liked-by set.
func (a *Artifact) IsLikedBy(email string) bool {
	if email == "" {
		return false
	}
	for _, e := range a.LikedBy {
		if e == email {
			return true
		}
	}
	return false
}
