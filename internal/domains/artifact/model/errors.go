package model

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodeArtifactNotFound = "ART001"
	ErrCodeInvalidID        = "ART002"
	ErrCodeInvalidAction    = "ART003"
	ErrCodeStoreUnavailable = "ART004"
)

// Errors
var (
	ErrArtifactNotFound = errors.New("artifact not found")
	ErrInvalidID        = errors.New("invalid artifact id")
	ErrInvalidAction    = errors.New("invalid like action")
	ErrStoreUnavailable = errors.New("store unavailable")
)

// ArtifactError custom error type carrying a stable code for the
// HTTP layer.
type ArtifactError struct {
	Code    string
	Message string
	Err     error
}

func (e *ArtifactError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ArtifactError) Unwrap() error {
	return e.Err
}

// Error constructors
func NewArtifactNotFoundError() *ArtifactError {
	return &ArtifactError{
		Code:    ErrCodeArtifactNotFound,
		Message: "Artifact not found",
		Err:     ErrArtifactNotFound,
	}
}

func NewInvalidIDError(id string) *ArtifactError {
	return &ArtifactError{
		Code:    ErrCodeInvalidID,
		Message: fmt.Sprintf("Invalid artifact id: %q", id),
		Err:     ErrInvalidID,
	}
}

func NewInvalidActionError(action string) *ArtifactError {
	return &ArtifactError{
		Code:    ErrCodeInvalidAction,
		Message: fmt.Sprintf("Invalid like action: %q", action),
		Err:     ErrInvalidAction,
	}
}

func NewStoreUnavailableError(err error) *ArtifactError {
	return &ArtifactError{
		Code:    ErrCodeStoreUnavailable,
		Message: "Store unavailable",
		Err:     errors.Join(ErrStoreUnavailable, err),
	}
}
