package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"antiquify-backend/internal/domains/artifact/model"
	"antiquify-backend/internal/domains/artifact/service"
	"antiquify-backend/internal/shared/response"
)

// =====================================================
// ARTIFACT HANDLER
// =====================================================

type ArtifactHandler struct {
	artifactService service.ArtifactService
}

func NewArtifactHandler(artifactService service.ArtifactService) *ArtifactHandler {
	return &ArtifactHandler{
		artifactService: artifactService,
	}
}

// =====================================================
// HELPER FUNCTIONS
// =====================================================

// mapArtifactError translates domain errors to HTTP status + error code.
func mapArtifactError(err error) (int, string) {
	var artErr *model.ArtifactError
	if errors.As(err, &artErr) {
		switch artErr.Code {
		case model.ErrCodeArtifactNotFound:
			return http.StatusNotFound, artErr.Code
		case model.ErrCodeInvalidID, model.ErrCodeInvalidAction:
			return http.StatusBadRequest, artErr.Code
		case model.ErrCodeStoreUnavailable:
			return http.StatusServiceUnavailable, artErr.Code
		}
	}

	switch {
	case errors.Is(err, model.ErrArtifactNotFound):
		return http.StatusNotFound, model.ErrCodeArtifactNotFound
	case errors.Is(err, model.ErrInvalidID):
		return http.StatusBadRequest, model.ErrCodeInvalidID
	case errors.Is(err, model.ErrInvalidAction):
		return http.StatusBadRequest, model.ErrCodeInvalidAction
	case errors.Is(err, model.ErrStoreUnavailable):
		return http.StatusServiceUnavailable, model.ErrCodeStoreUnavailable
	}

	return http.StatusInternalServerError, "INTERNAL_ERROR"
}

func respondSuccess(c *gin.Context, statusCode int, data interface{}) {
	response.Success(c, statusCode, data)
}

func respondError(c *gin.Context, statusCode int, code, message string) {
	response.ErrorResponse(c, statusCode, code, message)
}

// =====================================================
// PUBLIC ENDPOINTS
// =====================================================

// ListArtifacts returns every artifact.
// GET /artifacts
func (h *ArtifactHandler) ListArtifacts(c *gin.Context) {
	artifacts, err := h.artifactService.ListAll(c.Request.Context())
	if err != nil {
		statusCode, errCode := mapArtifactError(err)
		respondError(c, statusCode, errCode, err.Error())
		return
	}

	respondSuccess(c, http.StatusOK, artifacts)
}

// ListTopArtifacts returns the six most liked artifacts.
// GET /artifacts/top
func (h *ArtifactHandler) ListTopArtifacts(c *gin.Context) {
	artifacts, err := h.artifactService.ListTop(c.Request.Context(), service.DefaultTopN)
	if err != nil {
		statusCode, errCode := mapArtifactError(err)
		respondError(c, statusCode, errCode, err.Error())
		return
	}

	respondSuccess(c, http.StatusOK, artifacts)
}

// GetArtifactDetails returns one artifact plus the requester's like flag.
// GET /artifacts/details/:id?email=
func (h *ArtifactHandler) GetArtifactDetails(c *gin.Context) {
	id := c.Param("id")
	email := c.Query("email")

	details, err := h.artifactService.GetDetails(c.Request.Context(), id, email)
	if err != nil {
		statusCode, errCode := mapArtifactError(err)
		respondError(c, statusCode, errCode, err.Error())
		return
	}

	respondSuccess(c, http.StatusOK, details)
}

// CreateArtifact inserts a new artifact with zeroed voting state.
// POST /artifacts
func (h *ArtifactHandler) CreateArtifact(c *gin.Context) {
	// Step 1: Bind request body
	var req model.CreateArtifactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	// Step 2: Call service (no field validation: create is permissive)
	res, err := h.artifactService.Create(c.Request.Context(), req)
	if err != nil {
		statusCode, errCode := mapArtifactError(err)
		respondError(c, statusCode, errCode, err.Error())
		return
	}

	// Step 3: Return success
	respondSuccess(c, http.StatusCreated, res)
}

// UpdateArtifact overwrites the mutable fields of an artifact.
// PUT /artifacts/update/:id
func (h *ArtifactHandler) UpdateArtifact(c *gin.Context) {
	id := c.Param("id")

	var req model.UpdateArtifactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	if err := h.artifactService.Update(c.Request.Context(), id, req); err != nil {
		statusCode, errCode := mapArtifactError(err)
		respondError(c, statusCode, errCode, err.Error())
		return
	}

	respondSuccess(c, http.StatusOK, gin.H{
		"message": "Artifact updated successfully",
	})
}

// ToggleLike applies a like or dislike and returns the updated artifact.
// PUT /artifacts/:id/like
func (h *ArtifactHandler) ToggleLike(c *gin.Context) {
	id := c.Param("id")

	// Step 1: Bind request body
	var req model.ToggleLikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	// Step 2: Validate request
	if err := req.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	// Step 3: Call service
	artifact, err := h.artifactService.ToggleLike(c.Request.Context(), id, req)
	if err != nil {
		statusCode, errCode := mapArtifactError(err)
		respondError(c, statusCode, errCode, err.Error())
		return
	}

	// Step 4: Return success
	respondSuccess(c, http.StatusOK, artifact)
}

// DeleteArtifact removes an artifact. A second delete of the same id
// reports NotFound, not an error.
// DELETE /artifacts/:id
func (h *ArtifactHandler) DeleteArtifact(c *gin.Context) {
	id := c.Param("id")

	if err := h.artifactService.Delete(c.Request.Context(), id); err != nil {
		statusCode, errCode := mapArtifactError(err)
		respondError(c, statusCode, errCode, err.Error())
		return
	}

	respondSuccess(c, http.StatusOK, gin.H{
		"message": "Artifact deleted successfully",
	})
}

// =====================================================
// OWNER-SCOPED ENDPOINTS
// =====================================================
// The auth and owner middlewares run before these, so the email query
// parameter is guaranteed to match the authenticated identity here.

// ListMyArtifacts returns the artifacts added by the requester.
// GET /myArtifacts?email=
func (h *ArtifactHandler) ListMyArtifacts(c *gin.Context) {
	email := c.Query("email")

	artifacts, err := h.artifactService.ListByOwner(c.Request.Context(), email)
	if err != nil {
		statusCode, errCode := mapArtifactError(err)
		respondError(c, statusCode, errCode, err.Error())
		return
	}

	respondSuccess(c, http.StatusOK, artifacts)
}

// ListLikedArtifacts returns the artifacts the requester has liked.
// GET /artifacts/liked?email=
func (h *ArtifactHandler) ListLikedArtifacts(c *gin.Context) {
	email := c.Query("email")

	artifacts, err := h.artifactService.ListLikedBy(c.Request.Context(), email)
	if err != nil {
		statusCode, errCode := mapArtifactError(err)
		respondError(c, statusCode, errCode, err.Error())
		return
	}

	respondSuccess(c, http.StatusOK, artifacts)
}
