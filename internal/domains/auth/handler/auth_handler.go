package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"antiquify-backend/internal/domains/auth"
	"antiquify-backend/internal/shared/response"
	"antiquify-backend/pkg/jwt"
	"antiquify-backend/pkg/logger"
)

// CookieName is the cookie carrying the signed catalog token.
const CookieName = "token"

// =====================================================
// AUTH HANDLER
// =====================================================

type AuthHandler struct {
	jwtManager *jwt.Manager

	// secureCookie is false only in development so the cookie works
	// without TLS; SameSite=None requires Secure everywhere else.
	secureCookie bool
}

func NewAuthHandler(jwtManager *jwt.Manager, environment string) *AuthHandler {
	return &AuthHandler{
		jwtManager:   jwtManager,
		secureCookie: environment != "development",
	}
}

// IssueToken signs a 1-hour token for the presented identity and sets it
// as an httpOnly cookie. There is no credential check: the catalog trusts
// the identity provider in front of it.
// POST /jwt
func (h *AuthHandler) IssueToken(c *gin.Context) {
	// Step 1: Bind request body
	var req auth.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	// Step 2: Validate request
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	// Step 3: Sign token
	token, err := h.jwtManager.GenerateToken(req.Email)
	if err != nil {
		logger.Error("failed to sign token", err)
		response.InternalServerError(c, "failed to sign token")
		return
	}

	// Step 4: Set cookie (cross-site frontend needs SameSite=None)
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(CookieName, token, int(jwt.TokenTTL.Seconds()), "/", "", h.secureCookie, true)

	response.Success(c, http.StatusOK, auth.TokenResponse{Success: true})
}

// Logout clears the token cookie.
// POST /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(CookieName, "", -1, "/", "", h.secureCookie, true)

	response.Success(c, http.StatusOK, auth.TokenResponse{Success: true})
}
