package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// newOwnerRouter seeds the authenticated identity directly; Auth is
// exercised by its own tests.
func newOwnerRouter(identity string) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/mine",
		func(c *gin.Context) {
			if identity != "" {
				c.Set(ContextEmailKey, identity)
			}
			c.Next()
		},
		RequireOwner(),
		func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"email": c.Query("email")})
		},
	)
	return router
}

func getOwner(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRequireOwner_Match(t *testing.T) {
	router := newOwnerRouter("p@x.com")

	w := getOwner(router, "/mine?email=p%40x.com")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireOwner_Mismatch(t *testing.T) {
	router := newOwnerRouter("p@x.com")

	w := getOwner(router, "/mine?email=q%40x.com")

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireOwner_MissingQueryEmail(t *testing.T) {
	router := newOwnerRouter("p@x.com")

	w := getOwner(router, "/mine")

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireOwner_NoIdentity(t *testing.T) {
	router := newOwnerRouter("")

	w := getOwner(router, "/mine?email=p%40x.com")

	assert.Equal(t, http.StatusForbidden, w.Code)
}
