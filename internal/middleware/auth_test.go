package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/namminarasimhamurthy/ApiEvent/internal/auth"
	"github.com/namminarasimhamurthy/ApiEvent/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

func newAuthRouter(t *testing.T) (*ginext.Engine, *auth.TokenManager) {
	t.Helper()

	tokens := auth.NewTokenManager("test-secret", 15*time.Minute, 24*time.Hour)

	router := ginext.New("test")
	router.GET("/protected", Authenticate(tokens), func(c *ginext.Context) {
		ident, ok := IdentityFromContext(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, ginext.H{"user_id": ident.UserID})
	})
	router.GET("/admin", Authenticate(tokens), RequireAdmin(), func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router, tokens
}

func doRequest(router *ginext.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	router, _ := newAuthRouter(t)

	w := doRequest(router, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticate_MalformedHeader(t *testing.T) {
	router, tokens := newAuthRouter(t)

	token, err := tokens.NewAccessToken(&domain.User{ID: "u1", Username: "alice"})
	require.NoError(t, err)

	// Missing the Bearer prefix.
	w := doRequest(router, token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	router, _ := newAuthRouter(t)

	w := doRequest(router, "Bearer not-a-jwt")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticate_ValidToken(t *testing.T) {
	router, tokens := newAuthRouter(t)

	token, err := tokens.NewAccessToken(&domain.User{ID: "u1", Username: "alice"})
	require.NoError(t, err)

	w := doRequest(router, "Bearer "+token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "u1")
}

func TestRequireAdmin_NonAdminForbidden(t *testing.T) {
	router, tokens := newAuthRouter(t)

	token, err := tokens.NewAccessToken(&domain.User{ID: "u1", Username: "alice"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireAdmin_AdminAllowed(t *testing.T) {
	router, tokens := newAuthRouter(t)

	token, err := tokens.NewAccessToken(&domain.User{ID: "a1", Username: "root", IsAdmin: true})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
