package middleware

import (
	"net/http"
	"strings"

	"github.com/namminarasimhamurthy/ApiEvent/internal/auth"
	"github.com/namminarasimhamurthy/ApiEvent/internal/domain"
	"github.com/wb-go/wbf/ginext"
)

const identityKey = "identity"

// Authenticate resolves the Bearer access token into an Identity and stores
// it in the request context. Requests without a valid token get 401.
func Authenticate(tokens *auth.TokenManager) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "missing or malformed authorization header"},
			)
			return
		}

		ident, err := tokens.ParseAccess(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": domain.ErrInvalidToken.Error()},
			)
			return
		}

		c.Set(identityKey, ident)
		c.Next()
	}
}

// RequireAdmin gates admin-only routes. It must run after Authenticate.
func RequireAdmin() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		ident, ok := IdentityFromContext(c)
		if !ok || !ident.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden,
				ginext.H{"error": "admin privileges required"},
			)
			return
		}

		c.Next()
	}
}

func IdentityFromContext(c *ginext.Context) (domain.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return domain.Identity{}, false
	}

	ident, ok := v.(domain.Identity)
	return ident, ok
}
