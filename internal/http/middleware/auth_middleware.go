package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dilshodmuxtorov/TodoLIstApi/domain"
)

// principalKey is the gin context key the resolved user is stored under
const principalKey = "principal"

var (
	errHeaderMissing   = errors.New("authorization header required")
	errHeaderMalformed = errors.New("authorization header must contain two space-delimited values")
)

// Authenticate resolves a raw Authorization header value to the requesting
// user. The header must be exactly two space-separated parts with a
// case-insensitive Bearer prefix, the token must validate, and the embedded
// user id must resolve to an existing account (active or not; verification
// itself runs authenticated).
func (mw *AuthMW) Authenticate(ctx context.Context, rawHeader string) (*domain.User, error) {
	if rawHeader == "" {
		return nil, errHeaderMissing
	}

	parts := strings.Fields(rawHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, errHeaderMalformed
	}

	claims, err := mw.tokenSvc.ValidateAccessToken(parts[1])
	if err != nil {
		return nil, err
	}

	user, err := mw.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	return user, nil
}

// AuthMiddleware creates authentication middleware around Authenticate
func AuthMiddleware(mw *AuthMW) gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		user, err := mw.Authenticate(c.Request.Context(), c.GetHeader("Authorization"))
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrTokenExpired):
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Token expired"})
			case errors.Is(err, domain.ErrTokenInvalid), errors.Is(err, domain.ErrTokenMalformed):
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			case errors.Is(err, domain.ErrUserNotFound):
				c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
			default:
				c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			}
			c.Abort()
			return
		}

		SetPrincipal(c, user)
		c.Next()
	})
}

// SetPrincipal binds the authenticated user to the request context
func SetPrincipal(c *gin.Context, user *domain.User) {
	c.Set(principalKey, user)
}

// Principal returns the authenticated user bound to the request, if any
func Principal(c *gin.Context) (*domain.User, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*domain.User)
	return user, ok
}
