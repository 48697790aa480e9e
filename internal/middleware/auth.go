package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/harentsoaR/dental-clinic/internal/models"
	"github.com/harentsoaR/dental-clinic/internal/utils"
)

const (
	claimsKey   = "claims"
	identityKey = "identity"
)

// Authenticator validates a bearer token.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*utils.Claims, error)
}

// AuthMiddleware rejects requests without a valid, unrevoked bearer token and
// stores the caller's identity in the context.
func AuthMiddleware(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}
		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header must be a Bearer token"})
			return
		}

		claims, err := auth.Authenticate(c.Request.Context(), tokenString)
		switch {
		case errors.Is(err, models.ErrAuthUnavailable):
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": models.ErrAuthUnavailable.Error()})
			return
		case errors.Is(err, models.ErrTokenRevoked):
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": models.ErrTokenRevoked.Error()})
			return
		case err != nil:
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(claimsKey, claims)
		c.Set(identityKey, claims.Identity())
		c.Next()
	}
}

// RequirePage lets the request through only if the caller's role may open page.
func RequirePage(page models.Page) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := GetIdentity(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		if !models.CanAccess(id.Role, page) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": models.ErrForbidden.Error()})
			return
		}
		c.Next()
	}
}

// GetIdentity returns the authenticated caller.
func GetIdentity(c *gin.Context) (models.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return models.Identity{}, false
	}
	id, ok := v.(models.Identity)
	return id, ok
}

// GetClaims returns the validated token claims of the request.
func GetClaims(c *gin.Context) (*utils.Claims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*utils.Claims)
	return claims, ok
}
