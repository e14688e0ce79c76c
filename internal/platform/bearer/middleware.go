// Package bearer provides the Gin middleware validating opaque bearer tokens.
package bearer

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ContextUserID is the Gin context key under which the authenticated user ID is stored.
const ContextUserID = "userID"

// TokenAuthenticator resolves a bearer token value to a user ID.
// Following Go convention: interfaces are defined by the consumer (middleware), not the provider (usecase).
type TokenAuthenticator interface {
	// Authenticate returns the user ID bound to the token value, or an error
	// if the token was never issued.
	Authenticate(ctx context.Context, value string) (uint, error)
}

// AuthRequired returns a Gin middleware function that validates the
// Authorization header and restricts access to authenticated users only.
func AuthRequired(auth TokenAuthenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		value := strings.TrimPrefix(header, "Bearer ")

		userID, err := auth.Authenticate(c.Request.Context(), value)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(ContextUserID, userID)
		c.Next()
	}
}

// UserID extracts the authenticated user ID set by AuthRequired.
// The second return is false when the request is unauthenticated.
func UserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
