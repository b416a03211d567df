package middleware

import (
	"net/http"
	"strings"

	"songhub/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// Context keys set by AuthMiddleware.
const (
	ContextAccountID   = "account_id"
	ContextAccountKind = "account_kind"
)

func AuthMiddleware(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			c.Abort()
			return
		}

		claims, err := jwtService.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		c.Set(ContextAccountID, claims.AccountID)
		c.Set(ContextAccountKind, claims.Kind)
		c.Next()
	}
}

// RequireKind rejects tokens issued for a different account table. A creator
// token is never accepted on end-user routes and vice versa.
func RequireKind(kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextAccountKind) != kind {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access restricted to " + kind + " accounts"})
			c.Abort()
			return
		}
		c.Next()
	}
}
