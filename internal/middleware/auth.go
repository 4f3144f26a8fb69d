package middleware

import (
	"net/http"
	"strings"

	"temp_dashboard/internal/services"

	"github.com/gin-gonic/gin"
)

const tokenDataKey = "token_data"

// AuthRequired validates the bearer token and stores the caller's identity in
// the request context.
func AuthRequired(authService services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		tokenData, err := authService.ValidateToken(tokenParts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		c.Set(tokenDataKey, tokenData)
		c.Next()
	}
}

// CurrentUser returns the identity placed in the context by AuthRequired.
func CurrentUser(c *gin.Context) (*services.TokenData, bool) {
	value, exists := c.Get(tokenDataKey)
	if !exists {
		return nil, false
	}

	tokenData, ok := value.(*services.TokenData)
	return tokenData, ok
}
