package middleware

import (
	"net/http"

	"dayflow-app/dayflow/services"
	"dayflow-app/dayflow/utils/token"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware resolves the bearer claim into a user identity. A missing
// token is rejected before any verification work; a present but invalid or
// expired token is rejected as forbidden.
func AuthMiddleware(authService services.AuthServiceInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := token.ExtractToken(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		claims, err := authService.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid or expired token"})
			return
		}

		// Store user info in the context for later use
		c.Set("userID", claims.UserID)
		c.Set("username", claims.Username)
		c.Set("email", claims.Email)

		c.Next()
	}
}
