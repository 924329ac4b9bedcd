package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"quizmaster/utils"
)

// AuthMiddleware verifies the bearer JWT and sets the user email in
// the request context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			// Websocket clients can't set headers; allow the token as
			// a query parameter there.
			authHeader = "Bearer " + c.Query("token")
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing or malformed Authorization token"})
			c.Abort()
			return
		}

		claims, err := utils.ParseJWTToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set("email", claims.Email)
		c.Next()
	}
}
