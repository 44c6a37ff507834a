package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Inteegrus-Research/SP-tenderscope/auth"
	"github.com/Inteegrus-Research/SP-tenderscope/utils"
)

// AuthMiddleware verifies the bearer token and places the resolved identity
// on the request context. Requests without a valid credential never reach
// the handlers behind it.
func AuthMiddleware(verifier *auth.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		bearerToken := strings.Split(authHeader, " ")
		if len(bearerToken) != 2 || !strings.EqualFold(bearerToken[0], "Bearer") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token format"})
			c.Abort()
			return
		}

		identity, err := verifier.Verify(bearerToken[1])
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrMissingToken), errors.Is(err, auth.ErrInvalidToken):
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			case errors.Is(err, auth.ErrUnknownUser):
				c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not verify token"})
			}
			c.Abort()
			return
		}

		c.Set(string(utils.IdentityContextKey), identity)
		c.Next()
	}
}
