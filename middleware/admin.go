package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Inteegrus-Research/SP-tenderscope/utils"
)

// AdminMiddleware rejects non-admin identities. Must run after
// AuthMiddleware.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := utils.GetIdentity(c)
		if identity == nil || !identity.IsAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied. Admin privileges required."})
			c.Abort()
			return
		}
		c.Next()
	}
}
