package utils

import (
	"github.com/gin-gonic/gin"

	"github.com/Inteegrus-Research/SP-tenderscope/auth"
)

type contextKey string

const IdentityContextKey contextKey = "identity"

// GetIdentity returns the verified identity placed on the context by the
// auth middleware, or nil for unauthenticated requests.
func GetIdentity(c *gin.Context) *auth.Identity {
	value, exists := c.Get(string(IdentityContextKey))
	if !exists {
		return nil
	}
	if identity, ok := value.(*auth.Identity); ok {
		return identity
	}
	return nil
}
