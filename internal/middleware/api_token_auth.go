package middleware

import (
	"github.com/FranzoniLeo/financial-control/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// APITokenAuth authenticates requests carrying an x-api-key header. A valid
// token satisfies authentication and the JWT middleware is skipped; an
// invalid or absent one just falls through to JWT auth.
func APITokenAuth(tokenSvc services.APITokenSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if isPublicRoute(c.Request.URL.Path) {
			c.Next()
			return
		}

		apiKey := c.GetHeader("x-api-key")
		if apiKey == "" {
			c.Next()
			return
		}

		userID, err := tokenSvc.ValidateToken(c.Request.Context(), apiKey)
		if err != nil {
			c.Next()
			return
		}

		c.Set(string(userIDKey), userID)
		c.Set("authMethod", "api_token")
		c.Next()
	}
}

func isPublicRoute(path string) bool {
	publicRoutes := []string{
		"/api/v1/auth/login",
		"/api/v1/auth/register",
		"/health",
	}
	for _, route := range publicRoutes {
		if path == route {
			return true
		}
	}
	return false
}
