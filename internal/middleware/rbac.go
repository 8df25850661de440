package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/snaptrack/attendance-api/internal/models"
	appErrors "github.com/snaptrack/attendance-api/pkg/errors"
	"github.com/snaptrack/attendance-api/pkg/response"
)

// RequireRoles enforces that the caller's token role is one of the allowed
// roles for the route. Cross-role access is denied regardless of data.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	allowed := make(map[models.UserRole]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c *gin.Context) {
		claimsValue, exists := c.Get(ContextUserKey)
		if !exists {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}
		claims, ok := claimsValue.(*models.JWTClaims)
		if !ok {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}

		if _, ok := allowed[claims.Role]; !ok {
			response.Error(c, appErrors.ErrForbidden)
			c.Abort()
			return
		}

		c.Next()
	}
}
