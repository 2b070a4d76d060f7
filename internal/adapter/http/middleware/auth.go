package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"taskapi/internal/adapter/http/helper"
	"taskapi/internal/core/domain"
	"taskapi/internal/core/port"
)

const currentUserKey = "current_user"

// Authenticated is the capability boundary for every protected route: it
// extracts the bearer credential, verifies it through the auth service and
// rejects the request before any business logic runs. Handlers downstream
// only ever see an already-validated identity claim.
func Authenticated(auth port.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		bearer := c.GetHeader("Authorization")

		if bearer == "" {
			helper.SendUnauthorizedError(c, "Unauthorized request")
			c.Abort()
			return
		}

		if !strings.HasPrefix(bearer, "Bearer ") {
			helper.SendUnauthorizedError(c, "Invalid authorization format")
			c.Abort()
			return
		}

		tokenData, err := auth.VerifyToken(strings.TrimPrefix(bearer, "Bearer "))

		if err != nil {
			helper.SendUnauthorizedError(c, "Could not validate credentials")
			c.Abort()
			return
		}

		c.Set(currentUserKey, tokenData)
		c.Next()
	}
}

// CurrentUser returns the identity claim stashed by Authenticated. On an
// unprotected route it returns the zero claim, which downstream services
// reject as not-found.
func CurrentUser(c *gin.Context) domain.TokenData {
	if value, exists := c.Get(currentUserKey); exists {
		if tokenData, ok := value.(domain.TokenData); ok {
			return tokenData
		}
	}

	return domain.TokenData{}
}
