package middleware

import (
	"strings"

	"homeez_booking/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

// Authentication is handled upstream; the gateway forwards the verified
// caller in these headers.
const (
	HeaderUserID    = "X-User-ID"
	HeaderUserEmail = "X-User-Email"

	userContextKey = "user"
)

// Identity stores the caller on the gin context. Requests without the headers
// carry a zero User and are refused by the use cases that need one.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(userContextKey, entities.User{
			ID:    strings.TrimSpace(c.GetHeader(HeaderUserID)),
			Email: strings.TrimSpace(c.GetHeader(HeaderUserEmail)),
		})
		c.Next()
	}
}

// UserFrom returns the caller stored by Identity, falling back to the headers
// when the middleware is not installed.
func UserFrom(c *gin.Context) entities.User {
	if v, ok := c.Get(userContextKey); ok {
		if u, ok := v.(entities.User); ok {
			return u
		}
	}
	return entities.User{
		ID:    strings.TrimSpace(c.GetHeader(HeaderUserID)),
		Email: strings.TrimSpace(c.GetHeader(HeaderUserEmail)),
	}
}
