package utils

import (
	"github.com/gin-gonic/gin"
)

const (
	// AccessTokenCookie carries the identity provider's access token for
	// browser sessions. This service only reads it; the provider sets it.
	AccessTokenCookie = "access_token"
)

// GetTokenFromCookie retrieves token from cookie or Authorization header (fallback)
func GetTokenFromCookie(c *gin.Context, cookieName string) string {
	token, err := c.Cookie(cookieName)
	if err == nil && token != "" {
		return token
	}

	// Authorization header fallback is handled separately in middleware
	return ""
}
