package cookie

import (
	"strings"

	"table-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const bearerPrefix = "Bearer "

// AccessToken returns the caller's token from the configured cookie, falling
// back to the Authorization header.
func AccessToken(c *gin.Context, cfg config.CookieConfig) string {
	name := cfg.AccessTokenName
	if name == "" {
		name = "access_token"
	}
	if token, err := c.Cookie(name); err == nil && token != "" {
		return token
	}

	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, bearerPrefix) {
		return strings.TrimSpace(authHeader[len(bearerPrefix):])
	}
	return ""
}
