package utils

import (
	"github.com/gin-gonic/gin"
)

const (
	accessTokenCookie  = "accessToken"
	refreshTokenCookie = "refreshToken"
)

// SetAuthCookies stores the session tokens as HTTP-only cookies scoped to
// the whole API.
func SetAuthCookies(c *gin.Context, accessToken, refreshToken string) {
	c.SetCookie(accessTokenCookie, accessToken, int(AccessTokenExpiry.Seconds()), "/", "", secureCookies(), true)
	c.SetCookie(refreshTokenCookie, refreshToken, int(RefreshTokenExpiry.Seconds()), "/", "", secureCookies(), true)
}

// ClearAuthCookies expires both session cookies on logout.
func ClearAuthCookies(c *gin.Context) {
	c.SetCookie(accessTokenCookie, "", -1, "/", "", secureCookies(), true)
	c.SetCookie(refreshTokenCookie, "", -1, "/", "", secureCookies(), true)
}

// Plain HTTP is only acceptable for local development.
func secureCookies() bool {
	return gin.Mode() != gin.DebugMode
}
