package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	CookieName  = "token"
	LoginPath   = "/auth/login"
	identityKey = "auth.identity"
)

// Cookies writes and clears the session cookie.
type Cookies struct {
	Secure bool
}

func (ck Cookies) Set(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, token, maxAge, "/", "", ck.Secure, true)
}

func (ck Cookies) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, "", -1, "/", "", ck.Secure, true)
}

// Middleware rejects requests without a valid session cookie. Browser
// requests are redirected to the login page; JSON clients get a 401.
func Middleware(tokens *TokenManager, cookies Cookies) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie(CookieName)
		if err == nil && raw != "" {
			if id, verr := tokens.Verify(raw); verr == nil {
				c.Set(identityKey, id)
				c.Next()
				return
			}
		}

		cookies.Clear(c)

		if wantsJSON(c) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":    "UNAUTHORIZED",
				"message": "authentication required",
			})
			return
		}

		c.Redirect(http.StatusFound, LoginPath)
		c.Abort()
	}
}

// IdentityFrom returns the identity stored by Middleware, if any.
func IdentityFrom(c *gin.Context) (*Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil, false
	}
	id, ok := v.(*Identity)
	return id, ok
}

func wantsJSON(c *gin.Context) bool {
	return c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEJSON
}
