package middlewares

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"github.com/GodfreySilungwe/Quantic/pkg/resp"
)

// AdminAuth gates the /admin surface behind a single static shared secret,
// accepted from the X-Admin-Secret header or the admin_secret query
// parameter. An empty configured secret locks the surface entirely.
func AdminAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		supplied := c.GetHeader("X-Admin-Secret")
		if supplied == "" {
			supplied = c.Query("admin_secret")
		}

		if secret == "" || subtle.ConstantTimeCompare([]byte(supplied), []byte(secret)) != 1 {
			resp.Unauthorized(c, "invalid admin secret")
			c.Abort()
			return
		}

		c.Next()
	}
}
