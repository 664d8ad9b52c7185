// File: middleware/headers.go
package middleware

import "github.com/gin-gonic/gin"

// FrameOptions sets X-Frame-Options on every response.
func FrameOptions(value string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("X-Frame-Options", value)
		c.Writer.Header().Set("X-Content-Type-Options", "nosniff")
		c.Next()
	}
}
