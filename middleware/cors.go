package middleware

import (
	"os"
	"strings"

	"github.com/gin-gonic/gin"
)

func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		origins := strings.Split(os.Getenv("CORS_ALLOWED_ORIGINS"), ",")
		requestOrigin := c.GetHeader("Origin")

		for _, origin := range origins {
			if strings.TrimSpace(origin) == requestOrigin && requestOrigin != "" {
				c.Header("Access-Control-Allow-Origin", requestOrigin)
				break
			}
		}

		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, Authorization")
		c.Header("Access-Control-Allow-Credentials", "true")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
