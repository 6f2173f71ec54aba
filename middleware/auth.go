package middleware

import (
	"net/http"

	"blogicum/utils"

	"github.com/gin-gonic/gin"
)

// CurrentUser resolves the session cookie, if any, and stashes the
// user id in the request context. It never blocks the request: public
// pages still need to know who is asking.
func CurrentUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(utils.SessionCookie)
		if err == nil && token != "" {
			if userID, err := utils.ValidateJWT(token); err == nil {
				c.Set("user_id", userID)
			}
		}
		c.Next()
	}
}

// AuthRequired gates a route on a valid session; browsers without one
// are sent to the login page.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get("user_id"); !exists {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// GuestOnly keeps logged-in users off the register/login pages.
func GuestOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get("user_id"); exists {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}
