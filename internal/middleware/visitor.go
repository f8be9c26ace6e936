package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// ContextVisitorID is the key for the visitor ID in gin context.
	ContextVisitorID = "visitor_id"
	// VisitorCookie names the session-scoped cookie carrying the visitor ID.
	VisitorCookie = "cl_visitor"
)

// Visitor ensures every request carries an anonymous visitor ID. The ID
// lives in a session cookie (no MaxAge, gone when the browsing session
// ends) and scopes the session-context relay storage per visitor. There is
// no authentication here; the ID identifies a browser session, not a user.
func Visitor() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(VisitorCookie)
		if err != nil || id == "" {
			id = uuid.New().String()
			c.SetCookie(VisitorCookie, id, 0, "/", "", false, true)
		} else if _, err := uuid.Parse(id); err != nil {
			// Tampered or legacy value; mint a fresh one.
			id = uuid.New().String()
			c.SetCookie(VisitorCookie, id, 0, "/", "", false, true)
		}
		c.Set(ContextVisitorID, id)
		c.Next()
	}
}
