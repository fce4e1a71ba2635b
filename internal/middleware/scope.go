package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/giorgi26/Planner/internal/model"
	"github.com/giorgi26/Planner/pkg/response"
)

// Headers set by the authenticating proxy in front of the planner.
const (
	HeaderUserID   = "X-User-ID"
	HeaderUserName = "X-User-Name"
)

const scopeKey = "planner.scope"

// Auth resolves the acting user from the identity headers and rejects
// requests that carry none.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader(HeaderUserID))
		if userID == "" {
			m.l.Warnf(c.Request.Context(), "middleware.Auth: missing %s header on %s", HeaderUserID, c.FullPath())
			response.Unauthorized(c)
			return
		}

		userName := strings.TrimSpace(c.GetHeader(HeaderUserName))
		if userName == "" {
			userName = userID
		}

		c.Set(scopeKey, model.Scope{UserID: userID, UserName: userName})
		c.Next()
	}
}

// GetScope returns the scope stored by Auth.
func GetScope(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}
