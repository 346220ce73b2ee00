package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"travelmitr/internal/domain"
)

const userIDKey = "user_id"

// TokenParser verifies a bearer token and returns its user id.
type TokenParser interface {
	Parse(raw string) (domain.ID, error)
}

// RequireAuth rejects requests without a valid "Authorization: Bearer" token
// and stores the caller's id on the context. onError writes the 401.
func RequireAuth(tokens TokenParser, onError func(*gin.Context, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		scheme, raw, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(raw) == "" {
			onError(c, domain.UnauthorizedError{Msg: "no token, authorization denied"})
			c.Abort()
			return
		}
		userID, err := tokens.Parse(strings.TrimSpace(raw))
		if err != nil {
			onError(c, err)
			c.Abort()
			return
		}
		c.Set(userIDKey, userID)
		c.Next()
	}
}

// GetUserID returns the authenticated user id, or zero.
func GetUserID(c *gin.Context) domain.ID {
	if v, ok := c.Get(userIDKey); ok {
		if id, ok := v.(domain.ID); ok {
			return id
		}
	}
	return 0
}
