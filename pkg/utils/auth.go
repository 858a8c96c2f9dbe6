package utils

import (
	"errors"

	"github.com/coverdesk/claims-go/internal/domain/session"
	"github.com/gin-gonic/gin"
)

// SessionKey is the gin context key the JWT middleware stores the session under.
const SessionKey = "session"

var GetSessionFromContext = func(c *gin.Context) (session.Context, error) {
	v, exists := c.Get(SessionKey)
	if !exists {
		return session.Context{}, errors.New("session not found in context")
	}

	sess, ok := v.(session.Context)
	if !ok {
		return session.Context{}, errors.New("invalid session type")
	}

	return sess, nil
}
