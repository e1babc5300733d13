package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ParticipantIDKey is the context key holding the caller's participant id
const ParticipantIDKey = "participantId"

// ParticipantHeader carries the caller-supplied participant identifier. The
// identifier is trusted as-is; the session authority decides per request
// whether that participant may act, based on its own delegate registry.
const ParticipantHeader = "X-Participant-Id"

// IdentityMiddleware extracts the participant id into the request context
func IdentityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(ParticipantHeader))
		if id != "" {
			c.Set(ParticipantIDKey, id)
		}
		c.Next()
	}
}

// RequireParticipant rejects requests that carry no participant identity
func RequireParticipant() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ParticipantIDKey) == "" {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Missing " + ParticipantHeader + " header",
				"code":  "BAD_REQUEST",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
