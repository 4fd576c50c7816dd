package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// actorIDKey is the key used to store the acting operator's ID in the context.
const actorIDKey = contextKey("actorID")

// DefaultActorID is recorded on audit fields when no operator identifies
// itself.
const DefaultActorID = "system"

// ActorMiddleware resolves the acting operator from the X-Actor-ID header and
// stores it in the request context for audit attribution.
func ActorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		actorID := c.GetHeader("X-Actor-ID")
		if actorID == "" {
			actorID = DefaultActorID
		}

		ctx := context.WithValue(c.Request.Context(), actorIDKey, actorID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// GetActorFromContext retrieves the acting operator's ID from the Gin context,
// falling back to DefaultActorID.
func GetActorFromContext(c *gin.Context) string {
	actorID, ok := c.Request.Context().Value(actorIDKey).(string)
	if !ok || actorID == "" {
		return DefaultActorID
	}
	return actorID
}
