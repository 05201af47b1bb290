package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/sergioLiiD/yaavs-v5-sub002/internal/pkg/errors"
)

// ActorKey is the context key holding the authenticated actor id.
const ActorKey = "actor_id"

// ActorHeader carries the actor id; the API gateway in front of this
// service validates credentials and injects it.
const ActorHeader = "X-Actor-ID"

// RequireActor rejects mutating requests that arrive without an actor
// id. Every write path needs one for created_by and audit fields.
func RequireActor() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := c.GetHeader(ActorHeader)
		if actor == "" {
			appErr := errors.BadRequest(errors.CodeActorRequired, "X-Actor-ID header is required")
			c.AbortWithStatusJSON(appErr.HTTPStatus, gin.H{
				"error": appErr.Message,
				"code":  appErr.Code,
			})
			return
		}
		c.Set(ActorKey, actor)
		c.Next()
	}
}

// Actor returns the actor id set by RequireActor.
func Actor(c *gin.Context) string {
	return c.GetString(ActorKey)
}
