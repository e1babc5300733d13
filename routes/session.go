package routes

import (
	"munhub/controllers"
	"munhub/middlewares"

	"github.com/gin-gonic/gin"
)

// SetupSessionRoutes wires the committee session endpoints. Reads work with
// or without an identity; mutations require the participant header.
func SetupSessionRoutes(router *gin.RouterGroup) {
	session := router.Group("/session")
	session.Use(middlewares.IdentityMiddleware())

	session.GET("/current", controllers.GetSessionHandler)

	mutating := session.Group("")
	mutating.Use(middlewares.RequireParticipant())
	{
		mutating.POST("", controllers.ResetSessionHandler)
		mutating.POST("/join", controllers.JoinSessionHandler)
		mutating.PATCH("/current", controllers.UpdateSessionHandler)

		mutating.POST("/chat", controllers.PostMessageHandler)
		mutating.POST("/chits", controllers.SendChitHandler)

		mutating.POST("/speakers/queue", controllers.JoinQueueHandler)
		mutating.DELETE("/speakers/queue", controllers.LeaveQueueHandler)
		mutating.POST("/speakers/start", controllers.StartSpeakingHandler)
		mutating.POST("/speakers/end", controllers.EndSpeakingHandler)
		mutating.POST("/speakers/yield", controllers.YieldHandler)

		mutating.POST("/vote/start", controllers.StartVoteHandler)
		mutating.POST("/vote/cast", controllers.CastVoteHandler)
		mutating.POST("/vote/end", controllers.EndVoteHandler)

		mutating.POST("/mark", controllers.MarkDelegateHandler)
	}
}
