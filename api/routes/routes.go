package routes

import (
	"github.com/ArowuTest/plate-spin-backend/internal/handlers"
	"github.com/ArowuTest/plate-spin-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// HandlerDependencies holds the handlers the router dispatches to
type HandlerDependencies struct {
	ParticipantHandler *handlers.ParticipantHandler
	HealthHandler      *handlers.HealthHandler
}

// SetupRouter sets up the router
func SetupRouter(deps HandlerDependencies) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware())

	api := router.Group("/api")
	{
		api.GET("/health", deps.HealthHandler.Health)

		api.POST("/register", deps.ParticipantHandler.Register)
		api.POST("/share", deps.ParticipantHandler.Share)
		api.GET("/user/:plate", deps.ParticipantHandler.GetParticipant)
		api.POST("/redeem", deps.ParticipantHandler.Redeem)
	}

	return router
}
