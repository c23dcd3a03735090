package api

import (
	"net/http"

	"manisera/affirmation-app/internal/service"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	programService service.ProgramService,
	sessionService service.SessionService,
	premiumService service.PremiumService,
) {

	authHandler := NewAuthHandler(authService)
	programHandler := NewProgramHandler(programService)
	sessionHandler := NewSessionHandler(sessionService)
	premiumHandler := NewPremiumHandler(premiumService)

	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		// --- Profile Routes ---
		protected.GET("/me", authHandler.GetMe)
		protected.PUT("/me/preferences", authHandler.UpdatePreferences)

		// --- Program Routes ---
		programGroup := protected.Group("/program")
		{
			// GET /api/v1/program/days - the 30-day overview map
			programGroup.GET("/days", programHandler.GetOverview)
			// GET /api/v1/program/days/{day} - one day's sessions
			programGroup.GET("/days/:day", programHandler.GetDay)
		}

		// --- Session Routes ---
		sessionGroup := protected.Group("/sessions")
		{
			sessionGroup.GET("/:day/:session", sessionHandler.Get)
			sessionGroup.POST("/:day/:session/start", sessionHandler.Start)
			sessionGroup.POST("/:day/:session/transcript", sessionHandler.Transcript)
			sessionGroup.POST("/:day/:session/stop", sessionHandler.Stop)
		}

		// --- Premium Routes ---
		premiumGroup := protected.Group("/premium")
		{
			premiumGroup.GET("/status", premiumHandler.Status)
			premiumGroup.POST("/checkout", premiumHandler.Checkout)
		}
	}
}
