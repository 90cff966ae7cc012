package transport

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/vodninamlyn/wedding-rsvp/internal/service"
	"github.com/vodninamlyn/wedding-rsvp/internal/transport/middleware"
)

func InitRoutes(
	rsvpHandler *RsvpHandler,
	adminHandler *AdminHandler,
	authService service.AuthService,
	corsOrigins []string,
) *gin.Engine {

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.Timeout(30 * time.Second))

	allowCredentials := true
	for _, origin := range corsOrigins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}
	if len(corsOrigins) == 0 {
		corsOrigins = []string{"*"}
		allowCredentials = false
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	api := router.Group("/api/v1")
	{
		// Public routes
		api.POST("/rsvps", rsvpHandler.SubmitRsvp)
		api.GET("/catalog", rsvpHandler.GetCatalog)
		api.GET("/info", rsvpHandler.GetWeddingInfo)
		api.GET("/countdown", rsvpHandler.GetCountdown)

		// Admin routes
		admin := api.Group("/admin")
		{
			admin.POST("/login", adminHandler.Login)

			authed := admin.Group("")
			authed.Use(middleware.RequireSession(authService))
			{
				authed.GET("/session", adminHandler.GetSession)
				authed.POST("/logout", adminHandler.Logout)
				authed.GET("/rsvps", adminHandler.GetAllRsvps)
				authed.PATCH("/rsvps/:id", adminHandler.UpdateAttendee)
				authed.DELETE("/rsvps/:id", adminHandler.DeleteGroup)
				authed.GET("/stats", adminHandler.GetStats)
			}
		}
	}

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router
}
