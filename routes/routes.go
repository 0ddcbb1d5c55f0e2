package routes

import (
	"net/http"
	"time"

	"voyager/handlers"
	"voyager/middleware"
	"voyager/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterSearchRoutes registers the public search and widget endpoints.
func RegisterSearchRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.POST("/flights/search", hb.SearchFlights)
		api.GET("/flights/widget", hb.FlightWidget)

		api.POST("/hotels/search", hb.SearchHotels)
		api.GET("/hotels/curated", hb.CuratedHotels)
		api.GET("/hotels/widget", hb.HotelWidget)

		api.POST("/restaurants/search", hb.SearchRestaurants)
		api.GET("/restaurants/widget", hb.RestaurantWidget)

		api.GET("/destinations/:city/guide", hb.GetGuide)

		api.POST("/packages/search", hb.SearchPackages)
	}
}

// RegisterChatRoutes registers the conversational endpoint. Auth is
// optional: anonymous callers supply their own user_id.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.POST("/chat", middleware.JWTAuthMiddleware(true), hb.Chat)
	}
}

// RegisterBookingRoutes registers the booking lifecycle endpoints.
// All of them require an authenticated traveler.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthMiddleware(false))
		api.POST("", hb.CreateBooking)
		api.GET("", hb.ListBookings)
		api.GET("/:id", hb.GetBooking)
		api.DELETE("/:id", hb.CancelBooking)
		api.GET("/itinerary/widget", hb.ItineraryWidget)
	}
}

// RegisterWebhookRoutes registers the WhatsApp webhook endpoints. These
// authenticate via Meta's verify token and request signatures instead of JWTs.
func RegisterWebhookRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/webhook/whatsapp", hb.VerifyWebhook)
	r.POST("/webhook/whatsapp", hb.ReceiveWebhook)
	r.POST("/webhook/whatsapp/status", hb.WebhookStatus)
}

// RegisterAuthRoutes registers session endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/auth/guest", hb.GuestSession)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		status := utils.GetHealthStatus()
		c.JSON(http.StatusOK, gin.H{"status": "ok", "dependencies": status})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterSearchRoutes(r, hb)
	RegisterChatRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterWebhookRoutes(r, hb)
	RegisterAuthRoutes(r, hb)
	RegisterHealthRoute(r)
}
