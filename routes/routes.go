package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"booking-backend/controllers"
	"booking-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires the controller instances into the HTTP surface.
func SetupRouter(
	uc *controllers.UserController,
	hc *controllers.HotelController,
	rc *controllers.RoomController,
	bc *controllers.BookingController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		users := api.Group("/users")
		{
			users.GET("/health", func(c *gin.Context) {
				c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "User service is healthy"})
			})
			users.POST("", uc.CreateUser)
			users.GET("/:id", uc.GetUser)
			users.GET("/:id/bookings", uc.GetUserBookings)
			users.PUT("/:id", uc.UpdateUser)
			users.DELETE("/:id", uc.DeleteUser)
		}

		hotels := api.Group("/hotels")
		{
			hotels.GET("/health", func(c *gin.Context) {
				c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hotel service is healthy"})
			})
			hotels.POST("", hc.CreateHotel)
			hotels.GET("/:id", hc.GetHotel)
			hotels.PUT("/:id", hc.UpdateHotel)
			hotels.DELETE("/:id", hc.DeleteHotel)
			hotels.GET("/:id/rooms", hc.GetHotelRooms)

			// Booking admission goes through the hotel aggregate.
			hotels.POST("/:id/bookings", bc.CreateBooking)

			// Rooms live under the hotels resource, as in the public API.
			hotels.POST("/rooms", rc.CreateRoom)
			hotels.GET("/rooms/:id", rc.GetRoom)
			hotels.PUT("/rooms/:id", rc.UpdateRoom)
			hotels.DELETE("/rooms/:id", rc.DeleteRoom)
		}

		bookings := api.Group("/bookings")
		{
			bookings.GET("/:id", bc.GetBooking)
			bookings.PATCH("/:id/status", bc.UpdateBookingStatus)
			bookings.DELETE("/:id", bc.DeleteBooking)
		}
	}

	return r
}
