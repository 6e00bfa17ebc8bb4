package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"diveshop-backend/controllers"
	"diveshop-backend/middleware"
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

func SetupRouter(
	bc *controllers.BookingController,
	gc *controllers.GroupController,
	wc *controllers.WaiverController,
	rc *controllers.RentalController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Static("/uploads", "./uploads")

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
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With", "X-User-Id"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	api := r.Group("/api")
	api.Use(middleware.UserID())
	{
		divers := api.Group("/divers")
		{
			divers.GET("", controllers.GetDivers)
			divers.POST("", controllers.CreateDiver)
			divers.PUT("", controllers.UpdateDiverByBody)
			divers.GET("/:id", controllers.GetDiverByID)
			divers.PUT("/:id", controllers.UpdateDiver)
			divers.DELETE("/:id", controllers.DeleteDiver)
			divers.PATCH("/:id/onboarding", controllers.CompleteOnboarding)
		}

		bookings := api.Group("/bookings")
		{
			bookings.GET("", bc.GetBookings)
			bookings.POST("", bc.CreateBooking)

			// literal segment before /:id so it never shadows
			bookings.GET("/stats/last30days", bc.Stats)

			bookings.GET("/:id", bc.GetBooking)
			bookings.PUT("/:id", bc.UpdateBooking)
			bookings.PATCH("/:id", bc.PatchBooking)
			bookings.DELETE("/:id", bc.DeleteBooking)
			bookings.GET("/:id/invoice", bc.GetInvoice)
			bookings.POST("/:id/invoice", bc.SaveInvoice)
		}

		courses := api.Group("/courses")
		{
			courses.GET("", controllers.GetCourses)
			courses.POST("", controllers.CreateCourse)
			courses.DELETE("/:id", controllers.DeleteCourse)
		}

		groups := api.Group("/groups")
		{
			groups.GET("", gc.GetGroups)
			groups.POST("", gc.CreateGroup)
			groups.POST("/:groupId/members", gc.AddMember)
			groups.DELETE("/:groupId/members/:memberId", gc.RemoveMember)
		}
		// gin requires consistent wildcard names per position, so the
		// itinerary routes reuse :groupId under a separate registration
		api.GET("/groups/:groupId/itinerary", gc.GetItinerary)
		api.POST("/groups/:groupId/itinerary", gc.SaveItinerary)

		accommodations := api.Group("/accommodations")
		{
			accommodations.GET("", controllers.GetAccommodations)
			accommodations.POST("", controllers.CreateAccommodation)
		}

		equipment := api.Group("/equipment")
		{
			equipment.GET("", rc.GetEquipment)
			equipment.POST("", controllers.CreateEquipment)
		}

		rentals := api.Group("/rentals")
		{
			rentals.GET("", rc.GetRentals)
			rentals.POST("", rc.CheckoutRental)
			rentals.DELETE("/:id", rc.ReturnRental)
		}

		instructors := api.Group("/instructors")
		{
			instructors.GET("", controllers.GetInstructors)
			instructors.POST("", controllers.CreateInstructor)
		}

		boats := api.Group("/boats")
		{
			boats.GET("", controllers.GetBoats)
			boats.POST("", controllers.CreateBoat)
		}

		diveSites := api.Group("/dive-sites")
		{
			diveSites.GET("", controllers.GetDiveSites)
			diveSites.POST("", controllers.CreateDiveSite)
			diveSites.DELETE("/:id", controllers.DeleteDiveSite)
		}

		waivers := api.Group("/waivers")
		{
			waivers.GET("", wc.GetWaivers)
			waivers.GET("/:diver_id", wc.GetWaiverByDiver)
			waivers.POST("", wc.SaveWaiver)
		}
	}

	return r
}
