// File: voyager/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"voyager/config"
	"voyager/connectors/amadeus"
	"voyager/connectors/whatsapp"
	"voyager/database"
	bookingRepo "voyager/database/repository/booking"
	"voyager/handlers"
	"voyager/middleware"
	"voyager/routes"
	"voyager/services/booking"
	"voyager/services/destination"
	"voyager/services/flight"
	"voyager/services/hotel"
	"voyager/services/intelligence"
	"voyager/services/maestro"
	"voyager/services/packages"
	"voyager/services/restaurant"
	"voyager/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// Connectors.
	amadeusClient := amadeus.NewClient(
		config.AppConfig.AmadeusAPIKey,
		config.AppConfig.AmadeusAPISecret,
		config.AppConfig.AmadeusUseTest,
		config.AppConfig.AmadeusRateLimit,
	)
	whatsappClient := whatsapp.NewClient(
		config.AppConfig.WhatsAppAccessToken,
		config.AppConfig.WhatsAppPhoneNumberID,
	)
	var gemini intelligence.Generator
	if config.AppConfig.GeminiAPIKey != "" {
		gemini = intelligence.NewGeminiClient(config.AppConfig.GeminiAPIKey)
	}

	// Repositories.
	bookings := bookingRepo.NewMongoBookingRepo()

	// Specialist services. Widget feeds share the generic cache DB.
	cacheClient := utils.GetCacheClient()
	flightSvc := &flight.DefaultFlightService{Amadeus: amadeusClient, Cache: cacheClient, Logger: logger}
	hotelSvc := &hotel.DefaultHotelService{Amadeus: amadeusClient, Cache: cacheClient, Logger: logger}
	restaurantSvc := &restaurant.DefaultRestaurantService{Cache: cacheClient, Logger: logger}
	destinationSvc := &destination.DefaultDestinationService{Gemini: gemini, Logger: logger}
	packageSvc := &packages.DefaultPackageService{Flights: flightSvc, Hotels: hotelSvc, Logger: logger}

	paymentHandler := booking.NewPaymentHandler(logger)
	bookingSvc := &booking.DefaultBookingService{
		Repo:     bookings,
		Payments: paymentHandler,
		Logger:   logger,
	}

	// The orchestrator and its specialist registry.
	ctxStore := maestro.NewRedisContextStore(utils.GetChatContextClient(), 30*time.Minute)
	orchestrator := maestro.NewMaestro(ctxStore, gemini, bookingSvc, logger)
	orchestrator.Register(&maestro.FlightSpecialist{Flights: flightSvc})
	orchestrator.Register(&maestro.HotelSpecialist{Hotels: hotelSvc})
	orchestrator.Register(&maestro.RestaurantSpecialist{Restaurants: restaurantSvc})
	orchestrator.Register(&maestro.DestinationSpecialist{Destinations: destinationSvc})
	orchestrator.Register(&maestro.PackageSpecialist{Packages: packageSvc})

	// Handlers.
	flightHandler := handlers.NewFlightHandler(flightSvc)
	hotelHandler := handlers.NewHotelHandler(hotelSvc)
	restaurantHandler := handlers.NewRestaurantHandler(restaurantSvc)
	destinationHandler := handlers.NewDestinationHandler(destinationSvc)
	packageHandler := handlers.NewPackageHandler(packageSvc)
	bookingHandler := handlers.NewBookingHandler(bookingSvc)
	chatHandler := handlers.NewChatHandler(orchestrator)
	whatsAppHandler := handlers.NewWhatsAppHandler(orchestrator, whatsappClient, logger)

	handlerBundle := &handlers.HandlerBundle{
		SearchFlights: flightHandler.SearchFlights,
		FlightWidget:  flightHandler.FlightWidget,

		SearchHotels:  hotelHandler.SearchHotels,
		CuratedHotels: hotelHandler.CuratedHotels,
		HotelWidget:   hotelHandler.HotelWidget,

		SearchRestaurants: restaurantHandler.SearchRestaurants,
		RestaurantWidget:  restaurantHandler.RestaurantWidget,

		GetGuide: destinationHandler.GetGuide,

		SearchPackages: packageHandler.SearchPackages,

		CreateBooking:   bookingHandler.CreateBooking,
		GetBooking:      bookingHandler.GetBooking,
		ListBookings:    bookingHandler.ListBookings,
		CancelBooking:   bookingHandler.CancelBooking,
		ItineraryWidget: bookingHandler.ItineraryWidget,

		Chat: chatHandler.Chat,

		VerifyWebhook:  whatsAppHandler.VerifyWebhook,
		ReceiveWebhook: whatsAppHandler.ReceiveWebhook,
		WebhookStatus:  whatsAppHandler.WebhookStatus,

		GuestSession: handlers.GuestSessionHandler,
	}

	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetChatContextClient()},
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
