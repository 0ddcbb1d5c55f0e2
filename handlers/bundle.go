package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle aggregates every route handler for registration.
type HandlerBundle struct {
	// Flight endpoints.
	SearchFlights gin.HandlerFunc
	FlightWidget  gin.HandlerFunc

	// Hotel endpoints.
	SearchHotels  gin.HandlerFunc
	CuratedHotels gin.HandlerFunc
	HotelWidget   gin.HandlerFunc

	// Restaurant endpoints.
	SearchRestaurants gin.HandlerFunc
	RestaurantWidget  gin.HandlerFunc

	// Destination endpoints.
	GetGuide gin.HandlerFunc

	// Package endpoints.
	SearchPackages gin.HandlerFunc

	// Booking endpoints.
	CreateBooking   gin.HandlerFunc
	GetBooking      gin.HandlerFunc
	ListBookings    gin.HandlerFunc
	CancelBooking   gin.HandlerFunc
	ItineraryWidget gin.HandlerFunc

	// Chat endpoint.
	Chat gin.HandlerFunc

	// WhatsApp webhook endpoints.
	VerifyWebhook  gin.HandlerFunc
	ReceiveWebhook gin.HandlerFunc
	WebhookStatus  gin.HandlerFunc

	// Auth endpoints.
	GuestSession gin.HandlerFunc
}
