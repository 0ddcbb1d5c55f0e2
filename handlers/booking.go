package handlers

import (
	"errors"
	"net/http"

	"voyager/middleware"
	"voyager/models"
	"voyager/services/booking"
	"voyager/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler serves the booking lifecycle and itinerary endpoints.
// All routes require an authenticated traveler.
type BookingHandler struct {
	Service booking.Service
}

func NewBookingHandler(svc booking.Service) *BookingHandler {
	return &BookingHandler{Service: svc}
}

func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var input models.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking request", err.Error())
		return
	}
	input.UserID = userID

	b, err := h.Service.Create(c.Request.Context(), input)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Booking failed", err.Error())
		return
	}
	c.JSON(http.StatusCreated, b)
}

func (h *BookingHandler) GetBooking(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	bookingID := c.Param("id")

	b, err := h.Service.Get(c.Request.Context(), userID, bookingID)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) ListBookings(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	bookings, err := h.Service.ListByUser(c.Request.Context(), userID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list bookings", err.Error())
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, gin.H{"count": len(bookings), "bookings": bookings})
}

func (h *BookingHandler) CancelBooking(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	bookingID := c.Param("id")

	b, err := h.Service.Cancel(c.Request.Context(), userID, bookingID)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) ItineraryWidget(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	data, err := h.Service.Itinerary(c.Request.Context(), userID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Itinerary lookup failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, data)
}

func writeBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "Booking not found", err.Error())
	case errors.Is(err, booking.ErrForbidden):
		utils.JSONError(c, http.StatusForbidden, "Not your booking", err.Error())
	case errors.Is(err, booking.ErrInvalidTransition):
		utils.JSONError(c, http.StatusConflict, "Invalid booking state", err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "Booking operation failed", err.Error())
	}
}
