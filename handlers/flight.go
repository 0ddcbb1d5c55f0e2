package handlers

import (
	"net/http"
	"strconv"

	"voyager/models"
	"voyager/services/flight"
	"voyager/utils"

	"github.com/gin-gonic/gin"
)

// FlightHandler serves flight search and widget endpoints.
type FlightHandler struct {
	Service flight.Service
}

func NewFlightHandler(svc flight.Service) *FlightHandler {
	return &FlightHandler{Service: svc}
}

func (h *FlightHandler) SearchFlights(c *gin.Context) {
	var params models.FlightSearchParams
	if err := c.ShouldBindJSON(&params); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid flight search request", err.Error())
		return
	}
	if params.Origin == "" || params.Destination == "" || params.DepartureDate == "" {
		utils.JSONError(c, http.StatusBadRequest, "Invalid flight search request", "origin, destination, and departure_date are required")
		return
	}

	deals, err := h.Service.Search(c.Request.Context(), params)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Flight search failed", err.Error())
		return
	}

	results := make([]models.WidgetFlightDeal, 0, len(deals))
	for _, d := range deals {
		results = append(results, d.WidgetFormat())
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(results),
		"deals":   results,
	})
}

func (h *FlightHandler) FlightWidget(c *gin.Context) {
	userID := c.Query("user_id")
	maxDeals, _ := strconv.Atoi(c.DefaultQuery("max_deals", "3"))

	data, err := h.Service.WidgetData(c.Request.Context(), userID, maxDeals)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Flight widget failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, data)
}
