package handlers

import (
	"net/http"
	"strconv"

	"voyager/models"
	"voyager/services/hotel"
	"voyager/utils"

	"github.com/gin-gonic/gin"
)

// HotelHandler serves hotel search, curated portfolio, and widget endpoints.
type HotelHandler struct {
	Service hotel.Service
}

func NewHotelHandler(svc hotel.Service) *HotelHandler {
	return &HotelHandler{Service: svc}
}

func (h *HotelHandler) SearchHotels(c *gin.Context) {
	var params models.HotelSearchParams
	if err := c.ShouldBindJSON(&params); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid hotel search request", err.Error())
		return
	}
	if params.Location == "" || params.CheckIn == "" || params.CheckOut == "" {
		utils.JSONError(c, http.StatusBadRequest, "Invalid hotel search request", "location, check_in, and check_out are required")
		return
	}

	results, err := h.Service.Search(c.Request.Context(), params)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Hotel search failed", err.Error())
		return
	}

	hotels := make([]models.WidgetHotel, 0, len(results))
	for _, r := range results {
		hotels = append(hotels, r.WidgetFormat())
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(hotels),
		"hotels":  hotels,
	})
}

func (h *HotelHandler) CuratedHotels(c *gin.Context) {
	location := c.Query("location")
	if location == "" {
		utils.JSONError(c, http.StatusBadRequest, "Invalid curated request", "location query parameter is required")
		return
	}
	category := models.HotelCategory(c.DefaultQuery("category", string(models.HotelLuxury)))

	results, err := h.Service.Curated(c.Request.Context(), location, category)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Curated lookup failed", err.Error())
		return
	}

	hotels := make([]models.WidgetHotel, 0, len(results))
	for _, r := range results {
		hotels = append(hotels, r.WidgetFormat())
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(hotels),
		"hotels":  hotels,
	})
}

func (h *HotelHandler) HotelWidget(c *gin.Context) {
	userID := c.Query("user_id")
	maxHotels, _ := strconv.Atoi(c.DefaultQuery("max_hotels", "3"))

	data, err := h.Service.WidgetData(c.Request.Context(), userID, maxHotels)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Hotel widget failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, data)
}
