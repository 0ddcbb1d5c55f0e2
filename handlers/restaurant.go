package handlers

import (
	"net/http"
	"strconv"

	"voyager/models"
	"voyager/services/restaurant"
	"voyager/utils"

	"github.com/gin-gonic/gin"
)

// RestaurantHandler serves dining search and widget endpoints.
type RestaurantHandler struct {
	Service restaurant.Service
}

func NewRestaurantHandler(svc restaurant.Service) *RestaurantHandler {
	return &RestaurantHandler{Service: svc}
}

func (h *RestaurantHandler) SearchRestaurants(c *gin.Context) {
	var params models.RestaurantSearchParams
	if err := c.ShouldBindJSON(&params); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid restaurant search request", err.Error())
		return
	}
	if params.Location == "" || params.Date == "" {
		utils.JSONError(c, http.StatusBadRequest, "Invalid restaurant search request", "location and date are required")
		return
	}

	results, err := h.Service.Search(c.Request.Context(), params)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Restaurant search failed", err.Error())
		return
	}

	restaurants := make([]models.WidgetRestaurant, 0, len(results))
	for _, r := range results {
		restaurants = append(restaurants, r.WidgetFormat())
	}
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"count":       len(restaurants),
		"restaurants": restaurants,
	})
}

func (h *RestaurantHandler) RestaurantWidget(c *gin.Context) {
	location := c.Query("location")
	maxRestaurants, _ := strconv.Atoi(c.DefaultQuery("max_restaurants", "3"))

	data, err := h.Service.WidgetData(c.Request.Context(), location, maxRestaurants)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Restaurant widget failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, data)
}
