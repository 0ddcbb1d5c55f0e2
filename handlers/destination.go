package handlers

import (
	"errors"
	"net/http"

	"voyager/services/destination"
	"voyager/utils"

	"github.com/gin-gonic/gin"
)

// DestinationHandler serves destination guide endpoints.
type DestinationHandler struct {
	Service destination.Service
}

func NewDestinationHandler(svc destination.Service) *DestinationHandler {
	return &DestinationHandler{Service: svc}
}

func (h *DestinationHandler) GetGuide(c *gin.Context) {
	city := c.Param("city")
	if city == "" {
		utils.JSONError(c, http.StatusBadRequest, "Invalid guide request", "city path parameter is required")
		return
	}

	guide, err := h.Service.Guide(c.Request.Context(), city)
	if err != nil {
		if errors.Is(err, destination.ErrGuideUnavailable) {
			utils.JSONError(c, http.StatusNotFound, "No guide available", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Guide lookup failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, guide)
}
