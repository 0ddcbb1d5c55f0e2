package handlers

import (
	"net/http"

	"voyager/models"
	"voyager/services/packages"
	"voyager/utils"

	"github.com/gin-gonic/gin"
)

// PackageHandler serves bundled trip searches.
type PackageHandler struct {
	Service packages.Service
}

func NewPackageHandler(svc packages.Service) *PackageHandler {
	return &PackageHandler{Service: svc}
}

func (h *PackageHandler) SearchPackages(c *gin.Context) {
	var params models.PackageSearchParams
	if err := c.ShouldBindJSON(&params); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid package search request", err.Error())
		return
	}
	if params.Origin == "" || params.Destination == "" || params.DepartureDate == "" {
		utils.JSONError(c, http.StatusBadRequest, "Invalid package search request", "origin, destination, and departure_date are required")
		return
	}

	result, err := h.Service.Search(c.Request.Context(), params)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Package search failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"packages": result.Packages,
		"flights":  result.Flights,
		"hotels":   result.Hotels,
	})
}
