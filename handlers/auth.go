package handlers

import (
	"net/http"
	"time"

	"voyager/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const guestSessionTTL = 24 * time.Hour

// GuestSessionHandler issues a short-lived traveler token so widget and
// chat clients can use protected endpoints without an account.
func GuestSessionHandler(c *gin.Context) {
	userID := "guest_" + uuid.New().String()

	token, err := utils.GenerateToken(userID, guestSessionTTL)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create session", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user_id":    userID,
		"token":      token,
		"expires_in": int(guestSessionTTL.Seconds()),
	})
}
