package handlers

import (
	"net/http"

	"voyager/middleware"
	"voyager/models"
	"voyager/services/maestro"
	"voyager/utils"

	"github.com/gin-gonic/gin"
)

// ChatHandler serves the conversational endpoint backed by the orchestrator.
type ChatHandler struct {
	Maestro maestro.Service
}

func NewChatHandler(m maestro.Service) *ChatHandler {
	return &ChatHandler{Maestro: m}
}

func (h *ChatHandler) Chat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid chat request", err.Error())
		return
	}

	// An authenticated session overrides whatever user_id the body claims.
	if userID := middleware.UserIDFromContext(c); userID != "" {
		req.UserID = userID
	}
	if req.UserID == "" {
		utils.JSONError(c, http.StatusBadRequest, "Invalid chat request", "user_id is required")
		return
	}
	if req.Text == "" {
		utils.JSONError(c, http.StatusBadRequest, "Invalid chat request", "text is required")
		return
	}
	if req.Channel == "" {
		req.Channel = "api"
	}

	resp, err := h.Maestro.ProcessTurn(c.Request.Context(), req)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Chat processing failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, resp)
}
