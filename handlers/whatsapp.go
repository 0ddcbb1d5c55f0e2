package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"voyager/config"
	"voyager/connectors/whatsapp"
	"voyager/models"
	"voyager/services/maestro"
	"voyager/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// WhatsAppHandler bridges the Meta webhook to the orchestrator: inbound
// messages become chat turns, replies go back as interactive cards.
type WhatsAppHandler struct {
	Maestro maestro.Service
	Client  *whatsapp.Client
	Logger  *zap.Logger
}

func NewWhatsAppHandler(m maestro.Service, client *whatsapp.Client, logger *zap.Logger) *WhatsAppHandler {
	return &WhatsAppHandler{Maestro: m, Client: client, Logger: logger}
}

// VerifyWebhook answers Meta's subscription handshake.
func (h *WhatsAppHandler) VerifyWebhook(c *gin.Context) {
	mode := c.Query("hub.mode")
	token := c.Query("hub.verify_token")
	challenge := c.Query("hub.challenge")

	if mode == "subscribe" && token == config.AppConfig.WhatsAppVerifyToken {
		c.String(http.StatusOK, challenge)
		return
	}
	c.Status(http.StatusForbidden)
}

// ReceiveWebhook handles signed inbound messages. Meta expects 200 for
// anything it should not retry, so processing errors are logged, not returned.
func (h *WhatsAppHandler) ReceiveWebhook(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Unreadable webhook body", err.Error())
		return
	}

	signature := c.GetHeader("X-Hub-Signature-256")
	if !whatsapp.VerifySignature(config.AppConfig.WhatsAppAppSecret, body, signature) {
		h.Logger.Warn("webhook signature mismatch")
		c.Status(http.StatusForbidden)
		return
	}

	var payload whatsapp.WebhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		h.Logger.Warn("unparseable webhook payload", zap.Error(err))
		c.Status(http.StatusOK)
		return
	}

	for _, entry := range payload.Entry {
		for _, change := range entry.Changes {
			for _, msg := range change.Value.Messages {
				h.processMessage(c, msg)
			}
		}
	}
	c.Status(http.StatusOK)
}

func (h *WhatsAppHandler) processMessage(c *gin.Context, msg whatsapp.InboundMessage) {
	text := msg.Text.Body
	if msg.Type == "interactive" {
		text = actionText(msg)
	}
	if text == "" {
		return
	}

	resp, err := h.Maestro.ProcessTurn(c.Request.Context(), models.ChatRequest{
		UserID:  msg.From,
		Text:    text,
		Channel: "whatsapp",
	})
	if err != nil {
		h.Logger.Error("whatsapp turn failed", zap.Error(err), zap.String("from", msg.From))
		return
	}

	h.reply(c, msg.From, resp)
}

// actionText maps button/list reply IDs onto chat phrasing the
// orchestrator understands.
func actionText(msg whatsapp.InboundMessage) string {
	id := msg.ActionID()
	switch {
	case strings.HasPrefix(id, "book_"):
		return "book it"
	case strings.HasPrefix(id, "details_"), strings.HasPrefix(id, "cart_"):
		return msg.Interactive.ButtonReply.Title
	default:
		if title := msg.Interactive.ListReply.Title; title != "" {
			return title
		}
		return msg.Interactive.ButtonReply.Title
	}
}

func (h *WhatsAppHandler) reply(c *gin.Context, to string, resp *models.ChatResponse) {
	ctx := c.Request.Context()

	if !h.Client.Configured() {
		h.Logger.Debug("whatsapp sending disabled, dropping reply", zap.String("to", to))
		return
	}

	if err := h.Client.SendText(ctx, to, resp.ResponseText); err != nil {
		h.Logger.Error("whatsapp text send failed", zap.Error(err))
		return
	}

	// One card per category keeps the thread readable.
	switch {
	case len(resp.Flights) > 0:
		if err := h.Client.SendFlightCard(ctx, to, resp.Flights[0]); err != nil {
			h.Logger.Error("flight card send failed", zap.Error(err))
		}
	case len(resp.Hotels) > 0:
		if err := h.Client.SendHotelCard(ctx, to, resp.Hotels[0]); err != nil {
			h.Logger.Error("hotel card send failed", zap.Error(err))
		}
	case len(resp.Restaurants) > 0:
		if err := h.Client.SendRestaurantCard(ctx, to, resp.Restaurants[0]); err != nil {
			h.Logger.Error("restaurant card send failed", zap.Error(err))
		}
	}

	if len(resp.Actions) > 1 {
		options := make([]whatsapp.ListOption, 0, len(resp.Actions))
		for i, a := range resp.Actions {
			id := a.ItemID
			if id == "" {
				id = a.Type + "_" + strconv.Itoa(i)
			}
			options = append(options, whatsapp.ListOption{ID: id, Title: a.Label, Description: a.Description})
		}
		if err := h.Client.SendOptionsList(ctx, to, "Options", "What would you like to do?", options); err != nil {
			h.Logger.Error("options list send failed", zap.Error(err))
		}
	}
}

// WebhookStatus acknowledges delivery status callbacks.
func (h *WhatsAppHandler) WebhookStatus(c *gin.Context) {
	c.Status(http.StatusOK)
}
