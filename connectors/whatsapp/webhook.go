package whatsapp

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// WebhookPayload is the inbound envelope Meta posts to the webhook.
type WebhookPayload struct {
	Entry []struct {
		Changes []struct {
			Value struct {
				Messages []InboundMessage `json:"messages"`
				Statuses []struct {
					Status      string `json:"status"`
					RecipientID string `json:"recipient_id"`
				} `json:"statuses"`
			} `json:"value"`
		} `json:"changes"`
	} `json:"entry"`
}

// InboundMessage is a single user message from the webhook.
type InboundMessage struct {
	From string `json:"from"`
	Type string `json:"type"` // "text" or "interactive"
	Text struct {
		Body string `json:"body"`
	} `json:"text"`
	Interactive struct {
		ButtonReply struct {
			ID    string `json:"id"`
			Title string `json:"title"`
		} `json:"button_reply"`
		ListReply struct {
			ID    string `json:"id"`
			Title string `json:"title"`
		} `json:"list_reply"`
	} `json:"interactive"`
}

// ActionID returns the button/list reply ID for interactive messages.
func (m InboundMessage) ActionID() string {
	if m.Interactive.ButtonReply.ID != "" {
		return m.Interactive.ButtonReply.ID
	}
	return m.Interactive.ListReply.ID
}

// VerifySignature validates the X-Hub-Signature-256 header against the
// raw request body. Uses constant-time comparison.
func VerifySignature(appSecret string, body []byte, header string) bool {
	if appSecret == "" {
		return true
	}
	sig := strings.TrimPrefix(header, "sha256=")
	mac := hmac.New(sha256.New, []byte(appSecret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(sig), []byte(expected))
}
