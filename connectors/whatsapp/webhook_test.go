package whatsapp

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"testing"
)

func signBody(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	body := []byte(`{"entry":[]}`)
	secret := "app-secret"

	if !VerifySignature(secret, body, signBody(secret, body)) {
		t.Error("valid signature rejected")
	}
	if VerifySignature(secret, body, signBody("wrong-secret", body)) {
		t.Error("signature from wrong secret accepted")
	}
	if VerifySignature(secret, body, "sha256=deadbeef") {
		t.Error("garbage signature accepted")
	}
	if VerifySignature(secret, []byte(`{"entry":[1]}`), signBody(secret, body)) {
		t.Error("tampered body accepted")
	}

	// Without a configured secret verification is a no-op.
	if !VerifySignature("", body, "") {
		t.Error("empty secret should skip verification")
	}
}

func TestActionID(t *testing.T) {
	var m InboundMessage
	if m.ActionID() != "" {
		t.Errorf("ActionID on plain text = %q, want empty", m.ActionID())
	}

	m.Interactive.ButtonReply.ID = "book_f1"
	if m.ActionID() != "book_f1" {
		t.Errorf("ActionID = %q, want book_f1", m.ActionID())
	}

	var list InboundMessage
	list.Interactive.ListReply.ID = "details_h2"
	if list.ActionID() != "details_h2" {
		t.Errorf("ActionID = %q, want details_h2", list.ActionID())
	}
}

func TestWebhookPayloadParsing(t *testing.T) {
	raw := []byte(`{
		"entry": [{
			"changes": [{
				"value": {
					"messages": [
						{"from": "15551234567", "type": "text", "text": {"body": "flights to paris"}},
						{"from": "15551234567", "type": "interactive",
						 "interactive": {"button_reply": {"id": "book_f1", "title": "Book Now"}}}
					]
				}
			}]
		}]
	}`)

	var payload WebhookPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	msgs := payload.Entry[0].Changes[0].Value.Messages
	if len(msgs) != 2 {
		t.Fatalf("len(messages) = %d, want 2", len(msgs))
	}
	if msgs[0].Text.Body != "flights to paris" {
		t.Errorf("text body = %q", msgs[0].Text.Body)
	}
	if msgs[1].ActionID() != "book_f1" {
		t.Errorf("ActionID = %q, want book_f1", msgs[1].ActionID())
	}
}
