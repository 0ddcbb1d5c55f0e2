package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"voyager/models"

	"github.com/gin-gonic/gin"
)

type stubMaestro struct {
	resp    *models.ChatResponse
	err     error
	lastReq models.ChatRequest
}

func (s *stubMaestro) ProcessTurn(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error) {
	s.lastReq = req
	return s.resp, s.err
}

func chatRouter(stub *stubMaestro) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/chat", NewChatHandler(stub).Chat)
	return r
}

func postChat(t *testing.T, r *gin.Engine, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestChatHappyPath(t *testing.T) {
	stub := &stubMaestro{resp: &models.ChatResponse{
		Intent:       models.IntentFlight,
		ResponseText: "Found 3 business class fares to Paris.",
	}}
	r := chatRouter(stub)

	w := postChat(t, r, map[string]string{"user_id": "user_1", "text": "flights to paris"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp models.ChatResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Intent != models.IntentFlight {
		t.Errorf("Intent = %s, want flight", resp.Intent)
	}
	if stub.lastReq.Channel != "api" {
		t.Errorf("Channel = %q, want api default", stub.lastReq.Channel)
	}
}

func TestChatRejectsMissingFields(t *testing.T) {
	stub := &stubMaestro{resp: &models.ChatResponse{}}
	r := chatRouter(stub)

	tests := []struct {
		name string
		body map[string]string
	}{
		{"missing user_id", map[string]string{"text": "hello"}},
		{"missing text", map[string]string{"user_id": "user_1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if w := postChat(t, r, tt.body); w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
		})
	}
}

func TestChatAuthenticatedUserOverridesBody(t *testing.T) {
	stub := &stubMaestro{resp: &models.ChatResponse{}}
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/chat", func(c *gin.Context) {
		c.Set("userID", "session_user")
		NewChatHandler(stub).Chat(c)
	})

	w := postChat(t, r, map[string]string{"user_id": "spoofed", "text": "hi there"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if stub.lastReq.UserID != "session_user" {
		t.Errorf("UserID = %q, want the session identity", stub.lastReq.UserID)
	}
}

func TestChatPropagatesOrchestratorFailure(t *testing.T) {
	stub := &stubMaestro{err: errors.New("redis down")}
	r := chatRouter(stub)

	if w := postChat(t, r, map[string]string{"user_id": "user_1", "text": "hi"}); w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}
