package maestro

import (
	"context"
	"fmt"

	"voyager/models"
	"voyager/services/booking"
	"voyager/services/intelligence"

	"go.uber.org/zap"
)

// Specialist handles one intent. Maestro dispatches each turn to the
// specialist registered for the classified intent.
type Specialist interface {
	Intent() models.Intent
	Handle(ctx context.Context, req models.ChatRequest, chatCtx *models.ChatContext) (*models.ChatResponse, error)
}

// Service is the orchestrator's public surface.
type Service interface {
	ProcessTurn(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error)
}

// Maestro routes conversation turns: classify, dispatch, persist context.
type Maestro struct {
	CtxStore    *RedisContextStore
	Gemini      intelligence.Generator
	Bookings    booking.Service
	Logger      *zap.Logger
	specialists map[models.Intent]Specialist
}

func NewMaestro(ctxStore *RedisContextStore, gemini intelligence.Generator, bookings booking.Service, logger *zap.Logger) *Maestro {
	return &Maestro{
		CtxStore:    ctxStore,
		Gemini:      gemini,
		Bookings:    bookings,
		Logger:      logger,
		specialists: make(map[models.Intent]Specialist),
	}
}

// Register adds a specialist to the dispatch table. Registering a second
// specialist for the same intent replaces the first.
func (m *Maestro) Register(s Specialist) {
	m.specialists[s.Intent()] = s
}

func (m *Maestro) ProcessTurn(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error) {
	if req.UserID == "" {
		return nil, fmt.Errorf("missing user ID")
	}

	chatCtx, err := m.CtxStore.Get(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("load context: %w", err)
	}

	// A booking flow in flight takes the turn regardless of intent.
	if chatCtx.BookingStep > 0 {
		return m.handleBookingFlow(ctx, req, chatCtx)
	}

	intent := m.classify(ctx, req.Text)
	m.Logger.Debug("turn classified",
		zap.String("user", req.UserID),
		zap.String("intent", string(intent)))

	if city := extractCity(req.Text); city != "" {
		chatCtx.LastCity = city
	}
	chatCtx.LastIntent = intent
	if err := m.CtxStore.Set(ctx, req.UserID, chatCtx); err != nil {
		return nil, fmt.Errorf("save context: %w", err)
	}

	if intent == models.IntentBooking {
		// "Cancel my booking" is a lifecycle request, not a new booking.
		if isCancellation(req.Text) {
			return m.cancelReply(ctx, req.UserID)
		}
		return m.startBookingFlow(ctx, req, chatCtx)
	}

	if s, ok := m.specialists[intent]; ok {
		resp, err := s.Handle(ctx, req, chatCtx)
		if err != nil {
			m.Logger.Error("specialist failed", zap.Error(err),
				zap.String("intent", string(intent)))
			return m.generalReply(intent), nil
		}
		// Remember what the specialist surfaced so a follow-up "book it"
		// has something to bind to.
		rememberResults(chatCtx, resp)
		if err := m.CtxStore.Set(ctx, req.UserID, chatCtx); err != nil {
			m.Logger.Warn("context save failed", zap.Error(err))
		}
		return resp, nil
	}

	return m.generalReply(intent), nil
}

// rememberResults stashes the top result as the pending booking candidate.
func rememberResults(chatCtx *models.ChatContext, resp *models.ChatResponse) {
	switch {
	case len(resp.Flights) > 0:
		top := resp.Flights[0]
		chatCtx.PendingKind = models.BookingFlight
		chatCtx.PendingItemID = top.ID
		chatCtx.PendingName = top.Route
		chatCtx.PendingPrice = top.PriceNumeric
		chatCtx.PendingDate = top.DepartureDate
	case len(resp.Hotels) > 0:
		top := resp.Hotels[0]
		chatCtx.PendingKind = models.BookingHotel
		chatCtx.PendingItemID = top.ID
		chatCtx.PendingName = top.Name
		chatCtx.PendingPrice = top.TotalPriceNumeric
	case len(resp.Restaurants) > 0:
		top := resp.Restaurants[0]
		chatCtx.PendingKind = models.BookingRestaurant
		chatCtx.PendingItemID = top.ID
		chatCtx.PendingName = top.Name
	}
}

func (m *Maestro) generalReply(intent models.Intent) *models.ChatResponse {
	return &models.ChatResponse{
		Intent:       intent,
		ResponseText: "I can find flights, hotels, and restaurants, share destination guides, or handle a booking. What are you planning?",
		Actions: []models.ChatAction{
			{Label: "Find flights", Type: "chat"},
			{Label: "Find hotels", Type: "chat"},
			{Label: "Destination ideas", Type: "chat"},
		},
	}
}
