package maestro

import (
	"context"
	"fmt"
	"strings"
	"time"

	"voyager/models"
	"voyager/services/booking"

	"go.uber.org/zap"
)

// The chat booking flow runs in three steps:
//
//	1: confirm what to book (seeded from the last search when possible)
//	2: collect the date
//	3: final confirmation, then hand off to the booking specialist
func (m *Maestro) startBookingFlow(ctx context.Context, req models.ChatRequest, chatCtx *models.ChatContext) (*models.ChatResponse, error) {
	if chatCtx.PendingName == "" {
		return &models.ChatResponse{
			Intent:       models.IntentBooking,
			ResponseText: "Happy to book for you. Search for a flight, hotel, or restaurant first and I'll take it from there.",
			Actions: []models.ChatAction{
				{Label: "Find flights", Type: "chat"},
				{Label: "Find hotels", Type: "chat"},
			},
		}, nil
	}

	chatCtx.BookingStep = 1
	if err := m.CtxStore.Set(ctx, req.UserID, chatCtx); err != nil {
		return nil, fmt.Errorf("save context: %w", err)
	}

	return &models.ChatResponse{
		Intent: models.IntentBooking,
		ResponseText: fmt.Sprintf("Shall I book %s for %s?",
			chatCtx.PendingName, models.FormatUSD(bookingPrice(chatCtx))),
		Actions: []models.ChatAction{
			{Label: "Yes, continue", Type: "confirm", ItemID: chatCtx.PendingItemID},
			{Label: "Not now", Type: "chat"},
		},
	}, nil
}

func (m *Maestro) handleBookingFlow(ctx context.Context, req models.ChatRequest, chatCtx *models.ChatContext) (*models.ChatResponse, error) {
	switch chatCtx.BookingStep {
	case 1:
		if !isAffirmative(req.Text) {
			m.abandonFlow(ctx, req.UserID, chatCtx)
			return &models.ChatResponse{
				Intent:       models.IntentBooking,
				ResponseText: "No problem, I'll hold off. Anything else I can find for you?",
			}, nil
		}

		if chatCtx.PendingDate != "" {
			return m.confirmStep(ctx, req.UserID, chatCtx)
		}

		chatCtx.BookingStep = 2
		if err := m.CtxStore.Set(ctx, req.UserID, chatCtx); err != nil {
			return nil, fmt.Errorf("save context: %w", err)
		}
		return &models.ChatResponse{
			Intent:       models.IntentBooking,
			ResponseText: "What date should I book? (YYYY-MM-DD)",
		}, nil

	case 2:
		date := strings.TrimSpace(req.Text)
		if _, err := time.Parse("2006-01-02", date); err != nil {
			return &models.ChatResponse{
				Intent:       models.IntentBooking,
				ResponseText: "I need the date as YYYY-MM-DD, for example 2026-09-15.",
			}, nil
		}
		chatCtx.PendingDate = date
		return m.confirmStep(ctx, req.UserID, chatCtx)

	case 3:
		if !isAffirmative(req.Text) {
			m.abandonFlow(ctx, req.UserID, chatCtx)
			return &models.ChatResponse{
				Intent:       models.IntentBooking,
				ResponseText: "Understood, nothing was booked.",
			}, nil
		}

		b, err := m.Bookings.Create(ctx, models.BookingInput{
			UserID:        req.UserID,
			Kind:          chatCtx.PendingKind,
			ItemID:        chatCtx.PendingItemID,
			ItemName:      chatCtx.PendingName,
			Date:          chatCtx.PendingDate,
			TotalPrice:    bookingPrice(chatCtx),
			Currency:      "USD",
			PaymentMethod: "deferred",
		})
		if err != nil {
			m.Logger.Error("chat booking failed", zap.Error(err),
				zap.String("user", req.UserID))
			return &models.ChatResponse{
				Intent:       models.IntentBooking,
				ResponseText: "Something went wrong placing that booking. Please try again.",
			}, nil
		}

		if err := m.CtxStore.Clear(ctx, req.UserID); err != nil {
			m.Logger.Warn("context clear failed", zap.Error(err))
		}
		return &models.ChatResponse{
			Intent: models.IntentBooking,
			ResponseText: fmt.Sprintf("Booking confirmed. %s on %s, reference %s. Payment is arranged with your concierge.",
				b.ItemName, b.Date, b.ID),
			Booking: b,
		}, nil
	}

	// Unknown step, reset rather than loop.
	m.abandonFlow(ctx, req.UserID, chatCtx)
	return m.generalReply(models.IntentGeneral), nil
}

func (m *Maestro) confirmStep(ctx context.Context, userID string, chatCtx *models.ChatContext) (*models.ChatResponse, error) {
	chatCtx.BookingStep = 3
	if err := m.CtxStore.Set(ctx, userID, chatCtx); err != nil {
		return nil, fmt.Errorf("save context: %w", err)
	}
	return &models.ChatResponse{
		Intent: models.IntentBooking,
		ResponseText: fmt.Sprintf("To confirm: %s on %s for %s. Book it?",
			chatCtx.PendingName, chatCtx.PendingDate, models.FormatUSD(bookingPrice(chatCtx))),
		Actions: []models.ChatAction{
			{Label: "Book it", Type: "confirm", ItemID: chatCtx.PendingItemID},
			{Label: "Cancel", Type: "chat"},
		},
	}, nil
}

func (m *Maestro) abandonFlow(ctx context.Context, userID string, chatCtx *models.ChatContext) {
	chatCtx.BookingStep = 0
	if err := m.CtxStore.Set(ctx, userID, chatCtx); err != nil {
		m.Logger.Warn("context save failed", zap.Error(err))
	}
}

// bookingPrice falls back to a nominal deposit when the pending item
// carried no price, restaurant tables for instance.
func bookingPrice(chatCtx *models.ChatContext) float64 {
	if chatCtx.PendingPrice > 0 {
		return chatCtx.PendingPrice
	}
	return 100
}

var affirmatives = []string{"yes", "yeah", "yep", "sure", "confirm", "book it", "go ahead", "do it", "ok", "okay", "continue"}

func isAffirmative(text string) bool {
	lower := strings.ToLower(strings.TrimSpace(text))
	for _, a := range affirmatives {
		if strings.Contains(lower, a) {
			return true
		}
	}
	return false
}

var cancellations = []string{"cancel", "call off"}

func isCancellation(text string) bool {
	lower := strings.ToLower(text)
	for _, c := range cancellations {
		if strings.Contains(lower, c) {
			return true
		}
	}
	return false
}

// cancelReply lists the caller's cancellable bookings. The cancellation
// itself runs through the bookings API, not the chat.
func (m *Maestro) cancelReply(ctx context.Context, userID string) (*models.ChatResponse, error) {
	list, err := m.Bookings.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	var actions []models.ChatAction
	for _, b := range list {
		if !booking.CanTransition(b.Status, models.BookingCancelled) {
			continue
		}
		actions = append(actions, models.ChatAction{
			Label:       "Cancel " + b.ItemName,
			Type:        "cancel",
			ItemID:      b.ID,
			Description: b.Date,
		})
	}

	if len(actions) == 0 {
		return &models.ChatResponse{
			Intent:       models.IntentBooking,
			ResponseText: "You have no active bookings to cancel.",
		}, nil
	}
	return &models.ChatResponse{
		Intent:       models.IntentBooking,
		ResponseText: "Which booking should I cancel?",
		Actions:      actions,
	}, nil
}
