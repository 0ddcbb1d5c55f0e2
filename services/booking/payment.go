package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"voyager/models"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

type PaymentHandler interface {
	ProcessPayment(ctx context.Context, req models.PaymentRequest) (*models.Invoice, error)
}

// UnifiedPaymentHandler settles card payments through Stripe and records
// deferred payments as pending invoices for the concierge team.
type UnifiedPaymentHandler struct {
	logger *zap.Logger
}

func NewPaymentHandler(logger *zap.Logger) *UnifiedPaymentHandler {
	return &UnifiedPaymentHandler{logger: logger}
}

func (h *UnifiedPaymentHandler) ProcessPayment(ctx context.Context, req models.PaymentRequest) (*models.Invoice, error) {
	if err := validateRequest(req); err != nil {
		return nil, fmt.Errorf("invalid payment request: %w", err)
	}

	inv := &models.Invoice{
		InvoiceID: uuid.New().String(),
		UserID:    req.UserID,
		BookingID: req.BookingID,
		Amount:    req.Amount,
		Currency:  req.Currency,
		Method:    req.Method,
		Status:    "pending",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	switch req.Method {
	case "card":
		return h.processCardPayment(ctx, req, inv)
	case "deferred":
		return h.processDeferredPayment(ctx, req, inv)
	default:
		return nil, fmt.Errorf("unsupported payment method: %s", req.Method)
	}
}

func (h *UnifiedPaymentHandler) processCardPayment(ctx context.Context, req models.PaymentRequest, inv *models.Invoice) (*models.Invoice, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(req.Amount * 100)),
		Currency: stripe.String(currencyCode(req.Currency)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	if req.Email != "" {
		params.ReceiptEmail = stripe.String(req.Email)
	}
	params.AddMetadata("booking_id", req.BookingID)
	params.AddMetadata("user_id", req.UserID)

	pi, err := paymentintent.New(params)
	if err != nil {
		inv.Status = "failed"
		inv.UpdatedAt = time.Now()
		h.logger.Error("Stripe payment intent failed", zap.Error(err),
			zap.String("booking", req.BookingID))
		return inv, fmt.Errorf("create payment intent: %w", err)
	}

	inv.PaymentID = pi.ID
	inv.Status = "paid"
	inv.UpdatedAt = time.Now()

	h.logger.Info("Card payment successful",
		zap.String("invoice", inv.InvoiceID),
		zap.String("payment_intent", pi.ID))
	return inv, nil
}

func (h *UnifiedPaymentHandler) processDeferredPayment(ctx context.Context, req models.PaymentRequest, inv *models.Invoice) (*models.Invoice, error) {
	// Deferred payments stay pending until the concierge team settles them.
	inv.UpdatedAt = time.Now()

	h.logger.Info("Deferred payment recorded", zap.String("invoice", inv.InvoiceID))
	return inv, nil
}

func currencyCode(currency string) string {
	if currency == "" {
		return string(stripe.CurrencyUSD)
	}
	return strings.ToLower(currency)
}

func validateRequest(req models.PaymentRequest) error {
	if req.Amount <= 0 {
		return errors.New("invalid payment amount")
	}
	if req.UserID == "" {
		return errors.New("missing user ID")
	}
	if req.Method != "card" && req.Method != "deferred" {
		return errors.New("unsupported method")
	}
	return nil
}
