package models

import "time"

// PaymentRequest describes a payment to be processed for a booking.
type PaymentRequest struct {
	UserID    string  `json:"user_id"`
	BookingID string  `json:"booking_id"`
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	Method    string  `json:"method"` // "card" or "deferred"
	Email     string  `json:"email,omitempty"`
}

// Invoice is the record of a processed (or pending) payment.
type Invoice struct {
	InvoiceID string    `bson:"invoice_id" json:"invoice_id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	BookingID string    `bson:"booking_id" json:"booking_id"`
	Amount    float64   `bson:"amount" json:"amount"`
	Currency  string    `bson:"currency" json:"currency"`
	Method    string    `bson:"method" json:"method"`
	PaymentID string    `bson:"payment_id,omitempty" json:"payment_id,omitempty"` // Stripe PaymentIntent ID
	Status    string    `bson:"status" json:"status"`                             // "pending", "paid", "failed"
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
