package models

import "time"

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// BookingKind identifies what was booked.
type BookingKind string

const (
	BookingFlight     BookingKind = "flight"
	BookingHotel      BookingKind = "hotel"
	BookingRestaurant BookingKind = "restaurant"
	BookingPackage    BookingKind = "package"
)

// BookingInput is the payload for creating a booking.
type BookingInput struct {
	UserID        string      `json:"user_id"`
	Kind          BookingKind `json:"kind"`
	ItemID        string      `json:"item_id"`        // deal/hotel/restaurant ID from a prior search
	ItemName      string      `json:"item_name"`      // display name ("NYC -> Paris", "Four Seasons")
	Date          string      `json:"date"`           // YYYY-MM-DD (departure / check-in / reservation)
	EndDate       string      `json:"end_date,omitempty"`
	Travelers     int         `json:"travelers"`
	TotalPrice    float64     `json:"total_price"`
	Currency      string      `json:"currency"`
	PaymentMethod string      `json:"payment_method"` // "card" or "deferred"
	ContactEmail  string      `json:"contact_email,omitempty"`
	Notes         string      `json:"notes,omitempty"`
}

// Booking is a persisted booking record.
type Booking struct {
	ID         string        `bson:"id" json:"id"`
	UserID     string        `bson:"user_id" json:"user_id"`
	Kind       BookingKind   `bson:"kind" json:"kind"`
	ItemID     string        `bson:"item_id" json:"item_id"`
	ItemName   string        `bson:"item_name" json:"item_name"`
	Date       string        `bson:"date" json:"date"`
	EndDate    string        `bson:"end_date,omitempty" json:"end_date,omitempty"`
	Travelers  int           `bson:"travelers" json:"travelers"`
	TotalPrice float64       `bson:"total_price" json:"total_price"`
	Currency   string        `bson:"currency" json:"currency"`
	Status     BookingStatus `bson:"status" json:"status"`
	InvoiceID  string        `bson:"invoice_id,omitempty" json:"invoice_id,omitempty"`
	CreatedAt  time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time     `bson:"updated_at" json:"updated_at"`
}

// ItineraryActivity is a single line in the Felix itinerary widget.
type ItineraryActivity struct {
	Time   string `json:"time"`
	Name   string `json:"name"`
	Status string `json:"status"`
	Icon   string `json:"icon"`
}

// ItineraryWidgetData is the envelope for the Felix trip-planner widget.
type ItineraryWidgetData struct {
	WidgetType   string              `json:"widgetType"`
	Size         string              `json:"size"`
	Date         string              `json:"date"`
	Activities   []ItineraryActivity `json:"activities"`
	NextActivity *ItineraryActivity  `json:"nextActivity,omitempty"`
	LastUpdated  string              `json:"lastUpdated"`
}
