package models

// Intent is the bounded set of conversation intents the orchestrator
// routes on. Specialists register against exactly one intent.
type Intent string

const (
	IntentFlight      Intent = "flight"
	IntentHotel       Intent = "hotel"
	IntentRestaurant  Intent = "restaurant"
	IntentDestination Intent = "destination"
	IntentBooking     Intent = "booking"
	IntentPackage     Intent = "package"
	IntentGeneral     Intent = "general"
)

// ChatRequest is the payload coming into POST /api/chat.
type ChatRequest struct {
	UserID  string `json:"user_id"`
	Text    string `json:"text"`
	Channel string `json:"channel,omitempty"` // "api", "whatsapp"
}

// ChatAction is a single button/card action returned with a reply.
type ChatAction struct {
	Label       string `json:"label"`
	Type        string `json:"type"` // e.g. "book", "select_item", "confirm", "chat"
	ItemID      string `json:"item_id,omitempty"`
	Description string `json:"description,omitempty"`
}

// ChatResponse is what the orchestrator returns to the client.
type ChatResponse struct {
	Intent       Intent             `json:"intent"`
	ResponseText string             `json:"response"`
	Actions      []ChatAction       `json:"actions,omitempty"`
	Flights      []WidgetFlightDeal `json:"flights,omitempty"`
	Hotels       []WidgetHotel      `json:"hotels,omitempty"`
	Restaurants  []WidgetRestaurant `json:"restaurants,omitempty"`
	Guide        *DestinationGuide  `json:"guide,omitempty"`
	Booking      *Booking           `json:"booking,omitempty"`
}

// ChatContext is the per-user conversation state held in Redis between
// turns. BookingStep > 0 means a chat-driven booking flow is in flight.
type ChatContext struct {
	LastIntent    Intent      `json:"lastIntent,omitempty"`
	LastCity      string      `json:"lastCity,omitempty"`
	BookingStep   int         `json:"bookingStep"`
	PendingKind   BookingKind `json:"pendingKind,omitempty"`
	PendingItemID string      `json:"pendingItemId,omitempty"`
	PendingName   string      `json:"pendingName,omitempty"`
	PendingPrice  float64     `json:"pendingPrice,omitempty"`
	PendingDate   string      `json:"pendingDate,omitempty"`
}
