package models

import "fmt"

// CabinClass enumerates the supported fare cabins.
type CabinClass string

const (
	CabinEconomy        CabinClass = "ECONOMY"
	CabinPremiumEconomy CabinClass = "PREMIUM_ECONOMY"
	CabinBusiness       CabinClass = "BUSINESS"
	CabinFirst          CabinClass = "FIRST"
)

// DealUrgency grades how quickly a deal is expected to disappear.
type DealUrgency string

const (
	UrgencyLow      DealUrgency = "low"
	UrgencyMedium   DealUrgency = "medium"
	UrgencyHigh     DealUrgency = "high"
	UrgencyCritical DealUrgency = "critical"
)

// FlightSearchParams are the parameters for a flight search.
type FlightSearchParams struct {
	Origin        string     `json:"origin"`                  // IATA code (e.g., JFK)
	Destination   string     `json:"destination"`             // IATA code (e.g., CDG)
	DepartureDate string     `json:"departure_date"`          // YYYY-MM-DD
	ReturnDate    string     `json:"return_date,omitempty"`   // YYYY-MM-DD
	Adults        int        `json:"adults"`                  // defaults to 1
	CabinClass    CabinClass `json:"cabin_class"`             // defaults to BUSINESS
	MaxResults    int        `json:"max_results"`             // defaults to 10
	MaxPrice      float64    `json:"max_price,omitempty"`     // optional price ceiling
}

// FlightDeal is a scored flight offer.
type FlightDeal struct {
	ID             string      `json:"id"`
	Origin         string      `json:"origin"`
	Destination    string      `json:"destination"`
	RouteDisplay   string      `json:"routeDisplay"` // "NYC -> Paris"
	Price          float64     `json:"price"`
	OriginalPrice  float64     `json:"originalPrice,omitempty"`
	Currency       string      `json:"currency"`
	CabinClass     CabinClass  `json:"cabinClass"`
	Airline        string      `json:"airline"`
	AirlineName    string      `json:"airlineName"`
	DepartureDate  string      `json:"departureDate"`
	ReturnDate     string      `json:"returnDate,omitempty"`
	DepartureTime  string      `json:"departureTime"`
	ArrivalTime    string      `json:"arrivalTime"`
	Duration       string      `json:"duration"`
	Stops          int         `json:"stops"`
	DealScore      int         `json:"dealScore"` // 1-10
	SavingsPercent int         `json:"savingsPercent,omitempty"`
	Urgency        DealUrgency `json:"urgency"`
	ExpiresAt      string      `json:"expiresAt,omitempty"`
	IsMistakeFare  bool        `json:"isMistakeFare"`
	Source         string      `json:"source"` // "amadeus", "mock"
	DeepLink       string      `json:"deepLink"`
	BookingURL     string      `json:"bookingUrl,omitempty"`
	ImageURL       string      `json:"imageUrl,omitempty"`
}

// WidgetFlightDeal is the widget-facing JSON shape of a deal.
type WidgetFlightDeal struct {
	ID             string  `json:"id"`
	Route          string  `json:"route"`
	RouteCode      string  `json:"routeCode"`
	Price          string  `json:"price"`
	PriceNumeric   float64 `json:"priceNumeric"`
	OriginalPrice  string  `json:"originalPrice,omitempty"`
	Cabin          string  `json:"cabin"`
	Airline        string  `json:"airline"`
	AirlineName    string  `json:"airlineName"`
	Savings        string  `json:"savings,omitempty"`
	SavingsPercent int     `json:"savingsPercent,omitempty"`
	DealScore      int     `json:"dealScore"`
	Urgency        string  `json:"urgency"`
	Expires        string  `json:"expires,omitempty"`
	IsMistakeFare  bool    `json:"isMistakeFare"`
	DepartureDate  string  `json:"departureDate"`
	ReturnDate     string  `json:"returnDate,omitempty"`
	DepartureTime  string  `json:"departureTime"`
	ArrivalTime    string  `json:"arrivalTime"`
	Duration       string  `json:"duration"`
	Stops          int     `json:"stops"`
	StopsDisplay   string  `json:"stopsDisplay"`
	Source         string  `json:"source"`
	DeepLink       string  `json:"deepLink"`
	BookingURL     string  `json:"bookingUrl,omitempty"`
	ImageURL       string  `json:"imageUrl"`
	Action         string  `json:"action"`
}

// WidgetFormat converts the deal to the widget JSON shape.
func (d FlightDeal) WidgetFormat() WidgetFlightDeal {
	w := WidgetFlightDeal{
		ID:             d.ID,
		Route:          d.RouteDisplay,
		RouteCode:      fmt.Sprintf("%s->%s", d.Origin, d.Destination),
		Price:          FormatUSD(d.Price),
		PriceNumeric:   d.Price,
		Cabin:          string(d.CabinClass),
		Airline:        d.Airline,
		AirlineName:    d.AirlineName,
		SavingsPercent: d.SavingsPercent,
		DealScore:      d.DealScore,
		Urgency:        string(d.Urgency),
		Expires:        d.ExpiresAt,
		IsMistakeFare:  d.IsMistakeFare,
		DepartureDate:  d.DepartureDate,
		ReturnDate:     d.ReturnDate,
		DepartureTime:  d.DepartureTime,
		ArrivalTime:    d.ArrivalTime,
		Duration:       d.Duration,
		Stops:          d.Stops,
		StopsDisplay:   StopsDisplay(d.Stops),
		Source:         d.Source,
		DeepLink:       d.DeepLink,
		BookingURL:     d.BookingURL,
		ImageURL:       d.ImageURL,
		Action:         "tap_to_book",
	}
	if d.OriginalPrice > 0 {
		w.OriginalPrice = FormatUSD(d.OriginalPrice)
	}
	if d.SavingsPercent > 0 {
		w.Savings = fmt.Sprintf("%d%% off", d.SavingsPercent)
	}
	return w
}

// StopsDisplay renders a stop count for widget cards.
func StopsDisplay(stops int) string {
	switch {
	case stops == 0:
		return "Nonstop"
	case stops == 1:
		return "1 stop"
	default:
		return fmt.Sprintf("%d stops", stops)
	}
}

// FlightWidgetData is the envelope returned to the iOS flight widget.
type FlightWidgetData struct {
	WidgetType      string             `json:"widgetType"`
	Size            string             `json:"size"`
	TopDeal         *WidgetFlightDeal  `json:"topDeal"`
	AllDeals        []WidgetFlightDeal `json:"allDeals"`
	WatchedRoutes   []string           `json:"watchedRoutes"`
	ActiveAlerts    int                `json:"activeAlerts"`
	LastUpdated     string             `json:"lastUpdated"`
	NextRefresh     string             `json:"nextRefresh"`
	RefreshInterval int                `json:"refreshInterval"`
	DeepLinkScheme  string             `json:"deepLinkScheme"`
}
