package flight

import (
	"fmt"
	"time"

	"voyager/models"
)

type mockRoute struct {
	Airline  string
	Name     string
	Price    float64
	Duration string
}

var mockRoutes = map[string]mockRoute{
	"JFK-CDG": {"AF", "Air France", 1847, "7h 15m"},
	"JFK-LHR": {"BA", "British Airways", 2150, "7h 00m"},
	"LAX-NRT": {"JL", "Japan Airlines", 2890, "11h 30m"},
	"LAX-HND": {"NH", "ANA", 2750, "11h 45m"},
	"SFO-HND": {"UA", "United Airlines", 2650, "10h 30m"},
	"MIA-LHR": {"BA", "British Airways", 2350, "8h 45m"},
	"JFK-DXB": {"EK", "Emirates", 3200, "12h 30m"},
}

// mockDeals produces a deterministic fallback deal for a route when the
// consolidator is unavailable.
func mockDeals(params models.FlightSearchParams) []models.FlightDeal {
	data, ok := mockRoutes[params.Origin+"-"+params.Destination]
	if !ok {
		data = mockRoute{"AA", "American Airlines", 2500, "8h 00m"}
	}

	return []models.FlightDeal{{
		ID:             fmt.Sprintf("mock_%s_%s", params.Origin, params.Destination),
		Origin:         params.Origin,
		Destination:    params.Destination,
		RouteDisplay:   fmt.Sprintf("%s -> %s", params.Origin, params.Destination),
		Price:          data.Price,
		OriginalPrice:  data.Price * 1.35,
		Currency:       "USD",
		CabinClass:     params.CabinClass,
		Airline:        data.Airline,
		AirlineName:    data.Name,
		DepartureDate:  params.DepartureDate,
		ReturnDate:     params.ReturnDate,
		DepartureTime:  "18:30",
		ArrivalTime:    "07:45",
		Duration:       data.Duration,
		Stops:          0,
		DealScore:      8,
		SavingsPercent: 26,
		Urgency:        models.UrgencyHigh,
		ExpiresAt:      time.Now().Add(6 * time.Hour).Format(time.RFC3339),
		Source:         "mock",
		DeepLink:       bookingSMSLink(params.Origin, params.Destination, data.Price),
		ImageURL:       DestinationImage(params.Destination),
	}}
}
