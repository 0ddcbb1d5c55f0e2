package models

// PackageSearchParams combine a flight and hotel search into one trip.
type PackageSearchParams struct {
	Origin        string     `json:"origin"`      // IATA code
	Destination   string     `json:"destination"` // city name or IATA code
	DepartureDate string     `json:"departure_date"`
	ReturnDate    string     `json:"return_date"`
	Travelers     int        `json:"travelers"`
	CabinClass    CabinClass `json:"cabin_class"`
	HotelCategory HotelCategory `json:"hotel_category"`
	MaxResults    int        `json:"max_results"`
}

// TravelPackage pairs a flight deal with a hotel stay.
type TravelPackage struct {
	ID         string           `json:"id"`
	Flight     WidgetFlightDeal `json:"flight"`
	Hotel      WidgetHotel      `json:"hotel"`
	TotalPrice float64          `json:"totalPrice"`
	Currency   string           `json:"currency"`
	Savings    string           `json:"savings,omitempty"`
}

// PackageSearchResult is the merged orchestrator reply for a package search.
type PackageSearchResult struct {
	Packages []TravelPackage    `json:"packages"`
	Flights  []WidgetFlightDeal `json:"flights"`
	Hotels   []WidgetHotel      `json:"hotels"`
}
