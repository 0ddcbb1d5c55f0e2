package models

import "testing"

func TestFormatUSD(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "$0"},
		{847, "$847"},
		{1847, "$1,847"},
		{1847.4, "$1,847"},
		{1847.6, "$1,848"},
		{1250000, "$1,250,000"},
	}

	for _, tt := range tests {
		if got := FormatUSD(tt.amount); got != tt.want {
			t.Errorf("FormatUSD(%v) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestStopsDisplay(t *testing.T) {
	tests := []struct {
		stops int
		want  string
	}{
		{0, "Nonstop"},
		{1, "1 stop"},
		{2, "2 stops"},
	}
	for _, tt := range tests {
		if got := StopsDisplay(tt.stops); got != tt.want {
			t.Errorf("StopsDisplay(%d) = %q, want %q", tt.stops, got, tt.want)
		}
	}
}

func TestFlightDealWidgetFormat(t *testing.T) {
	deal := FlightDeal{
		ID:             "deal_1",
		Origin:         "JFK",
		Destination:    "CDG",
		RouteDisplay:   "NYC -> Paris",
		Price:          1847,
		OriginalPrice:  2500,
		CabinClass:     CabinBusiness,
		SavingsPercent: 26,
		DealScore:      8,
		Urgency:        UrgencyHigh,
		Stops:          0,
	}

	w := deal.WidgetFormat()
	if w.Price != "$1,847" {
		t.Errorf("Price = %q, want %q", w.Price, "$1,847")
	}
	if w.OriginalPrice != "$2,500" {
		t.Errorf("OriginalPrice = %q, want %q", w.OriginalPrice, "$2,500")
	}
	if w.Savings != "26% off" {
		t.Errorf("Savings = %q, want %q", w.Savings, "26% off")
	}
	if w.StopsDisplay != "Nonstop" {
		t.Errorf("StopsDisplay = %q, want %q", w.StopsDisplay, "Nonstop")
	}
	if w.Action != "tap_to_book" {
		t.Errorf("Action = %q, want %q", w.Action, "tap_to_book")
	}
}

func TestHotelWidgetFormatTruncatesLists(t *testing.T) {
	h := HotelResult{
		Name:          "Test Hotel",
		Rating:        4.85,
		PricePerNight: 895,
		TotalPrice:    2685,
		StarRating:    5,
		Amenities:     []string{"a", "b", "c", "d", "e", "f", "g"},
		Highlights:    []string{"h1", "h2", "h3", "h4"},
	}

	w := h.WidgetFormat()
	if len(w.Amenities) != 5 {
		t.Errorf("len(Amenities) = %d, want 5", len(w.Amenities))
	}
	if len(w.Highlights) != 3 {
		t.Errorf("len(Highlights) = %d, want 3", len(w.Highlights))
	}
	if w.RatingDisplay != "4.9" {
		t.Errorf("RatingDisplay = %q, want %q", w.RatingDisplay, "4.9")
	}
	if w.StarsDisplay != "★★★★★" {
		t.Errorf("StarsDisplay = %q, want five stars", w.StarsDisplay)
	}
	if w.AmenitiesDisplay != "a · b · c" {
		t.Errorf("AmenitiesDisplay = %q", w.AmenitiesDisplay)
	}
}
