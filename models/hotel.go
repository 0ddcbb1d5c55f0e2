package models

import (
	"fmt"
	"strings"
)

// HotelCategory enumerates the curated hotel tiers.
type HotelCategory string

const (
	HotelLuxury   HotelCategory = "luxury"
	HotelBoutique HotelCategory = "boutique"
	HotelResort   HotelCategory = "resort"
	HotelBusiness HotelCategory = "business"
	HotelAll      HotelCategory = "all"
)

// HotelSearchParams are the parameters for a hotel search.
type HotelSearchParams struct {
	Location  string        `json:"location"`  // City name or IATA code
	CheckIn   string        `json:"check_in"`  // YYYY-MM-DD
	CheckOut  string        `json:"check_out"` // YYYY-MM-DD
	Guests    int           `json:"guests"`    // defaults to 2
	Rooms     int           `json:"rooms"`     // defaults to 1
	MinRating float64       `json:"min_rating"`
	MaxPrice  float64       `json:"max_price,omitempty"`
	Category  HotelCategory `json:"category"`
	Amenities []string      `json:"amenities,omitempty"`
}

// HotelResult is a scored hotel offer.
type HotelResult struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Brand          string        `json:"brand,omitempty"`
	Location       string        `json:"location"`
	City           string        `json:"city"`
	Country        string        `json:"country"`
	Rating         float64       `json:"rating"`
	ReviewCount    int           `json:"reviewCount"`
	PricePerNight  float64       `json:"pricePerNight"`
	OriginalPrice  float64       `json:"originalPrice,omitempty"`
	TotalPrice     float64       `json:"totalPrice"`
	Currency       string        `json:"currency"`
	Category       HotelCategory `json:"category"`
	StarRating     int           `json:"starRating"`
	ImageURL       string        `json:"imageUrl"`
	ThumbnailURL   string        `json:"thumbnailUrl"`
	Amenities      []string      `json:"amenities"`
	Highlights     []string      `json:"highlights"`
	RoomType       string        `json:"roomType"`
	DealScore      int           `json:"dealScore"` // 1-10
	SavingsPercent int           `json:"savingsPercent,omitempty"`
	Urgency        DealUrgency   `json:"urgency"`
	Source         string        `json:"source"`
	DeepLink       string        `json:"deepLink"`
	BookingURL     string        `json:"bookingUrl,omitempty"`
	Coordinates    *GeoPoint     `json:"coordinates,omitempty"`
}

// WidgetHotel is the widget-facing JSON shape of a hotel result.
type WidgetHotel struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Brand             string    `json:"brand,omitempty"`
	Location          string    `json:"location"`
	City              string    `json:"city"`
	Country           string    `json:"country"`
	Rating            float64   `json:"rating"`
	RatingDisplay     string    `json:"ratingDisplay"`
	ReviewCount       int       `json:"reviewCount"`
	Price             string    `json:"price"`
	PriceNumeric      float64   `json:"priceNumeric"`
	PricePerNight     string    `json:"pricePerNight"`
	OriginalPrice     string    `json:"originalPrice,omitempty"`
	TotalPrice        string    `json:"totalPrice"`
	TotalPriceNumeric float64   `json:"totalPriceNumeric"`
	Currency          string    `json:"currency"`
	Category          string    `json:"category"`
	Stars             int       `json:"stars"`
	StarsDisplay      string    `json:"starsDisplay"`
	ImageURL          string    `json:"imageUrl"`
	ThumbnailURL      string    `json:"thumbnailUrl"`
	Amenities         []string  `json:"amenities"`
	AmenitiesDisplay  string    `json:"amenitiesDisplay"`
	Highlights        []string  `json:"highlights"`
	RoomType          string    `json:"roomType"`
	DealScore         int       `json:"dealScore"`
	Savings           string    `json:"savings,omitempty"`
	SavingsPercent    int       `json:"savingsPercent,omitempty"`
	Urgency           string    `json:"urgency"`
	Source            string    `json:"source"`
	DeepLink          string    `json:"deepLink"`
	BookingURL        string    `json:"bookingUrl,omitempty"`
	Coordinates       *GeoPoint `json:"coordinates,omitempty"`
	Action            string    `json:"action"`
}

// WidgetFormat converts the result to the widget JSON shape.
func (h HotelResult) WidgetFormat() WidgetHotel {
	amenities := h.Amenities
	if len(amenities) > 5 {
		amenities = amenities[:5]
	}
	highlights := h.Highlights
	if len(highlights) > 3 {
		highlights = highlights[:3]
	}
	amenitiesShort := h.Amenities
	if len(amenitiesShort) > 3 {
		amenitiesShort = amenitiesShort[:3]
	}

	w := WidgetHotel{
		ID:                h.ID,
		Name:              h.Name,
		Brand:             h.Brand,
		Location:          h.Location,
		City:              h.City,
		Country:           h.Country,
		Rating:            h.Rating,
		RatingDisplay:     fmt.Sprintf("%.1f", h.Rating),
		ReviewCount:       h.ReviewCount,
		Price:             FormatUSD(h.PricePerNight),
		PriceNumeric:      h.PricePerNight,
		PricePerNight:     FormatUSD(h.PricePerNight) + "/night",
		TotalPrice:        FormatUSD(h.TotalPrice),
		TotalPriceNumeric: h.TotalPrice,
		Currency:          h.Currency,
		Category:          string(h.Category),
		Stars:             h.StarRating,
		StarsDisplay:      strings.Repeat("★", h.StarRating),
		ImageURL:          h.ImageURL,
		ThumbnailURL:      h.ThumbnailURL,
		Amenities:         amenities,
		AmenitiesDisplay:  strings.Join(amenitiesShort, " · "),
		Highlights:        highlights,
		RoomType:          h.RoomType,
		DealScore:         h.DealScore,
		SavingsPercent:    h.SavingsPercent,
		Urgency:           string(h.Urgency),
		Source:            h.Source,
		DeepLink:          h.DeepLink,
		BookingURL:        h.BookingURL,
		Coordinates:       h.Coordinates,
		Action:            "tap_to_book",
	}
	if h.OriginalPrice > 0 {
		w.OriginalPrice = FormatUSD(h.OriginalPrice)
	}
	if h.SavingsPercent > 0 {
		w.Savings = fmt.Sprintf("%d%% off", h.SavingsPercent)
	}
	return w
}

// HotelWidgetData is the envelope returned to the iOS hotel widget.
type HotelWidgetData struct {
	WidgetType      string        `json:"widgetType"`
	Size            string        `json:"size"`
	TopHotel        *WidgetHotel  `json:"topHotel"`
	AllHotels       []WidgetHotel `json:"allHotels"`
	LastUpdated     string        `json:"lastUpdated"`
	NextRefresh     string        `json:"nextRefresh"`
	RefreshInterval int           `json:"refreshInterval"`
	DeepLinkScheme  string        `json:"deepLinkScheme"`
}
