package models

import (
	"fmt"
	"strings"
)

// CuisineType enumerates the supported cuisine filters.
type CuisineType string

const (
	CuisineFrench        CuisineType = "french"
	CuisineItalian       CuisineType = "italian"
	CuisineJapanese      CuisineType = "japanese"
	CuisineAmerican      CuisineType = "american"
	CuisineMediterranean CuisineType = "mediterranean"
	CuisineSeafood       CuisineType = "seafood"
	CuisineSteakhouse    CuisineType = "steakhouse"
	CuisineAsianFusion   CuisineType = "asian_fusion"
	CuisineFineDining    CuisineType = "fine_dining"
	CuisineAll           CuisineType = "all"
)

// AvailabilityStatus describes table availability at the requested time.
type AvailabilityStatus string

const (
	AvailabilityAvailable AvailabilityStatus = "available"
	AvailabilityLimited   AvailabilityStatus = "limited"
	AvailabilityWaitlist  AvailabilityStatus = "waitlist"
	AvailabilitySoldOut   AvailabilityStatus = "sold_out"
)

// RestaurantSearchParams are the parameters for a restaurant search.
type RestaurantSearchParams struct {
	Location   string      `json:"location"` // City name
	Date       string      `json:"date"`     // YYYY-MM-DD
	Time       string      `json:"time"`     // HH:MM (24hr)
	PartySize  int         `json:"party_size"`
	Cuisine    CuisineType `json:"cuisine"`
	PriceRange string      `json:"price_range,omitempty"` // "$$", "$$$", "$$$$"
}

// RestaurantResult is a restaurant recommendation.
type RestaurantResult struct {
	ID                 string             `json:"id"`
	Name               string             `json:"name"`
	Cuisine            CuisineType        `json:"cuisine"`
	CuisineDisplay     string             `json:"cuisineDisplay"`
	Location           string             `json:"location"`
	City               string             `json:"city"`
	Neighborhood       string             `json:"neighborhood"`
	Rating             float64            `json:"rating"`
	ReviewCount        int                `json:"reviewCount"`
	PriceRange         string             `json:"priceRange"`
	MichelinStars      int                `json:"michelinStars"`
	ImageURL           string             `json:"imageUrl"`
	ThumbnailURL       string             `json:"thumbnailUrl"`
	Description        string             `json:"description"`
	Highlights         []string           `json:"highlights"`
	AvailableTimes     []string           `json:"availableTimes"`
	AvailabilityStatus AvailabilityStatus `json:"availabilityStatus"`
	NextAvailable      string             `json:"nextAvailable,omitempty"`
	Source             string             `json:"source"`
	DeepLink           string             `json:"deepLink"`
	BookingURL         string             `json:"bookingUrl,omitempty"`
	Coordinates        *GeoPoint          `json:"coordinates,omitempty"`
}

// WidgetRestaurant is the widget-facing JSON shape of a restaurant.
type WidgetRestaurant struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Cuisine            string    `json:"cuisine"`
	CuisineDisplay     string    `json:"cuisineDisplay"`
	Location           string    `json:"location"`
	City               string    `json:"city"`
	Neighborhood       string    `json:"neighborhood"`
	Rating             float64   `json:"rating"`
	RatingDisplay      string    `json:"ratingDisplay"`
	ReviewCount        int       `json:"reviewCount"`
	PriceRange         string    `json:"priceRange"`
	MichelinStars      int       `json:"michelinStars"`
	MichelinDisplay    string    `json:"michelinDisplay,omitempty"`
	ImageURL           string    `json:"imageUrl"`
	ThumbnailURL       string    `json:"thumbnailUrl"`
	Description        string    `json:"description"`
	Highlights         []string  `json:"highlights"`
	HighlightsDisplay  string    `json:"highlightsDisplay"`
	AvailableTimes     []string  `json:"availableTimes"`
	AvailabilityStatus string    `json:"availabilityStatus"`
	NextAvailable      string    `json:"nextAvailable,omitempty"`
	Source             string    `json:"source"`
	DeepLink           string    `json:"deepLink"`
	BookingURL         string    `json:"bookingUrl,omitempty"`
	Coordinates        *GeoPoint `json:"coordinates,omitempty"`
	Action             string    `json:"action"`
}

// WidgetFormat converts the result to the widget JSON shape.
func (r RestaurantResult) WidgetFormat() WidgetRestaurant {
	highlights := r.Highlights
	if len(highlights) > 3 {
		highlights = highlights[:3]
	}
	highlightsShort := r.Highlights
	if len(highlightsShort) > 2 {
		highlightsShort = highlightsShort[:2]
	}
	times := r.AvailableTimes
	if len(times) > 4 {
		times = times[:4]
	}

	w := WidgetRestaurant{
		ID:                 r.ID,
		Name:               r.Name,
		Cuisine:            string(r.Cuisine),
		CuisineDisplay:     r.CuisineDisplay,
		Location:           r.Location,
		City:               r.City,
		Neighborhood:       r.Neighborhood,
		Rating:             r.Rating,
		RatingDisplay:      fmt.Sprintf("%.1f", r.Rating),
		ReviewCount:        r.ReviewCount,
		PriceRange:         r.PriceRange,
		MichelinStars:      r.MichelinStars,
		ImageURL:           r.ImageURL,
		ThumbnailURL:       r.ThumbnailURL,
		Description:        r.Description,
		Highlights:         highlights,
		HighlightsDisplay:  strings.Join(highlightsShort, " · "),
		AvailableTimes:     times,
		AvailabilityStatus: string(r.AvailabilityStatus),
		NextAvailable:      r.NextAvailable,
		Source:             r.Source,
		DeepLink:           r.DeepLink,
		BookingURL:         r.BookingURL,
		Coordinates:        r.Coordinates,
		Action:             "reserve_now",
	}
	if r.MichelinStars > 0 {
		w.MichelinDisplay = strings.Repeat("⭐", r.MichelinStars)
	}
	return w
}

// RestaurantWidgetData is the envelope returned to the iOS dining widget.
type RestaurantWidgetData struct {
	WidgetType      string             `json:"widgetType"`
	Size            string             `json:"size"`
	TopPick         *WidgetRestaurant  `json:"topPick"`
	AllRestaurants  []WidgetRestaurant `json:"allRestaurants"`
	LastUpdated     string             `json:"lastUpdated"`
	NextRefresh     string             `json:"nextRefresh"`
	RefreshInterval int                `json:"refreshInterval"`
	DeepLinkScheme  string             `json:"deepLinkScheme"`
}
