package hotel

import (
	"fmt"
	"strings"

	"voyager/models"
)

type mockHotel struct {
	Name          string
	PricePerNight float64
	Rating        float64
}

var mockCityHotels = map[string][]mockHotel{
	"miami": {
		{"Faena Hotel Miami Beach", 750, 4.8},
		{"The Setai Miami Beach", 895, 4.9},
		{"Four Seasons at The Surf Club", 1100, 4.9},
	},
	"paris": {
		{"Four Seasons George V", 895, 4.9},
		{"Le Bristol Paris", 1050, 4.9},
		{"The Ritz Paris", 1200, 4.8},
	},
	"tokyo": {
		{"Aman Tokyo", 1100, 4.9},
		{"Park Hyatt Tokyo", 650, 4.8},
		{"The Peninsula Tokyo", 750, 4.8},
	},
	"dubai": {
		{"Burj Al Arab Jumeirah", 1500, 4.9},
		{"One&Only The Palm", 950, 4.8},
		{"Armani Hotel Dubai", 650, 4.7},
	},
	"london": {
		{"Claridge's", 850, 4.9},
		{"The Connaught", 950, 4.9},
		{"The Savoy", 750, 4.8},
	},
	"new york": {
		{"The Mark", 1100, 4.9},
		{"Aman New York", 1800, 4.9},
		{"The Carlyle", 950, 4.8},
	},
	"maldives": {
		{"Soneva Fushi", 2500, 4.9},
		{"One&Only Reethi Rah", 2200, 4.9},
		{"Cheval Blanc Randheli", 3000, 4.9},
	},
	"whistler": {
		{"Four Seasons Resort Whistler", 895, 4.9},
		{"Fairmont Chateau Whistler", 650, 4.8},
		{"Nita Lake Lodge", 450, 4.7},
	},
}

// mockHotels produces deterministic fallback results when neither the
// consolidator nor the curated portfolio covers a location.
func mockHotels(params models.HotelSearchParams, nights int) []models.HotelResult {
	city := strings.ToLower(params.Location)
	entries, ok := mockCityHotels[city]
	if !ok {
		entries = []mockHotel{{"Grand Luxury Hotel " + params.Location, 600, 4.7}}
	}

	var results []models.HotelResult
	for i, m := range entries {
		score := DealScore(m.PricePerNight, m.Rating)
		results = append(results, models.HotelResult{
			ID:            fmt.Sprintf("mock_%s_%d", strings.ReplaceAll(city, " ", "_"), i),
			Name:          m.Name,
			Location:      params.Location,
			City:          params.Location,
			Rating:        m.Rating,
			ReviewCount:   1000 + i*250,
			PricePerNight: m.PricePerNight,
			TotalPrice:    m.PricePerNight * float64(nights),
			Currency:      "USD",
			Category:      models.HotelLuxury,
			StarRating:    5,
			Amenities:     []string{"Spa", "Pool", "Fine Dining", "Concierge", "Gym"},
			Highlights:    []string{"Five-star service", "Prime location"},
			RoomType:      "Deluxe Room",
			ImageURL:      HotelImage(city),
			ThumbnailURL:  HotelImage(city),
			DealScore:     score,
			Urgency:       Urgency(score),
			Source:        "mock",
			DeepLink:      bookingSMSLink(m.Name, m.PricePerNight),
		})
	}
	return results
}
