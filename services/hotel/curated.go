package hotel

import (
	"context"
	"strings"

	"voyager/models"
)

type curatedHotel struct {
	Name          string
	Country       string
	Rating        float64
	ReviewCount   int
	PricePerNight float64
	StarRating    int
	Amenities     []string
	Highlights    []string
	RoomType      string
}

// curatedHotels is the hand-picked luxury portfolio, keyed by lowercase city.
var curatedHotels = map[string][]curatedHotel{
	"paris": {
		{"Four Seasons George V", "France", 4.9, 2847, 895, 5,
			[]string{"Spa", "Michelin Dining", "Concierge", "Pool", "Butler Service"},
			[]string{"Three Michelin-starred restaurants", "Legendary flower displays", "Steps from Champs-Elysees"},
			"Deluxe Suite"},
		{"Le Bristol Paris", "France", 4.9, 1932, 1050, 5,
			[]string{"Rooftop Pool", "Spa", "Michelin Dining", "Garden", "Pet Friendly"},
			[]string{"Epicure three-star dining", "Rooftop pool with Sacre-Coeur views", "Faubourg Saint-Honore address"},
			"Junior Suite"},
		{"The Ritz Paris", "France", 4.8, 3104, 1200, 5,
			[]string{"Spa", "Bar Hemingway", "Michelin Dining", "Pool", "Shopping Arcade"},
			[]string{"Place Vendome landmark", "Bar Hemingway", "Chanel spa"},
			"Executive Room"},
	},
	"london": {
		{"Claridge's", "United Kingdom", 4.9, 2456, 850, 5,
			[]string{"Spa", "Afternoon Tea", "Concierge", "Gym", "Butler Service"},
			[]string{"Art deco icon in Mayfair", "Legendary afternoon tea", "Davies and Brook dining"},
			"Mayfair Suite"},
		{"The Connaught", "United Kingdom", 4.9, 1876, 950, 5,
			[]string{"Spa", "Michelin Dining", "Connaught Bar", "Gym", "Concierge"},
			[]string{"World-famous Connaught Bar", "Helene Darroze two-star restaurant", "Quiet Mayfair square"},
			"Superior King"},
		{"The Savoy", "United Kingdom", 4.8, 3521, 750, 5,
			[]string{"River Views", "American Bar", "Spa", "Pool", "Theatre District"},
			[]string{"Thames views", "American Bar heritage", "Steps from Covent Garden"},
			"Deluxe River View"},
	},
	"tokyo": {
		{"Aman Tokyo", "Japan", 4.9, 1245, 1100, 5,
			[]string{"Spa", "Pool", "Otemachi Views", "Onsen-style Baths", "Michelin Dining"},
			[]string{"Serene ryokan-inspired design", "33rd-floor lobby garden", "Panoramic Mount Fuji views"},
			"Deluxe Room"},
		{"Park Hyatt Tokyo", "Japan", 4.8, 2890, 650, 5,
			[]string{"Pool", "Spa", "New York Bar", "Library", "City Views"},
			[]string{"Shinjuku skyline icon", "New York Bar jazz nights", "52nd-floor pool"},
			"Park Deluxe"},
		{"The Peninsula Tokyo", "Japan", 4.8, 2134, 750, 5,
			[]string{"Spa", "Pool", "Rolls-Royce Fleet", "Imperial Palace Views", "Rooftop Dining"},
			[]string{"Imperial Palace garden views", "Ginza at the doorstep", "House Rolls-Royce fleet"},
			"Grand Deluxe"},
	},
	"dubai": {
		{"Burj Al Arab Jumeirah", "UAE", 4.9, 4250, 1500, 5,
			[]string{"Private Beach", "Butler Service", "Helipad", "Gold iPads", "Underwater Dining"},
			[]string{"Sail-shaped icon", "All-suite with butler", "Private beach and terrace pools"},
			"One Bedroom Suite"},
		{"One&Only The Palm", "UAE", 4.8, 1680, 950, 5,
			[]string{"Private Beach", "Spa", "Michelin Dining", "Pool", "Water Transfers"},
			[]string{"Secluded Palm Jumeirah beachfront", "Guerlain spa", "Zest beachfront dining"},
			"Palm Manor Room"},
		{"Armani Hotel Dubai", "UAE", 4.7, 2310, 650, 5,
			[]string{"In Burj Khalifa", "Spa", "Designer Interiors", "Fountain Views", "Club Access"},
			[]string{"Inside the Burj Khalifa", "Armani-designed interiors", "Dubai Fountain views"},
			"Armani Classic"},
	},
	"miami": {
		{"Faena Hotel Miami Beach", "USA", 4.8, 1923, 750, 5,
			[]string{"Private Beach", "Spa", "Theatre", "Pool", "Art Collection"},
			[]string{"Gilded Damien Hirst mammoth", "Cabaret theatre", "Mid-Beach oceanfront"},
			"Premier Ocean View"},
		{"The Setai Miami Beach", "USA", 4.9, 1456, 895, 5,
			[]string{"Three Pools", "Private Beach", "Spa", "Asian Dining", "Courtyard"},
			[]string{"Art deco meets Asian serenity", "Three temperature-tiered pools", "South Beach oceanfront"},
			"Studio Suite"},
		{"Four Seasons at The Surf Club", "USA", 4.9, 987, 1100, 5,
			[]string{"Private Beach", "Spa", "Cabanas", "Michelin Dining", "Pool"},
			[]string{"Restored 1930 Surf Club", "Thomas Keller dining", "Surfside beachfront"},
			"Oceanfront Room"},
	},
	"new york": {
		{"The Mark", "USA", 4.9, 1678, 1100, 5,
			[]string{"Jean-Georges Dining", "Sailboat Access", "Bicycles", "Spa Suite", "Concierge"},
			[]string{"Madison Avenue polish", "Jean-Georges restaurant", "Central Park at the corner"},
			"Premier Room"},
		{"Aman New York", "USA", 4.9, 654, 1800, 5,
			[]string{"Spa", "Jazz Club", "Garden Terrace", "Pool", "Fireplaces"},
			[]string{"Crown Building landmark", "Three-floor spa", "Subterranean jazz club"},
			"Premier Suite"},
		{"The Carlyle", "USA", 4.8, 2345, 950, 5,
			[]string{"Bemelmans Bar", "Cafe Carlyle", "Spa", "Concierge", "Art Deco"},
			[]string{"Upper East Side institution", "Bemelmans Bar murals", "Cafe Carlyle cabaret"},
			"Deluxe Room"},
	},
	"maldives": {
		{"Soneva Fushi", "Maldives", 4.9, 876, 2500, 5,
			[]string{"Private Pool Villas", "Observatory", "Outdoor Cinema", "Water Sports", "Barefoot Butlers"},
			[]string{"Castaway-chic private island", "Open-air cinema over the lagoon", "Resident astronomer"},
			"Crusoe Villa"},
		{"One&Only Reethi Rah", "Maldives", 4.9, 1123, 2200, 5,
			[]string{"Overwater Villas", "Twelve Beaches", "Spa", "Water Sports", "Kids Club"},
			[]string{"Twelve private beaches", "Overwater villas with pools", "North Male atoll seclusion"},
			"Water Villa"},
		{"Cheval Blanc Randheli", "Maldives", 4.9, 543, 3000, 5,
			[]string{"Private Pools", "Guerlain Spa", "Seaplane Transfers", "Art Collection", "Wine Cellar"},
			[]string{"LVMH island maison", "Dedicated spa island", "Private seaplane arrival"},
			"Island Villa"},
	},
	"whistler": {
		{"Four Seasons Resort Whistler", "Canada", 4.9, 1342, 895, 5,
			[]string{"Ski Concierge", "Heated Pool", "Spa", "Fire Pits", "Apres-Ski Lounge"},
			[]string{"Ski-in ski-out concierge", "Slopeside eucalyptus steam rooms", "Blackcomb base location"},
			"Deluxe Mountain View"},
		{"Fairmont Chateau Whistler", "Canada", 4.8, 2987, 650, 5,
			[]string{"Golf Course", "Ski Valet", "Heated Pools", "Spa", "Mountain Views"},
			[]string{"Castle at Blackcomb's base", "Ski valet service", "Mallard Lounge fireside"},
			"Fairmont Room"},
		{"Nita Lake Lodge", "Canada", 4.7, 1456, 450, 4,
			[]string{"Lakefront", "Spa", "Rooftop Hot Tubs", "Kayaks", "Creekside Gondola"},
			[]string{"Whistler's only lakefront lodge", "Rooftop hot tubs over Nita Lake", "Creekside village quiet"},
			"Lake View Studio"},
	},
}

func (s *DefaultHotelService) Curated(ctx context.Context, location string, category models.HotelCategory) ([]models.HotelResult, error) {
	city := strings.ToLower(strings.TrimSpace(location))
	entries, ok := curatedHotels[city]
	if !ok {
		return nil, nil
	}

	var results []models.HotelResult
	for _, c := range entries {
		score := DealScore(c.PricePerNight, c.Rating)
		results = append(results, models.HotelResult{
			ID:            curatedID(c.Name),
			Name:          c.Name,
			Location:      location,
			City:          location,
			Country:       c.Country,
			Rating:        c.Rating,
			ReviewCount:   c.ReviewCount,
			PricePerNight: c.PricePerNight,
			TotalPrice:    c.PricePerNight,
			Currency:      "USD",
			Category:      models.HotelLuxury,
			StarRating:    c.StarRating,
			Amenities:     c.Amenities,
			Highlights:    c.Highlights,
			RoomType:      c.RoomType,
			ImageURL:      HotelImage(city),
			ThumbnailURL:  HotelImage(city),
			DealScore:     score,
			Urgency:       Urgency(score),
			Source:        "curated",
			DeepLink:      bookingSMSLink(c.Name, c.PricePerNight),
		})
	}
	return results, nil
}

func curatedID(name string) string {
	slug := strings.ToLower(name)
	slug = strings.NewReplacer(" ", "_", "'", "", "&", "and").Replace(slug)
	return "curated_" + slug
}
