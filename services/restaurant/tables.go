package restaurant

import (
	"fmt"
	"strings"

	"voyager/models"
)

type diningEntry struct {
	Name           string
	Cuisine        models.CuisineType
	CuisineDisplay string
	Neighborhood   string
	Rating         float64
	Reviews        int
	PriceRange     string
	MichelinStars  int
	Description    string
	Highlights     []string
}

// diningTables is the curated fine-dining book, keyed by lowercase city.
var diningTables = map[string][]diningEntry{
	"paris": {
		{"Le Cinq", models.CuisineFrench, "French Fine Dining", "8th arrondissement",
			4.9, 2847, "$$$$", 3,
			"Three Michelin star restaurant at Four Seasons George V",
			[]string{"Michelin 3-Star", "Tasting Menu", "Wine Pairing"}},
		{"L'Ambroisie", models.CuisineFrench, "Classic French", "Place des Vosges",
			4.9, 1923, "$$$$", 3,
			"Legendary three-star in historic Place des Vosges",
			[]string{"Michelin 3-Star", "Historic Setting", "Classic Cuisine"}},
		{"Septime", models.CuisineFrench, "Modern French", "11th arrondissement",
			4.7, 3421, "$$$", 1,
			"Innovative tasting menus in a minimalist setting",
			[]string{"Michelin 1-Star", "Seasonal Menu", "Natural Wine"}},
	},
	"tokyo": {
		{"Sukiyabashi Jiro", models.CuisineJapanese, "Omakase Sushi", "Ginza",
			4.9, 1256, "$$$$", 3,
			"World-famous sushi by Jiro Ono",
			[]string{"Michelin 3-Star", "Omakase Only", "Reservation Required"}},
		{"Narisawa", models.CuisineJapanese, "Innovative Japanese", "Minami-Aoyama",
			4.8, 2134, "$$$$", 2,
			"Avant-garde cuisine celebrating nature",
			[]string{"Michelin 2-Star", "Sustainability", "World's 50 Best"}},
		{"Den", models.CuisineJapanese, "Creative Japanese", "Jingumae",
			4.8, 1876, "$$$", 2,
			"Playful fine dining with Japanese soul",
			[]string{"Michelin 2-Star", "Inventive", "Asia's 50 Best"}},
	},
	"new york": {
		{"Eleven Madison Park", models.CuisineAmerican, "Contemporary American", "Flatiron",
			4.8, 4521, "$$$$", 3,
			"Plant-based tasting menu in Art Deco landmark",
			[]string{"Michelin 3-Star", "Plant-Based", "World's Best"}},
		{"Le Bernardin", models.CuisineSeafood, "French Seafood", "Midtown",
			4.9, 5234, "$$$$", 3,
			"Eric Ripert's legendary seafood temple",
			[]string{"Michelin 3-Star", "Seafood", "40 Years"}},
		{"Carbone", models.CuisineItalian, "Italian-American", "Greenwich Village",
			4.6, 6789, "$$$", 0,
			"Classic Italian-American in retro glamour",
			[]string{"Celebrity Favorite", "Spicy Rigatoni", "Tableside Service"}},
	},
	"miami": {
		{"Fiola Miami", models.CuisineItalian, "Modern Italian", "Coral Gables",
			4.7, 1823, "$$$$", 0,
			"Fabio Trabocchi's Italian excellence",
			[]string{"James Beard Award", "Pasta", "Wine List"}},
		{"Ariete", models.CuisineAmerican, "New American", "Coconut Grove",
			4.6, 2134, "$$$", 0,
			"Farm-to-table with Latin influences",
			[]string{"Local Sourcing", "Cocktails", "Brunch"}},
		{"Stubborn Seed", models.CuisineAmerican, "Creative American", "South Beach",
			4.7, 1567, "$$$$", 0,
			"Top Chef winner Jeremy Ford's flagship",
			[]string{"Top Chef Winner", "Tasting Menu", "South Beach"}},
	},
	"london": {
		{"Restaurant Gordon Ramsay", models.CuisineFrench, "French Fine Dining", "Chelsea",
			4.8, 2345, "$$$$", 3,
			"Gordon Ramsay's flagship three-star",
			[]string{"Michelin 3-Star", "Classic French", "Intimate"}},
		{"The Ledbury", models.CuisineFrench, "Modern European", "Notting Hill",
			4.8, 1987, "$$$$", 2,
			"Brett Graham's innovative cuisine",
			[]string{"Michelin 2-Star", "Game Dishes", "Tasting Menu"}},
		{"Dishoom", models.CuisineAsianFusion, "Bombay Cafe", "Covent Garden",
			4.6, 8765, "$$", 0,
			"Beloved Bombay-style cafe and bar",
			[]string{"Iconic Breakfast", "Black Daal", "No Reservations"}},
	},
}

var cuisineImages = map[models.CuisineType]string{
	models.CuisineFrench:        "https://images.unsplash.com/photo-1414235077428-338989a2e8c0?w=800",
	models.CuisineItalian:       "https://images.unsplash.com/photo-1551183053-bf91a1d81141?w=800",
	models.CuisineJapanese:      "https://images.unsplash.com/photo-1579871494447-9811cf80d66c?w=800",
	models.CuisineAmerican:      "https://images.unsplash.com/photo-1544025162-d76694265947?w=800",
	models.CuisineSeafood:       "https://images.unsplash.com/photo-1559339352-11d035aa65de?w=800",
	models.CuisineSteakhouse:    "https://images.unsplash.com/photo-1600891964092-4316c288032e?w=800",
	models.CuisineFineDining:    "https://images.unsplash.com/photo-1550966871-3ed3cdb5ed0c?w=800",
	models.CuisineMediterranean: "https://images.unsplash.com/photo-1544124499-58912cbddaad?w=800",
}

const defaultCuisineImage = "https://images.unsplash.com/photo-1517248135467-4c7edcad34c4?w=800"

func cuisineImage(cuisine models.CuisineType) string {
	if img, ok := cuisineImages[cuisine]; ok {
		return img
	}
	return defaultCuisineImage
}

// cityRestaurants materializes the curated entries for a location, with
// availability assessed against the requested time. Unknown cities fall
// back to the Paris book.
func cityRestaurants(params models.RestaurantSearchParams) []models.RestaurantResult {
	city := strings.ToLower(params.Location)
	entries, ok := diningTables[city]
	if !ok {
		city = "paris"
		entries = diningTables[city]
	}
	displayCity := strings.Title(city)

	var results []models.RestaurantResult
	for idx, e := range entries {
		image := cuisineImage(e.Cuisine)
		times := availableTimes(params.Time)
		status := availabilityFor(e.MichelinStars, params.Time)
		if status == models.AvailabilityWaitlist {
			times = nil
		}

		slug := strings.ReplaceAll(strings.ToLower(e.Name), " ", "-")
		r := models.RestaurantResult{
			ID:                 fmt.Sprintf("opentable_%s_%d", strings.ReplaceAll(city, " ", "_"), idx),
			Name:               e.Name,
			Cuisine:            e.Cuisine,
			CuisineDisplay:     e.CuisineDisplay,
			Location:           e.Neighborhood + ", " + displayCity,
			City:               displayCity,
			Neighborhood:       e.Neighborhood,
			Rating:             e.Rating,
			ReviewCount:        e.Reviews,
			PriceRange:         e.PriceRange,
			MichelinStars:      e.MichelinStars,
			ImageURL:           image,
			ThumbnailURL:       strings.Replace(image, "w=800", "w=200", 1),
			Description:        e.Description,
			Highlights:         e.Highlights,
			AvailableTimes:     times,
			AvailabilityStatus: status,
			Source:             "opentable",
			DeepLink:           "opentable://reserve?restaurant=" + slug,
			BookingURL:         "https://opentable.com/r/" + slug,
		}
		if len(times) > 0 {
			r.NextAvailable = times[0]
		}
		results = append(results, r)
	}
	return results
}
