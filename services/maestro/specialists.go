package maestro

import (
	"context"
	"fmt"
	"strings"
	"time"

	"voyager/connectors/amadeus"
	"voyager/models"
	"voyager/services/destination"
	"voyager/services/flight"
	"voyager/services/hotel"
	"voyager/services/packages"
	"voyager/services/restaurant"
)

// FlightSpecialist answers flight searches in conversation.
type FlightSpecialist struct {
	Flights flight.Service
}

func (s *FlightSpecialist) Intent() models.Intent { return models.IntentFlight }

func (s *FlightSpecialist) Handle(ctx context.Context, req models.ChatRequest, chatCtx *models.ChatContext) (*models.ChatResponse, error) {
	originCity, destCity := extractRoute(req.Text)
	if destCity == "" {
		destCity = chatCtx.LastCity
	}
	if destCity == "" {
		return &models.ChatResponse{
			Intent:       models.IntentFlight,
			ResponseText: "Where would you like to fly? Name a city and I'll pull the best fares.",
		}, nil
	}

	origin := "JFK"
	if originCity != "" {
		origin = amadeus.CityCode(originCity)
	}
	departure := time.Now().AddDate(0, 0, 30)

	deals, err := s.Flights.Search(ctx, models.FlightSearchParams{
		Origin:        origin,
		Destination:   amadeus.CityCode(destCity),
		DepartureDate: departure.Format("2006-01-02"),
		ReturnDate:    departure.AddDate(0, 0, 7).Format("2006-01-02"),
		MaxResults:    3,
	})
	if err != nil {
		return nil, err
	}

	resp := &models.ChatResponse{Intent: models.IntentFlight}
	for _, d := range deals {
		resp.Flights = append(resp.Flights, d.WidgetFormat())
	}
	if len(resp.Flights) > 0 {
		top := resp.Flights[0]
		resp.ResponseText = fmt.Sprintf("Best fare to %s: %s %s in %s, %s.",
			titleCity(destCity), top.AirlineName, top.Price, strings.ToLower(top.Cabin), top.StopsDisplay)
		resp.Actions = []models.ChatAction{
			{Label: "Book " + top.Route, Type: "book", ItemID: top.ID},
		}
	} else {
		resp.ResponseText = fmt.Sprintf("No fares found to %s right now.", titleCity(destCity))
	}
	return resp, nil
}

// HotelSpecialist answers hotel searches in conversation.
type HotelSpecialist struct {
	Hotels hotel.Service
}

func (s *HotelSpecialist) Intent() models.Intent { return models.IntentHotel }

func (s *HotelSpecialist) Handle(ctx context.Context, req models.ChatRequest, chatCtx *models.ChatContext) (*models.ChatResponse, error) {
	city := extractCity(req.Text)
	if city == "" {
		city = chatCtx.LastCity
	}
	if city == "" {
		return &models.ChatResponse{
			Intent:       models.IntentHotel,
			ResponseText: "Which city should I look in? I cover the top luxury properties worldwide.",
		}, nil
	}

	checkIn := time.Now().AddDate(0, 0, 30)
	results, err := s.Hotels.Search(ctx, models.HotelSearchParams{
		Location: city,
		CheckIn:  checkIn.Format("2006-01-02"),
		CheckOut: checkIn.AddDate(0, 0, 3).Format("2006-01-02"),
	})
	if err != nil {
		return nil, err
	}
	if len(results) > 3 {
		results = results[:3]
	}

	resp := &models.ChatResponse{Intent: models.IntentHotel}
	for _, h := range results {
		resp.Hotels = append(resp.Hotels, h.WidgetFormat())
	}
	if len(resp.Hotels) > 0 {
		top := resp.Hotels[0]
		resp.ResponseText = fmt.Sprintf("Top pick in %s: %s, %s rated %s.",
			titleCity(city), top.Name, top.PricePerNight, top.RatingDisplay)
		resp.Actions = []models.ChatAction{
			{Label: "Book " + top.Name, Type: "book", ItemID: top.ID},
		}
	} else {
		resp.ResponseText = fmt.Sprintf("No properties matched in %s.", titleCity(city))
	}
	return resp, nil
}

// RestaurantSpecialist answers dining requests in conversation.
type RestaurantSpecialist struct {
	Restaurants restaurant.Service
}

func (s *RestaurantSpecialist) Intent() models.Intent { return models.IntentRestaurant }

func (s *RestaurantSpecialist) Handle(ctx context.Context, req models.ChatRequest, chatCtx *models.ChatContext) (*models.ChatResponse, error) {
	city := extractCity(req.Text)
	if city == "" {
		city = chatCtx.LastCity
	}

	results, err := s.Restaurants.Search(ctx, models.RestaurantSearchParams{
		Location: city,
		Date:     time.Now().AddDate(0, 0, 1).Format("2006-01-02"),
	})
	if err != nil {
		return nil, err
	}
	if len(results) > 3 {
		results = results[:3]
	}

	resp := &models.ChatResponse{Intent: models.IntentRestaurant}
	for _, r := range results {
		resp.Restaurants = append(resp.Restaurants, r.WidgetFormat())
	}
	if len(resp.Restaurants) > 0 {
		top := resp.Restaurants[0]
		resp.ResponseText = fmt.Sprintf("For dining I'd start with %s, %s in %s.",
			top.Name, top.CuisineDisplay, top.City)
		resp.Actions = []models.ChatAction{
			{Label: "Reserve " + top.Name, Type: "book", ItemID: top.ID},
		}
	} else {
		resp.ResponseText = "I couldn't find tables there yet. Try Paris, Tokyo, New York, Miami, or London."
	}
	return resp, nil
}

// DestinationSpecialist answers guide requests in conversation.
type DestinationSpecialist struct {
	Destinations destination.Service
}

func (s *DestinationSpecialist) Intent() models.Intent { return models.IntentDestination }

func (s *DestinationSpecialist) Handle(ctx context.Context, req models.ChatRequest, chatCtx *models.ChatContext) (*models.ChatResponse, error) {
	city := extractCity(req.Text)
	if city == "" {
		city = chatCtx.LastCity
	}
	if city == "" {
		return &models.ChatResponse{
			Intent:       models.IntentDestination,
			ResponseText: "Tell me a destination and I'll share the insider view.",
		}, nil
	}

	guide, err := s.Destinations.Guide(ctx, city)
	if err != nil {
		return &models.ChatResponse{
			Intent:       models.IntentDestination,
			ResponseText: fmt.Sprintf("I don't have a guide for %s yet.", titleCity(city)),
		}, nil
	}

	return &models.ChatResponse{
		Intent:       models.IntentDestination,
		ResponseText: fmt.Sprintf("%s: %s Best time to go: %s.", guide.Destination, guide.Summary, guide.BestSeason),
		Guide:        guide,
		Actions: []models.ChatAction{
			{Label: "Flights to " + guide.Destination, Type: "chat"},
			{Label: "Hotels in " + guide.Destination, Type: "chat"},
		},
	}, nil
}

// PackageSpecialist answers bundled trip requests in conversation.
type PackageSpecialist struct {
	Packages packages.Service
}

func (s *PackageSpecialist) Intent() models.Intent { return models.IntentPackage }

func (s *PackageSpecialist) Handle(ctx context.Context, req models.ChatRequest, chatCtx *models.ChatContext) (*models.ChatResponse, error) {
	originCity, destCity := extractRoute(req.Text)
	if destCity == "" {
		destCity = chatCtx.LastCity
	}
	if destCity == "" {
		return &models.ChatResponse{
			Intent:       models.IntentPackage,
			ResponseText: "Where to? Give me a destination and I'll put a trip together.",
		}, nil
	}

	origin := "JFK"
	if originCity != "" {
		origin = amadeus.CityCode(originCity)
	}
	departure := time.Now().AddDate(0, 0, 30)

	result, err := s.Packages.Search(ctx, models.PackageSearchParams{
		Origin:        origin,
		Destination:   destCity,
		DepartureDate: departure.Format("2006-01-02"),
		ReturnDate:    departure.AddDate(0, 0, 7).Format("2006-01-02"),
	})
	if err != nil {
		return nil, err
	}

	resp := &models.ChatResponse{
		Intent:  models.IntentPackage,
		Flights: result.Flights,
		Hotels:  result.Hotels,
	}
	if len(result.Packages) > 0 {
		top := result.Packages[0]
		resp.ResponseText = fmt.Sprintf("A week in %s: fly %s and stay at %s, %s all in.",
			titleCity(destCity), top.Flight.AirlineName, top.Hotel.Name, models.FormatUSD(top.TotalPrice))
	} else {
		resp.ResponseText = fmt.Sprintf("I couldn't assemble a full package for %s, but here's what I found.", titleCity(destCity))
	}
	return resp, nil
}

func titleCity(city string) string {
	return strings.Title(strings.ToLower(city))
}
