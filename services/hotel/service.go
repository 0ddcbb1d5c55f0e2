package hotel

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"voyager/connectors/amadeus"
	"voyager/models"
	"voyager/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// DefaultHotelService implements Service on top of the Amadeus connector
// and the curated luxury portfolio.
type DefaultHotelService struct {
	Amadeus *amadeus.Client
	Cache   *redis.Client
	Logger  *zap.Logger
}

const widgetCacheTTL = 5 * time.Minute

func (s *DefaultHotelService) Search(ctx context.Context, params models.HotelSearchParams) ([]models.HotelResult, error) {
	applySearchDefaults(&params)
	nights := Nights(params.CheckIn, params.CheckOut)

	var results []models.HotelResult
	if s.Amadeus.Configured() {
		cityCode := amadeus.CityCode(params.Location)
		offers, err := s.Amadeus.SearchHotelOffers(ctx, cityCode, params)
		if err != nil {
			s.Logger.Error("Amadeus hotel search failed", zap.Error(err),
				zap.String("city", cityCode))
		} else {
			results = s.parseOffers(offers, params, nights)
		}
	}

	// Curated portfolio always participates so flagship properties rank
	// alongside consolidator inventory.
	curated, err := s.Curated(ctx, params.Location, params.Category)
	if err == nil {
		for i := range curated {
			curated[i].TotalPrice = curated[i].PricePerNight * float64(nights)
		}
		results = append(results, curated...)
	}

	if len(results) == 0 {
		results = mockHotels(params, nights)
	}

	results = filterHotels(results, params)

	sort.Slice(results, func(i, j int) bool {
		if results[i].DealScore != results[j].DealScore {
			return results[i].DealScore > results[j].DealScore
		}
		return results[i].PricePerNight < results[j].PricePerNight
	})

	return results, nil
}

func (s *DefaultHotelService) WidgetData(ctx context.Context, userID string, maxHotels int) (*models.HotelWidgetData, error) {
	if maxHotels <= 0 {
		maxHotels = 3
	}

	cacheKey := fmt.Sprintf("widget:hotels:%d", maxHotels)
	var cached models.HotelWidgetData
	if hit, err := utils.FetchJSON(ctx, s.Cache, cacheKey, &cached); err != nil {
		s.Logger.Warn("widget cache read failed", zap.Error(err))
	} else if hit {
		return &cached, nil
	}

	checkIn := time.Now().AddDate(0, 0, 30)
	checkOut := checkIn.AddDate(0, 0, 3)
	params := models.HotelSearchParams{
		Location: "Paris",
		CheckIn:  checkIn.Format("2006-01-02"),
		CheckOut: checkOut.Format("2006-01-02"),
	}

	results, err := s.Search(ctx, params)
	if err != nil {
		return nil, err
	}
	if len(results) > maxHotels {
		results = results[:maxHotels]
	}

	now := time.Now()
	data := &models.HotelWidgetData{
		WidgetType:      "hotel_deal_tracker",
		Size:            "medium_2x2",
		LastUpdated:     now.Format(time.RFC3339),
		NextRefresh:     now.Add(2 * time.Hour).Format(time.RFC3339),
		RefreshInterval: 7200,
		DeepLinkScheme:  "sms://",
	}
	for _, h := range results {
		data.AllHotels = append(data.AllHotels, h.WidgetFormat())
	}
	if len(data.AllHotels) > 0 {
		data.TopHotel = &data.AllHotels[0]
	}

	if err := utils.CacheJSON(ctx, s.Cache, cacheKey, data, widgetCacheTTL); err != nil {
		s.Logger.Warn("widget cache write failed", zap.Error(err))
	}
	return data, nil
}

func applySearchDefaults(params *models.HotelSearchParams) {
	params.Location = strings.TrimSpace(params.Location)
	if params.Guests <= 0 {
		params.Guests = 2
	}
	if params.Rooms <= 0 {
		params.Rooms = 1
	}
	if params.MinRating <= 0 {
		params.MinRating = 4.0
	}
	if params.Category == "" {
		params.Category = models.HotelLuxury
	}
}

func filterHotels(results []models.HotelResult, params models.HotelSearchParams) []models.HotelResult {
	filtered := results[:0]
	for _, h := range results {
		if h.Rating < params.MinRating {
			continue
		}
		if params.MaxPrice > 0 && h.PricePerNight > params.MaxPrice {
			continue
		}
		if params.Category != "" && params.Category != models.HotelAll && h.Category != params.Category {
			continue
		}
		filtered = append(filtered, h)
	}
	return filtered
}

func (s *DefaultHotelService) parseOffers(offers []amadeus.HotelOffer, params models.HotelSearchParams, nights int) []models.HotelResult {
	var results []models.HotelResult
	for _, offer := range offers {
		if len(offer.Offers) == 0 {
			continue
		}
		best := offer.Offers[0]
		total, err := strconv.ParseFloat(best.Price.Total, 64)
		if err != nil {
			s.Logger.Warn("unparseable hotel price", zap.String("total", best.Price.Total))
			continue
		}
		perNight := total / float64(nights)

		stars, _ := strconv.Atoi(offer.Hotel.Rating)
		if stars == 0 {
			stars = 5
		}
		// Amadeus has no review score; approximate from stars.
		rating := 4.0 + float64(stars-4)*0.4
		if rating > 5 {
			rating = 5
		}

		score := DealScore(perNight, rating)
		result := models.HotelResult{
			ID:            "amadeus_" + offer.Hotel.HotelID,
			Name:          offer.Hotel.Name,
			Location:      params.Location,
			City:          params.Location,
			Country:       "",
			Rating:        rating,
			ReviewCount:   0,
			PricePerNight: perNight,
			TotalPrice:    total,
			Currency:      "USD",
			Category:      params.Category,
			StarRating:    stars,
			ImageURL:      HotelImage(params.Location),
			ThumbnailURL:  HotelImage(params.Location),
			RoomType:      strings.Title(strings.ToLower(best.Room.TypeEstimated.Category)),
			DealScore:     score,
			Urgency:       Urgency(score),
			Source:        "amadeus",
			DeepLink:      bookingSMSLink(offer.Hotel.Name, perNight),
		}
		if offer.Hotel.Latitude != 0 || offer.Hotel.Longitude != 0 {
			result.Coordinates = &models.GeoPoint{Lat: offer.Hotel.Latitude, Lng: offer.Hotel.Longitude}
		}
		if score >= 7 {
			result.OriginalPrice = perNight * 1.3
			result.SavingsPercent = 23
		}
		results = append(results, result)
	}
	return results
}

// Nights returns the stay length, minimum one night.
func Nights(checkIn, checkOut string) int {
	ci, err1 := time.Parse("2006-01-02", checkIn)
	co, err2 := time.Parse("2006-01-02", checkOut)
	if err1 != nil || err2 != nil {
		return 1
	}
	nights := int(co.Sub(ci).Hours() / 24)
	if nights < 1 {
		return 1
	}
	return nights
}

// DealScore grades a nightly rate 1-10, with a bonus for review score.
func DealScore(pricePerNight, rating float64) int {
	var priceScore int
	switch {
	case pricePerNight <= 300:
		priceScore = 9
	case pricePerNight <= 500:
		priceScore = 7
	case pricePerNight <= 800:
		priceScore = 5
	default:
		priceScore = 3
	}

	var ratingBonus float64
	if rating >= 4.0 {
		ratingBonus = (rating - 4.0) * 2
	}

	score := priceScore + int(ratingBonus)
	if score < 1 {
		score = 1
	}
	if score > 10 {
		score = 10
	}
	return score
}

// Urgency maps a deal score to an urgency grade.
func Urgency(score int) models.DealUrgency {
	switch {
	case score >= 9:
		return models.UrgencyCritical
	case score >= 7:
		return models.UrgencyHigh
	case score >= 5:
		return models.UrgencyMedium
	default:
		return models.UrgencyLow
	}
}

var hotelImages = map[string]string{
	"paris":    "https://images.unsplash.com/photo-1549294413-26f195200c16?w=800",
	"london":   "https://images.unsplash.com/photo-1529180182858-d8f1c2a2b021?w=800",
	"tokyo":    "https://images.unsplash.com/photo-1542051841857-5f90071e7989?w=800",
	"dubai":    "https://images.unsplash.com/photo-1518684079-3c830dcef090?w=800",
	"miami":    "https://images.unsplash.com/photo-1506966953602-c20cc11f75e3?w=800",
	"new york": "https://images.unsplash.com/photo-1496442226666-8d4d0e62e6e9?w=800",
	"maldives": "https://images.unsplash.com/photo-1514282401047-d79a71a590e8?w=800",
}

const defaultHotelImage = "https://images.unsplash.com/photo-1566073771259-6a8506099945?w=800"

// HotelImage returns a stock image URL for a location.
func HotelImage(location string) string {
	if img, ok := hotelImages[strings.ToLower(location)]; ok {
		return img
	}
	return defaultHotelImage
}

func bookingSMSLink(hotelName string, pricePerNight float64) string {
	message := fmt.Sprintf("Book %s at %s/night", hotelName, models.FormatUSD(pricePerNight))
	return "sms://+1234567890?body=" + url.QueryEscape(message)
}
