package restaurant

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"voyager/models"
	"voyager/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// DefaultRestaurantService serves the curated fine-dining tables. An
// OpenTable integration can slot in behind the same interface later.
type DefaultRestaurantService struct {
	Cache  *redis.Client
	Logger *zap.Logger
}

const widgetCacheTTL = 5 * time.Minute

func (s *DefaultRestaurantService) Search(ctx context.Context, params models.RestaurantSearchParams) ([]models.RestaurantResult, error) {
	applySearchDefaults(&params)

	results := cityRestaurants(params)

	if params.Cuisine != "" && params.Cuisine != models.CuisineAll {
		filtered := results[:0]
		for _, r := range results {
			if r.Cuisine == params.Cuisine {
				filtered = append(filtered, r)
			}
		}
		results = filtered
	}
	if params.PriceRange != "" {
		filtered := results[:0]
		for _, r := range results {
			if r.PriceRange == params.PriceRange {
				filtered = append(filtered, r)
			}
		}
		results = filtered
	}

	// Michelin stars first, then rating.
	sort.Slice(results, func(i, j int) bool {
		if results[i].MichelinStars != results[j].MichelinStars {
			return results[i].MichelinStars > results[j].MichelinStars
		}
		return results[i].Rating > results[j].Rating
	})

	if len(results) > 10 {
		results = results[:10]
	}
	return results, nil
}

func (s *DefaultRestaurantService) WidgetData(ctx context.Context, location string, maxRestaurants int) (*models.RestaurantWidgetData, error) {
	if location == "" {
		location = "Paris"
	}
	if maxRestaurants <= 0 {
		maxRestaurants = 3
	}

	cacheKey := fmt.Sprintf("widget:restaurants:%s:%d", strings.ToLower(location), maxRestaurants)
	var cached models.RestaurantWidgetData
	if hit, err := utils.FetchJSON(ctx, s.Cache, cacheKey, &cached); err != nil {
		s.Logger.Warn("widget cache read failed", zap.Error(err))
	} else if hit {
		return &cached, nil
	}

	date := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	params := models.RestaurantSearchParams{
		Location:  location,
		Date:      date,
		Time:      "19:00",
		PartySize: 2,
	}

	results, err := s.Search(ctx, params)
	if err != nil {
		return nil, err
	}
	if len(results) > maxRestaurants {
		results = results[:maxRestaurants]
	}

	now := time.Now()
	data := &models.RestaurantWidgetData{
		WidgetType:      "restaurant_discovery",
		Size:            "medium_2x2",
		LastUpdated:     now.Format(time.RFC3339),
		NextRefresh:     now.Add(time.Hour).Format(time.RFC3339),
		RefreshInterval: 3600,
		DeepLinkScheme:  "opentable://",
	}
	for _, r := range results {
		data.AllRestaurants = append(data.AllRestaurants, r.WidgetFormat())
	}
	if len(data.AllRestaurants) > 0 {
		data.TopPick = &data.AllRestaurants[0]
	}

	if err := utils.CacheJSON(ctx, s.Cache, cacheKey, data, widgetCacheTTL); err != nil {
		s.Logger.Warn("widget cache write failed", zap.Error(err))
	}
	return data, nil
}

func applySearchDefaults(params *models.RestaurantSearchParams) {
	params.Location = strings.TrimSpace(params.Location)
	if params.Location == "" {
		params.Location = "Paris"
	}
	if params.Time == "" {
		params.Time = "19:00"
	}
	if params.PartySize <= 0 {
		params.PartySize = 2
	}
}

var baseTimes = []string{"18:00", "18:30", "19:00", "19:30", "20:00", "20:30", "21:00"}

// availableTimes picks the four slots closest to the requested time so the
// output stays deterministic for a given request.
func availableTimes(requested string) []string {
	idx := 0
	for i, t := range baseTimes {
		if t <= requested {
			idx = i
		}
	}
	start := idx - 1
	if start < 0 {
		start = 0
	}
	if start > len(baseTimes)-4 {
		start = len(baseTimes) - 4
	}
	out := make([]string, 4)
	copy(out, baseTimes[start:start+4])
	return out
}

// availabilityFor grades how bookable a table is. Three-star rooms at prime
// time are effectively waitlist-only.
func availabilityFor(michelinStars int, requested string) models.AvailabilityStatus {
	prime := requested >= "19:00" && requested <= "20:30"
	switch {
	case michelinStars >= 3 && prime:
		return models.AvailabilityWaitlist
	case michelinStars >= 2 && prime:
		return models.AvailabilityLimited
	default:
		return models.AvailabilityAvailable
	}
}
