package hotel

import (
	"context"
	"testing"

	"voyager/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

func TestNights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		want     int
	}{
		{"three nights", "2026-10-01", "2026-10-04", 3},
		{"one night", "2026-10-01", "2026-10-02", 1},
		{"same day clamps to one", "2026-10-01", "2026-10-01", 1},
		{"reversed dates clamp to one", "2026-10-04", "2026-10-01", 1},
		{"invalid input clamps to one", "notadate", "2026-10-01", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Nights(tt.checkIn, tt.checkOut); got != tt.want {
				t.Errorf("Nights(%q, %q) = %d, want %d", tt.checkIn, tt.checkOut, got, tt.want)
			}
		})
	}
}

func TestDealScore(t *testing.T) {
	tests := []struct {
		name   string
		price  float64
		rating float64
		want   int
	}{
		{"cheap and loved", 280, 4.9, 10},
		{"mid price high rating", 450, 4.8, 8},
		{"upper mid price", 700, 4.5, 6},
		{"expensive", 1200, 4.9, 4},
		{"expensive mediocre", 1200, 3.5, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DealScore(tt.price, tt.rating); got != tt.want {
				t.Errorf("DealScore(%v, %v) = %d, want %d", tt.price, tt.rating, got, tt.want)
			}
		})
	}
}

func TestSearchMergesCuratedAndFilters(t *testing.T) {
	svc := &DefaultHotelService{Logger: zap.NewNop()}

	results, err := svc.Search(context.Background(), models.HotelSearchParams{
		Location: "Paris",
		CheckIn:  "2026-10-01",
		CheckOut: "2026-10-04",
	})
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(results) == 0 {
		t.Fatal("expected curated results for Paris")
	}

	for _, r := range results {
		if r.Source != "curated" {
			t.Errorf("Source = %q, want curated (no consolidator credentials)", r.Source)
		}
		if r.Rating < 4.0 {
			t.Errorf("%s rating %v below default min_rating", r.Name, r.Rating)
		}
		if r.TotalPrice != r.PricePerNight*3 {
			t.Errorf("%s TotalPrice = %v, want 3 nights at %v", r.Name, r.TotalPrice, r.PricePerNight)
		}
	}

	// Sorted by score descending, price ascending within a score.
	for i := 1; i < len(results); i++ {
		if results[i].DealScore > results[i-1].DealScore {
			t.Errorf("results not sorted by score at %d", i)
		}
	}
}

func TestSearchMaxPriceFilter(t *testing.T) {
	svc := &DefaultHotelService{Logger: zap.NewNop()}

	results, err := svc.Search(context.Background(), models.HotelSearchParams{
		Location: "Paris",
		CheckIn:  "2026-10-01",
		CheckOut: "2026-10-03",
		MaxPrice: 900,
	})
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	for _, r := range results {
		if r.PricePerNight > 900 {
			t.Errorf("%s at %v exceeds max_price", r.Name, r.PricePerNight)
		}
	}
}

func TestSearchFallsBackToMockForUnknownCity(t *testing.T) {
	svc := &DefaultHotelService{Logger: zap.NewNop()}

	results, err := svc.Search(context.Background(), models.HotelSearchParams{
		Location: "Reykjavik",
		CheckIn:  "2026-10-01",
		CheckOut: "2026-10-03",
	})
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(results) == 0 {
		t.Fatal("expected mock fallback for unknown city")
	}
	if results[0].Source != "mock" {
		t.Errorf("Source = %q, want mock", results[0].Source)
	}
}

func TestCuratedUnknownCityIsEmpty(t *testing.T) {
	svc := &DefaultHotelService{Logger: zap.NewNop()}

	results, err := svc.Curated(context.Background(), "Nowhereville", models.HotelLuxury)
	if err != nil {
		t.Fatalf("Curated returned error: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("len(results) = %d, want 0", len(results))
	}
}

func TestWidgetDataEnvelope(t *testing.T) {
	svc := &DefaultHotelService{Logger: zap.NewNop()}

	data, err := svc.WidgetData(context.Background(), "", 2)
	if err != nil {
		t.Fatalf("WidgetData returned error: %v", err)
	}
	if data.WidgetType != "hotel_deal_tracker" {
		t.Errorf("WidgetType = %q", data.WidgetType)
	}
	if len(data.AllHotels) != 2 {
		t.Errorf("len(AllHotels) = %d, want 2", len(data.AllHotels))
	}
	if data.TopHotel == nil {
		t.Fatal("TopHotel is nil")
	}
}

func TestWidgetDataWritesThroughCache(t *testing.T) {
	mr := miniredis.RunT(t)
	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { cache.Close() })

	svc := &DefaultHotelService{Cache: cache, Logger: zap.NewNop()}

	first, err := svc.WidgetData(context.Background(), "", 2)
	if err != nil {
		t.Fatalf("WidgetData returned error: %v", err)
	}
	if !mr.Exists("widget:hotels:2") {
		t.Fatal("widget envelope not written to the cache")
	}

	if err := mr.Set("widget:hotels:2", `{"widgetType":"hotel_deal_tracker","refreshInterval":1}`); err != nil {
		t.Fatalf("seed cache: %v", err)
	}
	second, err := svc.WidgetData(context.Background(), "", 2)
	if err != nil {
		t.Fatalf("WidgetData returned error: %v", err)
	}
	if second.RefreshInterval != 1 {
		t.Errorf("RefreshInterval = %d, want the cached envelope", second.RefreshInterval)
	}
	if first.RefreshInterval == 1 {
		t.Error("first call should have computed a fresh envelope")
	}
}
