package packages

import (
	"context"
	"errors"
	"testing"

	"voyager/models"

	"go.uber.org/zap"
)

type fakeFlightService struct {
	deals []models.FlightDeal
	err   error
}

func (f *fakeFlightService) Search(ctx context.Context, params models.FlightSearchParams) ([]models.FlightDeal, error) {
	return f.deals, f.err
}

func (f *fakeFlightService) WidgetData(ctx context.Context, userID string, maxDeals int) (*models.FlightWidgetData, error) {
	return nil, errors.New("not implemented")
}

type fakeHotelService struct {
	hotels []models.HotelResult
	err    error
}

func (f *fakeHotelService) Search(ctx context.Context, params models.HotelSearchParams) ([]models.HotelResult, error) {
	return f.hotels, f.err
}

func (f *fakeHotelService) Curated(ctx context.Context, location string, category models.HotelCategory) ([]models.HotelResult, error) {
	return nil, nil
}

func (f *fakeHotelService) WidgetData(ctx context.Context, userID string, maxHotels int) (*models.HotelWidgetData, error) {
	return nil, errors.New("not implemented")
}

func testDeals() []models.FlightDeal {
	return []models.FlightDeal{
		{ID: "f1", Origin: "JFK", Destination: "CDG", Price: 1847, SavingsPercent: 26},
		{ID: "f2", Origin: "JFK", Destination: "CDG", Price: 2100},
	}
}

func testHotels() []models.HotelResult {
	return []models.HotelResult{
		{ID: "h1", Name: "Four Seasons George V", PricePerNight: 895, TotalPrice: 6265},
		{ID: "h2", Name: "The Ritz Paris", PricePerNight: 1200, TotalPrice: 8400},
	}
}

func TestSearchPairsFlightsWithHotels(t *testing.T) {
	svc := &DefaultPackageService{
		Flights: &fakeFlightService{deals: testDeals()},
		Hotels:  &fakeHotelService{hotels: testHotels()},
		Logger:  zap.NewNop(),
	}

	result, err := svc.Search(context.Background(), models.PackageSearchParams{
		Origin:        "JFK",
		Destination:   "Paris",
		DepartureDate: "2026-10-01",
		ReturnDate:    "2026-10-08",
	})
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(result.Packages) != 2 {
		t.Fatalf("len(Packages) = %d, want 2", len(result.Packages))
	}

	first := result.Packages[0]
	if first.TotalPrice != 1847+6265 {
		t.Errorf("TotalPrice = %v, want flight plus hotel total", first.TotalPrice)
	}
	if first.Savings == "" {
		t.Error("discounted flight leg should earn the bundle savings line")
	}
	if result.Packages[1].Savings != "" {
		t.Error("full-fare pairing should carry no savings line")
	}
	if first.ID != "pkg_JFK_Paris_0" {
		t.Errorf("ID = %q", first.ID)
	}
}

func TestSearchCapsPackagesAtMaxResults(t *testing.T) {
	svc := &DefaultPackageService{
		Flights: &fakeFlightService{deals: testDeals()},
		Hotels:  &fakeHotelService{hotels: testHotels()},
		Logger:  zap.NewNop(),
	}

	result, err := svc.Search(context.Background(), models.PackageSearchParams{
		Origin:        "JFK",
		Destination:   "Paris",
		DepartureDate: "2026-10-01",
		MaxResults:    1,
	})
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(result.Packages) != 1 {
		t.Errorf("len(Packages) = %d, want 1", len(result.Packages))
	}
}

func TestSearchToleratesOneFailedLeg(t *testing.T) {
	svc := &DefaultPackageService{
		Flights: &fakeFlightService{err: errors.New("amadeus down")},
		Hotels:  &fakeHotelService{hotels: testHotels()},
		Logger:  zap.NewNop(),
	}

	result, err := svc.Search(context.Background(), models.PackageSearchParams{
		Origin:        "JFK",
		Destination:   "Paris",
		DepartureDate: "2026-10-01",
	})
	if err != nil {
		t.Fatalf("one failed leg should not fail the search, got %v", err)
	}
	if len(result.Hotels) != 2 {
		t.Errorf("len(Hotels) = %d, want 2", len(result.Hotels))
	}
	if len(result.Packages) != 0 {
		t.Errorf("len(Packages) = %d, want 0 without a flight leg", len(result.Packages))
	}
}

func TestSearchFailsWhenBothLegsFail(t *testing.T) {
	svc := &DefaultPackageService{
		Flights: &fakeFlightService{err: errors.New("amadeus down")},
		Hotels:  &fakeHotelService{err: errors.New("inventory down")},
		Logger:  zap.NewNop(),
	}

	if _, err := svc.Search(context.Background(), models.PackageSearchParams{
		Origin:        "JFK",
		Destination:   "Paris",
		DepartureDate: "2026-10-01",
	}); err == nil {
		t.Error("expected error when both legs fail")
	}
}
