package flight

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

// defaultRoutes are the popular luxury routes used for widget defaults.
var defaultRoutes = []struct {
	Origin      string
	Destination string
	Name        string
}{
	{"JFK", "CDG", "NYC -> Paris"},
	{"LAX", "NRT", "LA -> Tokyo"},
	{"MIA", "LHR", "Miami -> London"},
	{"SFO", "HND", "SF -> Tokyo"},
	{"JFK", "DXB", "NYC -> Dubai"},
}

// DefaultFlightService implements Service on top of the Amadeus connector.
type DefaultFlightService struct {
	Amadeus *amadeus.Client
	Cache   *redis.Client
	Logger  *zap.Logger
}

// Widget feeds are recomputed at most once per cache window.
const widgetCacheTTL = 5 * time.Minute

func (s *DefaultFlightService) Search(ctx context.Context, params models.FlightSearchParams) ([]models.FlightDeal, error) {
	applySearchDefaults(&params)

	var deals []models.FlightDeal
	if s.Amadeus.Configured() {
		offers, err := s.Amadeus.SearchFlightOffers(ctx, params)
		if err != nil {
			s.Logger.Error("Amadeus flight search failed", zap.Error(err),
				zap.String("route", params.Origin+"-"+params.Destination))
		} else {
			deals = s.parseOffers(offers, params)
		}
	}

	// Fall back to deterministic mock data so search never fails solely
	// because upstream credentials are absent.
	if len(deals) == 0 {
		deals = mockDeals(params)
	}

	sort.Slice(deals, func(i, j int) bool {
		if deals[i].DealScore != deals[j].DealScore {
			return deals[i].DealScore > deals[j].DealScore
		}
		return deals[i].Price < deals[j].Price
	})

	if len(deals) > params.MaxResults {
		deals = deals[:params.MaxResults]
	}
	return deals, nil
}

func (s *DefaultFlightService) WidgetData(ctx context.Context, userID string, maxDeals int) (*models.FlightWidgetData, error) {
	if maxDeals <= 0 {
		maxDeals = 3
	}

	cacheKey := fmt.Sprintf("widget:flights:%d", maxDeals)
	var cached models.FlightWidgetData
	if hit, err := utils.FetchJSON(ctx, s.Cache, cacheKey, &cached); err != nil {
		s.Logger.Warn("widget cache read failed", zap.Error(err))
	} else if hit {
		return &cached, nil
	}

	departure := time.Now().AddDate(0, 0, 30)
	returnDate := departure.AddDate(0, 0, 7)

	var deals []models.FlightDeal
	for _, route := range defaultRoutes {
		params := models.FlightSearchParams{
			Origin:        route.Origin,
			Destination:   route.Destination,
			DepartureDate: departure.Format("2006-01-02"),
			ReturnDate:    returnDate.Format("2006-01-02"),
			CabinClass:    models.CabinBusiness,
			MaxResults:    1,
		}
		routeDeals, err := s.Search(ctx, params)
		if err != nil {
			s.Logger.Error("widget route fetch failed", zap.Error(err),
				zap.String("route", route.Name))
			continue
		}
		if len(routeDeals) > 0 {
			deals = append(deals, routeDeals[0])
		}
		if len(deals) >= maxDeals {
			break
		}
	}

	now := time.Now()
	data := &models.FlightWidgetData{
		WidgetType:      "flight_deal_tracker",
		Size:            "medium_2x2",
		WatchedRoutes:   []string{},
		LastUpdated:     now.Format(time.RFC3339),
		NextRefresh:     now.Add(2 * time.Hour).Format(time.RFC3339),
		RefreshInterval: 7200,
		DeepLinkScheme:  "sms://",
	}
	for _, d := range deals {
		data.AllDeals = append(data.AllDeals, d.WidgetFormat())
	}
	if len(data.AllDeals) > 0 {
		data.TopDeal = &data.AllDeals[0]
	}

	if err := utils.CacheJSON(ctx, s.Cache, cacheKey, data, widgetCacheTTL); err != nil {
		s.Logger.Warn("widget cache write failed", zap.Error(err))
	}
	return data, nil
}

func applySearchDefaults(params *models.FlightSearchParams) {
	params.Origin = strings.ToUpper(strings.TrimSpace(params.Origin))
	params.Destination = strings.ToUpper(strings.TrimSpace(params.Destination))
	if params.Adults <= 0 {
		params.Adults = 1
	}
	if params.CabinClass == "" {
		params.CabinClass = models.CabinBusiness
	}
	if params.MaxResults <= 0 {
		params.MaxResults = 10
	}
}

func (s *DefaultFlightService) parseOffers(offers []amadeus.FlightOffer, params models.FlightSearchParams) []models.FlightDeal {
	var deals []models.FlightDeal
	for _, offer := range offers {
		if len(offer.Itineraries) == 0 || len(offer.Itineraries[0].Segments) == 0 {
			continue
		}
		price, err := strconv.ParseFloat(offer.Price.Total, 64)
		if err != nil {
			s.Logger.Warn("unparseable offer price", zap.String("total", offer.Price.Total))
			continue
		}

		itin := offer.Itineraries[0]
		first := itin.Segments[0]
		last := itin.Segments[len(itin.Segments)-1]
		stops := len(itin.Segments) - 1
		airline := first.CarrierCode

		score := DealScore(price, params.CabinClass, stops)
		deal := models.FlightDeal{
			ID:            "amadeus_" + offer.ID,
			Origin:        params.Origin,
			Destination:   params.Destination,
			RouteDisplay:  fmt.Sprintf("%s -> %s", params.Origin, params.Destination),
			Price:         price,
			Currency:      "USD",
			CabinClass:    params.CabinClass,
			Airline:       airline,
			AirlineName:   AirlineName(airline),
			DepartureDate: params.DepartureDate,
			ReturnDate:    params.ReturnDate,
			DepartureTime: clockPart(first.Departure.At),
			ArrivalTime:   clockPart(last.Arrival.At),
			Duration:      humanDuration(itin.Duration),
			Stops:         stops,
			DealScore:     score,
			Urgency:       Urgency(score),
			IsMistakeFare: score >= 9,
			Source:        "amadeus",
			DeepLink:      bookingSMSLink(params.Origin, params.Destination, price),
			ImageURL:      DestinationImage(params.Destination),
		}
		if score >= 7 {
			deal.OriginalPrice = price * 1.35
			deal.SavingsPercent = 26
		}
		if score >= 8 {
			deal.ExpiresAt = time.Now().Add(12 * time.Hour).Format(time.RFC3339)
		}
		deals = append(deals, deal)
	}
	return deals
}

// clockPart extracts "HH:MM" from an RFC 3339 local timestamp.
func clockPart(ts string) string {
	if len(ts) >= 16 {
		return ts[11:16]
	}
	return ts
}

// humanDuration turns "PT7H15M" into "7h 15m".
func humanDuration(iso string) string {
	d := strings.TrimPrefix(iso, "PT")
	d = strings.ToLower(d)
	d = strings.Replace(d, "h", "h ", 1)
	return strings.TrimSpace(d)
}

func bookingSMSLink(origin, destination string, price float64) string {
	message := fmt.Sprintf("Book %s-%s", origin, destination)
	if price > 0 {
		message += fmt.Sprintf(" for %s", models.FormatUSD(price))
	}
	return "sms://+1234567890?body=" + url.QueryEscape(message)
}
