package amadeus

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"voyager/models"
)

// FlightOffer mirrors the fields we consume from the flight-offers v2 API.
type FlightOffer struct {
	ID    string `json:"id"`
	Price struct {
		Total    string `json:"total"`
		Currency string `json:"currency"`
	} `json:"price"`
	Itineraries []struct {
		Duration string `json:"duration"` // ISO 8601, e.g. "PT7H15M"
		Segments []struct {
			CarrierCode string `json:"carrierCode"`
			Departure   struct {
				IataCode string `json:"iataCode"`
				At       string `json:"at"` // RFC 3339 local
			} `json:"departure"`
			Arrival struct {
				IataCode string `json:"iataCode"`
				At       string `json:"at"`
			} `json:"arrival"`
		} `json:"segments"`
	} `json:"itineraries"`
}

// SearchFlightOffers queries GET /v2/shopping/flight-offers.
func (c *Client) SearchFlightOffers(ctx context.Context, params models.FlightSearchParams) ([]FlightOffer, error) {
	if !c.Configured() {
		return nil, fmt.Errorf("amadeus client not configured")
	}

	q := url.Values{}
	q.Set("originLocationCode", params.Origin)
	q.Set("destinationLocationCode", params.Destination)
	q.Set("departureDate", params.DepartureDate)
	q.Set("adults", strconv.Itoa(params.Adults))
	q.Set("travelClass", string(params.CabinClass))
	q.Set("max", strconv.Itoa(params.MaxResults))
	q.Set("currencyCode", "USD")
	if params.ReturnDate != "" {
		q.Set("returnDate", params.ReturnDate)
	}
	if params.MaxPrice > 0 {
		q.Set("maxPrice", strconv.Itoa(int(params.MaxPrice)))
	}

	var offers []FlightOffer
	if err := c.get(ctx, "/v2/shopping/flight-offers", q, &offers); err != nil {
		return nil, fmt.Errorf("flight offers search failed: %w", err)
	}
	return offers, nil
}
