package amadeus

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"voyager/models"
)

// HotelOffer mirrors the fields we consume from the hotel-offers v3 API.
type HotelOffer struct {
	Hotel struct {
		HotelID   string  `json:"hotelId"`
		Name      string  `json:"name"`
		ChainCode string  `json:"chainCode"`
		CityCode  string  `json:"cityCode"`
		Rating    string  `json:"rating"` // star rating as string
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"hotel"`
	Offers []struct {
		ID    string `json:"id"`
		Room  struct {
			TypeEstimated struct {
				Category string `json:"category"`
			} `json:"typeEstimated"`
		} `json:"room"`
		Price struct {
			Total    string `json:"total"`
			Currency string `json:"currency"`
		} `json:"price"`
	} `json:"offers"`
}

// SearchHotelOffers queries GET /v3/shopping/hotel-offers for a city.
func (c *Client) SearchHotelOffers(ctx context.Context, cityCode string, params models.HotelSearchParams) ([]HotelOffer, error) {
	if !c.Configured() {
		return nil, fmt.Errorf("amadeus client not configured")
	}

	q := url.Values{}
	q.Set("cityCode", cityCode)
	q.Set("checkInDate", params.CheckIn)
	q.Set("checkOutDate", params.CheckOut)
	q.Set("adults", strconv.Itoa(params.Guests))
	q.Set("roomQuantity", strconv.Itoa(params.Rooms))
	q.Set("ratings", "4,5")
	q.Set("radius", "20")
	q.Set("radiusUnit", "KM")
	q.Set("bestRateOnly", "true")
	q.Set("currency", "USD")
	if params.MaxPrice > 0 {
		q.Set("priceRange", fmt.Sprintf("0-%d", int(params.MaxPrice)))
	}

	var offers []HotelOffer
	if err := c.get(ctx, "/v3/shopping/hotel-offers", q, &offers); err != nil {
		return nil, fmt.Errorf("hotel offers search failed: %w", err)
	}
	return offers, nil
}
