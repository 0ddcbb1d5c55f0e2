package flight

import (
	"context"

	"voyager/models"
)

// Service is the flight specialist ("Atlas"). It searches fares and
// produces widget feeds of scored deals.
type Service interface {
	Search(ctx context.Context, params models.FlightSearchParams) ([]models.FlightDeal, error)
	WidgetData(ctx context.Context, userID string, maxDeals int) (*models.FlightWidgetData, error)
}
