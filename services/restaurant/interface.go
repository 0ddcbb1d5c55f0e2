package restaurant

import (
	"context"

	"voyager/models"
)

// Service finds fine-dining tables and produces the dining widget feed.
type Service interface {
	Search(ctx context.Context, params models.RestaurantSearchParams) ([]models.RestaurantResult, error)
	WidgetData(ctx context.Context, location string, maxRestaurants int) (*models.RestaurantWidgetData, error)
}
