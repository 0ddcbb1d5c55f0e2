package hotel

import (
	"context"

	"voyager/models"
)

// Service is the hotel specialist ("Margaux"). It searches stays,
// surfaces the curated luxury portfolio, and produces widget feeds.
type Service interface {
	Search(ctx context.Context, params models.HotelSearchParams) ([]models.HotelResult, error)
	Curated(ctx context.Context, location string, category models.HotelCategory) ([]models.HotelResult, error)
	WidgetData(ctx context.Context, userID string, maxHotels int) (*models.HotelWidgetData, error)
}
