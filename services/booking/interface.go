package booking

import (
	"context"

	"voyager/models"
)

// Service is the booking specialist ("Felix"). It owns the booking
// lifecycle, payment settlement, and the trip itinerary widget.
type Service interface {
	Create(ctx context.Context, input models.BookingInput) (*models.Booking, error)
	Get(ctx context.Context, userID, bookingID string) (*models.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]models.Booking, error)
	Cancel(ctx context.Context, userID, bookingID string) (*models.Booking, error)
	Itinerary(ctx context.Context, userID string) (*models.ItineraryWidgetData, error)
}
