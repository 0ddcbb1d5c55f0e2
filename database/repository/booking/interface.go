package booking

import (
	"context"

	"voyager/models"
)

// Repository defines persistence operations for bookings and invoices.
type Repository interface {
	Create(ctx context.Context, b *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	GetByUser(ctx context.Context, userID string) ([]models.Booking, error)
	GetByUserAndDate(ctx context.Context, userID, date string) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, id string, status models.BookingStatus) error
	SaveInvoice(ctx context.Context, inv *models.Invoice) error
}
