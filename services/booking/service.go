package booking

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	bookingRepo "voyager/database/repository/booking"
	"voyager/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultBookingService implements Service on the Mongo repository.
type DefaultBookingService struct {
	Repo     bookingRepo.Repository
	Payments PaymentHandler
	Logger   *zap.Logger
}

func (s *DefaultBookingService) Create(ctx context.Context, input models.BookingInput) (*models.Booking, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	now := time.Now()
	b := &models.Booking{
		ID:         uuid.New().String(),
		UserID:     input.UserID,
		Kind:       input.Kind,
		ItemID:     input.ItemID,
		ItemName:   input.ItemName,
		Date:       input.Date,
		EndDate:    input.EndDate,
		Travelers:  input.Travelers,
		TotalPrice: input.TotalPrice,
		Currency:   input.Currency,
		Status:     models.BookingPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if b.Currency == "" {
		b.Currency = "USD"
	}
	if b.Travelers <= 0 {
		b.Travelers = 1
	}

	if err := s.Repo.Create(ctx, b); err != nil {
		return nil, fmt.Errorf("persist booking: %w", err)
	}

	inv, err := s.Payments.ProcessPayment(ctx, models.PaymentRequest{
		UserID:    input.UserID,
		BookingID: b.ID,
		Amount:    input.TotalPrice,
		Currency:  b.Currency,
		Method:    input.PaymentMethod,
		Email:     input.ContactEmail,
	})
	if err != nil {
		// The booking survives a failed charge so the user can retry;
		// it just stays pending.
		s.Logger.Error("payment failed", zap.Error(err), zap.String("booking", b.ID))
		if inv != nil {
			if saveErr := s.Repo.SaveInvoice(ctx, inv); saveErr != nil {
				s.Logger.Error("invoice save failed", zap.Error(saveErr))
			}
		}
		return b, nil
	}

	if err := s.Repo.SaveInvoice(ctx, inv); err != nil {
		s.Logger.Error("invoice save failed", zap.Error(err), zap.String("invoice", inv.InvoiceID))
	}
	b.InvoiceID = inv.InvoiceID

	if inv.Status == "paid" {
		if err := s.Repo.UpdateStatus(ctx, b.ID, models.BookingConfirmed); err != nil {
			return nil, fmt.Errorf("confirm booking: %w", err)
		}
		b.Status = models.BookingConfirmed
		b.UpdatedAt = time.Now()
	}

	s.Logger.Info("booking created",
		zap.String("id", b.ID),
		zap.String("kind", string(b.Kind)),
		zap.String("status", string(b.Status)))
	return b, nil
}

func (s *DefaultBookingService) Get(ctx context.Context, userID, bookingID string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if b.UserID != userID {
		return nil, ErrForbidden
	}
	return b, nil
}

func (s *DefaultBookingService) ListByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	return s.Repo.GetByUser(ctx, userID)
}

func (s *DefaultBookingService) Cancel(ctx context.Context, userID, bookingID string) (*models.Booking, error) {
	b, err := s.Get(ctx, userID, bookingID)
	if err != nil {
		return nil, err
	}

	if !CanTransition(b.Status, models.BookingCancelled) {
		return nil, fmt.Errorf("%w: %s -> cancelled", ErrInvalidTransition, b.Status)
	}

	if err := s.Repo.UpdateStatus(ctx, bookingID, models.BookingCancelled); err != nil {
		return nil, fmt.Errorf("cancel booking: %w", err)
	}
	b.Status = models.BookingCancelled
	b.UpdatedAt = time.Now()

	s.Logger.Info("booking cancelled", zap.String("id", bookingID))
	return b, nil
}

// CanTransition reports whether a booking may move between two states.
// Terminal states (completed, cancelled) never change.
func CanTransition(from, to models.BookingStatus) bool {
	switch from {
	case models.BookingPending:
		return to == models.BookingConfirmed || to == models.BookingCancelled
	case models.BookingConfirmed:
		return to == models.BookingCompleted || to == models.BookingCancelled
	default:
		return false
	}
}

func validateInput(input models.BookingInput) error {
	if input.UserID == "" {
		return errors.New("missing user ID")
	}
	switch input.Kind {
	case models.BookingFlight, models.BookingHotel, models.BookingRestaurant, models.BookingPackage:
	default:
		return fmt.Errorf("unsupported booking kind: %q", input.Kind)
	}
	if input.ItemName == "" {
		return errors.New("missing item name")
	}
	if _, err := time.Parse("2006-01-02", input.Date); err != nil {
		return fmt.Errorf("invalid booking date %q", input.Date)
	}
	if input.TotalPrice <= 0 {
		return errors.New("invalid total price")
	}
	return nil
}

var kindIcons = map[models.BookingKind]string{
	models.BookingFlight:     "airplane",
	models.BookingHotel:      "bed.double",
	models.BookingRestaurant: "fork.knife",
	models.BookingPackage:    "suitcase",
}

// Itinerary builds the trip-planner widget for today's confirmed plans.
func (s *DefaultBookingService) Itinerary(ctx context.Context, userID string) (*models.ItineraryWidgetData, error) {
	today := time.Now().Format("2006-01-02")
	bookings, err := s.Repo.GetByUserAndDate(ctx, userID, today)
	if err != nil {
		return nil, fmt.Errorf("load itinerary: %w", err)
	}

	var activities []models.ItineraryActivity
	for _, b := range bookings {
		if b.Status == models.BookingCancelled {
			continue
		}
		activities = append(activities, models.ItineraryActivity{
			Time:   activityTime(b.Kind),
			Name:   b.ItemName,
			Status: string(b.Status),
			Icon:   kindIcons[b.Kind],
		})
	}
	sort.Slice(activities, func(i, j int) bool {
		return activities[i].Time < activities[j].Time
	})

	data := &models.ItineraryWidgetData{
		WidgetType:  "trip_itinerary",
		Size:        "medium_2x2",
		Date:        today,
		Activities:  activities,
		LastUpdated: time.Now().Format(time.RFC3339),
	}

	nowClock := time.Now().Format("15:04")
	for i := range activities {
		if activities[i].Time >= nowClock {
			data.NextActivity = &activities[i]
			break
		}
	}
	return data, nil
}

// activityTime assigns a canonical slot per booking kind; exact times are
// not captured at booking time.
func activityTime(kind models.BookingKind) string {
	switch kind {
	case models.BookingFlight:
		return "09:00"
	case models.BookingHotel:
		return "15:00"
	case models.BookingRestaurant:
		return "19:00"
	default:
		return "12:00"
	}
}
