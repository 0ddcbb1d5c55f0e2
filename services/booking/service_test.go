package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	bookingRepo "voyager/database/repository/booking"
	"voyager/models"

	"go.uber.org/zap"
)

type memRepo struct {
	bookings map[string]*models.Booking
	invoices []*models.Invoice
}

func newMemRepo() *memRepo {
	return &memRepo{bookings: make(map[string]*models.Booking)}
}

func (r *memRepo) Create(ctx context.Context, b *models.Booking) error {
	cp := *b
	r.bookings[b.ID] = &cp
	return nil
}

func (r *memRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrNotFound
	}
	cp := *b
	return &cp, nil
}

func (r *memRepo) GetByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *memRepo) GetByUserAndDate(ctx context.Context, userID, date string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.UserID == userID && b.Date == date {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *memRepo) UpdateStatus(ctx context.Context, id string, status models.BookingStatus) error {
	b, ok := r.bookings[id]
	if !ok {
		return bookingRepo.ErrNotFound
	}
	b.Status = status
	b.UpdatedAt = time.Now()
	return nil
}

func (r *memRepo) SaveInvoice(ctx context.Context, inv *models.Invoice) error {
	r.invoices = append(r.invoices, inv)
	return nil
}

type fakePayments struct {
	status string
	err    error
	calls  int
}

func (f *fakePayments) ProcessPayment(ctx context.Context, req models.PaymentRequest) (*models.Invoice, error) {
	f.calls++
	if f.err != nil {
		return &models.Invoice{
			InvoiceID: "inv_fail",
			BookingID: req.BookingID,
			Status:    "failed",
		}, f.err
	}
	return &models.Invoice{
		InvoiceID: "inv_1",
		UserID:    req.UserID,
		BookingID: req.BookingID,
		Amount:    req.Amount,
		Currency:  req.Currency,
		Method:    req.Method,
		Status:    f.status,
	}, nil
}

func validInput() models.BookingInput {
	return models.BookingInput{
		UserID:        "user_1",
		Kind:          models.BookingHotel,
		ItemName:      "Four Seasons George V",
		Date:          "2026-10-01",
		TotalPrice:    2685,
		PaymentMethod: "card",
	}
}

func TestCreateConfirmsOnPaidInvoice(t *testing.T) {
	repo := newMemRepo()
	payments := &fakePayments{status: "paid"}
	svc := &DefaultBookingService{Repo: repo, Payments: payments, Logger: zap.NewNop()}

	b, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if b.Status != models.BookingConfirmed {
		t.Errorf("Status = %s, want confirmed", b.Status)
	}
	if b.InvoiceID != "inv_1" {
		t.Errorf("InvoiceID = %q, want inv_1", b.InvoiceID)
	}
	if payments.calls != 1 {
		t.Errorf("payment calls = %d, want 1", payments.calls)
	}

	stored, _ := repo.GetByID(context.Background(), b.ID)
	if stored.Status != models.BookingConfirmed {
		t.Errorf("persisted status = %s, want confirmed", stored.Status)
	}
	if len(repo.invoices) != 1 {
		t.Errorf("saved %d invoices, want 1", len(repo.invoices))
	}
}

func TestCreateDeferredStaysPending(t *testing.T) {
	repo := newMemRepo()
	payments := &fakePayments{status: "pending"}
	svc := &DefaultBookingService{Repo: repo, Payments: payments, Logger: zap.NewNop()}

	input := validInput()
	input.PaymentMethod = "deferred"
	b, err := svc.Create(context.Background(), input)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if b.Status != models.BookingPending {
		t.Errorf("Status = %s, want pending", b.Status)
	}
}

func TestCreateSurvivesFailedCharge(t *testing.T) {
	repo := newMemRepo()
	payments := &fakePayments{err: errors.New("card declined")}
	svc := &DefaultBookingService{Repo: repo, Payments: payments, Logger: zap.NewNop()}

	b, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Create should not fail on a declined charge, got %v", err)
	}
	if b.Status != models.BookingPending {
		t.Errorf("Status = %s, want pending after failed charge", b.Status)
	}
	if _, repoErr := repo.GetByID(context.Background(), b.ID); repoErr != nil {
		t.Error("booking should still be persisted after a failed charge")
	}
}

func TestCreateValidation(t *testing.T) {
	svc := &DefaultBookingService{Repo: newMemRepo(), Payments: &fakePayments{status: "paid"}, Logger: zap.NewNop()}

	tests := []struct {
		name   string
		mutate func(*models.BookingInput)
	}{
		{"missing user", func(in *models.BookingInput) { in.UserID = "" }},
		{"bad kind", func(in *models.BookingInput) { in.Kind = "spa" }},
		{"missing item name", func(in *models.BookingInput) { in.ItemName = "" }},
		{"bad date", func(in *models.BookingInput) { in.Date = "next tuesday" }},
		{"zero price", func(in *models.BookingInput) { in.TotalPrice = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(&input)
			if _, err := svc.Create(context.Background(), input); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestGetEnforcesOwnership(t *testing.T) {
	repo := newMemRepo()
	svc := &DefaultBookingService{Repo: repo, Payments: &fakePayments{status: "paid"}, Logger: zap.NewNop()}

	b, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if _, err := svc.Get(context.Background(), "someone_else", b.ID); !errors.Is(err, ErrForbidden) {
		t.Errorf("err = %v, want ErrForbidden", err)
	}
	if _, err := svc.Get(context.Background(), "user_1", "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
	if got, err := svc.Get(context.Background(), "user_1", b.ID); err != nil || got.ID != b.ID {
		t.Errorf("owner lookup failed: %v", err)
	}
}

func TestCancelFollowsStateMachine(t *testing.T) {
	repo := newMemRepo()
	svc := &DefaultBookingService{Repo: repo, Payments: &fakePayments{status: "paid"}, Logger: zap.NewNop()}

	b, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	cancelled, err := svc.Cancel(context.Background(), "user_1", b.ID)
	if err != nil {
		t.Fatalf("Cancel returned error: %v", err)
	}
	if cancelled.Status != models.BookingCancelled {
		t.Errorf("Status = %s, want cancelled", cancelled.Status)
	}

	// Cancelled is terminal.
	if _, err := svc.Cancel(context.Background(), "user_1", b.ID); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("second cancel err = %v, want ErrInvalidTransition", err)
	}
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from models.BookingStatus
		to   models.BookingStatus
		want bool
	}{
		{models.BookingPending, models.BookingConfirmed, true},
		{models.BookingPending, models.BookingCancelled, true},
		{models.BookingPending, models.BookingCompleted, false},
		{models.BookingConfirmed, models.BookingCompleted, true},
		{models.BookingConfirmed, models.BookingCancelled, true},
		{models.BookingConfirmed, models.BookingPending, false},
		{models.BookingCompleted, models.BookingCancelled, false},
		{models.BookingCancelled, models.BookingConfirmed, false},
	}
	for _, tt := range tests {
		if got := CanTransition(tt.from, tt.to); got != tt.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestItinerarySkipsCancelledAndSortsByTime(t *testing.T) {
	repo := newMemRepo()
	svc := &DefaultBookingService{Repo: repo, Payments: &fakePayments{status: "pending"}, Logger: zap.NewNop()}

	today := time.Now().Format("2006-01-02")
	seed := []struct {
		id     string
		kind   models.BookingKind
		name   string
		status models.BookingStatus
	}{
		{"b1", models.BookingRestaurant, "Le Cinq", models.BookingConfirmed},
		{"b2", models.BookingFlight, "NYC -> Paris", models.BookingConfirmed},
		{"b3", models.BookingHotel, "The Ritz Paris", models.BookingCancelled},
	}
	for _, s := range seed {
		repo.bookings[s.id] = &models.Booking{
			ID: s.id, UserID: "user_1", Kind: s.kind,
			ItemName: s.name, Date: today, Status: s.status,
		}
	}

	data, err := svc.Itinerary(context.Background(), "user_1")
	if err != nil {
		t.Fatalf("Itinerary returned error: %v", err)
	}
	if data.WidgetType != "trip_itinerary" {
		t.Errorf("WidgetType = %q", data.WidgetType)
	}
	if len(data.Activities) != 2 {
		t.Fatalf("len(Activities) = %d, want 2 (cancelled excluded)", len(data.Activities))
	}
	if data.Activities[0].Name != "NYC -> Paris" || data.Activities[0].Time != "09:00" {
		t.Errorf("first activity = %+v, want the 09:00 flight", data.Activities[0])
	}
	if data.Activities[1].Icon != "fork.knife" {
		t.Errorf("restaurant icon = %q, want fork.knife", data.Activities[1].Icon)
	}
}

func TestPaymentValidateRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     models.PaymentRequest
		wantErr bool
	}{
		{"valid card", models.PaymentRequest{UserID: "u", Amount: 100, Method: "card"}, false},
		{"valid deferred", models.PaymentRequest{UserID: "u", Amount: 100, Method: "deferred"}, false},
		{"zero amount", models.PaymentRequest{UserID: "u", Amount: 0, Method: "card"}, true},
		{"missing user", models.PaymentRequest{Amount: 100, Method: "card"}, true},
		{"unknown method", models.PaymentRequest{UserID: "u", Amount: 100, Method: "crypto"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateRequest(tt.req)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateRequest() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDeferredPaymentStaysPending(t *testing.T) {
	h := NewPaymentHandler(zap.NewNop())

	inv, err := h.ProcessPayment(context.Background(), models.PaymentRequest{
		UserID:    "u",
		BookingID: "b",
		Amount:    250,
		Currency:  "USD",
		Method:    "deferred",
	})
	if err != nil {
		t.Fatalf("ProcessPayment returned error: %v", err)
	}
	if inv.Status != "pending" {
		t.Errorf("Status = %q, want pending", inv.Status)
	}
	if inv.InvoiceID == "" {
		t.Error("invoice ID not assigned")
	}
}

func TestCurrencyCode(t *testing.T) {
	if got := currencyCode(""); got != "usd" {
		t.Errorf("currencyCode(\"\") = %q, want usd", got)
	}
	if got := currencyCode("USD"); got != "usd" {
		t.Errorf("currencyCode(USD) = %q, want usd", got)
	}
	if got := currencyCode("eur"); got != "eur" {
		t.Errorf("currencyCode(eur) = %q, want eur", got)
	}
}
