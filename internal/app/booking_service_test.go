package app

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/AnuragChougule/venuebook/internal/clock"
	"github.com/AnuragChougule/venuebook/internal/domain"
)

func TestBookingService_BookDate(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)

	makeSvc := func(venues []string, bookings []domain.Booking) (*BookingService, *fakeBookingRepo) {
		repo := newFakeBookingRepo(venues, bookings)
		svc := NewBookingService(repo, clock.Fixed(now))
		return svc, repo
	}

	t.Run("books a free date", func(t *testing.T) {
		svc, repo := makeSvc([]string{"hall-x"}, nil)

		booking, err := svc.BookDate(context.Background(), BookDateInput{
			VenueID:   "hall-x",
			Date:      time.Date(2025, 5, 1, 18, 30, 0, 0, time.UTC),
			Email:     "usera@example.com",
			FullName:  "User A",
			EventType: "Marriage",
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if booking.ID == "" {
			t.Fatalf("expected booking ID to be set")
		}
		want := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
		if !booking.EventDate.Equal(want) {
			t.Fatalf("expected date normalized to %v, got %v", want, booking.EventDate)
		}
		if len(repo.bookings) != 1 {
			t.Fatalf("expected 1 booking stored, got %d", len(repo.bookings))
		}
	})

	t.Run("same venue and date conflicts", func(t *testing.T) {
		svc, repo := makeSvc([]string{"hall-x"}, []domain.Booking{
			{ID: "b-1", VenueID: "hall-x", EventDate: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), Email: "usera@example.com"},
		})

		_, err := svc.BookDate(context.Background(), BookDateInput{
			VenueID:   "hall-x",
			Date:      time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC),
			Email:     "userb@example.com",
			FullName:  "User B",
			EventType: "Birthday",
		})
		if err != domain.ErrDateConflict {
			t.Fatalf("expected ErrDateConflict, got %v", err)
		}
		if len(repo.bookings) != 1 {
			t.Fatalf("expected ledger unchanged on conflict, got %d bookings", len(repo.bookings))
		}
	})

	t.Run("next day is free", func(t *testing.T) {
		svc, _ := makeSvc([]string{"hall-x"}, []domain.Booking{
			{ID: "b-1", VenueID: "hall-x", EventDate: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)},
		})

		_, err := svc.BookDate(context.Background(), BookDateInput{
			VenueID:   "hall-x",
			Date:      time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC),
			Email:     "userb@example.com",
			FullName:  "User B",
			EventType: "Birthday",
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("other venue same date is free", func(t *testing.T) {
		svc, _ := makeSvc([]string{"hall-x", "hall-y"}, []domain.Booking{
			{ID: "b-1", VenueID: "hall-x", EventDate: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)},
		})

		_, err := svc.BookDate(context.Background(), BookDateInput{
			VenueID:   "hall-y",
			Date:      time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
			Email:     "userb@example.com",
			FullName:  "User B",
			EventType: "Birthday",
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("unknown venue", func(t *testing.T) {
		svc, _ := makeSvc([]string{"hall-x"}, nil)

		_, err := svc.BookDate(context.Background(), BookDateInput{
			VenueID:   "nope",
			Date:      time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
			Email:     "usera@example.com",
			FullName:  "User A",
			EventType: "Marriage",
		})
		if err != domain.ErrVenueNotFound {
			t.Fatalf("expected ErrVenueNotFound, got %v", err)
		}
	})

	t.Run("past date rejected", func(t *testing.T) {
		svc, repo := makeSvc([]string{"hall-x"}, nil)

		_, err := svc.BookDate(context.Background(), BookDateInput{
			VenueID:   "hall-x",
			Date:      now.AddDate(0, 0, -1),
			Email:     "usera@example.com",
			FullName:  "User A",
			EventType: "Marriage",
		})
		if err != domain.ErrDateInPast {
			t.Fatalf("expected ErrDateInPast, got %v", err)
		}
		if len(repo.bookings) != 0 {
			t.Fatalf("expected no booking stored, got %d", len(repo.bookings))
		}
	})

	t.Run("booking today is allowed", func(t *testing.T) {
		svc, _ := makeSvc([]string{"hall-x"}, nil)

		_, err := svc.BookDate(context.Background(), BookDateInput{
			VenueID:   "hall-x",
			Date:      now,
			Email:     "usera@example.com",
			FullName:  "User A",
			EventType: "Marriage",
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		svc, _ := makeSvc([]string{"hall-x"}, nil)
		date := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

		cases := []struct {
			name string
			in   BookDateInput
			want error
		}{
			{"venue", BookDateInput{Date: date, Email: "a@b.c", FullName: "A", EventType: "Marriage"}, domain.ErrInvalidID},
			{"date", BookDateInput{VenueID: "hall-x", Email: "a@b.c", FullName: "A", EventType: "Marriage"}, domain.ErrDateRequired},
			{"email", BookDateInput{VenueID: "hall-x", Date: date, FullName: "A", EventType: "Marriage"}, domain.ErrEmailRequired},
			{"full name", BookDateInput{VenueID: "hall-x", Date: date, Email: "a@b.c", EventType: "Marriage"}, domain.ErrFullNameRequired},
			{"event type", BookDateInput{VenueID: "hall-x", Date: date, Email: "a@b.c", FullName: "A"}, domain.ErrEventTypeRequired},
		}
		for _, tc := range cases {
			if _, err := svc.BookDate(context.Background(), tc.in); err != tc.want {
				t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
			}
		}
	})
}

func TestBookingService_ConcurrentSameDate(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)
	repo := newFakeBookingRepo([]string{"hall-x"}, nil)
	svc := NewBookingService(repo, clock.Fixed(now))

	const attempts = 16
	results := make(chan error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.BookDate(context.Background(), BookDateInput{
				VenueID:   "hall-x",
				Date:      time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
				Email:     "user@example.com",
				FullName:  "User",
				EventType: "Marriage",
			})
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	successes, conflicts := 0, 0
	for err := range results {
		switch err {
		case nil:
			successes++
		case domain.ErrDateConflict:
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if successes != 1 {
		t.Fatalf("expected exactly 1 success, got %d", successes)
	}
	if conflicts != attempts-1 {
		t.Fatalf("expected %d conflicts, got %d", attempts-1, conflicts)
	}
}

func TestBookingService_ListBookedDates(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	d1 := time.Date(2025, 5, 3, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	repo := newFakeBookingRepo([]string{"hall-x"}, []domain.Booking{
		{ID: "b-1", VenueID: "hall-x", EventDate: d1},
		{ID: "b-2", VenueID: "hall-x", EventDate: d2},
	})
	svc := NewBookingService(repo, clock.Fixed(now))

	dates, err := svc.ListBookedDates(context.Background(), "hall-x")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(dates) != 2 || !dates[0].Equal(d2) || !dates[1].Equal(d1) {
		t.Fatalf("expected ascending dates [%v %v], got %v", d2, d1, dates)
	}

	empty, err := svc.ListBookedDates(context.Background(), "never-booked")
	if err != nil {
		t.Fatalf("expected no error for unbooked venue, got %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected empty list, got %v", empty)
	}
}

func TestBookingService_ListBookingsByEmail(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	repo := newFakeBookingRepo([]string{"hall-x"}, []domain.Booking{
		{ID: "b-1", VenueID: "hall-x", Email: "a@example.com"},
		{ID: "b-2", VenueID: "hall-x", Email: "b@example.com"},
	})
	svc := NewBookingService(repo, clock.Fixed(now))

	own, err := svc.ListBookingsByEmail(context.Background(), "a@example.com", "a@example.com")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(own) != 1 || own[0].ID != "b-1" {
		t.Fatalf("expected only own booking, got %v", own)
	}

	if _, err := svc.ListBookingsByEmail(context.Background(), "a@example.com", "b@example.com"); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

// fakeBookingRepo mirrors the conditional-insert contract of the Postgres
// repository, including its atomicity under concurrent callers.
type fakeBookingRepo struct {
	mu       sync.Mutex
	venues   map[string]bool
	bookings []domain.Booking
}

func newFakeBookingRepo(venues []string, bookings []domain.Booking) *fakeBookingRepo {
	v := make(map[string]bool, len(venues))
	for _, id := range venues {
		v[id] = true
	}
	return &fakeBookingRepo{
		venues:   v,
		bookings: append([]domain.Booking{}, bookings...),
	}
}

func (f *fakeBookingRepo) CreateBooking(_ context.Context, booking domain.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.venues[booking.VenueID] {
		return domain.ErrVenueNotFound
	}
	for _, b := range f.bookings {
		if b.VenueID == booking.VenueID && b.EventDate.Equal(booking.EventDate) {
			return domain.ErrDateConflict
		}
	}
	f.bookings = append(f.bookings, booking)
	return nil
}

func (f *fakeBookingRepo) ListBookedDates(_ context.Context, venueID string) ([]time.Time, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	dates := make([]time.Time, 0)
	for _, b := range f.bookings {
		if b.VenueID == venueID {
			dates = append(dates, b.EventDate)
		}
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates, nil
}

func (f *fakeBookingRepo) ListBookingsByEmail(_ context.Context, email string) ([]domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Booking, 0)
	for _, b := range f.bookings {
		if b.Email == email {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) ListAllBookings(_ context.Context) ([]domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.Booking{}, f.bookings...), nil
}
