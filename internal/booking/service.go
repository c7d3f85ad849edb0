// Package booking implements the seat reservation transaction. A booking
// attempt reads the movie, locates the target show, checks capacity and then
// issues one conditional write that both decrements the seat counter and
// appends the booking entry. The store's atomicity guarantee is the only
// mechanism preventing overbooking; the service layer adds validation and a
// bounded retry loop around seat-count races.
package booking

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/VishnuPrasanth-A/Bookmyshow-backend-guvi/internal/model"
	"github.com/VishnuPrasanth-A/Bookmyshow-backend-guvi/internal/queue"
	"github.com/VishnuPrasanth-A/Bookmyshow-backend-guvi/internal/repository"
)

// maxAttempts bounds the retry loop around seat-count conflicts. Contention
// windows are short (one read and one conditional write), so no backoff is
// used between attempts.
const maxAttempts = 3

// CatalogStore is the slice of the repository the booking transaction needs.
// ApplyBookingUpdate must be atomic: it either decrements the counter and
// appends the booking together, or does nothing and reports why via the
// repository sentinel errors.
type CatalogStore interface {
	GetByID(ctx context.Context, id string) (*model.Movie, error)
	ApplyBookingUpdate(ctx context.Context, movieID string, path model.ShowPath, expectedSeats, newSeats int, b model.Booking) error
}

// PublishFunc publishes a confirmed-booking event. Publishing is best
// effort; failures never affect the booking outcome.
type PublishFunc func(ctx context.Context, ev queue.BookingConfirmedEvent) error

// Service orchestrates booking attempts against a CatalogStore.
type Service struct {
	store   CatalogStore
	publish PublishFunc
}

// NewService constructs a booking Service. publish may be nil, in which case
// confirmed bookings are not announced on the broker.
func NewService(store CatalogStore, publish PublishFunc) *Service {
	if store == nil {
		panic("nil store passed to booking.NewService")
	}
	return &Service{store: store, publish: publish}
}

// Request carries the fields of a reservation attempt. Seats is the number
// of seats to book, not seat identities.
type Request struct {
	MovieID     string
	ShowID      string
	Seats       int
	Name        string
	Email       string
	PhoneNumber string
}

func (r Request) validate() error {
	if r.MovieID == "" || r.ShowID == "" || r.Name == "" || r.Email == "" || r.PhoneNumber == "" {
		return fmt.Errorf("%w: missing required fields", ErrInvalidRequest)
	}
	if r.Seats <= 0 {
		return fmt.Errorf("%w: seat count must be a positive integer", ErrInvalidRequest)
	}
	return nil
}

// Book reserves req.Seats seats on the requested show. On success it returns
// the recorded booking. Terminal rejections come back as the sentinel errors
// in this package; any other error is an infrastructure failure and the
// inventory is guaranteed unchanged by this attempt.
//
// The write uses the seat count read in the same attempt as its precondition.
// When another writer moves the counter in between, the store reports a
// conflict without mutating anything and the whole attempt is replayed from
// a fresh read, up to maxAttempts times.
func (s *Service) Book(ctx context.Context, req Request) (*model.Booking, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		movie, err := s.store.GetByID(ctx, req.MovieID)
		if err != nil {
			if errors.Is(err, repository.ErrMovieNotFound) {
				return nil, ErrMovieNotFound
			}
			return nil, fmt.Errorf("fetch movie: %w", err)
		}

		path, show, ok := LocateShow(movie, req.ShowID)
		if !ok {
			return nil, ErrShowNotFound
		}
		if show.AvailableSeats < req.Seats {
			return nil, ErrInsufficientSeats
		}

		b := model.Booking{
			ID:          uuid.NewString(),
			Name:        req.Name,
			Email:       req.Email,
			PhoneNumber: req.PhoneNumber,
			Seats:       req.Seats,
		}
		remaining := show.AvailableSeats - req.Seats

		err = s.store.ApplyBookingUpdate(ctx, req.MovieID, path, show.AvailableSeats, remaining, b)
		switch {
		case err == nil:
			s.announceConfirmed(ctx, movie, show, path, b, remaining)
			return &b, nil
		case errors.Is(err, repository.ErrSeatConflict):
			// another writer moved the counter between our read and write
			continue
		case errors.Is(err, repository.ErrShowNotFound), errors.Is(err, repository.ErrMovieNotFound):
			return nil, ErrShowNotFound
		default:
			return nil, fmt.Errorf("apply booking update: %w", err)
		}
	}
	return nil, ErrContended
}

// announceConfirmed publishes the booking.confirmed event in the background.
// The booking is already durable, so publish failures are only logged.
func (s *Service) announceConfirmed(ctx context.Context, m *model.Movie, show *model.Show, path model.ShowPath, b model.Booking, remaining int) {
	if s.publish == nil {
		return
	}
	ev := queue.BookingConfirmedEvent{
		BookingID:   b.ID,
		MovieID:     m.ID,
		MovieTitle:  m.Title,
		ShowID:      show.ID,
		ShowDate:    path.Date,
		ShowTime:    show.Time,
		Name:        b.Name,
		Email:       b.Email,
		PhoneNumber: b.PhoneNumber,
		Seats:       b.Seats,
		SeatsLeft:   remaining,
		ConfirmedAt: time.Now().UTC().Format(time.RFC3339),
	}
	go func() {
		if err := s.publish(context.WithoutCancel(ctx), ev); err != nil {
			log.Printf("booking: publish confirmed event failed: %v", err)
		}
	}()
}
