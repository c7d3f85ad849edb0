package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VishnuPrasanth-A/Bookmyshow-backend-guvi/internal/booking"
	"github.com/VishnuPrasanth-A/Bookmyshow-backend-guvi/internal/model"
)

type bookerFunc func(ctx context.Context, req booking.Request) (*model.Booking, error)

func (f bookerFunc) Book(ctx context.Context, req booking.Request) (*model.Booking, error) {
	return f(ctx, req)
}

func postBooking(t *testing.T, h *BookingHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/movie/book-movie", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, h.BookMovie(e.NewContext(req, rec)))
	return rec
}

func confirmingBooker(t *testing.T, captured *booking.Request) *BookingHandler {
	return NewBookingHandler(bookerFunc(func(ctx context.Context, req booking.Request) (*model.Booking, error) {
		if captured != nil {
			*captured = req
		}
		return &model.Booking{ID: "bk-1", Name: req.Name, Seats: req.Seats}, nil
	}))
}

func failingBooker(err error) *BookingHandler {
	return NewBookingHandler(bookerFunc(func(ctx context.Context, req booking.Request) (*model.Booking, error) {
		return nil, err
	}))
}

func TestBookMovie_Success(t *testing.T) {
	var got booking.Request
	h := confirmingBooker(t, &got)

	rec := postBooking(t, h, `{"movieId":"mv-1","showId":"sh-1","seats":3,"name":"Arun","email":"arun@example.com","phoneNumber":"9876543210"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Booking created successfully")
	assert.Equal(t, 3, got.Seats)
	assert.Equal(t, "mv-1", got.MovieID)
}

func TestBookMovie_SeatsAsString(t *testing.T) {
	var got booking.Request
	h := confirmingBooker(t, &got)

	rec := postBooking(t, h, `{"movieId":"mv-1","showId":"sh-1","seats":"4","name":"Arun","email":"arun@example.com","phoneNumber":"9876543210"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 4, got.Seats)
}

func TestBookMovie_MissingFields(t *testing.T) {
	h := failingBooker(nil) // never reached

	// Missing email.
	rec := postBooking(t, h, `{"movieId":"mv-1","showId":"sh-1","seats":2,"name":"Arun","phoneNumber":"9876543210"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Some fields are missing")

	// Missing seats entirely.
	rec = postBooking(t, h, `{"movieId":"mv-1","showId":"sh-1","name":"Arun","email":"arun@example.com","phoneNumber":"9876543210"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestBookMovie_InvalidSeatCount(t *testing.T) {
	h := failingBooker(nil) // never reached

	for _, seats := range []string{`"abc"`, `"-2"`, `-2`, `"2.5"`} {
		rec := postBooking(t, h, `{"movieId":"mv-1","showId":"sh-1","seats":`+seats+`,"name":"Arun","email":"arun@example.com","phoneNumber":"9876543210"}`)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "seats=%s", seats)
		assert.Contains(t, rec.Body.String(), "Invalid seat count", "seats=%s", seats)
	}
}

func TestBookMovie_OutcomeMapping(t *testing.T) {
	body := `{"movieId":"mv-1","showId":"sh-1","seats":1,"name":"Arun","email":"arun@example.com","phoneNumber":"9876543210"}`

	cases := []struct {
		err     error
		status  int
		message string
	}{
		{booking.ErrMovieNotFound, http.StatusNotFound, "Requested movie is not found"},
		{booking.ErrShowNotFound, http.StatusNotFound, "Show not found"},
		{booking.ErrInsufficientSeats, http.StatusNotFound, "Not enough seats available"},
		{booking.ErrContended, http.StatusInternalServerError, "Failed to update"},
		{assert.AnError, http.StatusInternalServerError, "Something went wrong"},
	}
	for _, tc := range cases {
		rec := postBooking(t, failingBooker(tc.err), body)
		assert.Equal(t, tc.status, rec.Code, tc.err.Error())
		assert.Contains(t, rec.Body.String(), tc.message, tc.err.Error())
	}
}
