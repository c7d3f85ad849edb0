package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/VishnuPrasanth-A/Bookmyshow-backend-guvi/internal/booking"
	"github.com/VishnuPrasanth-A/Bookmyshow-backend-guvi/internal/model"
)

// Booker runs the seat reservation transaction.
type Booker interface {
	Book(ctx context.Context, req booking.Request) (*model.Booking, error)
}

// BookingHandler serves POST /movie/book-movie.
type BookingHandler struct {
	Booker Booker
}

// NewBookingHandler constructs a BookingHandler. The booker must be non-nil.
func NewBookingHandler(b Booker) *BookingHandler {
	if b == nil {
		panic("nil booker passed to NewBookingHandler")
	}
	return &BookingHandler{Booker: b}
}

// seatCount tolerates clients sending the seat count as either a JSON number
// or a numeric string. A value that does not parse as an integer becomes -1,
// which fails the positive-count validation downstream.
type seatCount int

func (s *seatCount) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(strings.Trim(strings.TrimSpace(string(b)), `"`))
	n, err := strconv.Atoi(raw)
	if err != nil {
		*s = -1
		return nil
	}
	*s = seatCount(n)
	return nil
}

type bookMovieRequest struct {
	MovieID     string    `json:"movieId"`
	ShowID      string    `json:"showId"`
	Seats       seatCount `json:"seats"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber"`
}

// BookMovie handles POST /movie/book-movie. Malformed or incomplete input is
// rejected before the store is touched. Business rejections (unknown movie or
// show, not enough seats) map to 404; persistent write contention and store
// failures map to 500 with a generic message.
func (h *BookingHandler) BookMovie(c echo.Context) error {
	var body bookMovieRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request body"})
	}
	if body.MovieID == "" || body.ShowID == "" || body.Seats == 0 ||
		body.Name == "" || body.Email == "" || body.PhoneNumber == "" {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Some fields are missing"})
	}
	if body.Seats < 0 {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Invalid seat count"})
	}

	b, err := h.Booker.Book(c.Request().Context(), booking.Request{
		MovieID:     body.MovieID,
		ShowID:      body.ShowID,
		Seats:       int(body.Seats),
		Name:        body.Name,
		Email:       body.Email,
		PhoneNumber: body.PhoneNumber,
	})
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrInvalidRequest):
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Invalid seat count"})
		case errors.Is(err, booking.ErrMovieNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Requested movie is not found"})
		case errors.Is(err, booking.ErrShowNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Show not found"})
		case errors.Is(err, booking.ErrInsufficientSeats):
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Not enough seats available"})
		case errors.Is(err, booking.ErrContended):
			log.Printf("booking: contention not resolved for movie=%s show=%s", body.MovieID, body.ShowID)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to update"})
		default:
			log.Printf("booking: movie=%s show=%s failed: %v", body.MovieID, body.ShowID, err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Something went wrong"})
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message":   "Booking created successfully",
		"bookingId": b.ID,
	})
}
