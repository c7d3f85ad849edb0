// Package handler implements the HTTP endpoints of the movie booking API.
// Handlers translate repository and booking outcomes into status codes and
// the response messages the original API contract uses; underlying causes
// of 500 responses are logged, never sent to the client.
package handler

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/VishnuPrasanth-A/Bookmyshow-backend-guvi/internal/model"
	"github.com/VishnuPrasanth-A/Bookmyshow-backend-guvi/internal/repository"
)

// Catalog is the read side of the movie store used by the listing handlers.
type Catalog interface {
	List(ctx context.Context) ([]model.Movie, error)
	GetByID(ctx context.Context, id string) (*model.Movie, error)
}

// MovieHandler serves the catalog read endpoints. Responses may be stale
// relative to in-flight bookings; only the booking transaction itself reads
// seat counts for correctness.
type MovieHandler struct {
	Catalog Catalog
}

// NewMovieHandler constructs a MovieHandler. The catalog must be non-nil.
func NewMovieHandler(catalog Catalog) *MovieHandler {
	if catalog == nil {
		panic("nil catalog passed to NewMovieHandler")
	}
	return &MovieHandler{Catalog: catalog}
}

// GetMovies handles GET /movie/get-movies. It returns every movie with its
// nested shows and bookings.
func (h *MovieHandler) GetMovies(c echo.Context) error {
	movies, err := h.Catalog.List(c.Request().Context())
	if err != nil {
		log.Printf("movies: list failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Something went wrong"})
	}
	return c.JSON(http.StatusOK, movies)
}

// GetMovie handles GET /movie/:id. An unknown id yields a 200 response with
// a null body, matching the behavior clients of this API already depend on.
func (h *MovieHandler) GetMovie(c echo.Context) error {
	id := c.Param("id")
	movie, err := h.Catalog.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return c.JSON(http.StatusOK, nil)
		}
		log.Printf("movies: get %q failed: %v", id, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Something went wrong"})
	}
	return c.JSON(http.StatusOK, movie)
}
