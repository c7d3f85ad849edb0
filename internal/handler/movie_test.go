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

	"github.com/VishnuPrasanth-A/Bookmyshow-backend-guvi/internal/model"
	"github.com/VishnuPrasanth-A/Bookmyshow-backend-guvi/internal/repository"
)

type fakeCatalog struct {
	list func(ctx context.Context) ([]model.Movie, error)
	get  func(ctx context.Context, id string) (*model.Movie, error)
}

func (f *fakeCatalog) List(ctx context.Context) ([]model.Movie, error) { return f.list(ctx) }
func (f *fakeCatalog) GetByID(ctx context.Context, id string) (*model.Movie, error) {
	return f.get(ctx, id)
}

func TestGetMovies_Success(t *testing.T) {
	h := NewMovieHandler(&fakeCatalog{
		list: func(ctx context.Context) ([]model.Movie, error) {
			return []model.Movie{{ID: "mv-1", Title: "Interstellar", Shows: map[string][]model.Show{}}}, nil
		},
	})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/movie/get-movies", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.GetMovies(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Interstellar"`)
}

func TestGetMovies_StoreUnavailable(t *testing.T) {
	h := NewMovieHandler(&fakeCatalog{
		list: func(ctx context.Context) ([]model.Movie, error) { return nil, assert.AnError },
	})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/movie/get-movies", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.GetMovies(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Something went wrong")
}

func TestGetMovie_UnknownIDReturnsNull(t *testing.T) {
	h := NewMovieHandler(&fakeCatalog{
		get: func(ctx context.Context, id string) (*model.Movie, error) {
			return nil, repository.ErrMovieNotFound
		},
	})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/movie/mv-404", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("mv-404")
	require.NoError(t, h.GetMovie(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null", strings.TrimSpace(rec.Body.String()))
}

func TestGetMovie_Found(t *testing.T) {
	h := NewMovieHandler(&fakeCatalog{
		get: func(ctx context.Context, id string) (*model.Movie, error) {
			return &model.Movie{ID: id, Title: "Oppenheimer", Shows: map[string][]model.Show{
				"2026-09-01": {{ID: "sh-1", Time: "10:00", AvailableSeats: 12, Bookings: []model.Booking{}}},
			}}, nil
		},
	})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/movie/mv-2", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("mv-2")
	require.NoError(t, h.GetMovie(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Oppenheimer"`)
	assert.Contains(t, rec.Body.String(), `"2026-09-01"`)
}
