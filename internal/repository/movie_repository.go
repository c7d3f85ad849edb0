// Package repository contains data access logic for the movie catalog. A
// movie is stored across three tables: movies (id, title), shows keyed by
// (movie_id, show_date, position) carrying the available_seats counter, and
// bookings, the append-only log of confirmed reservations per show. The
// repository reassembles the nested movie -> date -> shows -> bookings shape
// that the API serves.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/VishnuPrasanth-A/Bookmyshow-backend-guvi/internal/model"
)

// MovieRepo manages persistence for movies, shows and bookings.
type MovieRepo struct {
	db *sql.DB
}

// NewMovieRepo constructs a MovieRepo bound to the given database handle.
func NewMovieRepo(db *sql.DB) *MovieRepo {
	return &MovieRepo{db: db}
}

// List returns all movies with their nested shows and bookings. Order of the
// returned movies is not significant. When the catalog is empty it returns
// an empty slice and nil error.
func (r *MovieRepo) List(ctx context.Context) ([]model.Movie, error) {
	const q = `SELECT id, title FROM movies ORDER BY title, id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("query movies: %w", err)
	}
	defer rows.Close()
	movies := make([]model.Movie, 0)
	index := make(map[string]int)
	for rows.Next() {
		var m model.Movie
		if err := rows.Scan(&m.ID, &m.Title); err != nil {
			return nil, fmt.Errorf("scan movie: %w", err)
		}
		m.Shows = make(map[string][]model.Show)
		index[m.ID] = len(movies)
		movies = append(movies, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(movies) == 0 {
		return movies, nil
	}
	if err := r.attachShows(ctx, movies, index, ""); err != nil {
		return nil, err
	}
	return movies, nil
}

// GetByID fetches a single movie and its nested shows and bookings. It
// returns ErrMovieNotFound when no row matches the id.
func (r *MovieRepo) GetByID(ctx context.Context, id string) (*model.Movie, error) {
	const q = `SELECT id, title FROM movies WHERE id = ?`
	var m model.Movie
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&m.ID, &m.Title); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMovieNotFound
		}
		return nil, fmt.Errorf("query movie: %w", err)
	}
	m.Shows = make(map[string][]model.Show)
	movies := []model.Movie{m}
	if err := r.attachShows(ctx, movies, map[string]int{m.ID: 0}, m.ID); err != nil {
		return nil, err
	}
	return &movies[0], nil
}

// attachShows populates Shows (and their bookings) for the given movies.
// When movieID is non-empty the queries are restricted to that movie.
// Shows are read ordered by position within their date bucket, so a show's
// slice index matches its persisted position and booking rows can be routed
// by (date, position) alone.
func (r *MovieRepo) attachShows(ctx context.Context, movies []model.Movie, index map[string]int, movieID string) error {
	showQ := `SELECT movie_id, DATE_FORMAT(show_date, '%Y-%m-%d'), show_id, show_time, available_seats FROM shows`
	var args []interface{}
	if movieID != "" {
		showQ += ` WHERE movie_id = ?`
		args = append(args, movieID)
	}
	showQ += ` ORDER BY movie_id, show_date, position`
	rows, err := r.db.QueryContext(ctx, showQ, args...)
	if err != nil {
		return fmt.Errorf("query shows: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var mid, date string
		var s model.Show
		if err := rows.Scan(&mid, &date, &s.ID, &s.Time, &s.AvailableSeats); err != nil {
			return fmt.Errorf("scan show: %w", err)
		}
		i, ok := index[mid]
		if !ok {
			continue
		}
		s.Bookings = []model.Booking{}
		movies[i].Shows[date] = append(movies[i].Shows[date], s)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	bookQ := `SELECT movie_id, DATE_FORMAT(show_date, '%Y-%m-%d'), position, id, name, email, phone_number, seats FROM bookings`
	if movieID != "" {
		bookQ += ` WHERE movie_id = ?`
	}
	bookQ += ` ORDER BY movie_id, show_date, position, created_at, id`
	brows, err := r.db.QueryContext(ctx, bookQ, args...)
	if err != nil {
		return fmt.Errorf("query bookings: %w", err)
	}
	defer brows.Close()
	for brows.Next() {
		var mid, date string
		var pos int
		var b model.Booking
		if err := brows.Scan(&mid, &date, &pos, &b.ID, &b.Name, &b.Email, &b.PhoneNumber, &b.Seats); err != nil {
			return fmt.Errorf("scan booking: %w", err)
		}
		i, ok := index[mid]
		if !ok {
			continue
		}
		bucket := movies[i].Shows[date]
		if pos < 0 || pos >= len(bucket) {
			continue
		}
		bucket[pos].Bookings = append(bucket[pos].Bookings, b)
	}
	return brows.Err()
}

// ApplyBookingUpdate atomically decrements a show's seat counter and appends
// a booking entry. The UPDATE only matches when available_seats still equals
// expectedSeats, so the database itself serializes concurrent writers: the
// loser of a race sees zero affected rows and ErrSeatConflict, with nothing
// written. Both statements run in one transaction; either the counter change
// and the booking row land together or neither does.
func (r *MovieRepo) ApplyBookingUpdate(ctx context.Context, movieID string, path model.ShowPath, expectedSeats, newSeats int, b model.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	const upd = `UPDATE shows
                 SET available_seats = ?
                 WHERE movie_id = ? AND show_date = ? AND position = ? AND available_seats = ?`
	res, err := tx.ExecContext(ctx, upd, newSeats, movieID, path.Date, path.Index, expectedSeats)
	if err != nil {
		return fmt.Errorf("update seats: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// Distinguish "precondition failed" from "show gone".
		const exists = `SELECT 1 FROM shows WHERE movie_id = ? AND show_date = ? AND position = ? LIMIT 1`
		var one int
		err := tx.QueryRowContext(ctx, exists, movieID, path.Date, path.Index).Scan(&one)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrShowNotFound
		}
		if err != nil {
			return fmt.Errorf("check show: %w", err)
		}
		return ErrSeatConflict
	}

	const ins = `INSERT INTO bookings (id, movie_id, show_date, position, name, email, phone_number, seats)
                 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	if _, err := tx.ExecContext(ctx, ins, b.ID, movieID, path.Date, path.Index, b.Name, b.Email, b.PhoneNumber, b.Seats); err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	committed = true
	return nil
}
