// Package model defines the catalog entities: movies, their shows grouped by
// calendar date, and the bookings recorded against each show. These types are
// the shapes the repository assembles from the database and the handlers
// serialize to clients.
package model

// DateFormat is the layout of a show's date bucket. The same string is used
// as the JSON key in Movie.Shows and as the DATE value in the shows table.
const DateFormat = "2006-01-02"

// Booking is one confirmed reservation against a show. Bookings are
// append-only: once written they are never updated or deleted.
type Booking struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Seats       int    `json:"seats"`
}

// Show is a single scheduled screening of a movie. AvailableSeats is the
// remaining seat pool; it never goes below zero and is only ever mutated by
// the repository's conditional booking update. Bookings lists the show's
// reservations in insertion order.
type Show struct {
	ID             string    `json:"id"`
	Time           string    `json:"time"`
	AvailableSeats int       `json:"seats"`
	Bookings       []Booking `json:"bookings"`
}

// Movie groups its shows by date bucket. Keys of Shows use DateFormat and
// shows within a bucket keep their stored position order, so a show's slice
// index equals its persisted position.
type Movie struct {
	ID    string            `json:"_id"`
	Title string            `json:"title"`
	Shows map[string][]Show `json:"shows"`
}

// ShowPath addresses a show inside a movie's nested structure: the date
// bucket it lives in and its index within that bucket. The booking update
// targets a show by path rather than by re-scanning for its id.
type ShowPath struct {
	Date  string
	Index int
}
