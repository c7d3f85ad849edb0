// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingConfirmedEvent is published after a booking has been durably
// recorded. It carries enough information for downstream consumers to log or
// notify without querying the primary database.
type BookingConfirmedEvent struct {
	BookingID   string `json:"booking_id"`
	MovieID     string `json:"movie_id"`
	MovieTitle  string `json:"movie_title"`
	ShowID      string `json:"show_id"`
	ShowDate    string `json:"show_date"`
	ShowTime    string `json:"show_time"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Seats       int    `json:"seats"`
	SeatsLeft   int    `json:"seats_left"`
	ConfirmedAt string `json:"confirmed_at"`
}
