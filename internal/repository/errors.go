// Package repository contains data access logic for the movie catalog. This
// file defines sentinel errors shared across the layer. Handlers and the
// booking service use these values with errors.Is to distinguish failure
// scenarios without inspecting driver errors.
package repository

import "errors"

// ErrMovieNotFound indicates that no movie row matches the requested id.
var ErrMovieNotFound = errors.New("movie not found")

// ErrShowNotFound indicates that the show addressed by a path no longer
// exists, e.g. it was removed between the caller's read and the write.
var ErrShowNotFound = errors.New("show not found")

// ErrSeatConflict indicates that the conditional booking update found a
// different available_seats value than the caller read. No mutation occurred;
// the caller is expected to re-read and retry.
var ErrSeatConflict = errors.New("available seats changed concurrently")
