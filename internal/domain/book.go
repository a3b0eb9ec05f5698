package domain

import (
	"strings"
	"time"
)

// BookStatus represents a book's availability in the catalogue.
type BookStatus string

const (
	// BookStatusAvailable indicates the book can be borrowed.
	BookStatusAvailable BookStatus = "available"
	// BookStatusBorrowed indicates the book is currently out.
	BookStatusBorrowed BookStatus = "borrowed"
)

// ParseBookStatus normalizes a status string to a BookStatus.
// Matching is case-insensitive; unknown values return false.
func ParseBookStatus(s string) (BookStatus, bool) {
	switch BookStatus(strings.ToLower(strings.TrimSpace(s))) {
	case BookStatusAvailable:
		return BookStatusAvailable, true
	case BookStatusBorrowed:
		return BookStatusBorrowed, true
	}
	return "", false
}

// Book represents a catalogue record.
// Title and author are required; the rest is optional metadata.
type Book struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Author      string     `json:"author"`
	ISBN        string     `json:"isbn,omitempty"`
	Category    string     `json:"category,omitempty"`
	Description string     `json:"description,omitempty"`
	Status      BookStatus `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
}

// BookPatch carries a partial update for a book.
// Nil fields keep the stored value; non-nil fields are applied as sent.
// The pointer distinction matters: an explicit empty title must be
// stored, while an absent one keeps the previous value.
type BookPatch struct {
	Title       *string
	Author      *string
	ISBN        *string
	Category    *string
	Description *string
	Status      *string
}

// BookFilter holds the optional catalogue listing filters.
// All provided filters combine with logical AND.
type BookFilter struct {
	// Search matches case-insensitively against title or author
	// as a substring.
	Search string
	// Category is an exact, case-insensitive match.
	Category string
	// Status is an exact, case-insensitive match.
	Status string
}

// IsZero reports whether no filters are set.
func (f BookFilter) IsZero() bool {
	return strings.TrimSpace(f.Search) == "" && f.Category == "" && f.Status == ""
}
