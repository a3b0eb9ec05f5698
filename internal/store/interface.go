// Package store defines the persistence interface for the catalogue server.
package store

import (
	"context"

	"github.com/yoofibh/webtech-dlc/internal/domain"
)

// UserStore handles user account persistence.
type UserStore interface {
	// CreateUser inserts a new user and assigns its ID.
	// Returns ErrAlreadyExists if the email is already registered.
	CreateUser(ctx context.Context, user *domain.User) error

	// GetUser retrieves a user by ID.
	// Returns ErrNotFound if no such user exists.
	GetUser(ctx context.Context, id int64) (*domain.User, error)

	// GetUserByEmail retrieves a user by email.
	// Returns ErrNotFound if no such user exists.
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// BookStore handles catalogue persistence.
type BookStore interface {
	// CreateBook inserts a new book and assigns its ID.
	CreateBook(ctx context.Context, book *domain.Book) error

	// GetBook retrieves a book by ID.
	// Returns ErrNotFound if no such book exists.
	GetBook(ctx context.Context, id int64) (*domain.Book, error)

	// ListBooks returns books matching the filter, newest first.
	// A zero filter returns the whole catalogue.
	ListBooks(ctx context.Context, filter domain.BookFilter) ([]*domain.Book, error)

	// UpdateBook performs a full row update on an existing book.
	// Returns ErrNotFound if the book does not exist.
	UpdateBook(ctx context.Context, book *domain.Book) error

	// DeleteBook removes a book from the catalogue.
	// Returns ErrNotFound if the book does not exist.
	DeleteBook(ctx context.Context, id int64) error
}

// Store is the full persistence interface.
type Store interface {
	UserStore
	BookStore

	// Ping verifies the backing database is reachable.
	Ping(ctx context.Context) error

	Close() error
}
