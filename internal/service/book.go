package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/yoofibh/webtech-dlc/internal/domain"
	domainerrors "github.com/yoofibh/webtech-dlc/internal/errors"
	"github.com/yoofibh/webtech-dlc/internal/store"
)

// BookService orchestrates catalogue operations.
type BookService struct {
	store  store.Store
	logger *slog.Logger
}

// NewBookService creates a new book service.
func NewBookService(store store.Store, logger *slog.Logger) *BookService {
	return &BookService{
		store:  store,
		logger: logger,
	}
}

// CreateBookRequest contains the data for a new catalogue entry.
type CreateBookRequest struct {
	Title       string `json:"title" validate:"required"`
	Author      string `json:"author" validate:"required"`
	ISBN        string `json:"isbn,omitempty"`
	Category    string `json:"category,omitempty"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status,omitempty"`
}

// ListBooks returns books matching the filter, newest first.
func (s *BookService) ListBooks(ctx context.Context, filter domain.BookFilter) ([]*domain.Book, error) {
	books, err := s.store.ListBooks(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return books, nil
}

// GetBook retrieves a single book by ID.
func (s *BookService) GetBook(ctx context.Context, id int64) (*domain.Book, error) {
	book, err := s.store.GetBook(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domainerrors.NotFound("book not found")
		}
		return nil, fmt.Errorf("get book: %w", err)
	}
	return book, nil
}

// CreateBook adds a new book to the catalogue.
// Status defaults to available when omitted.
func (s *BookService) CreateBook(ctx context.Context, req CreateBookRequest) (*domain.Book, error) {
	if err := validate.Struct(req); err != nil {
		return nil, formatValidationError(err)
	}

	status := domain.BookStatusAvailable
	if req.Status != "" {
		parsed, ok := domain.ParseBookStatus(req.Status)
		if !ok {
			return nil, domainerrors.Validationf("status must be %q or %q",
				domain.BookStatusAvailable, domain.BookStatusBorrowed)
		}
		status = parsed
	}

	book := &domain.Book{
		Title:       req.Title,
		Author:      req.Author,
		ISBN:        req.ISBN,
		Category:    req.Category,
		Description: req.Description,
		Status:      status,
		CreatedAt:   time.Now(),
	}

	if err := s.store.CreateBook(ctx, book); err != nil {
		return nil, fmt.Errorf("create book: %w", err)
	}

	s.logger.Info("book created",
		slog.Int64("book_id", book.ID),
		slog.String("title", book.Title))

	return book, nil
}

// UpdateBook applies a partial update to an existing book.
// Nil patch fields keep the stored value.
func (s *BookService) UpdateBook(ctx context.Context, id int64, patch domain.BookPatch) (*domain.Book, error) {
	book, err := s.GetBook(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		book.Title = *patch.Title
	}
	if patch.Author != nil {
		book.Author = *patch.Author
	}
	if patch.ISBN != nil {
		book.ISBN = *patch.ISBN
	}
	if patch.Category != nil {
		book.Category = *patch.Category
	}
	if patch.Description != nil {
		book.Description = *patch.Description
	}
	if patch.Status != nil {
		parsed, ok := domain.ParseBookStatus(*patch.Status)
		if !ok {
			return nil, domainerrors.Validationf("status must be %q or %q",
				domain.BookStatusAvailable, domain.BookStatusBorrowed)
		}
		book.Status = parsed
	}

	if err := s.store.UpdateBook(ctx, book); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domainerrors.NotFound("book not found")
		}
		return nil, fmt.Errorf("update book: %w", err)
	}

	s.logger.Info("book updated", slog.Int64("book_id", book.ID))

	return book, nil
}

// DeleteBook removes a book from the catalogue.
func (s *BookService) DeleteBook(ctx context.Context, id int64) error {
	if err := s.store.DeleteBook(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domainerrors.NotFound("book not found")
		}
		return fmt.Errorf("delete book: %w", err)
	}

	s.logger.Info("book deleted", slog.Int64("book_id", id))

	return nil
}
