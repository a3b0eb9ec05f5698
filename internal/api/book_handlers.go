package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/yoofibh/webtech-dlc/internal/domain"
	"github.com/yoofibh/webtech-dlc/internal/service"
)

func (s *Server) registerBookRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listBooks",
		Method:      http.MethodGet,
		Path:        "/api/v1/books",
		Summary:     "List books",
		Description: "Returns the catalogue, optionally filtered by search text, category, and status. Filters combine with AND.",
		Tags:        []string{"Books"},
	}, s.handleListBooks)

	huma.Register(s.api, huma.Operation{
		OperationID: "getBook",
		Method:      http.MethodGet,
		Path:        "/api/v1/books/{id}",
		Summary:     "Get book",
		Tags:        []string{"Books"},
	}, s.handleGetBook)

	huma.Register(s.api, huma.Operation{
		OperationID:   "createBook",
		Method:        http.MethodPost,
		Path:          "/api/v1/books",
		Summary:       "Add book",
		Description:   "Adds a book to the catalogue. Requires the admin role.",
		Tags:          []string{"Books"},
		Security:      []map[string][]string{{"bearer": {}}},
		DefaultStatus: http.StatusCreated,
	}, s.handleCreateBook)

	huma.Register(s.api, huma.Operation{
		OperationID: "updateBook",
		Method:      http.MethodPut,
		Path:        "/api/v1/books/{id}",
		Summary:     "Update book",
		Description: "Updates the provided fields of a book. Requires the admin role.",
		Tags:        []string{"Books"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleUpdateBook)

	huma.Register(s.api, huma.Operation{
		OperationID: "deleteBook",
		Method:      http.MethodDelete,
		Path:        "/api/v1/books/{id}",
		Summary:     "Delete book",
		Description: "Removes a book from the catalogue. Requires the admin role.",
		Tags:        []string{"Books"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleDeleteBook)
}

// === DTOs ===

// ListBooksInput carries the optional catalogue filters.
type ListBooksInput struct {
	Search   string `query:"search" doc:"Case-insensitive substring match on title or author"`
	Category string `query:"category" doc:"Case-insensitive exact category match"`
	Status   string `query:"status" doc:"Case-insensitive exact status match"`
}

// BookListResponse contains the filtered catalogue.
type BookListResponse struct {
	Count int            `json:"count" doc:"Number of books returned"`
	Books []*domain.Book `json:"books" doc:"Matching books, newest first"`
}

// BookListOutput wraps the list response for Huma.
type BookListOutput struct {
	Body BookListResponse
}

// BookIDInput identifies a book by path parameter.
type BookIDInput struct {
	ID int64 `path:"id" doc:"Book ID"`
}

// BookOutput wraps a single book for Huma.
type BookOutput struct {
	Body *domain.Book
}

// CreateBookRequest is the request body for adding a book.
type CreateBookRequest struct {
	Title       string `json:"title" doc:"Book title"`
	Author      string `json:"author" doc:"Author name"`
	ISBN        string `json:"isbn,omitempty" doc:"ISBN"`
	Category    string `json:"category,omitempty" doc:"Category"`
	Description string `json:"description,omitempty" doc:"Description"`
	Status      string `json:"status,omitempty" doc:"available or borrowed; defaults to available"`
}

// CreateBookInput wraps the create request for Huma.
type CreateBookInput struct {
	Body CreateBookRequest
}

// BookUpdateRequest contains fields that can be updated on a book.
// Only non-nil fields are applied (true PATCH semantics): a nil pointer
// means "field not provided" while a pointer to "" means "field set to
// empty".
type BookUpdateRequest struct {
	Title       *string `json:"title,omitempty"`
	Author      *string `json:"author,omitempty"`
	ISBN        *string `json:"isbn,omitempty"`
	Category    *string `json:"category,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
}

// UpdateBookInput wraps the update request for Huma.
type UpdateBookInput struct {
	ID   int64 `path:"id" doc:"Book ID"`
	Body BookUpdateRequest
}

// BookMessageResponse contains a book alongside a result message.
type BookMessageResponse struct {
	Message string       `json:"message" doc:"Human-readable result"`
	Book    *domain.Book `json:"book" doc:"The affected book"`
}

// BookMessageOutput wraps the message response for Huma.
type BookMessageOutput struct {
	Body BookMessageResponse
}

// MessageOutput wraps a bare result message for Huma.
type MessageOutput struct {
	Body struct {
		Message string `json:"message" doc:"Human-readable result"`
	}
}

// === Handlers ===

func (s *Server) handleListBooks(ctx context.Context, input *ListBooksInput) (*BookListOutput, error) {
	books, err := s.services.Book.ListBooks(ctx, domain.BookFilter{
		Search:   input.Search,
		Category: input.Category,
		Status:   input.Status,
	})
	if err != nil {
		return nil, err
	}

	return &BookListOutput{
		Body: BookListResponse{
			Count: len(books),
			Books: books,
		},
	}, nil
}

func (s *Server) handleGetBook(ctx context.Context, input *BookIDInput) (*BookOutput, error) {
	book, err := s.services.Book.GetBook(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	return &BookOutput{Body: book}, nil
}

func (s *Server) handleCreateBook(ctx context.Context, input *CreateBookInput) (*BookMessageOutput, error) {
	if _, err := RequireAdmin(ctx); err != nil {
		return nil, err
	}

	book, err := s.services.Book.CreateBook(ctx, service.CreateBookRequest{
		Title:       input.Body.Title,
		Author:      input.Body.Author,
		ISBN:        input.Body.ISBN,
		Category:    input.Body.Category,
		Description: input.Body.Description,
		Status:      input.Body.Status,
	})
	if err != nil {
		return nil, err
	}

	return &BookMessageOutput{
		Body: BookMessageResponse{
			Message: "book added",
			Book:    book,
		},
	}, nil
}

func (s *Server) handleUpdateBook(ctx context.Context, input *UpdateBookInput) (*BookMessageOutput, error) {
	if _, err := RequireAdmin(ctx); err != nil {
		return nil, err
	}

	book, err := s.services.Book.UpdateBook(ctx, input.ID, domain.BookPatch{
		Title:       input.Body.Title,
		Author:      input.Body.Author,
		ISBN:        input.Body.ISBN,
		Category:    input.Body.Category,
		Description: input.Body.Description,
		Status:      input.Body.Status,
	})
	if err != nil {
		return nil, err
	}

	return &BookMessageOutput{
		Body: BookMessageResponse{
			Message: "book updated",
			Book:    book,
		},
	}, nil
}

func (s *Server) handleDeleteBook(ctx context.Context, input *BookIDInput) (*MessageOutput, error) {
	if _, err := RequireAdmin(ctx); err != nil {
		return nil, err
	}

	if err := s.services.Book.DeleteBook(ctx, input.ID); err != nil {
		return nil, err
	}

	out := &MessageOutput{}
	out.Body.Message = "book deleted"
	return out, nil
}
