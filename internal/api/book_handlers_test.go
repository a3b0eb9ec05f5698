package api

import (
	"fmt"
	"net/http"
	"testing"

	"encoding/json/v2"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yoofibh/webtech-dlc/internal/domain"
)

// createBook adds a book via the API as admin and returns it.
func (ts *testServer) createBook(t *testing.T, token string, body map[string]any) *domain.Book {
	t.Helper()

	resp := ts.api.Post("/api/v1/books", "Authorization: Bearer "+token, body)
	require.Equal(t, http.StatusCreated, resp.Code, "create book failed: %s", resp.Body.String())

	var out BookMessageResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	return out.Book
}

func TestCreateBookRequiresAdmin(t *testing.T) {
	ts := setupTestServer(t)
	body := map[string]any{"title": "Dune", "author": "Frank Herbert"}

	// No token at all.
	resp := ts.api.Post("/api/v1/books", body)
	assert.Equal(t, http.StatusUnauthorized, resp.Code)

	// Garbage token behaves like no token.
	resp = ts.api.Post("/api/v1/books", "Authorization: Bearer garbage", body)
	assert.Equal(t, http.StatusUnauthorized, resp.Code)

	// Student tokens are authenticated but not authorized.
	student := ts.registerUser(t, "student@example.com", "")
	resp = ts.api.Post("/api/v1/books", "Authorization: Bearer "+student, body)
	assert.Equal(t, http.StatusForbidden, resp.Code)

	// Admin tokens succeed.
	admin := ts.registerUser(t, "admin@example.com", "admin")
	resp = ts.api.Post("/api/v1/books", "Authorization: Bearer "+admin, body)
	assert.Equal(t, http.StatusCreated, resp.Code)
}

func TestCreateBook(t *testing.T) {
	ts := setupTestServer(t)
	admin := ts.registerUser(t, "admin@example.com", "admin")

	book := ts.createBook(t, admin, map[string]any{
		"title":       "Dune",
		"author":      "Frank Herbert",
		"isbn":        "9780441172719",
		"category":    "Science Fiction",
		"description": "Desert planet epic",
	})

	assert.NotZero(t, book.ID)
	assert.Equal(t, "Dune", book.Title)
	assert.Equal(t, domain.BookStatusAvailable, book.Status)
}

func TestCreateBookInvalidStatus(t *testing.T) {
	ts := setupTestServer(t)
	admin := ts.registerUser(t, "admin@example.com", "admin")

	resp := ts.api.Post("/api/v1/books", "Authorization: Bearer "+admin, map[string]any{
		"title":  "Dune",
		"author": "Frank Herbert",
		"status": "lost",
	})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestListBooksPublic(t *testing.T) {
	ts := setupTestServer(t)
	admin := ts.registerUser(t, "admin@example.com", "admin")
	ts.createBook(t, admin, map[string]any{"title": "Dune", "author": "Frank Herbert", "category": "Science Fiction"})
	ts.createBook(t, admin, map[string]any{"title": "Emma", "author": "Jane Austen", "category": "Classics", "status": "borrowed"})

	// No token needed for reads.
	resp := ts.api.Get("/api/v1/books")
	require.Equal(t, http.StatusOK, resp.Code)

	var body BookListResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Count)
	require.Len(t, body.Books, 2)
	// Newest first.
	assert.Equal(t, "Emma", body.Books[0].Title)
}

func TestListBooksFilters(t *testing.T) {
	ts := setupTestServer(t)
	admin := ts.registerUser(t, "admin@example.com", "admin")
	ts.createBook(t, admin, map[string]any{"title": "Dune", "author": "Frank Herbert", "category": "Science Fiction"})
	ts.createBook(t, admin, map[string]any{"title": "Emma", "author": "Jane Austen", "category": "Classics", "status": "borrowed"})

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"search matches title", "search=dune", 1},
		{"search matches author", "search=AUSTEN", 1},
		{"search no match", "search=tolkien", 0},
		{"category", "category=classics", 1},
		{"status", "status=borrowed", 1},
		{"combined", "search=emma&status=borrowed", 1},
		{"combined excluding", "search=emma&status=available", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := ts.api.Get("/api/v1/books?" + tt.query)
			require.Equal(t, http.StatusOK, resp.Code)

			var body BookListResponse
			require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
			assert.Equal(t, tt.want, body.Count)
		})
	}
}

func TestGetBook(t *testing.T) {
	ts := setupTestServer(t)
	admin := ts.registerUser(t, "admin@example.com", "admin")
	book := ts.createBook(t, admin, map[string]any{"title": "Dune", "author": "Frank Herbert"})

	resp := ts.api.Get(fmt.Sprintf("/api/v1/books/%d", book.ID))
	require.Equal(t, http.StatusOK, resp.Code)

	var got domain.Book
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
	assert.Equal(t, book.ID, got.ID)
	assert.Equal(t, "Dune", got.Title)
}

func TestGetBookNotFound(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Get("/api/v1/books/999")
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestUpdateBook(t *testing.T) {
	ts := setupTestServer(t)
	admin := ts.registerUser(t, "admin@example.com", "admin")
	book := ts.createBook(t, admin, map[string]any{
		"title":    "Dune",
		"author":   "Frank Herbert",
		"category": "Science Fiction",
	})

	resp := ts.api.Put(fmt.Sprintf("/api/v1/books/%d", book.ID),
		"Authorization: Bearer "+admin,
		map[string]any{"status": "borrowed"},
	)
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var out BookMessageResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	assert.Equal(t, domain.BookStatusBorrowed, out.Book.Status)
	// Fields absent from the request keep their values.
	assert.Equal(t, "Dune", out.Book.Title)
	assert.Equal(t, "Science Fiction", out.Book.Category)
}

func TestUpdateBookClearsField(t *testing.T) {
	ts := setupTestServer(t)
	admin := ts.registerUser(t, "admin@example.com", "admin")
	book := ts.createBook(t, admin, map[string]any{
		"title":  "Dune",
		"author": "Frank Herbert",
		"isbn":   "9780441172719",
	})

	// An explicit empty value clears the field; omission would keep it.
	resp := ts.api.Put(fmt.Sprintf("/api/v1/books/%d", book.ID),
		"Authorization: Bearer "+admin,
		map[string]any{"isbn": ""},
	)
	require.Equal(t, http.StatusOK, resp.Code)

	var out BookMessageResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	assert.Empty(t, out.Book.ISBN)
	assert.Equal(t, "9780441172719", book.ISBN)
}

func TestUpdateBookRequiresAdmin(t *testing.T) {
	ts := setupTestServer(t)
	admin := ts.registerUser(t, "admin@example.com", "admin")
	student := ts.registerUser(t, "student@example.com", "")
	book := ts.createBook(t, admin, map[string]any{"title": "Dune", "author": "Frank Herbert"})

	resp := ts.api.Put(fmt.Sprintf("/api/v1/books/%d", book.ID),
		map[string]any{"status": "borrowed"})
	assert.Equal(t, http.StatusUnauthorized, resp.Code)

	resp = ts.api.Put(fmt.Sprintf("/api/v1/books/%d", book.ID),
		"Authorization: Bearer "+student,
		map[string]any{"status": "borrowed"})
	assert.Equal(t, http.StatusForbidden, resp.Code)
}

func TestUpdateBookNotFound(t *testing.T) {
	ts := setupTestServer(t)
	admin := ts.registerUser(t, "admin@example.com", "admin")

	resp := ts.api.Put("/api/v1/books/999",
		"Authorization: Bearer "+admin,
		map[string]any{"title": "Ghost"},
	)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestDeleteBook(t *testing.T) {
	ts := setupTestServer(t)
	admin := ts.registerUser(t, "admin@example.com", "admin")
	book := ts.createBook(t, admin, map[string]any{"title": "Dune", "author": "Frank Herbert"})

	resp := ts.api.Delete(fmt.Sprintf("/api/v1/books/%d", book.ID),
		"Authorization: Bearer "+admin)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "book deleted")

	resp = ts.api.Get(fmt.Sprintf("/api/v1/books/%d", book.ID))
	assert.Equal(t, http.StatusNotFound, resp.Code)

	resp = ts.api.Delete(fmt.Sprintf("/api/v1/books/%d", book.ID),
		"Authorization: Bearer "+admin)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestDeleteBookRequiresAdmin(t *testing.T) {
	ts := setupTestServer(t)
	admin := ts.registerUser(t, "admin@example.com", "admin")
	student := ts.registerUser(t, "student@example.com", "")
	book := ts.createBook(t, admin, map[string]any{"title": "Dune", "author": "Frank Herbert"})

	resp := ts.api.Delete(fmt.Sprintf("/api/v1/books/%d", book.ID))
	assert.Equal(t, http.StatusUnauthorized, resp.Code)

	resp = ts.api.Delete(fmt.Sprintf("/api/v1/books/%d", book.ID),
		"Authorization: Bearer "+student)
	assert.Equal(t, http.StatusForbidden, resp.Code)
}
