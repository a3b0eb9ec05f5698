package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"github.com/yoofibh/webtech-dlc/internal/domain"
	"github.com/yoofibh/webtech-dlc/internal/store"
)

// bookColumns is the ordered list of columns selected in book queries.
// Must match the scan order in scanBook.
const bookColumns = `id, title, author, isbn, category, description, status, created_at`

// scanBook scans a sql.Row (or sql.Rows via its Scan method) into a domain.Book.
func scanBook(scanner interface{ Scan(dest ...any) error }) (*domain.Book, error) {
	var b domain.Book
	var (
		isbn        sql.NullString
		category    sql.NullString
		description sql.NullString
		status      string
		createdAt   string
	)

	err := scanner.Scan(
		&b.ID,
		&b.Title,
		&b.Author,
		&isbn,
		&category,
		&description,
		&status,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	b.ISBN = isbn.String
	b.Category = category.String
	b.Description = description.String
	b.Status = domain.BookStatus(status)
	b.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return nil, err
	}

	return &b, nil
}

// CreateBook inserts a new book and assigns its ID.
func (s *Store) CreateBook(ctx context.Context, book *domain.Book) error {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO books (title, author, isbn, category, description, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		book.Title,
		book.Author,
		nullString(book.ISBN),
		nullString(book.Category),
		nullString(book.Description),
		string(book.Status),
		formatTime(book.CreatedAt),
	)
	if err != nil {
		return err
	}

	book.ID, err = result.LastInsertId()
	return err
}

// GetBook retrieves a book by ID.
// Returns store.ErrNotFound if the book does not exist.
func (s *Store) GetBook(ctx context.Context, id int64) (*domain.Book, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+bookColumns+` FROM books WHERE id = ?`, id)

	b, err := scanBook(row)
	if err == sql.ErrNoRows {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// ListBooks returns books matching the filter, newest first.
// Search matches title or author as a case-insensitive substring; category
// and status are case-insensitive exact matches. Conditions are AND-joined.
func (s *Store) ListBooks(ctx context.Context, filter domain.BookFilter) ([]*domain.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books`

	var conds []string
	var args []any

	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		conds = append(conds, `(LOWER(title) LIKE ? OR LOWER(author) LIKE ?)`)
		args = append(args, pattern, pattern)
	}
	if filter.Category != "" {
		conds = append(conds, `LOWER(category) = ?`)
		args = append(args, strings.ToLower(filter.Category))
	}
	if filter.Status != "" {
		conds = append(conds, `LOWER(status) = ?`)
		args = append(args, strings.ToLower(filter.Status))
	}

	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, ` AND `)
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	books := []*domain.Book{}
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return books, nil
}

// UpdateBook performs a full row update on an existing book.
// Returns store.ErrNotFound if the book does not exist.
func (s *Store) UpdateBook(ctx context.Context, book *domain.Book) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE books SET
			title = ?,
			author = ?,
			isbn = ?,
			category = ?,
			description = ?,
			status = ?
		WHERE id = ?`,
		book.Title,
		book.Author,
		nullString(book.ISBN),
		nullString(book.Category),
		nullString(book.Description),
		string(book.Status),
		book.ID,
	)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

// ResetBookStatuses marks every book as available and returns the number
// of rows changed. Used by the maintenance tooling between semesters.
func (s *Store) ResetBookStatuses(ctx context.Context) (int64, error) {
	result, err := s.db.ExecContext(ctx,
		`UPDATE books SET status = ? WHERE status != ?`,
		string(domain.BookStatusAvailable), string(domain.BookStatusAvailable))
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// DeleteBook removes a book from the catalogue.
// Returns store.ErrNotFound if the book does not exist.
func (s *Store) DeleteBook(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM books WHERE id = ?`, id)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
