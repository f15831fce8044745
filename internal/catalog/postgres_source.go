package catalog

import (
	"context"
	"fmt"

	"bookgraph/internal/book"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const selectBooksSQL = `
	SELECT id, title, author_name, author_country, pages, year, genre
	FROM books
	ORDER BY position`

const insertBookSQL = `
	INSERT INTO books (position, id, title, author_name, author_country, pages, year, genre)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

// PostgresSource reads the books table once, ordered by its position column.
type PostgresSource struct {
	db *pgxpool.Pool
}

func NewPostgresSource(db *pgxpool.Pool) *PostgresSource {
	return &PostgresSource{db: db}
}

func (s *PostgresSource) Load(ctx context.Context) ([]book.Book, error) {
	rows, err := s.db.Query(ctx, selectBooksSQL)
	if err != nil {
		return nil, fmt.Errorf("query books: %w", err)
	}
	return scanBooks(rows)
}

func scanBooks(rows pgx.Rows) ([]book.Book, error) {
	defer rows.Close()

	var books []book.Book
	for rows.Next() {
		var b book.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Author.Name, &b.Author.Country, &b.Pages, &b.Year, &b.Genre); err != nil {
			return nil, fmt.Errorf("scan book: %w", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return books, nil
}

// Store replaces the table contents with books inside one transaction,
// preserving their order in the position column. Used by the seed command.
func (s *PostgresSource) Store(ctx context.Context, books []book.Book) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM books`); err != nil {
		return fmt.Errorf("clear books: %w", err)
	}

	batch := &pgx.Batch{}
	for i, b := range books {
		batch.Queue(insertBookSQL, i+1, b.ID, b.Title, b.Author.Name, b.Author.Country, b.Pages, b.Year, b.Genre)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("insert books: %w", err)
	}

	return tx.Commit(ctx)
}
