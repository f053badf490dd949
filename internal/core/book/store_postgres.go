// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package book

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arokeji/library-api/internal/platform/collection"
	"github.com/arokeji/library-api/internal/platform/database/schema"
	"github.com/arokeji/library-api/internal/platform/dberr"
	"github.com/arokeji/library-api/pkg/pointer"
	"github.com/arokeji/library-api/pkg/slice"
	"github.com/arokeji/library-api/pkg/uuid"
)

// PostgresStore keeps books in the 'books' table. Every read joins the
// referenced author.
type PostgresStore struct {
	db *pgxpool.Pool
}

// NewPostgresStore creates a store over pool.
func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

// selectFrom builds the joined projection over source, which is either the
// books table or a data-modifying CTE with the same row shape.
func selectFrom(source string) string {
	columns := slice.Map(schema.Books.Columns(), func(column string) string { return "b." + column })
	columns = append(columns, "a."+schema.Authors.ID, "a."+schema.Authors.Name, "a."+schema.Authors.Country)

	return fmt.Sprintf(`SELECT %s FROM %s b LEFT JOIN %s a ON a.%s = b.%s`,
		strings.Join(columns, ", "), source, schema.Authors.Table, schema.Authors.ID, schema.Books.AuthorID)
}

func scanBook(row pgx.Row, book *Book) error {
	var (
		publisherName, publisherCategory    *string
		authorID, authorName, authorCountry *string
	)

	err := row.Scan(
		&book.ID, &book.Title, &book.AuthorID, &book.Pages, &book.Rating,
		&publisherName, &publisherCategory, &book.CreatedAt, &book.UpdatedAt,
		&authorID, &authorName, &authorCountry,
	)
	if err != nil {
		return err
	}

	if publisherName != nil {
		book.Publisher = &Publisher{Name: *publisherName, Category: pointer.Val(publisherCategory)}
	}
	if authorID != nil {
		book.Author = &AuthorSummary{ID: *authorID, Name: pointer.Val(authorName), Country: pointer.Val(authorCountry)}
	}
	return nil
}

func (store *PostgresStore) FindMany(ctx context.Context, offset, limit int) ([]Book, int, error) {
	var total int
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, schema.Books.Table)
	if err := store.db.QueryRow(ctx, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_books")
	}

	query := selectFrom(schema.Books.Table) + fmt.Sprintf(` ORDER BY b.%s LIMIT $1 OFFSET $2`, schema.Books.ID)

	books, err := store.collect(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_books")
	}
	return books, total, nil
}

func (store *PostgresStore) FindByID(ctx context.Context, id string) (*Book, error) {
	query := selectFrom(schema.Books.Table) + fmt.Sprintf(` WHERE b.%s = $1`, schema.Books.ID)

	book := &Book{}
	if err := scanBook(store.db.QueryRow(ctx, query, id), book); err != nil {
		return nil, dberr.Wrap(err, "get_book")
	}
	return book, nil
}

func (store *PostgresStore) FindByNamePrefix(ctx context.Context, prefix string) ([]Book, error) {
	query := selectFrom(schema.Books.Table) + fmt.Sprintf(` WHERE b.%s ILIKE $1 ESCAPE '\' ORDER BY b.%s`,
		schema.Books.Title, schema.Books.Title)

	books, err := store.collect(ctx, query, collection.EscapeLike(prefix))
	if err != nil {
		return nil, dberr.Wrap(err, "search_books")
	}
	return books, nil
}

func (store *PostgresStore) AuthorExists(ctx context.Context, id string) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`, schema.Authors.Table, schema.Authors.ID)

	var exists bool
	if err := store.db.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "check_author")
	}
	return exists, nil
}

func (store *PostgresStore) BookIDsByAuthor(ctx context.Context, authorID string) ([]string, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, schema.Books.ID, schema.Books.Table, schema.Books.AuthorID)

	rows, err := store.db.Query(ctx, query, authorID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_author_books")
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, dberr.Wrap(err, "list_author_books")
	}
	return ids, nil
}

func (store *PostgresStore) Insert(ctx context.Context, book *Book) (*Book, error) {
	name, category := publisherColumns(book.Publisher)
	query := fmt.Sprintf(`
		WITH inserted AS (
			INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s)
			VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
			RETURNING *
		)
	`,
		schema.Books.Table, schema.Books.ID, schema.Books.Title, schema.Books.AuthorID,
		schema.Books.Pages, schema.Books.Rating, schema.Books.PublisherName, schema.Books.PublisherCategory,
		schema.Books.CreatedAt, schema.Books.UpdatedAt,
	) + selectFrom("inserted")

	created := &Book{}
	row := store.db.QueryRow(ctx, query, uuid.New(), book.Title, book.AuthorID, book.Pages, book.Rating, name, category)
	if err := scanBook(row, created); err != nil {
		return nil, dberr.Wrap(err, "create_book")
	}
	return created, nil
}

func (store *PostgresStore) UpdateByID(ctx context.Context, id string, book *Book) (*Book, error) {
	name, category := publisherColumns(book.Publisher)
	query := fmt.Sprintf(`
		WITH updated AS (
			UPDATE %s
			SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = NOW()
			WHERE %s = $1
			RETURNING *
		)
	`,
		schema.Books.Table,
		schema.Books.Title, schema.Books.AuthorID, schema.Books.Pages, schema.Books.Rating,
		schema.Books.PublisherName, schema.Books.PublisherCategory, schema.Books.UpdatedAt,
		schema.Books.ID,
	) + selectFrom("updated")

	updated := &Book{}
	row := store.db.QueryRow(ctx, query, id, book.Title, book.AuthorID, book.Pages, book.Rating, name, category)
	if err := scanBook(row, updated); err != nil {
		return nil, dberr.Wrap(err, "update_book")
	}
	return updated, nil
}

func (store *PostgresStore) DeleteByID(ctx context.Context, id string) (*Book, error) {
	query := fmt.Sprintf(`WITH deleted AS (DELETE FROM %s WHERE %s = $1 RETURNING *) `,
		schema.Books.Table, schema.Books.ID) + selectFrom("deleted")

	deleted := &Book{}
	if err := scanBook(store.db.QueryRow(ctx, query, id), deleted); err != nil {
		return nil, dberr.Wrap(err, "delete_book")
	}
	return deleted, nil
}

func (store *PostgresStore) collect(ctx context.Context, query string, args ...any) ([]Book, error) {
	rows, err := store.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	books := []Book{}
	for rows.Next() {
		var book Book
		if err := scanBook(rows, &book); err != nil {
			return nil, err
		}
		books = append(books, book)
	}
	return books, rows.Err()
}

func publisherColumns(publisher *Publisher) (name, category *string) {
	if publisher == nil {
		return nil, nil
	}
	return &publisher.Name, &publisher.Category
}
