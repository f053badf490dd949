// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arokeji/library-api/internal/platform/collection"
	"github.com/arokeji/library-api/internal/platform/database/schema"
	"github.com/arokeji/library-api/internal/platform/dberr"
	"github.com/arokeji/library-api/pkg/uuid"
)

// PostgresStore keeps authors in the 'authors' table.
type PostgresStore struct {
	db *pgxpool.Pool
}

// NewPostgresStore creates a store over pool.
func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

var publicColumns = strings.Join(schema.Authors.Columns(), ", ")

func scanAuthor(row pgx.Row, author *Author) error {
	return row.Scan(&author.ID, &author.User, &author.Name, &author.Country, &author.CreatedAt, &author.UpdatedAt)
}

func (store *PostgresStore) FindMany(ctx context.Context, offset, limit int) ([]Author, int, error) {
	var total int
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, schema.Authors.Table)
	if err := store.db.QueryRow(ctx, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_authors")
	}

	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s LIMIT $1 OFFSET $2`,
		publicColumns, schema.Authors.Table, schema.Authors.ID)

	authors, err := store.collect(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_authors")
	}
	return authors, total, nil
}

func (store *PostgresStore) FindByID(ctx context.Context, id string) (*Author, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		publicColumns, schema.Authors.Table, schema.Authors.ID)

	author := &Author{}
	if err := scanAuthor(store.db.QueryRow(ctx, query, id), author); err != nil {
		return nil, dberr.Wrap(err, "get_author")
	}
	return author, nil
}

func (store *PostgresStore) FindByNamePrefix(ctx context.Context, prefix string) ([]Author, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s ILIKE $1 ESCAPE '\' ORDER BY %s`,
		publicColumns, schema.Authors.Table, schema.Authors.Name, schema.Authors.Name)

	authors, err := store.collect(ctx, query, collection.EscapeLike(prefix))
	if err != nil {
		return nil, dberr.Wrap(err, "search_authors")
	}
	return authors, nil
}

func (store *PostgresStore) FindByUser(ctx context.Context, user string) (*Author, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s WHERE %s = $1`,
		publicColumns, schema.Authors.PasswordHash, schema.Authors.Table, schema.Authors.User)

	author := &Author{}
	err := store.db.QueryRow(ctx, query, user).Scan(
		&author.ID, &author.User, &author.Name, &author.Country,
		&author.CreatedAt, &author.UpdatedAt, &author.PasswordHash,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_author_by_user")
	}
	return author, nil
}

func (store *PostgresStore) Insert(ctx context.Context, author *Author) (*Author, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING %s
	`,
		schema.Authors.Table, schema.Authors.ID, schema.Authors.User, schema.Authors.PasswordHash,
		schema.Authors.Name, schema.Authors.Country, schema.Authors.CreatedAt, schema.Authors.UpdatedAt,
		publicColumns,
	)

	created := &Author{}
	row := store.db.QueryRow(ctx, query, uuid.New(), author.User, author.PasswordHash, author.Name, author.Country)
	if err := scanAuthor(row, created); err != nil {
		return nil, dberr.Wrap(err, "create_author")
	}
	return created, nil
}

// UpdateByID keeps the stored hash when the author carries none.
func (store *PostgresStore) UpdateByID(ctx context.Context, id string, author *Author) (*Author, error) {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = COALESCE(NULLIF($4, ''), %s), %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		schema.Authors.Table,
		schema.Authors.Name, schema.Authors.Country, schema.Authors.PasswordHash, schema.Authors.PasswordHash,
		schema.Authors.UpdatedAt, schema.Authors.ID,
		publicColumns,
	)

	updated := &Author{}
	row := store.db.QueryRow(ctx, query, id, author.Name, author.Country, author.PasswordHash)
	if err := scanAuthor(row, updated); err != nil {
		return nil, dberr.Wrap(err, "update_author")
	}
	return updated, nil
}

// DeleteByID relies on the books foreign key (ON DELETE SET NULL) to
// detach the author's books.
func (store *PostgresStore) DeleteByID(ctx context.Context, id string) (*Author, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 RETURNING %s`,
		schema.Authors.Table, schema.Authors.ID, publicColumns)

	deleted := &Author{}
	if err := scanAuthor(store.db.QueryRow(ctx, query, id), deleted); err != nil {
		return nil, dberr.Wrap(err, "delete_author")
	}
	return deleted, nil
}

func (store *PostgresStore) collect(ctx context.Context, query string, args ...any) ([]Author, error) {
	rows, err := store.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	authors := []Author{}
	for rows.Next() {
		var author Author
		if err := scanAuthor(rows, &author); err != nil {
			return nil, err
		}
		authors = append(authors, author)
	}
	return authors, rows.Err()
}
