// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package company

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/arokeji/library-api/internal/platform/collection"
	"github.com/arokeji/library-api/internal/platform/database/schema"
	"github.com/arokeji/library-api/internal/platform/dberr"
)

// SQLiteStore keeps companies in the 'techs' table.
type SQLiteStore struct {
	db *sql.DB
	// SQLite takes '?' placeholders
	sb squirrel.StatementBuilderType
}

// NewSQLiteStore creates a store over db.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}
}

var returning = "RETURNING " + strings.Join(schema.Techs.Columns(), ", ")

type scanner interface {
	Scan(dest ...any) error
}

func scanCompany(row scanner, company *Company) error {
	var headquarters, ceo sql.NullString
	var employees, founded sql.NullInt64

	if err := row.Scan(&company.ID, &company.Name, &employees, &founded, &headquarters, &ceo); err != nil {
		return err
	}

	company.Headquarters = headquarters.String
	company.CEO = ceo.String
	if employees.Valid {
		value := int(employees.Int64)
		company.EmployeesNumber = &value
	}
	if founded.Valid {
		value := int(founded.Int64)
		company.FoundedYear = &value
	}
	return nil
}

func (store *SQLiteStore) FindMany(ctx context.Context, offset, limit int) ([]Company, int, error) {
	countSQL, countArgs, err := store.sb.Select("count(*)").From(schema.Techs.Table).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count companies query: %w", err)
	}

	var total int
	if err := store.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_companies")
	}

	query, args, err := store.sb.Select(schema.Techs.Columns()...).
		From(schema.Techs.Table).
		OrderBy(schema.Techs.ID).
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list companies query: %w", err)
	}

	companies, err := store.collect(ctx, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_companies")
	}
	return companies, total, nil
}

func (store *SQLiteStore) FindByID(ctx context.Context, id int) (*Company, error) {
	query, args, err := store.sb.Select(schema.Techs.Columns()...).
		From(schema.Techs.Table).
		Where(squirrel.Eq{schema.Techs.ID: id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get company query: %w", err)
	}

	company := &Company{}
	if err := scanCompany(store.db.QueryRowContext(ctx, query, args...), company); err != nil {
		return nil, dberr.Wrap(err, "get_company")
	}
	return company, nil
}

// FindByNamePrefix matches case-insensitively. SQLite's LOWER folds ASCII only.
func (store *SQLiteStore) FindByNamePrefix(ctx context.Context, prefix string) ([]Company, error) {
	query, args, err := store.sb.Select(schema.Techs.Columns()...).
		From(schema.Techs.Table).
		Where(fmt.Sprintf(`LOWER(%s) LIKE LOWER(?) ESCAPE '\'`, schema.Techs.Name), collection.EscapeLike(prefix)).
		OrderBy(schema.Techs.Name).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build search companies query: %w", err)
	}

	companies, err := store.collect(ctx, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "search_companies")
	}
	return companies, nil
}

func (store *SQLiteStore) Insert(ctx context.Context, company *Company) (*Company, error) {
	query, args, err := store.sb.Insert(schema.Techs.Table).
		Columns(schema.Techs.Name, schema.Techs.EmployeesNumber, schema.Techs.FoundedYear,
			schema.Techs.Headquarters, schema.Techs.CEO).
		Values(company.Name, company.EmployeesNumber, company.FoundedYear, company.Headquarters, company.CEO).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build create company query: %w", err)
	}

	created := &Company{}
	if err := scanCompany(store.db.QueryRowContext(ctx, query, args...), created); err != nil {
		return nil, dberr.Wrap(err, "create_company")
	}
	return created, nil
}

func (store *SQLiteStore) UpdateByID(ctx context.Context, id int, company *Company) (*Company, error) {
	query, args, err := store.sb.Update(schema.Techs.Table).
		SetMap(map[string]any{
			schema.Techs.Name:            company.Name,
			schema.Techs.EmployeesNumber: company.EmployeesNumber,
			schema.Techs.FoundedYear:     company.FoundedYear,
			schema.Techs.Headquarters:    company.Headquarters,
			schema.Techs.CEO:             company.CEO,
		}).
		Where(squirrel.Eq{schema.Techs.ID: id}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update company query: %w", err)
	}

	updated := &Company{}
	if err := scanCompany(store.db.QueryRowContext(ctx, query, args...), updated); err != nil {
		return nil, dberr.Wrap(err, "update_company")
	}
	return updated, nil
}

func (store *SQLiteStore) DeleteByID(ctx context.Context, id int) (*Company, error) {
	query, args, err := store.sb.Delete(schema.Techs.Table).
		Where(squirrel.Eq{schema.Techs.ID: id}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build delete company query: %w", err)
	}

	deleted := &Company{}
	if err := scanCompany(store.db.QueryRowContext(ctx, query, args...), deleted); err != nil {
		return nil, dberr.Wrap(err, "delete_company")
	}
	return deleted, nil
}

func (store *SQLiteStore) collect(ctx context.Context, query string, args ...any) ([]Company, error) {
	rows, err := store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	companies := []Company{}
	for rows.Next() {
		var company Company
		if err := scanCompany(rows, &company); err != nil {
			return nil, err
		}
		companies = append(companies, company)
	}
	return companies, rows.Err()
}
