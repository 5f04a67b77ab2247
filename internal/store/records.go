package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"

	"jobmarket-engine/internal/domain"
)

// ErrNotFound signals a requested collection has never been saved; the
// caller must run the ingestion pipeline first.
var ErrNotFound = errors.New("store: collection not found")

// DefaultCollection is where the pipeline persists the cleaned batch.
const DefaultCollection = "jobs"

// Collection names become table names, so they are locked down before any
// SQL is built from them.
var collectionName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

func validateName(name string) error {
	if !collectionName.MatchString(name) {
		return fmt.Errorf("store: invalid collection name %q", name)
	}
	return nil
}

// SaveRecords replaces the entire named collection with batch, atomically.
// A failed run never leaves a half-written table behind.
func SaveRecords(ctx context.Context, db *sql.DB, name string, batch []domain.CanonicalRecord) error {
	if err := validateName(name); err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, fmt.Sprintf(`DROP TABLE IF EXISTS %s;`, name)); err != nil {
		return fmt.Errorf("drop collection: %w", err)
	}
	if _, err := tx.ExecContext(ctx, fmt.Sprintf(`
CREATE TABLE %s (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  title TEXT NOT NULL,
  company TEXT NOT NULL,
  location TEXT NOT NULL,
  description TEXT NOT NULL,
  city TEXT NOT NULL,
  experience_min INTEGER NOT NULL DEFAULT 0,
  experience_max INTEGER NOT NULL DEFAULT 0,
  experience_years REAL NOT NULL DEFAULT 0,
  salary REAL,
  skills TEXT NOT NULL DEFAULT ''
);`, name)); err != nil {
		return fmt.Errorf("create collection: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf(`
INSERT INTO %s (title, company, location, description, city,
                experience_min, experience_max, experience_years, salary, skills)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`, name))
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range batch {
		var salary any
		if rec.Salary != nil {
			salary = *rec.Salary
		}
		if _, err := stmt.ExecContext(ctx,
			rec.Title, rec.Company, rec.Location, rec.Description, rec.City,
			rec.ExpMin, rec.ExpMax, rec.ExpYears, salary, rec.Skills,
		); err != nil {
			return fmt.Errorf("insert record: %w", err)
		}
	}

	return tx.Commit()
}

// LoadRecords reads the whole named collection back in insertion order.
// ErrNotFound when the collection was never saved.
func LoadRecords(ctx context.Context, db *sql.DB, name string) ([]domain.CanonicalRecord, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	var one int
	err := db.QueryRowContext(ctx, `
SELECT 1 FROM sqlite_master WHERE type = 'table' AND name = ? LIMIT 1;`, name).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("check collection: %w", err)
	}

	rows, err := db.QueryContext(ctx, fmt.Sprintf(`
SELECT title, company, location, description, city,
       experience_min, experience_max, experience_years, salary, skills
FROM %s
ORDER BY id;`, name))
	if err != nil {
		return nil, fmt.Errorf("load collection: %w", err)
	}
	defer rows.Close()

	var out []domain.CanonicalRecord
	for rows.Next() {
		var rec domain.CanonicalRecord
		var salary sql.NullFloat64
		if err := rows.Scan(
			&rec.Title, &rec.Company, &rec.Location, &rec.Description, &rec.City,
			&rec.ExpMin, &rec.ExpMax, &rec.ExpYears, &salary, &rec.Skills,
		); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		if salary.Valid {
			v := salary.Float64
			rec.Salary = &v
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
