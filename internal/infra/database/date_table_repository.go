package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"date_dimension/internal/domain/calendar"
	"date_dimension/internal/domain/datetable"
)

// DateTableRepository stores date dimension rows in the date_dim table. The
// SQL it issues runs unchanged on PostgreSQL and SQLite.
type DateTableRepository struct {
	db         *sql.DB
	upsertStmt string
	selectCols string
}

func NewDateTableRepository(db *sql.DB) *DateTableRepository {
	placeholders := make([]string, len(datetable.Columns))
	updates := make([]string, 0, len(datetable.Columns)-1)
	for i, col := range datetable.Columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		if col != "date_int" {
			updates = append(updates, fmt.Sprintf("%s = EXCLUDED.%s", col, col))
		}
	}
	cols := strings.Join(datetable.Columns, ", ")
	return &DateTableRepository{
		db: db,
		upsertStmt: fmt.Sprintf(`INSERT INTO date_dim (%s) VALUES (%s)
               ON CONFLICT (date_int) DO UPDATE SET %s`,
			cols, strings.Join(placeholders, ", "), strings.Join(updates, ", ")),
		selectCols: cols,
	}
}

// Upsert writes rows in a single transaction, replacing rows with the same
// date_int, and deletes stored rows dated before the first or after the last
// of rows. rows must be in date order. It returns the number of rows written.
func (r *DateTableRepository) Upsert(ctx context.Context, rows []datetable.Row) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("error beginning date table transaction: %w", err)
	}
	defer tx.Rollback() // no-op after commit

	stmt, err := tx.PrepareContext(ctx, r.upsertStmt)
	if err != nil {
		return 0, fmt.Errorf("error preparing date row upsert: %w", err)
	}
	defer stmt.Close()

	for i := range rows {
		if _, err := stmt.ExecContext(ctx, rows[i].Values()...); err != nil {
			return 0, fmt.Errorf("error upserting date row %d: %w", rows[i].DateInt, err)
		}
	}

	first, last := rows[0].DateInt, rows[len(rows)-1].DateInt
	if _, err := tx.ExecContext(ctx, `DELETE FROM date_dim WHERE date_int < $1 OR date_int > $2`, first, last); err != nil {
		return 0, fmt.Errorf("error pruning date rows outside %d..%d: %w", first, last, err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("error committing date table transaction: %w", err)
	}
	return len(rows), nil
}

func (r *DateTableRepository) GetByDateInt(ctx context.Context, dateInt int) (*datetable.Row, error) {
	query := `SELECT ` + r.selectCols + ` FROM date_dim WHERE date_int = $1`
	row := &datetable.Row{}
	err := r.db.QueryRowContext(ctx, query, dateInt).Scan(row.ScanTargets()...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrDateRowNotFound
		}
		return nil, fmt.Errorf("error getting date row %d: %w", dateInt, err)
	}
	return row, nil
}

// ListRange returns stored rows between from and to inclusive, ordered by date.
func (r *DateTableRepository) ListRange(ctx context.Context, from, to calendar.Date) ([]datetable.Row, error) {
	query := `SELECT ` + r.selectCols + ` FROM date_dim
               WHERE date_int BETWEEN $1 AND $2 ORDER BY date_int`
	rows, err := r.db.QueryContext(ctx, query, from.Int(), to.Int())
	if err != nil {
		return nil, fmt.Errorf("error listing date rows: %w", err)
	}
	defer rows.Close()

	result := make([]datetable.Row, 0)
	for rows.Next() {
		var row datetable.Row
		if err := rows.Scan(row.ScanTargets()...); err != nil {
			return nil, fmt.Errorf("error scanning date row: %w", err)
		}
		result = append(result, row)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating date rows: %w", err)
	}
	return result, nil
}

func (r *DateTableRepository) LatestDate(ctx context.Context) (calendar.Date, bool, error) {
	var latest sql.NullInt64
	if err := r.db.QueryRowContext(ctx, `SELECT MAX(date_int) FROM date_dim`).Scan(&latest); err != nil {
		return calendar.Date{}, false, fmt.Errorf("error getting latest date: %w", err)
	}
	if !latest.Valid {
		return calendar.Date{}, false, nil
	}
	d, err := calendar.FromInt(int(latest.Int64))
	if err != nil {
		return calendar.Date{}, false, fmt.Errorf("error decoding latest date: %w", err)
	}
	return d, true, nil
}

func (r *DateTableRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM date_dim`).Scan(&n); err != nil {
		return 0, fmt.Errorf("error counting date rows: %w", err)
	}
	return n, nil
}
