package database

import (
	"context"
	"database/sql"
	"fmt"

	"date_dimension/internal/infra/config"
)

const dateDimColumnsDDL = `
    date_int                INTEGER PRIMARY KEY,
    date_id                 INTEGER NOT NULL,
    date                    DATE NOT NULL UNIQUE,
    year                    INTEGER NOT NULL,
    quarter_int             INTEGER NOT NULL,
    quarter                 TEXT NOT NULL,
    month_int               INTEGER NOT NULL,
    month                   TEXT NOT NULL,
    month_end               DATE NOT NULL,
    day_of_month            INTEGER NOT NULL,
    week_ending             DATE NOT NULL,
    day_of_week_int         INTEGER NOT NULL,
    day_of_week             TEXT NOT NULL,
    year_month              INTEGER NOT NULL,
    holiday                 TEXT,
    is_weekday              BOOLEAN NOT NULL,
    is_holiday              BOOLEAN NOT NULL,
    is_workday              BOOLEAN NOT NULL,
    num_weekdays            INTEGER NOT NULL,
    num_holidays            INTEGER NOT NULL,
    num_workdays            INTEGER NOT NULL,
    week_num                INTEGER NOT NULL,
    week_num_of_year        INTEGER,
    weeks_remaining_in_year INTEGER,
    business_day_of_month   INTEGER NOT NULL,
    business_days_in_month  INTEGER NOT NULL`

var schemas = map[string][]string{
	config.DriverPostgres: {
		`CREATE TABLE IF NOT EXISTS date_dim (` + dateDimColumnsDDL + `)`,
		`CREATE TABLE IF NOT EXISTS holiday_overrides (
            id           BIGSERIAL PRIMARY KEY,
            holiday_date DATE NOT NULL UNIQUE,
            name         TEXT NOT NULL,
            created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
	},
	config.DriverSQLite: {
		`CREATE TABLE IF NOT EXISTS date_dim (` + dateDimColumnsDDL + `)`,
		`CREATE TABLE IF NOT EXISTS holiday_overrides (
            id           INTEGER PRIMARY KEY AUTOINCREMENT,
            holiday_date DATE NOT NULL UNIQUE,
            name         TEXT NOT NULL,
            created_at   TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
        )`,
	},
}

// EnsureSchema creates the date dimension and override tables if missing.
func EnsureSchema(ctx context.Context, db *sql.DB, driver string) error {
	stmts, ok := schemas[driver]
	if !ok {
		return fmt.Errorf("no schema for database driver %q", driver)
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("error creating schema: %w", err)
		}
	}
	return nil
}
