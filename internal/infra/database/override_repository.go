package database

import (
	"context"
	"database/sql"
	"fmt"

	"date_dimension/internal/domain/calendar"
	"date_dimension/internal/domain/override"
)

type OverrideRepository struct {
	db *sql.DB
}

func NewOverrideRepository(db *sql.DB) *OverrideRepository {
	return &OverrideRepository{db: db}
}

func (r *OverrideRepository) Create(ctx context.Context, o *override.Override) error {
	query := `INSERT INTO holiday_overrides (holiday_date, name)
               VALUES ($1, $2)
               RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query, o.Date, o.Name).Scan(&o.ID, &o.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateHoliday
		}
		return fmt.Errorf("error creating holiday override: %w", err)
	}
	return nil
}

func (r *OverrideRepository) Delete(ctx context.Context, date calendar.Date) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM holiday_overrides WHERE holiday_date = $1`, date)
	if err != nil {
		return fmt.Errorf("error deleting holiday override: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking deleted holiday overrides: %w", err)
	}
	if n == 0 {
		return ErrHolidayNotFound
	}
	return nil
}

func (r *OverrideRepository) ListAll(ctx context.Context) ([]*override.Override, error) {
	query := `SELECT id, holiday_date, name, created_at
               FROM holiday_overrides ORDER BY holiday_date`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing holiday overrides: %w", err)
	}
	defer rows.Close()

	overrides := make([]*override.Override, 0)
	for rows.Next() {
		o := &override.Override{}
		if err := rows.Scan(&o.ID, &o.Date, &o.Name, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning holiday override: %w", err)
		}
		overrides = append(overrides, o)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating holiday overrides: %w", err)
	}
	return overrides, nil
}
