package datetable

import (
	"context"

	"date_dimension/internal/domain/calendar"
)

// Repository persists built rows. Upsert is keyed on DateInt, so loading the
// same rows twice leaves the store unchanged. Stored rows outside the span of
// the loaded rows are removed in the same write, so the store always mirrors
// the most recent build.
type Repository interface {
	Upsert(ctx context.Context, rows []Row) (int, error)
	GetByDateInt(ctx context.Context, dateInt int) (*Row, error)
	ListRange(ctx context.Context, from, to calendar.Date) ([]Row, error)
	LatestDate(ctx context.Context) (calendar.Date, bool, error) // false when empty
	Count(ctx context.Context) (int, error)
}
