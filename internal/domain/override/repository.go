package override

import (
	"context"

	"date_dimension/internal/domain/calendar"
)

// Repository defines the operations for persisting holiday overrides.
type Repository interface {
	Create(ctx context.Context, o *Override) error
	Delete(ctx context.Context, date calendar.Date) error
	ListAll(ctx context.Context) ([]*Override, error) // ordered by date
}
