package app

import (
	"context"
	"errors"
	"fmt"

	"date_dimension/internal/domain/calendar"
	"date_dimension/internal/domain/datetable"
	"date_dimension/internal/domain/override"
	idb "date_dimension/internal/infra/database"
	"date_dimension/internal/infra/export"

	"github.com/sirupsen/logrus"
)

// RefreshResult describes one build-and-load run.
type RefreshResult struct {
	Start  calendar.Date
	End    calendar.Date
	Rows   int
	Stored int           // rows in the sink after the load
	Latest calendar.Date // latest stored date
}

// DateTableService builds the date dimension and loads it into the
// configured sink, applying stored holiday overrides.
type DateTableService struct {
	tableRepo    datetable.Repository
	overrideRepo override.Repository
	exportPath   string // empty disables CSV export
	logger       *logrus.Entry
}

func NewDateTableService(
	tr datetable.Repository,
	or override.Repository,
	exportPath string,
	logger *logrus.Entry,
) *DateTableService {
	return &DateTableService{
		tableRepo:    tr,
		overrideRepo: or,
		exportPath:   exportPath,
		logger:       logger,
	}
}

func (s *DateTableService) overrides(ctx context.Context) (calendar.Overrides, error) {
	stored, err := s.overrideRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load holiday overrides: %w", err)
	}
	return override.ToMap(stored), nil
}

// Refresh builds rows for [start, end] and upserts them, dropping stored rows
// outside the range. Running it again with the same range and overrides
// leaves the sink unchanged.
func (s *DateTableService) Refresh(ctx context.Context, start, end calendar.Date) (*RefreshResult, error) {
	log := s.logger.WithFields(logrus.Fields{"start": start.String(), "end": end.String()})
	log.Info("Refreshing date table")

	ov, err := s.overrides(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := datetable.BuildWithOverrides(start, end, ov)
	if err != nil {
		return nil, fmt.Errorf("failed to build date table: %w", err)
	}

	n, err := s.tableRepo.Upsert(ctx, rows)
	if err != nil {
		log.WithError(err).Error("Failed to load date table")
		return nil, fmt.Errorf("failed to load date table: %w", err)
	}

	stored, err := s.tableRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count stored rows: %w", err)
	}
	latest, _, err := s.tableRepo.LatestDate(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read latest stored date: %w", err)
	}

	if s.exportPath != "" {
		if err := s.export(ctx, start, end); err != nil {
			log.WithError(err).Error("Failed to export date table")
			return nil, err
		}
		log.WithField("path", s.exportPath).Debug("Date table exported")
	}

	log.WithFields(logrus.Fields{
		"rows":      n,
		"overrides": len(ov),
		"stored":    stored,
		"latest":    latest.String(),
	}).Info("Date table refreshed")
	return &RefreshResult{Start: start, End: end, Rows: n, Stored: stored, Latest: latest}, nil
}

// export writes the stored rows for [start, end] to the CSV export path.
func (s *DateTableService) export(ctx context.Context, start, end calendar.Date) error {
	rows, err := s.tableRepo.ListRange(ctx, start, end)
	if err != nil {
		return fmt.Errorf("failed to read rows for export: %w", err)
	}
	return export.WriteCSVFile(s.exportPath, rows)
}

// EnsureHorizon refreshes from start through Dec 31 of horizonYears after
// today's year.
func (s *DateTableService) EnsureHorizon(ctx context.Context, start, today calendar.Date, horizonYears int) (*RefreshResult, error) {
	end := calendar.New(today.Year+horizonYears, 12, 31)
	return s.Refresh(ctx, start, end)
}

// Describe returns the stored date dimension row for d. Dates outside the
// stored table are computed from the 1st of their month so the business-day
// counters agree with what a refresh would store.
func (s *DateTableService) Describe(ctx context.Context, d calendar.Date) (*datetable.Row, error) {
	row, err := s.tableRepo.GetByDateInt(ctx, d.Int())
	if err == nil {
		return row, nil
	}
	if !errors.Is(err, idb.ErrDateRowNotFound) {
		return nil, fmt.Errorf("failed to read date row %d: %w", d.Int(), err)
	}

	ov, err := s.overrides(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := datetable.BuildWithOverrides(d.FirstOfMonth(), d, ov)
	if err != nil {
		return nil, err
	}
	built := rows[len(rows)-1]
	return &built, nil
}

// BusinessDaysInMonth counts business days in d's month with stored
// overrides applied.
func (s *DateTableService) BusinessDaysInMonth(ctx context.Context, d calendar.Date) (int, error) {
	ov, err := s.overrides(ctx)
	if err != nil {
		return 0, err
	}
	return calendar.BusinessDaysInMonth(d, ov), nil
}
