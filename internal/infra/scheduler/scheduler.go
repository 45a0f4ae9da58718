package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"date_dimension/internal/app"
	"date_dimension/internal/domain/calendar"
	"date_dimension/internal/domain/telegram"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// ErrRefreshInProgress is returned by RunOnce while another refresh runs.
var ErrRefreshInProgress = errors.New("date table refresh already in progress")

// Refresher is the part of app.DateTableService the scheduler drives.
type Refresher interface {
	EnsureHorizon(ctx context.Context, start, today calendar.Date, horizonYears int) (*app.RefreshResult, error)
}

// RefreshScheduler keeps the date table materialized through the configured
// horizon by re-running the refresh on a cron schedule.
type RefreshScheduler struct {
	cronEngine   *cron.Cron
	refresher    Refresher
	notifier     telegram.Client // may be nil
	adminChatID  int64
	logger       *logrus.Entry
	cronSpec     string
	tableStart   calendar.Date
	horizonYears int
	jobTimeout   time.Duration
	now          func() time.Time
	running      sync.Mutex
}

func NewRefreshScheduler(
	refresher Refresher,
	notifier telegram.Client,
	adminChatID int64,
	logger *logrus.Entry,
	cronSpec string, // e.g., "0 3 * * *" (03:00 daily)
	tableStart calendar.Date,
	horizonYears int,
) *RefreshScheduler {
	return &RefreshScheduler{
		cronEngine: cron.New(
			cron.WithLocation(time.Local), // Use server's local time for cron
			cron.WithChain(cron.SkipIfStillRunning(cron.PrintfLogger(logger))),
		),
		refresher:    refresher,
		notifier:     notifier,
		adminChatID:  adminChatID,
		logger:       logger,
		cronSpec:     cronSpec,
		tableStart:   tableStart,
		horizonYears: horizonYears,
		jobTimeout:   10 * time.Minute,
		now:          time.Now,
	}
}

// Start registers the refresh job and starts the cron engine.
func (s *RefreshScheduler) Start() error {
	s.logger.Info("Starting refresh scheduler...")

	_, err := s.cronEngine.AddFunc(s.cronSpec, func() {
		s.logger.Info("Cron job triggered for date table refresh.")
		if err := s.RunOnce(context.Background()); err != nil {
			s.logger.WithError(err).Error("Scheduled date table refresh failed")
		}
	})
	if err != nil {
		return fmt.Errorf("could not add refresh cron job %q: %w", s.cronSpec, err)
	}

	s.cronEngine.Start()
	s.logger.WithField("cron_spec", s.cronSpec).Info("Refresh scheduler started.")
	return nil
}

// RunOnce performs a single refresh, bounded by the job timeout, and reports
// the outcome to the admin chat when a notifier is configured. Cron runs and
// manual runs never overlap: a call made while one is active returns
// ErrRefreshInProgress.
func (s *RefreshScheduler) RunOnce(ctx context.Context) error {
	if !s.running.TryLock() {
		return ErrRefreshInProgress
	}
	defer s.running.Unlock()

	ctx, cancel := context.WithTimeout(ctx, s.jobTimeout)
	defer cancel()

	today := calendar.FromTime(s.now())
	res, err := s.refresher.EnsureHorizon(ctx, s.tableStart, today, s.horizonYears)
	if err != nil {
		s.notify(fmt.Sprintf("Date table refresh failed: %v", err))
		return err
	}
	s.logger.WithFields(logrus.Fields{
		"start":  res.Start.String(),
		"end":    res.End.String(),
		"rows":   res.Rows,
		"stored": res.Stored,
		"latest": res.Latest.String(),
	}).Info("Date table refresh completed.")
	s.notify(fmt.Sprintf("Date table refreshed: %d rows, %s to %s. %d rows stored, latest %s.",
		res.Rows, res.Start, res.End, res.Stored, res.Latest))
	return nil
}

func (s *RefreshScheduler) notify(text string) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.SendText(s.adminChatID, text); err != nil {
		s.logger.WithError(err).Warn("Failed to notify admin about refresh")
	}
}

func (s *RefreshScheduler) Stop() {
	s.logger.Info("Stopping refresh scheduler...")
	ctx := s.cronEngine.Stop() // Stops the scheduler from adding new jobs, waits for running jobs.
	<-ctx.Done()
	s.logger.Info("Refresh scheduler gracefully stopped.")
}
