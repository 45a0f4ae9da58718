package scheduler

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"date_dimension/internal/app"
	"date_dimension/internal/domain/calendar"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRefresher struct {
	start, today calendar.Date
	horizon      int
	err          error
	deadline     time.Time
	hasDeadline  bool
	started      chan struct{} // closed when EnsureHorizon is entered, if set
	release      chan struct{} // EnsureHorizon waits on it, if set
}

func (f *fakeRefresher) EnsureHorizon(ctx context.Context, start, today calendar.Date, horizonYears int) (*app.RefreshResult, error) {
	f.start, f.today, f.horizon = start, today, horizonYears
	f.deadline, f.hasDeadline = ctx.Deadline()
	if f.started != nil {
		close(f.started)
	}
	if f.release != nil {
		<-f.release
	}
	if f.err != nil {
		return nil, f.err
	}
	end := calendar.New(today.Year+horizonYears, 12, 31)
	return &app.RefreshResult{Start: start, End: end, Rows: 10, Stored: 10, Latest: end}, nil
}

type fakeNotifier struct {
	chatID   int64
	messages []string
}

func (f *fakeNotifier) SendText(chatID int64, text string) error {
	f.chatID = chatID
	f.messages = append(f.messages, text)
	return nil
}

func testLogger() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l.WithField("component", "scheduler")
}

func TestRunOnce(t *testing.T) {
	refresher := &fakeRefresher{}
	notifier := &fakeNotifier{}
	s := NewRefreshScheduler(refresher, notifier, 7, testLogger(), "@daily", calendar.New(2000, 1, 1), 3)
	s.now = func() time.Time { return time.Date(2024, 6, 15, 23, 0, 0, 0, time.UTC) }

	require.NoError(t, s.RunOnce(context.Background()))
	assert.Equal(t, calendar.New(2000, 1, 1), refresher.start)
	assert.Equal(t, calendar.New(2024, 6, 15), refresher.today)
	assert.Equal(t, 3, refresher.horizon)
	assert.Equal(t, int64(7), notifier.chatID)
	assert.Equal(t, []string{"Date table refreshed: 10 rows, 2000-01-01 to 2027-12-31. 10 rows stored, latest 2027-12-31."}, notifier.messages)
}

func TestRunOnceAppliesJobTimeout(t *testing.T) {
	refresher := &fakeRefresher{}
	s := NewRefreshScheduler(refresher, nil, 0, testLogger(), "@daily", calendar.New(2000, 1, 1), 0)
	s.jobTimeout = time.Minute

	before := time.Now()
	require.NoError(t, s.RunOnce(context.Background()))
	require.True(t, refresher.hasDeadline)
	assert.WithinDuration(t, before.Add(time.Minute), refresher.deadline, 5*time.Second)
}

func TestRunOnceRejectsOverlappingRuns(t *testing.T) {
	refresher := &fakeRefresher{started: make(chan struct{}), release: make(chan struct{})}
	s := NewRefreshScheduler(refresher, nil, 0, testLogger(), "@daily", calendar.New(2000, 1, 1), 0)

	done := make(chan error, 1)
	go func() { done <- s.RunOnce(context.Background()) }()
	<-refresher.started

	assert.ErrorIs(t, s.RunOnce(context.Background()), ErrRefreshInProgress)

	close(refresher.release)
	require.NoError(t, <-done)

	// lock released after the first run
	refresher.started, refresher.release = nil, nil
	assert.NoError(t, s.RunOnce(context.Background()))
}

func TestRunOnceFailureNotifies(t *testing.T) {
	refresher := &fakeRefresher{err: errors.New("db down")}
	notifier := &fakeNotifier{}
	s := NewRefreshScheduler(refresher, notifier, 7, testLogger(), "@daily", calendar.New(2000, 1, 1), 3)

	err := s.RunOnce(context.Background())
	assert.EqualError(t, err, "db down")
	require.Len(t, notifier.messages, 1)
	assert.Contains(t, notifier.messages[0], "db down")
}

func TestRunOnceWithoutNotifier(t *testing.T) {
	s := NewRefreshScheduler(&fakeRefresher{}, nil, 0, testLogger(), "@daily", calendar.New(2000, 1, 1), 0)
	assert.NoError(t, s.RunOnce(context.Background()))
}

func TestStartRejectsBadSpec(t *testing.T) {
	s := NewRefreshScheduler(&fakeRefresher{}, nil, 0, testLogger(), "not a cron spec", calendar.New(2000, 1, 1), 0)
	assert.Error(t, s.Start())
}

func TestStartStop(t *testing.T) {
	s := NewRefreshScheduler(&fakeRefresher{}, nil, 0, testLogger(), "0 3 * * *", calendar.New(2000, 1, 1), 0)
	require.NoError(t, s.Start())
	s.Stop()
}
