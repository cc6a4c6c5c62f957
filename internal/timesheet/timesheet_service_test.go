package timesheet

import (
	"context"
	"database/sql"
	"testing"
	"time"

	timesheeterrors "go-timekeep/internal/timesheet/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRepo struct {
	withTxFn          func(tx *sql.Tx) Repository
	createEventFn     func(ctx context.Context, e *ClockEvent) error
	listEventsByDayFn func(ctx context.Context, employeeID string, date time.Time) ([]ClockEvent, error)
	findLatestEventFn func(ctx context.Context, employeeID string, date time.Time) (*ClockEvent, error)
	findSummaryFn     func(ctx context.Context, employeeID string, date time.Time) (*DailySummary, error)
	upsertSummaryFn   func(ctx context.Context, s *DailySummary) error
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository { return f.withTxFn(tx) }
func (f *fakeRepo) CreateEvent(ctx context.Context, e *ClockEvent) error {
	return f.createEventFn(ctx, e)
}
func (f *fakeRepo) ListEventsByDay(ctx context.Context, employeeID string, date time.Time) ([]ClockEvent, error) {
	return f.listEventsByDayFn(ctx, employeeID, date)
}
func (f *fakeRepo) FindLatestEvent(ctx context.Context, employeeID string, date time.Time) (*ClockEvent, error) {
	return f.findLatestEventFn(ctx, employeeID, date)
}
func (f *fakeRepo) FindSummary(ctx context.Context, employeeID string, date time.Time) (*DailySummary, error) {
	return f.findSummaryFn(ctx, employeeID, date)
}
func (f *fakeRepo) UpsertSummary(ctx context.Context, s *DailySummary) error {
	return f.upsertSummaryFn(ctx, s)
}

func newFakeRepo() *fakeRepo {
	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.createEventFn = func(ctx context.Context, e *ClockEvent) error { return nil }
	repo.listEventsByDayFn = func(ctx context.Context, employeeID string, date time.Time) ([]ClockEvent, error) {
		return nil, nil
	}
	repo.findLatestEventFn = func(ctx context.Context, employeeID string, date time.Time) (*ClockEvent, error) {
		return nil, gorm.ErrRecordNotFound
	}
	repo.findSummaryFn = func(ctx context.Context, employeeID string, date time.Time) (*DailySummary, error) {
		return nil, gorm.ErrRecordNotFound
	}
	repo.upsertSummaryFn = func(ctx context.Context, s *DailySummary) error { return nil }
	return repo
}

func TestService_Submit_TimeInOnFreshDay(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	employeeID := uuid.New().String()
	ctx := context.Background()

	var savedEvent ClockEvent
	var savedSummary DailySummary
	repo := newFakeRepo()
	repo.createEventFn = func(ctx context.Context, e *ClockEvent) error { savedEvent = *e; return nil }
	repo.listEventsByDayFn = func(ctx context.Context, employeeID string, date time.Time) ([]ClockEvent, error) {
		return []ClockEvent{savedEvent}, nil
	}
	repo.upsertSummaryFn = func(ctx context.Context, s *DailySummary) error { savedSummary = *s; return nil }

	svc := NewService(db, repo, time.UTC)

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.Submit(ctx, employeeID, SubmitClockRequest{Action: KindTimeIn})
	assert.NoError(t, err)
	assert.Equal(t, KindTimeIn, resp.Kind)
	assert.Equal(t, StateWorking, savedSummary.DayState)
	assert.Equal(t, float64(0), savedSummary.TotalSeconds)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Submit_RecomputesSummaryOnTimeOut(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	employeeID := uuid.New().String()
	ctx := context.Background()

	day := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	existing := []ClockEvent{
		{Kind: KindTimeIn, EventTime: day.Add(9 * time.Hour)},
		{Kind: KindBreak, EventTime: day.Add(12 * time.Hour)},
		{Kind: KindTimeIn, EventTime: day.Add(13 * time.Hour)},
	}

	var savedSummary DailySummary
	repo := newFakeRepo()
	repo.findSummaryFn = func(ctx context.Context, employeeID string, date time.Time) (*DailySummary, error) {
		return &DailySummary{ID: uuid.New(), DayState: StateWorking}, nil
	}
	repo.createEventFn = func(ctx context.Context, e *ClockEvent) error {
		e.EventTime = day.Add(17*time.Hour + 30*time.Minute)
		existing = append(existing, *e)
		return nil
	}
	repo.listEventsByDayFn = func(ctx context.Context, employeeID string, date time.Time) ([]ClockEvent, error) {
		return existing, nil
	}
	repo.upsertSummaryFn = func(ctx context.Context, s *DailySummary) error { savedSummary = *s; return nil }

	svc := NewService(db, repo, time.UTC)

	mock.ExpectBegin()
	mock.ExpectCommit()
	_, err := svc.Submit(ctx, employeeID, SubmitClockRequest{Action: KindTimeOut})
	assert.NoError(t, err)
	assert.Equal(t, StateEnded, savedSummary.DayState)
	assert.Equal(t, float64(27000), savedSummary.TotalSeconds)
	assert.Equal(t, "09:00 AM to 05:30 PM", savedSummary.TimeSpan)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Submit_SequenceViolations(t *testing.T) {
	tests := []struct {
		name    string
		state   string
		action  string
		wantErr error
	}{
		{"double time in", StateWorking, KindTimeIn, timesheeterrors.ErrAlreadyTimedIn},
		{"time in after time out", StateEnded, KindTimeIn, timesheeterrors.ErrTimeInAfterTimeOut},
		{"break without time in", StateNotStarted, KindBreak, timesheeterrors.ErrBreakBeforeTimeIn},
		{"time out without time in", StateNotStarted, KindTimeOut, timesheeterrors.ErrTimeOutBeforeTimeIn},
		{"time out while on break", StateOnBreak, KindTimeOut, timesheeterrors.ErrTimeOutBeforeTimeIn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, _ := sqlmock.New()
			defer db.Close()

			repo := newFakeRepo()
			if tt.state != StateNotStarted {
				state := tt.state
				repo.findSummaryFn = func(ctx context.Context, employeeID string, date time.Time) (*DailySummary, error) {
					return &DailySummary{ID: uuid.New(), DayState: state}, nil
				}
			}
			repo.createEventFn = func(ctx context.Context, e *ClockEvent) error {
				t.Fatal("rejected action must not persist an event")
				return nil
			}

			svc := NewService(db, repo, time.UTC)

			mock.ExpectBegin()
			mock.ExpectRollback()
			_, err := svc.Submit(context.Background(), uuid.New().String(), SubmitClockRequest{Action: tt.action})
			assert.ErrorIs(t, err, tt.wantErr)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestService_Submit_InvalidEmployeeID(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	svc := NewService(db, newFakeRepo(), time.UTC)
	_, err := svc.Submit(context.Background(), "not-a-uuid", SubmitClockRequest{Action: KindTimeIn})
	assert.ErrorIs(t, err, timesheeterrors.ErrInvalidEmployeeID)
}

func TestService_GetSummary(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	employeeID := uuid.New().String()

	repo := newFakeRepo()
	repo.findLatestEventFn = func(ctx context.Context, employeeID string, date time.Time) (*ClockEvent, error) {
		return &ClockEvent{Kind: KindBreak}, nil
	}
	repo.findSummaryFn = func(ctx context.Context, employeeID string, date time.Time) (*DailySummary, error) {
		return &DailySummary{
			ID:           uuid.New(),
			TotalSeconds: 10800,
			TimeSpan:     "09:00 AM to 12:00 PM",
			DayState:     StateOnBreak,
		}, nil
	}

	svc := NewService(db, repo, time.UTC)
	resp, err := svc.GetSummary(context.Background(), employeeID)
	assert.NoError(t, err)
	assert.Equal(t, KindBreak, resp.LastAction)
	assert.NotNil(t, resp.DailySummary)
	assert.Equal(t, float64(10800), resp.DailySummary.TotalSeconds)
}

func TestService_GetSummary_EmptyDay(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	svc := NewService(db, newFakeRepo(), time.UTC)
	resp, err := svc.GetSummary(context.Background(), uuid.New().String())
	assert.NoError(t, err)
	assert.Empty(t, resp.LastAction)
	assert.Nil(t, resp.DailySummary)
}
