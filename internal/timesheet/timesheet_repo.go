package timesheet

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=timesheet_repo.go -destination=mock/timesheet_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	CreateEvent(ctx context.Context, e *ClockEvent) error
	ListEventsByDay(ctx context.Context, employeeID string, date time.Time) ([]ClockEvent, error)
	FindLatestEvent(ctx context.Context, employeeID string, date time.Time) (*ClockEvent, error)
	FindSummary(ctx context.Context, employeeID string, date time.Time) (*DailySummary, error)
	UpsertSummary(ctx context.Context, s *DailySummary) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) CreateEvent(ctx context.Context, e *ClockEvent) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) ListEventsByDay(ctx context.Context, employeeID string, date time.Time) ([]ClockEvent, error) {
	var rows []ClockEvent
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("event_date = ?", date.Format("2006-01-02")).
		Order("event_time ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindLatestEvent(ctx context.Context, employeeID string, date time.Time) (*ClockEvent, error) {
	var e ClockEvent
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("event_date = ?", date.Format("2006-01-02")).
		Order("event_time DESC").
		First(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) FindSummary(ctx context.Context, employeeID string, date time.Time) (*DailySummary, error) {
	var s DailySummary
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("date = ?", date.Format("2006-01-02")).
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) UpsertSummary(ctx context.Context, s *DailySummary) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "employee_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"total_seconds", "time_span", "day_state", "updated_at",
			}),
		}).
		Create(s).Error
}
