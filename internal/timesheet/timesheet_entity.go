package timesheet

import (
	"time"

	"github.com/google/uuid"
)

// ClockEvent is an immutable TIME_IN/BREAK/TIME_OUT action. Events are
// append-only; corrections happen by clocking again, never by editing.
type ClockEvent struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID `gorm:"column:employee_id;type:uuid;not null;index:idx_clock_events_employee_date"`
	EventDate  time.Time `gorm:"column:event_date;type:date;not null;index:idx_clock_events_employee_date"`
	EventTime  time.Time `gorm:"column:event_time;type:timestamptz;not null"`
	Kind       string    `gorm:"column:kind;type:varchar(10);not null"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (ClockEvent) TableName() string {
	return "clock_events"
}

// DailySummary carries the derived totals plus DayState, the explicit
// state-machine value each accepted event advances. State lives here, not
// in a "latest event" query, so concurrent submissions for the same day
// contend on one row.
type DailySummary struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID   uuid.UUID `gorm:"column:employee_id;type:uuid;not null;uniqueIndex:idx_daily_summaries_employee_date"`
	Date         time.Time `gorm:"column:date;type:date;not null;uniqueIndex:idx_daily_summaries_employee_date"`
	TotalSeconds float64   `gorm:"column:total_seconds;not null;default:0"`
	TimeSpan     string    `gorm:"column:time_span;type:varchar(40);not null;default:''"`
	DayState     string    `gorm:"column:day_state;type:varchar(15);not null;default:'NOT_STARTED'"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (DailySummary) TableName() string {
	return "daily_summaries"
}
