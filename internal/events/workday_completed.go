package events

import "time"

const WorkdayCompletedTopic = "hr.timesheet.lifecycle.v1"

// WorkdayCompletedEvent is emitted when an employee times out for the day.
// The payroll consumer derives that day's payment record from it.
type WorkdayCompletedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	EmployeeID string    `json:"employee_id"`
	Date       string    `json:"date"` // YYYY-MM-DD
	OccurredAt time.Time `json:"occurred_at"`
}
