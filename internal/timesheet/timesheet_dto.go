package timesheet

type SubmitClockRequest struct {
	Action string `json:"action" binding:"required,oneof=TIME_IN BREAK TIME_OUT"`
}

type ClockEventResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Kind       string `json:"kind"`
}

type DailySummaryResponse struct {
	EmployeeID   string  `json:"employee_id"`
	Date         string  `json:"date"`
	TotalSeconds float64 `json:"total_seconds"`
	TimeSpan     string  `json:"time_span,omitempty"`
	DayState     string  `json:"day_state"`
}

// SummaryResponse is what the timesheet page renders: the employee's last
// action today plus the derived daily summary, both absent on a fresh day.
type SummaryResponse struct {
	LastAction   string                `json:"last_action,omitempty"`
	DailySummary *DailySummaryResponse `json:"daily_summary,omitempty"`
}
