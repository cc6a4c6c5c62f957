package payment

type PayoutRequest struct {
	Filter    string `json:"filter" binding:"required,oneof=daily weekly monthly"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
}

type Bucket struct {
	Label       string `json:"label"`
	AmountCents int64  `json:"amount_cents"`
}

type PaymentRecordResponse struct {
	ID          string  `json:"id"`
	EmployeeID  string  `json:"employee_id"`
	Date        string  `json:"date"`
	AmountCents int64   `json:"amount_cents"`
	Status      string  `json:"status"`
	PaidAt      *string `json:"paid_at,omitempty"`
}

// PayoutResponse carries the grouped totals twice: Buckets most-recent-first
// for the table, Chart chronological for plotting.
type PayoutResponse struct {
	Buckets []Bucket                `json:"buckets"`
	Chart   []Bucket                `json:"chart"`
	Records []PaymentRecordResponse `json:"records"`
}

type MarkPaidRequest struct {
	Records []string `json:"records" binding:"required,min=1,dive,uuid"`
}

type MarkPaidResponse struct {
	Updated int64 `json:"updated"`
}
