package payrate

type SetPayRateRequest struct {
	RateCents     int64  `json:"rate_cents" binding:"required,gt=0"`
	Schedule      string `json:"schedule" binding:"required,oneof=Hourly Daily"`
	EffectiveDate string `json:"effective_date" binding:"required"`
}

type PayRateResponse struct {
	ID            string `json:"id"`
	EmployeeID    string `json:"employee_id"`
	RateCents     int64  `json:"rate_cents"`
	Schedule      string `json:"schedule"`
	EffectiveDate string `json:"effective_date"`
	CreatedAt     string `json:"created_at"`
}

// SetPayRateResponse reports the stored rate plus how many past days the
// change recomputed.
type SetPayRateResponse struct {
	PayRate        PayRateResponse `json:"pay_rate"`
	RecomputedDays int             `json:"recomputed_days"`
}
