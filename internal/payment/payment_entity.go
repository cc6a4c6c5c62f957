package payment

import (
	"time"

	"github.com/google/uuid"
)

// PaymentRecord is the monetary result of applying a pay rate to one
// day's summary. Amounts are stored in the smallest currency unit to
// avoid floating point errors. One record per (employee, date).
type PaymentRecord struct {
	ID             uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID     uuid.UUID  `gorm:"column:employee_id;type:uuid;not null;uniqueIndex:idx_payment_records_employee_date"`
	Date           time.Time  `gorm:"column:date;type:date;not null;uniqueIndex:idx_payment_records_employee_date"`
	DailySummaryID uuid.UUID  `gorm:"column:daily_summary_id;type:uuid;not null"`
	AmountCents    int64      `gorm:"column:amount_cents;type:bigint;not null;default:0"`
	Status         string     `gorm:"column:status;type:varchar(10);not null;default:'UNPAID'"`
	PaidAt         *time.Time `gorm:"column:paid_at;index"`
	CreatedAt      time.Time  `gorm:"column:created_at"`
	UpdatedAt      time.Time  `gorm:"column:updated_at"`
}

func (PaymentRecord) TableName() string {
	return "payment_records"
}

// SummaryRow reads the timesheet module's table without importing it.
type SummaryRow struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID   uuid.UUID `gorm:"column:employee_id"`
	Date         time.Time `gorm:"column:date"`
	TotalSeconds float64   `gorm:"column:total_seconds"`
}

func (SummaryRow) TableName() string {
	return "daily_summaries"
}

// PayRateRow reads the payrate module's table without importing it.
type PayRateRow struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID    uuid.UUID `gorm:"column:employee_id"`
	RateCents     int64     `gorm:"column:rate_cents"`
	Schedule      string    `gorm:"column:schedule"`
	EffectiveDate time.Time `gorm:"column:effective_date"`
}

func (PayRateRow) TableName() string {
	return "pay_rates"
}
