package payrate

import (
	"time"

	"github.com/google/uuid"
)

// PayRate rows are append-only history. The rate effective on a given day
// is the newest row whose effective_date is on or before that day.
type PayRate struct {
	ID            uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID    uuid.UUID `gorm:"column:employee_id;type:uuid;not null;index"`
	RateCents     int64     `gorm:"column:rate_cents;type:bigint;not null"`
	Schedule      string    `gorm:"column:schedule;type:varchar(10);not null"`
	EffectiveDate time.Time `gorm:"column:effective_date;type:date;not null;index"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (PayRate) TableName() string {
	return "pay_rates"
}
