package payment

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=payment_repo.go -destination=mock/payment_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	UpsertRecord(ctx context.Context, rec *PaymentRecord) error
	FindRecords(ctx context.Context, employeeID string, from, to time.Time) ([]PaymentRecord, error)
	FindSummariesFrom(ctx context.Context, employeeID string, from time.Time) ([]SummaryRow, error)
	FindSummaryByDate(ctx context.Context, employeeID string, date time.Time) (*SummaryRow, error)
	FindEffectiveRate(ctx context.Context, employeeID string, date time.Time) (*PayRateRow, error)
	MarkPaid(ctx context.Context, employeeID string, ids []string, paidAt time.Time) (int64, error)
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

// UpsertRecord is idempotent per (employee, date): recomputation updates
// the amount and summary reference but never resets a PAID status.
func (r *repository) UpsertRecord(ctx context.Context, rec *PaymentRecord) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "employee_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"amount_cents", "daily_summary_id", "updated_at",
			}),
		}).
		Create(rec).Error
}

func (r *repository) FindRecords(ctx context.Context, employeeID string, from, to time.Time) ([]PaymentRecord, error) {
	var rows []PaymentRecord
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("date >= ?", from.Format("2006-01-02")).
		Where("date <= ?", to.Format("2006-01-02")).
		Order("date DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindSummariesFrom(ctx context.Context, employeeID string, from time.Time) ([]SummaryRow, error) {
	var rows []SummaryRow
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("date >= ?", from.Format("2006-01-02")).
		Order("date ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindSummaryByDate(ctx context.Context, employeeID string, date time.Time) (*SummaryRow, error) {
	var row SummaryRow
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("date = ?", date.Format("2006-01-02")).
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// FindEffectiveRate returns the most recent pay rate effective on or
// before date, or gorm.ErrRecordNotFound.
func (r *repository) FindEffectiveRate(ctx context.Context, employeeID string, date time.Time) (*PayRateRow, error) {
	var row PayRateRow
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("effective_date <= ?", date.Format("2006-01-02")).
		Order("effective_date DESC, created_at DESC").
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *repository) MarkPaid(ctx context.Context, employeeID string, ids []string, paidAt time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&PaymentRecord{}).
		Where("employee_id = ?", employeeID).
		Where("id IN ?", ids).
		Where("status = ?", StatusUnpaid).
		Updates(map[string]any{
			"status":  StatusPaid,
			"paid_at": paidAt,
		})
	return res.RowsAffected, res.Error
}
