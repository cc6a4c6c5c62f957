package payrate

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=payrate_repo.go -destination=mock/payrate_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, rate *PayRate) error
	FindCurrent(ctx context.Context, employeeID string, asOf time.Time) (*PayRate, error)
	ListHistory(ctx context.Context, employeeID string) ([]PayRate, error)
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

func (r *repository) Create(ctx context.Context, rate *PayRate) error {
	return r.db.WithContext(ctx).Create(rate).Error
}

// FindCurrent returns the rate effective as of the given day, preferring
// the latest insert when several share an effective date.
func (r *repository) FindCurrent(ctx context.Context, employeeID string, asOf time.Time) (*PayRate, error) {
	var row PayRate
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("effective_date <= ?", asOf.Format("2006-01-02")).
		Order("effective_date DESC, created_at DESC").
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *repository) ListHistory(ctx context.Context, employeeID string) ([]PayRate, error) {
	var rows []PayRate
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("effective_date DESC, created_at DESC").
		Find(&rows).Error
	return rows, err
}
