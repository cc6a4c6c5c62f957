package inquiry

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=inquiry_repo.go -destination=mock/inquiry_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, inq *Inquiry) error
	FindByID(ctx context.Context, id string) (*Inquiry, error)
	FindByTransactionNo(ctx context.Context, transactionNo string) (*Inquiry, error)
	List(ctx context.Context, status string, offset, limit int) ([]Inquiry, int64, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
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

func (r *repository) Create(ctx context.Context, inq *Inquiry) error {
	return r.db.WithContext(ctx).Create(inq).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Inquiry, error) {
	var row Inquiry
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *repository) FindByTransactionNo(ctx context.Context, transactionNo string) (*Inquiry, error) {
	var row Inquiry
	err := r.db.WithContext(ctx).Where("transaction_no = ?", transactionNo).First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *repository) List(ctx context.Context, status string, offset, limit int) ([]Inquiry, int64, error) {
	q := r.db.WithContext(ctx).Model(&Inquiry{})
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []Inquiry
	err := q.Order("created_at DESC").Offset(offset).Limit(limit).Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id, status string) error {
	res := r.db.WithContext(ctx).
		Model(&Inquiry{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&Inquiry{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
