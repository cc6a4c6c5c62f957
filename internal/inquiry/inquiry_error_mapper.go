package inquiry

import (
	"errors"
	"strings"

	inquiryerrors "go-timekeep/internal/inquiry/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return inquiryerrors.ErrInquiryNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_inquiry_transaction_no" {
			return inquiryerrors.ErrTransactionNoConflict
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_inquiry_transaction_no") {
		return inquiryerrors.ErrTransactionNoConflict
	}

	return err
}
