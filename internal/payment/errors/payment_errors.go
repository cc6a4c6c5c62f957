package paymenterrors

import (
	"net/http"

	"go-timekeep/internal/shared/apperror"
)

var (
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidSchedule = apperror.New(
		apperror.CodeInvalidInput,
		"invalid pay rate schedule, expected Hourly or Daily",
		http.StatusBadRequest,
	)
	ErrMissingPayRate = apperror.New(
		apperror.CodeNotFound,
		"no applicable pay rate for this date",
		http.StatusNotFound,
	)
	ErrSummaryNotFound = apperror.New(
		apperror.CodeNotFound,
		"no daily summary recorded for this date",
		http.StatusNotFound,
	)
	ErrInvalidFilter = apperror.New(
		apperror.CodeInvalidInput,
		"invalid payout filter, expected daily, weekly or monthly",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"start_date must be before or equal end_date",
		http.StatusBadRequest,
	)
	ErrNoRecordsUpdated = apperror.New(
		apperror.CodeNotFound,
		"no matching payment records to mark as paid",
		http.StatusNotFound,
	)
)
