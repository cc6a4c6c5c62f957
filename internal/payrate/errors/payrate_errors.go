package payrateerrors

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
	ErrInvalidRate = apperror.New(
		apperror.CodeInvalidInput,
		"pay rate must be greater than zero",
		http.StatusBadRequest,
	)
	ErrInvalidEffectiveDate = apperror.New(
		apperror.CodeInvalidInput,
		"invalid effective date, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrPayRateNotFound = apperror.New(
		apperror.CodeNotFound,
		"no pay rate configured for employee",
		http.StatusNotFound,
	)
)
