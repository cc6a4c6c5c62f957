package timesheeterrors

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
	ErrUnknownClockAction = apperror.New(
		apperror.CodeInvalidInput,
		"unknown clock action, expected TIME_IN, BREAK or TIME_OUT",
		http.StatusBadRequest,
	)
	ErrAlreadyTimedIn = apperror.New(
		apperror.CodeInvalidState,
		"you are already timed in",
		http.StatusBadRequest,
	)
	ErrTimeInAfterTimeOut = apperror.New(
		apperror.CodeInvalidState,
		"you cannot time in after time out for today",
		http.StatusBadRequest,
	)
	ErrBreakBeforeTimeIn = apperror.New(
		apperror.CodeInvalidState,
		"you must time in before taking a break",
		http.StatusBadRequest,
	)
	ErrTimeOutBeforeTimeIn = apperror.New(
		apperror.CodeInvalidState,
		"you must time in before time out",
		http.StatusBadRequest,
	)
)
