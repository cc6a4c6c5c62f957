package inquiryerrors

import (
	"net/http"

	"go-timekeep/internal/shared/apperror"
)

var (
	ErrInquiryNotFound = apperror.New(
		apperror.CodeNotFound,
		"inquiry not found",
		http.StatusNotFound,
	)
	ErrInvalidInquiryID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid inquiry id",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"invalid status, expected NEW, IN_PROGRESS or RESOLVED",
		http.StatusBadRequest,
	)
	ErrTransactionNoConflict = apperror.New(
		apperror.CodeConflict,
		"inquiry reference number already exists",
		http.StatusConflict,
	)
)
