package reporterrors

import (
	"net/http"

	"github.com/gaurisankartarasia/emp-2/internal/shared/apperror"
)

var (
	ErrReportNotFound = apperror.New(
		apperror.CodeNotFound,
		"payroll report not found",
		http.StatusNotFound,
	)
	ErrInvalidReportID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid report id",
		http.StatusBadRequest,
	)
	ErrInvalidPeriod = apperror.New(
		apperror.CodeInvalidInput,
		"invalid pay period",
		http.StatusBadRequest,
	)
	ErrReportNotCompleted = apperror.New(
		apperror.CodeInvalidState,
		"payroll report has not completed yet",
		http.StatusConflict,
	)
	ErrInvalidTransition = apperror.New(
		apperror.CodeInvalidState,
		"payroll report is already in a terminal state",
		http.StatusConflict,
	)
)
