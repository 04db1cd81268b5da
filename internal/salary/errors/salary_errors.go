package salaryerrors

import (
	"net/http"

	"github.com/gaurisankartarasia/emp-2/internal/shared/apperror"
)

var (
	// ErrNoSalaryStructure is a normal, reportable outcome: callers fold it
	// into their rows instead of failing the whole operation.
	ErrNoSalaryStructure = apperror.New(
		apperror.CodeNotFound,
		"No salary structure defined",
		http.StatusNotFound,
	)
	ErrComponentNotFound = apperror.New(
		apperror.CodeNotFound,
		"salary component not found",
		http.StatusNotFound,
	)
	ErrComponentNameTaken = apperror.New(
		apperror.CodeConflict,
		"a salary component with this name already exists",
		http.StatusConflict,
	)
	ErrComponentInUse = apperror.New(
		apperror.CodeConflict,
		"salary component is assigned to at least one employee",
		http.StatusConflict,
	)
	ErrInvalidComponentID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid component id",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrNegativeAmount = apperror.New(
		apperror.CodeInvalidInput,
		"component amounts cannot be negative",
		http.StatusBadRequest,
	)
)
