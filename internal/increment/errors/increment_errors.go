package incrementerrors

import (
	"net/http"

	"github.com/gaurisankartarasia/emp-2/internal/shared/apperror"
)

var (
	// ErrSchemeNotConfigured aborts the whole report call: an empty scheme
	// table is a configuration error, not a per-employee condition.
	ErrSchemeNotConfigured = apperror.New(
		apperror.CodeConfigurationError,
		"Increment scheme is not configured in the database.",
		http.StatusInternalServerError,
	)
	ErrInvalidSortField = apperror.New(
		apperror.CodeInvalidInput,
		"unsupported sort field",
		http.StatusBadRequest,
	)
)
