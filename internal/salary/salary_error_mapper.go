package salary

import (
	"errors"
	"strings"

	salaryerrors "github.com/gaurisankartarasia/emp-2/internal/salary/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return salaryerrors.ErrComponentNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return salaryerrors.ErrComponentNameTaken
		case "23503":
			return salaryerrors.ErrComponentInUse
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_salary_component_name") {
		return salaryerrors.ErrComponentNameTaken
	}

	return err
}
