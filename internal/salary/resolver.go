package salary

import (
	"context"

	salaryerrors "github.com/gaurisankartarasia/emp-2/internal/salary/errors"

	"github.com/google/uuid"
)

//go:generate mockgen -source=resolver.go -destination=mock/resolver_mock.go -package=mock
type Resolver interface {
	// ResolveBreakdown computes the employee's pay element amounts. An
	// employee without an assigned structure yields ErrNoSalaryStructure,
	// which callers treat as data, not failure. Read-only and safe to call
	// concurrently.
	ResolveBreakdown(ctx context.Context, employeeID uuid.UUID) (Breakdown, error)
}

type resolver struct {
	repo Repository
}

func NewResolver(repo Repository) Resolver {
	return &resolver{repo: repo}
}

func (r *resolver) ResolveBreakdown(ctx context.Context, employeeID uuid.UUID) (Breakdown, error) {
	rows, err := r.repo.FindStructure(ctx, employeeID)
	if err != nil {
		return Breakdown{}, err
	}
	if len(rows) == 0 {
		return Breakdown{}, salaryerrors.ErrNoSalaryStructure
	}

	// Percentage components resolve against the fixed Earning total, so
	// fixed amounts are summed first.
	var fixedEarnings float64
	for _, row := range rows {
		if row.Component == nil {
			continue
		}
		if row.Component.CalculationType == CalcFixed && row.Component.ComponentType == TypeEarning {
			fixedEarnings += row.Amount
		}
	}

	lines := make([]BreakdownLine, 0, len(rows))
	for _, row := range rows {
		if row.Component == nil {
			continue
		}

		amount := row.Amount
		if row.Component.CalculationType == CalcPercentage {
			amount = row.Amount / 100 * fixedEarnings
		}

		lines = append(lines, BreakdownLine{
			Component: row.Component.Name,
			Type:      row.Component.ComponentType,
			Amount:    amount,
		})
	}

	if len(lines) == 0 {
		return Breakdown{}, salaryerrors.ErrNoSalaryStructure
	}

	return Breakdown{Lines: lines}, nil
}
