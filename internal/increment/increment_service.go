package increment

import (
	"context"
	"errors"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/gaurisankartarasia/emp-2/internal/employee"
	incrementerrors "github.com/gaurisankartarasia/emp-2/internal/increment/errors"
	"github.com/gaurisankartarasia/emp-2/internal/salary"
	salaryerrors "github.com/gaurisankartarasia/emp-2/internal/salary/errors"
	"github.com/gaurisankartarasia/emp-2/internal/shared/contextutil"
	"github.com/gaurisankartarasia/emp-2/internal/shared/money"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// EligibilityDays is the minimum tenure before an increment applies.
const EligibilityDays = 180

type EmployeeSource interface {
	ListActive(ctx context.Context, search string) ([]employee.Employee, error)
}

type RatingSource interface {
	AverageRatings(ctx context.Context, employeeIDs []uuid.UUID) (map[uuid.UUID]float64, error)
}

//go:generate mockgen -source=increment_service.go -destination=mock/increment_service_mock.go -package=mock
type Service interface {
	GetScheme(ctx context.Context) ([]SchemeRowResponse, error)
	BuildReport(ctx context.Context, q ReportQuery) (ReportResponse, error)
}

type service struct {
	repo      Repository
	employees EmployeeSource
	ratings   RatingSource
	resolver  salary.Resolver
	logger    *zap.Logger
}

func NewService(
	repo Repository,
	employees EmployeeSource,
	ratings RatingSource,
	resolver salary.Resolver,
) Service {
	return &service{
		repo:      repo,
		employees: employees,
		ratings:   ratings,
		resolver:  resolver,
		logger:    zap.L().Named("increment.service"),
	}
}

func (s *service) GetScheme(ctx context.Context) ([]SchemeRowResponse, error) {
	rows, err := s.repo.ListSchemeOrdered(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]SchemeRowResponse, len(rows))
	for i, row := range rows {
		resp[i] = SchemeRowResponse{
			ID:         row.ID.String(),
			Rating:     row.Rating,
			Percentage: money.Format(row.Percentage),
		}
	}
	return resp, nil
}

// reportRow carries the raw values used for sorting alongside the
// formatted output row.
type reportRow struct {
	out           ReportRow
	name          string
	joinedAt      time.Time
	daysOfService int
	avgRating     float64
	currentSalary float64
	newSalary     float64
}

func (s *service) BuildReport(ctx context.Context, q ReportQuery) (ReportResponse, error) {
	scheme, err := s.loadScheme(ctx)
	if err != nil {
		return ReportResponse{}, err
	}

	employees, err := s.employees.ListActive(ctx, q.Search)
	if err != nil {
		return ReportResponse{}, err
	}

	ids := make([]uuid.UUID, len(employees))
	for i, emp := range employees {
		ids[i] = emp.ID
	}

	ratings, err := s.ratings.AverageRatings(ctx, ids)
	if err != nil {
		return ReportResponse{}, err
	}

	now := time.Now()
	rows := make([]reportRow, 0, len(employees))
	for _, emp := range employees {
		row, err := s.buildRow(ctx, emp, ratings[emp.ID], scheme, now)
		if err != nil {
			s.logger.Error("build increment row failed",
				zap.String("request_id", contextutil.GetRequestID(ctx)),
				zap.String("employee_id", emp.ID.String()),
				zap.Error(err),
			)
			return ReportResponse{}, err
		}
		rows = append(rows, row)
	}

	if err := sortRows(rows, q.SortBy, q.SortOrder); err != nil {
		return ReportResponse{}, err
	}

	return paginate(rows, q.Page, q.PageSize), nil
}

func (s *service) loadScheme(ctx context.Context) (Scheme, error) {
	schemeRows, err := s.repo.ListScheme(ctx)
	if err != nil {
		return Scheme{}, err
	}
	return SchemeFromRows(schemeRows)
}

func (s *service) buildRow(
	ctx context.Context,
	emp employee.Employee,
	avgRating float64,
	scheme Scheme,
	now time.Time,
) (reportRow, error) {
	daysOfService := int(now.Sub(emp.JoinedAt).Hours() / 24)
	isEligible := daysOfService >= EligibilityDays

	// standard rounding, .5 rounds up
	roundedRating := int(math.Round(avgRating))

	var incrementPct float64
	if isEligible {
		incrementPct = scheme.PercentageFor(roundedRating)
	}

	var currentSalary float64
	var structureErr *string
	breakdown, err := s.resolver.ResolveBreakdown(ctx, emp.ID)
	switch {
	case err == nil:
		currentSalary = breakdown.EarningsTotal()
	case errors.Is(err, salaryerrors.ErrNoSalaryStructure):
		msg := "No salary structure defined"
		structureErr = &msg
	default:
		return reportRow{}, err
	}

	newSalary := currentSalary * (1 + incrementPct/100)

	var avgOut *string
	if avgRating > 0 {
		formatted := money.Format(avgRating)
		avgOut = &formatted
	}

	return reportRow{
		out: ReportRow{
			ID:                   emp.ID.String(),
			Name:                 emp.Name,
			JoinedAt:             emp.JoinedAt.Format("2006-01-02"),
			DaysOfService:        daysOfService,
			AverageRating:        avgOut,
			IsEligible:           isEligible,
			IncrementPercentage:  money.Format(incrementPct),
			CurrentSalary:        money.Format(currentSalary),
			NewSalary:            money.Format(newSalary),
			SalaryStructureError: structureErr,
		},
		name:          emp.Name,
		joinedAt:      emp.JoinedAt,
		daysOfService: daysOfService,
		avgRating:     avgRating,
		currentSalary: currentSalary,
		newSalary:     newSalary,
	}, nil
}

func sortRows(rows []reportRow, sortBy, sortOrder string) error {
	var less func(a, b reportRow) bool

	switch sortBy {
	case "", "name":
		less = func(a, b reportRow) bool { return strings.ToLower(a.name) < strings.ToLower(b.name) }
	case "joined_at":
		less = func(a, b reportRow) bool { return a.joinedAt.Before(b.joinedAt) }
	case "days_of_service":
		less = func(a, b reportRow) bool { return a.daysOfService < b.daysOfService }
	case "average_rating":
		less = func(a, b reportRow) bool { return a.avgRating < b.avgRating }
	case "current_salary":
		less = func(a, b reportRow) bool { return a.currentSalary < b.currentSalary }
	case "new_salary":
		less = func(a, b reportRow) bool { return a.newSalary < b.newSalary }
	default:
		return incrementerrors.ErrInvalidSortField
	}

	desc := strings.EqualFold(sortOrder, "DESC")
	sort.SliceStable(rows, func(i, j int) bool {
		if desc {
			return less(rows[j], rows[i])
		}
		return less(rows[i], rows[j])
	})
	return nil
}

func paginate(rows []reportRow, page, pageSize int) ReportResponse {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}

	totalItems := len(rows)
	totalPages := (totalItems + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	if start > totalItems {
		start = totalItems
	}
	end := start + pageSize
	if end > totalItems {
		end = totalItems
	}

	data := make([]ReportRow, 0, end-start)
	for _, row := range rows[start:end] {
		data = append(data, row.out)
	}

	return ReportResponse{
		Data:       data,
		TotalPages: totalPages,
		TotalItems: totalItems,
	}
}
