package payrollreport_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/gaurisankartarasia/emp-2/internal/employee"
	"github.com/gaurisankartarasia/emp-2/internal/events"
	"github.com/gaurisankartarasia/emp-2/internal/messaging/kafka"
	"github.com/gaurisankartarasia/emp-2/internal/payrollreport"
	reporterrors "github.com/gaurisankartarasia/emp-2/internal/payrollreport/errors"
	"github.com/gaurisankartarasia/emp-2/internal/salary"
	salaryerrors "github.com/gaurisankartarasia/emp-2/internal/salary/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeReportRepository struct {
	mu sync.Mutex

	withTxFn            func(tx *sql.Tx) payrollreport.Repository
	createFn            func(ctx context.Context, report *payrollreport.PayrollReport) error
	findByIDFn          func(ctx context.Context, id uuid.UUID) (*payrollreport.PayrollReport, error)
	findSummaryFn       func(ctx context.Context, id uuid.UUID) (*payrollreport.PayrollReport, error)
	listRecentFn        func(ctx context.Context, limit int) ([]payrollreport.PayrollReport, error)
	completeWithSlipsFn func(ctx context.Context, reportID uuid.UUID, slips []payrollreport.SalarySlip) error
	markFailedFn        func(ctx context.Context, reportID uuid.UUID, errorLog string) error
}

func (f *fakeReportRepository) WithTx(tx *sql.Tx) payrollreport.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeReportRepository) Create(ctx context.Context, report *payrollreport.PayrollReport) error {
	if f.createFn != nil {
		return f.createFn(ctx, report)
	}
	return nil
}

func (f *fakeReportRepository) FindByID(ctx context.Context, id uuid.UUID) (*payrollreport.PayrollReport, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeReportRepository) FindSummary(ctx context.Context, id uuid.UUID) (*payrollreport.PayrollReport, error) {
	if f.findSummaryFn != nil {
		return f.findSummaryFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeReportRepository) ListRecent(ctx context.Context, limit int) ([]payrollreport.PayrollReport, error) {
	if f.listRecentFn != nil {
		return f.listRecentFn(ctx, limit)
	}
	return nil, nil
}

func (f *fakeReportRepository) CompleteWithSlips(ctx context.Context, reportID uuid.UUID, slips []payrollreport.SalarySlip) error {
	f.mu.Lock()
	fn := f.completeWithSlipsFn
	f.mu.Unlock()
	if fn != nil {
		return fn(ctx, reportID, slips)
	}
	return nil
}

func (f *fakeReportRepository) MarkFailed(ctx context.Context, reportID uuid.UUID, errorLog string) error {
	f.mu.Lock()
	fn := f.markFailedFn
	f.mu.Unlock()
	if fn != nil {
		return fn(ctx, reportID, errorLog)
	}
	return nil
}

type fakeEmployeeSource struct {
	listActiveFn func(ctx context.Context, search string) ([]employee.Employee, error)
}

func (f *fakeEmployeeSource) ListActive(ctx context.Context, search string) ([]employee.Employee, error) {
	if f.listActiveFn != nil {
		return f.listActiveFn(ctx, search)
	}
	return nil, nil
}

type fakeResolver struct {
	resolveFn func(ctx context.Context, employeeID uuid.UUID) (salary.Breakdown, error)
}

func (f *fakeResolver) ResolveBreakdown(ctx context.Context, employeeID uuid.UUID) (salary.Breakdown, error) {
	if f.resolveFn != nil {
		return f.resolveFn(ctx, employeeID)
	}
	return salary.Breakdown{}, salaryerrors.ErrNoSalaryStructure
}

type fakeOutboxRepository struct {
	mu       sync.Mutex
	withTxFn func(tx *sql.Tx) kafka.OutboxRepository
	events   []kafka.OutboxEvent
}

func (f *fakeOutboxRepository) WithTx(tx *sql.Tx) kafka.OutboxRepository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeOutboxRepository) Create(ctx context.Context, event kafka.OutboxEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
	return nil
}

func (f *fakeOutboxRepository) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutboxRepository) MarkSent(ctx context.Context, id string) error {
	return nil
}

func (f *fakeOutboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	return nil
}

type reportServiceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	repo      *fakeReportRepository
	employees *fakeEmployeeSource
	resolver  *fakeResolver
	outbox    *fakeOutboxRepository
	service   payrollreport.Service
}

func setupReportServiceTest(t *testing.T) *reportServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeReportRepository{}
	employees := &fakeEmployeeSource{}
	resolver := &fakeResolver{}
	outbox := &fakeOutboxRepository{}

	return &reportServiceDeps{
		db:        db,
		sqlMock:   sqlMock,
		repo:      repo,
		employees: employees,
		resolver:  resolver,
		outbox:    outbox,
		service:   payrollreport.NewServiceWithOutbox(db, repo, employees, resolver, outbox),
	}
}

func earningBreakdown(amount float64) salary.Breakdown {
	return salary.Breakdown{Lines: []salary.BreakdownLine{
		{Component: "Basic", Type: salary.TypeEarning, Amount: amount},
	}}
}

func TestReportService_Initiate_CompletesAsync(t *testing.T) {
	ctx := context.Background()
	deps := setupReportServiceTest(t)
	defer deps.db.Close()

	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectCommit()

	withID := uuid.New()
	withoutID := uuid.New()
	deps.employees.listActiveFn = func(ctx context.Context, search string) ([]employee.Employee, error) {
		return []employee.Employee{
			{ID: withID, Name: "Asha"},
			{ID: withoutID, Name: "Mira"},
		}, nil
	}
	deps.resolver.resolveFn = func(ctx context.Context, id uuid.UUID) (salary.Breakdown, error) {
		if id == withID {
			return earningBreakdown(50000), nil
		}
		return salary.Breakdown{}, salaryerrors.ErrNoSalaryStructure
	}

	var mu sync.Mutex
	var createdID uuid.UUID
	var createdStatus string
	deps.repo.createFn = func(ctx context.Context, report *payrollreport.PayrollReport) error {
		mu.Lock()
		defer mu.Unlock()
		createdID = report.ID
		createdStatus = report.Status
		return nil
	}

	var completedSlips []payrollreport.SalarySlip
	var completedID uuid.UUID
	deps.repo.completeWithSlipsFn = func(ctx context.Context, reportID uuid.UUID, slips []payrollreport.SalarySlip) error {
		mu.Lock()
		defer mu.Unlock()
		completedID = reportID
		completedSlips = slips
		return nil
	}

	resp, err := deps.service.Initiate(ctx, uuid.New().String(), payrollreport.GenerateReportRequest{Month: 3, Year: 2026})

	assert.NoError(t, err)
	mu.Lock()
	assert.Equal(t, createdID.String(), resp.ReportID)
	assert.Equal(t, payrollreport.StatusProcessing, createdStatus)
	mu.Unlock()

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(completedSlips) == 2
	}, time.Second, 10*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, createdID, completedID)

	bySlipEmployee := map[uuid.UUID]payrollreport.SalarySlip{}
	for _, slip := range completedSlips {
		bySlipEmployee[slip.EmployeeID] = slip
	}
	assert.Equal(t, 50000.0, bySlipEmployee[withID].GrossEarnings)
	assert.Nil(t, bySlipEmployee[withID].StructureError)
	assert.Equal(t, 0.0, bySlipEmployee[withoutID].GrossEarnings)
	if assert.NotNil(t, bySlipEmployee[withoutID].StructureError) {
		assert.Equal(t, "No salary structure defined", *bySlipEmployee[withoutID].StructureError)
	}

	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestReportService_Initiate_WritesOutboxEvent(t *testing.T) {
	ctx := context.Background()
	deps := setupReportServiceTest(t)
	defer deps.db.Close()

	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectCommit()

	actorID := uuid.New().String()
	resp, err := deps.service.Initiate(ctx, actorID, payrollreport.GenerateReportRequest{Month: 7, Year: 2026})
	assert.NoError(t, err)

	deps.outbox.mu.Lock()
	defer deps.outbox.mu.Unlock()
	assert.Len(t, deps.outbox.events, 1)
	event := deps.outbox.events[0]
	assert.Equal(t, events.PayrollReportRequestedTopic, event.Topic)
	assert.Equal(t, "payroll_report", event.AggregateType)
	assert.Equal(t, resp.ReportID, event.AggregateID)

	var payload events.PayrollReportRequestedEvent
	assert.NoError(t, json.Unmarshal(event.Payload, &payload))
	assert.Equal(t, 7, payload.Month)
	assert.Equal(t, 2026, payload.Year)
	assert.Equal(t, actorID, payload.RequestedBy)
}

func TestReportService_Initiate_FailureMarksFailed(t *testing.T) {
	ctx := context.Background()
	deps := setupReportServiceTest(t)
	defer deps.db.Close()

	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectCommit()

	deps.employees.listActiveFn = func(ctx context.Context, search string) ([]employee.Employee, error) {
		return []employee.Employee{{ID: uuid.New(), Name: "Asha"}}, nil
	}
	deps.resolver.resolveFn = func(ctx context.Context, id uuid.UUID) (salary.Breakdown, error) {
		return salary.Breakdown{}, errors.New("structure query timed out")
	}

	var mu sync.Mutex
	var failedLog string
	var failedID uuid.UUID
	deps.repo.markFailedFn = func(ctx context.Context, reportID uuid.UUID, errorLog string) error {
		mu.Lock()
		defer mu.Unlock()
		failedID = reportID
		failedLog = errorLog
		return nil
	}

	resp, err := deps.service.Initiate(ctx, uuid.New().String(), payrollreport.GenerateReportRequest{Month: 3, Year: 2026})
	assert.NoError(t, err)

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return failedLog != ""
	}, time.Second, 10*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, resp.ReportID, failedID.String())
	assert.Contains(t, failedLog, "structure query timed out")
}

func TestReportService_Preview(t *testing.T) {
	ctx := context.Background()
	deps := setupReportServiceTest(t)
	defer deps.db.Close()

	empID := uuid.New()
	deps.employees.listActiveFn = func(ctx context.Context, search string) ([]employee.Employee, error) {
		return []employee.Employee{{ID: empID, Name: "Asha"}}, nil
	}
	deps.resolver.resolveFn = func(ctx context.Context, id uuid.UUID) (salary.Breakdown, error) {
		return salary.Breakdown{Lines: []salary.BreakdownLine{
			{Component: "Basic", Type: salary.TypeEarning, Amount: 50000},
			{Component: "Tax", Type: salary.TypeDeduction, Amount: 5000},
		}}, nil
	}

	resp, err := deps.service.Preview(ctx, payrollreport.GenerateReportRequest{Month: 3, Year: 2026})

	assert.NoError(t, err)
	// nothing persisted, so a preview has no id
	assert.Empty(t, resp.ID)
	assert.Equal(t, payrollreport.StatusCompleted, resp.Status)
	assert.Len(t, resp.Slips, 1)

	slip := resp.Slips[0]
	assert.Equal(t, "50000.00", slip.GrossEarnings)
	assert.Equal(t, "5000.00", slip.TotalDeductions)
	assert.Equal(t, "45000.00", slip.NetSalary)
	assert.Len(t, slip.Earnings, 1)
	assert.Len(t, slip.Deductions, 1)
}

func TestReportService_Preview_Repeatable(t *testing.T) {
	ctx := context.Background()
	deps := setupReportServiceTest(t)
	defer deps.db.Close()

	empID := uuid.New()
	deps.employees.listActiveFn = func(ctx context.Context, search string) ([]employee.Employee, error) {
		return []employee.Employee{{ID: empID, Name: "Asha"}}, nil
	}
	deps.resolver.resolveFn = func(ctx context.Context, id uuid.UUID) (salary.Breakdown, error) {
		return salary.Breakdown{Lines: []salary.BreakdownLine{
			{Component: "Basic", Type: salary.TypeEarning, Amount: 50000},
			{Component: "Tax", Type: salary.TypeDeduction, Amount: 5000},
		}}, nil
	}

	createCalls := 0
	deps.repo.createFn = func(ctx context.Context, report *payrollreport.PayrollReport) error {
		createCalls++
		return nil
	}

	req := payrollreport.GenerateReportRequest{Month: 3, Year: 2026}
	first, err := deps.service.Preview(ctx, req)
	assert.NoError(t, err)
	second, err := deps.service.Preview(ctx, req)
	assert.NoError(t, err)

	// a preview writes nothing, so running it again yields the same response
	assert.Equal(t, first, second)
	assert.Zero(t, createCalls)
}

func TestReportService_GetStatus(t *testing.T) {
	ctx := context.Background()
	deps := setupReportServiceTest(t)
	defer deps.db.Close()

	reportID := uuid.New()
	errorLog := "scheme missing"
	deps.repo.findSummaryFn = func(ctx context.Context, id uuid.UUID) (*payrollreport.PayrollReport, error) {
		assert.Equal(t, reportID, id)
		return &payrollreport.PayrollReport{
			ID:       reportID,
			Status:   payrollreport.StatusFailed,
			ErrorLog: &errorLog,
		}, nil
	}

	resp, err := deps.service.GetStatus(ctx, reportID.String())

	assert.NoError(t, err)
	assert.Equal(t, payrollreport.StatusFailed, resp.Status)
	if assert.NotNil(t, resp.ErrorLog) {
		assert.Equal(t, "scheme missing", *resp.ErrorLog)
	}
}

func TestReportService_GetStatus_NotFound(t *testing.T) {
	ctx := context.Background()
	deps := setupReportServiceTest(t)
	defer deps.db.Close()

	deps.repo.findSummaryFn = func(ctx context.Context, id uuid.UUID) (*payrollreport.PayrollReport, error) {
		return nil, gorm.ErrRecordNotFound
	}

	_, err := deps.service.GetStatus(ctx, uuid.New().String())
	assert.ErrorIs(t, err, reporterrors.ErrReportNotFound)
}

func TestReportService_GetStatus_InvalidID(t *testing.T) {
	ctx := context.Background()
	deps := setupReportServiceTest(t)
	defer deps.db.Close()

	_, err := deps.service.GetStatus(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, reporterrors.ErrInvalidReportID)
}

func TestReportService_ListRecent(t *testing.T) {
	ctx := context.Background()
	deps := setupReportServiceTest(t)
	defer deps.db.Close()

	deps.repo.listRecentFn = func(ctx context.Context, limit int) ([]payrollreport.PayrollReport, error) {
		assert.Equal(t, 10, limit)
		return []payrollreport.PayrollReport{
			{ID: uuid.New(), Month: 3, Year: 2026, Status: payrollreport.StatusCompleted},
			{ID: uuid.New(), Month: 2, Year: 2026, Status: payrollreport.StatusFailed},
		}, nil
	}

	resp, err := deps.service.ListRecent(ctx)

	assert.NoError(t, err)
	assert.Len(t, resp, 2)
	// summaries carry no slips
	assert.Empty(t, resp[0].Slips)
}
