package payrollreport

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gaurisankartarasia/emp-2/internal/employee"
	"github.com/gaurisankartarasia/emp-2/internal/events"
	"github.com/gaurisankartarasia/emp-2/internal/messaging/kafka"
	reporterrors "github.com/gaurisankartarasia/emp-2/internal/payrollreport/errors"
	"github.com/gaurisankartarasia/emp-2/internal/salary"
	salaryerrors "github.com/gaurisankartarasia/emp-2/internal/salary/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const recentReportsLimit = 10

type EmployeeSource interface {
	ListActive(ctx context.Context, search string) ([]employee.Employee, error)
}

//go:generate mockgen -source=report_service.go -destination=mock/report_service_mock.go -package=mock
type Service interface {
	// Preview computes the would-be report synchronously without
	// persisting anything.
	Preview(ctx context.Context, req GenerateReportRequest) (ReportResponse, error)
	// Initiate creates the report row in processing state and returns its
	// id immediately; generation continues in the background.
	Initiate(ctx context.Context, actorID string, req GenerateReportRequest) (InitiateResponse, error)
	GetStatus(ctx context.Context, reportID string) (StatusResponse, error)
	GetReport(ctx context.Context, reportID string) (ReportResponse, error)
	ListRecent(ctx context.Context) ([]ReportResponse, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	employees EmployeeSource
	resolver  salary.Resolver
	outbox    kafka.OutboxRepository
	logger    *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	employees EmployeeSource,
	resolver salary.Resolver,
) Service {
	return NewServiceWithOutbox(db, repo, employees, resolver, nil)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	employees EmployeeSource,
	resolver salary.Resolver,
	outboxRepo kafka.OutboxRepository,
) Service {
	return &service{
		db:        db,
		repo:      repo,
		employees: employees,
		resolver:  resolver,
		outbox:    outboxRepo,
		logger:    zap.L().Named("payrollreport.service"),
	}
}

func (s *service) Preview(ctx context.Context, req GenerateReportRequest) (ReportResponse, error) {
	slips, err := s.computeSlips(ctx, uuid.Nil)
	if err != nil {
		return ReportResponse{}, err
	}

	preview := PayrollReport{
		Month:  req.Month,
		Year:   req.Year,
		Status: StatusCompleted,
		Slips:  slips,
	}
	resp := mapReportResponse(preview, true)
	resp.ID = ""
	return resp, nil
}

func (s *service) Initiate(ctx context.Context, actorID string, req GenerateReportRequest) (InitiateResponse, error) {
	report := &PayrollReport{
		ID:     uuid.New(),
		Month:  req.Month,
		Year:   req.Year,
		Status: StatusProcessing,
	}
	if actorUUID, err := uuid.Parse(actorID); err == nil {
		report.CreatedBy = &actorUUID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return InitiateResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Create(ctx, report); err != nil {
		return InitiateResponse{}, err
	}

	if s.outbox != nil {
		event := events.PayrollReportRequestedEvent{
			EventType:   "payroll.report.requested",
			ReportID:    report.ID.String(),
			Month:       req.Month,
			Year:        req.Year,
			RequestedBy: actorID,
			OccurredAt:  time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return InitiateResponse{}, err
		}

		outboxTx := s.outbox.WithTx(tx)
		if err := outboxTx.Create(ctx, kafka.OutboxEvent{
			ID:            uuid.New().String(),
			AggregateType: "payroll_report",
			AggregateID:   report.ID.String(),
			EventType:     event.EventType,
			Topic:         events.PayrollReportRequestedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			return InitiateResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return InitiateResponse{}, err
	}

	s.logger.Info("payroll report initiated",
		zap.String("report_id", report.ID.String()),
		zap.Int("month", req.Month),
		zap.Int("year", req.Year),
	)

	// generation is decoupled from the request: clients observe progress
	// by polling GetStatus
	go s.generate(report.ID)

	return InitiateResponse{ReportID: report.ID.String()}, nil
}

func (s *service) generate(reportID uuid.UUID) {
	ctx := context.Background()
	log := s.logger.With(zap.String("report_id", reportID.String()))

	defer func() {
		if r := recover(); r != nil {
			log.Error("report generation panicked", zap.Any("panic", r))
			if err := s.repo.MarkFailed(ctx, reportID, fmt.Sprintf("panic: %v", r)); err != nil {
				log.Error("mark report failed after panic", zap.Error(err))
			}
		}
	}()

	slips, err := s.computeSlips(ctx, reportID)
	if err != nil {
		log.Error("report generation failed", zap.Error(err))
		if markErr := s.repo.MarkFailed(ctx, reportID, err.Error()); markErr != nil {
			log.Error("mark report failed", zap.Error(markErr))
		}
		return
	}

	if err := s.repo.CompleteWithSlips(ctx, reportID, slips); err != nil {
		log.Error("persist report slips failed", zap.Error(err))
		if markErr := s.repo.MarkFailed(ctx, reportID, err.Error()); markErr != nil {
			log.Error("mark report failed", zap.Error(markErr))
		}
		return
	}

	log.Info("payroll report completed", zap.Int("slips", len(slips)))
}

// computeSlips resolves one slip per non-master employee. A missing salary
// structure becomes a flagged zero slip; any other resolution error aborts
// the whole computation.
func (s *service) computeSlips(ctx context.Context, reportID uuid.UUID) ([]SalarySlip, error) {
	employees, err := s.employees.ListActive(ctx, "")
	if err != nil {
		return nil, err
	}

	slips := make([]SalarySlip, 0, len(employees))
	for _, emp := range employees {
		slip := SalarySlip{
			ID:           uuid.New(),
			ReportID:     reportID,
			EmployeeID:   emp.ID,
			EmployeeName: emp.Name,
		}

		breakdown, err := s.resolver.ResolveBreakdown(ctx, emp.ID)
		switch {
		case err == nil:
			slip.GrossEarnings = breakdown.EarningsTotal()
			slip.TotalDeductions = breakdown.DeductionsTotal()
			slip.NetSalary = breakdown.NetTotal()
			slip.Components = make([]SalarySlipComponent, len(breakdown.Lines))
			for i, line := range breakdown.Lines {
				slip.Components[i] = SalarySlipComponent{
					ID:            uuid.New(),
					SlipID:        slip.ID,
					Name:          line.Component,
					ComponentType: line.Type,
					Amount:        line.Amount,
				}
			}
		case errors.Is(err, salaryerrors.ErrNoSalaryStructure):
			msg := "No salary structure defined"
			slip.StructureError = &msg
		default:
			return nil, err
		}

		slips = append(slips, slip)
	}

	return slips, nil
}

func (s *service) GetStatus(ctx context.Context, reportID string) (StatusResponse, error) {
	id, err := uuid.Parse(reportID)
	if err != nil {
		return StatusResponse{}, reporterrors.ErrInvalidReportID
	}

	report, err := s.repo.FindSummary(ctx, id)
	if err != nil {
		return StatusResponse{}, mapRepositoryError(err)
	}

	return StatusResponse{
		Status:   report.Status,
		ErrorLog: report.ErrorLog,
	}, nil
}

func (s *service) GetReport(ctx context.Context, reportID string) (ReportResponse, error) {
	id, err := uuid.Parse(reportID)
	if err != nil {
		return ReportResponse{}, reporterrors.ErrInvalidReportID
	}

	report, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ReportResponse{}, mapRepositoryError(err)
	}

	return mapReportResponse(*report, true), nil
}

func (s *service) ListRecent(ctx context.Context) ([]ReportResponse, error) {
	reports, err := s.repo.ListRecent(ctx, recentReportsLimit)
	if err != nil {
		return nil, err
	}

	resp := make([]ReportResponse, len(reports))
	for i, report := range reports {
		resp[i] = mapReportResponse(report, false)
	}
	return resp, nil
}

func mapRepositoryError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return reporterrors.ErrReportNotFound
	}
	return err
}
