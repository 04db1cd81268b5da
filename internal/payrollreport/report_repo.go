package payrollreport

import (
	"context"
	"database/sql"

	reporterrors "github.com/gaurisankartarasia/emp-2/internal/payrollreport/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=report_repo.go -destination=mock/report_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, report *PayrollReport) error
	FindByID(ctx context.Context, id uuid.UUID) (*PayrollReport, error)
	FindSummary(ctx context.Context, id uuid.UUID) (*PayrollReport, error)
	ListRecent(ctx context.Context, limit int) ([]PayrollReport, error)
	// CompleteWithSlips atomically persists the slip set and flips the
	// report from processing to completed. Fails if the report already
	// reached a terminal state.
	CompleteWithSlips(ctx context.Context, reportID uuid.UUID, slips []SalarySlip) error
	// MarkFailed flips processing to failed and records the error log.
	MarkFailed(ctx context.Context, reportID uuid.UUID, errorLog string) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) Create(ctx context.Context, report *PayrollReport) error {
	// inside Initiate's transaction the insert must share the tx with the
	// outbox write, so it goes through database/sql
	if r.tx != nil {
		_, err := r.tx.ExecContext(ctx, `
            INSERT INTO payroll_reports (id, month, year, status, created_by, created_at, updated_at)
            VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
        `, report.ID, report.Month, report.Year, report.Status, report.CreatedBy)
		return err
	}
	return r.db.WithContext(ctx).Create(report).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*PayrollReport, error) {
	var report PayrollReport
	err := r.db.WithContext(ctx).
		Preload("Slips", func(db *gorm.DB) *gorm.DB {
			return db.Order("employee_name ASC")
		}).
		Preload("Slips.Components").
		First(&report, "id = ?", id).Error
	return &report, err
}

func (r *repository) FindSummary(ctx context.Context, id uuid.UUID) (*PayrollReport, error) {
	var report PayrollReport
	err := r.db.WithContext(ctx).
		First(&report, "id = ?", id).Error
	return &report, err
}

func (r *repository) ListRecent(ctx context.Context, limit int) ([]PayrollReport, error) {
	var reports []PayrollReport
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&reports).Error
	return reports, err
}

func (r *repository) CompleteWithSlips(ctx context.Context, reportID uuid.UUID, slips []SalarySlip) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&PayrollReport{}).
			Where("id = ? AND status = ?", reportID, StatusProcessing).
			Update("status", StatusCompleted)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return reporterrors.ErrInvalidTransition
		}

		if len(slips) == 0 {
			return nil
		}
		return tx.Create(&slips).Error
	})
}

func (r *repository) MarkFailed(ctx context.Context, reportID uuid.UUID, errorLog string) error {
	res := r.db.WithContext(ctx).
		Model(&PayrollReport{}).
		Where("id = ? AND status = ?", reportID, StatusProcessing).
		Updates(map[string]interface{}{
			"status":    StatusFailed,
			"error_log": errorLog,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return reporterrors.ErrInvalidTransition
	}
	return nil
}
