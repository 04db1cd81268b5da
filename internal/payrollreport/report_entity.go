package payrollreport

import (
	"time"

	"github.com/google/uuid"
)

// Report lifecycle. Terminal states are final: transitions happen only
// through the repository's guarded state-change methods.
const (
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

type PayrollReport struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Month     int       `gorm:"not null;index:idx_report_period"`
	Year      int       `gorm:"not null;index:idx_report_period"`
	Status    string    `gorm:"type:varchar(20);not null;default:'processing';index"`
	ErrorLog  *string   `gorm:"type:text"`
	CreatedBy *uuid.UUID `gorm:"type:uuid"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Slips []SalarySlip `gorm:"foreignKey:ReportID"`
}

func (PayrollReport) TableName() string {
	return "payroll_reports"
}

// SalarySlip is written once, as part of report completion, and never
// mutated afterwards.
type SalarySlip struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	ReportID        uuid.UUID `gorm:"type:uuid;not null;index"`
	EmployeeID      uuid.UUID `gorm:"type:uuid;not null"`
	EmployeeName    string    `gorm:"type:varchar(120);not null"`
	GrossEarnings   float64   `gorm:"type:numeric(14,2);not null;default:0"`
	TotalDeductions float64   `gorm:"type:numeric(14,2);not null;default:0"`
	NetSalary       float64   `gorm:"type:numeric(14,2);not null;default:0"`
	StructureError  *string   `gorm:"type:varchar(120)"`
	CreatedAt       time.Time

	Components []SalarySlipComponent `gorm:"foreignKey:SlipID"`
}

func (SalarySlip) TableName() string {
	return "salary_slips"
}

type SalarySlipComponent struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	SlipID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Name          string    `gorm:"type:varchar(120);not null"`
	ComponentType string    `gorm:"type:varchar(20);not null"`
	Amount        float64   `gorm:"type:numeric(14,2);not null;default:0"`
}

func (SalarySlipComponent) TableName() string {
	return "salary_slip_components"
}
