package salary

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeEarning   = "Earning"
	TypeDeduction = "Deduction"

	CalcFixed      = "fixed"
	CalcPercentage = "percentage"
)

// SalaryComponent is a global, reusable pay element definition. A fixed
// component carries a default amount; a percentage component carries the
// percentage applied to the structure's fixed earnings.
type SalaryComponent struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name            string    `gorm:"type:varchar(120);not null;uniqueIndex:uq_salary_component_name"`
	ComponentType   string    `gorm:"type:varchar(20);not null"`
	CalculationType string    `gorm:"type:varchar(20);not null;default:'fixed'"`
	Amount          float64   `gorm:"type:numeric(14,2);not null;default:0"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (SalaryComponent) TableName() string {
	return "salary_components"
}

// EmployeeSalaryStructure assigns one component to one employee. Amount is
// the per-employee value: a money amount for fixed components, a percentage
// for percentage components.
type EmployeeSalaryStructure struct {
	ID          uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID  uuid.UUID        `gorm:"type:uuid;not null;index:idx_structure_employee"`
	ComponentID uuid.UUID        `gorm:"type:uuid;not null"`
	Amount      float64          `gorm:"type:numeric(14,2);not null;default:0"`
	Component   *SalaryComponent `gorm:"foreignKey:ComponentID;references:ID"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (EmployeeSalaryStructure) TableName() string {
	return "employee_salary_structures"
}
