package salary

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=salary_repo.go -destination=mock/salary_repo_mock.go -package=mock
type Repository interface {
	CreateComponent(ctx context.Context, component *SalaryComponent) error
	ListComponents(ctx context.Context) ([]SalaryComponent, error)
	FindComponentByID(ctx context.Context, id uuid.UUID) (*SalaryComponent, error)
	UpdateComponent(ctx context.Context, component *SalaryComponent) error
	DeleteComponent(ctx context.Context, id uuid.UUID) error

	// FindStructure returns the employee's assigned rows with their
	// component definitions preloaded.
	FindStructure(ctx context.Context, employeeID uuid.UUID) ([]EmployeeSalaryStructure, error)
	// ReplaceStructure atomically swaps the employee's assignment set.
	ReplaceStructure(ctx context.Context, employeeID uuid.UUID, rows []EmployeeSalaryStructure) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateComponent(ctx context.Context, component *SalaryComponent) error {
	return r.db.WithContext(ctx).Create(component).Error
}

func (r *repository) ListComponents(ctx context.Context) ([]SalaryComponent, error) {
	var components []SalaryComponent
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&components).Error
	return components, err
}

func (r *repository) FindComponentByID(ctx context.Context, id uuid.UUID) (*SalaryComponent, error) {
	var component SalaryComponent
	err := r.db.WithContext(ctx).
		First(&component, "id = ?", id).Error
	return &component, err
}

func (r *repository) UpdateComponent(ctx context.Context, component *SalaryComponent) error {
	return r.db.WithContext(ctx).Save(component).Error
}

func (r *repository) DeleteComponent(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&SalaryComponent{}, "id = ?", id).Error
}

func (r *repository) FindStructure(ctx context.Context, employeeID uuid.UUID) ([]EmployeeSalaryStructure, error) {
	var rows []EmployeeSalaryStructure
	err := r.db.WithContext(ctx).
		Preload("Component").
		Where("employee_id = ?", employeeID).
		Find(&rows).Error
	return rows, err
}

func (r *repository) ReplaceStructure(ctx context.Context, employeeID uuid.UUID, rows []EmployeeSalaryStructure) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&EmployeeSalaryStructure{}, "employee_id = ?", employeeID).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
}
