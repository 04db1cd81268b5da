package salary

import (
	"context"
	"errors"

	"github.com/gaurisankartarasia/emp-2/internal/employee"
	employeeerrors "github.com/gaurisankartarasia/emp-2/internal/employee/errors"
	salaryerrors "github.com/gaurisankartarasia/emp-2/internal/salary/errors"
	"github.com/gaurisankartarasia/emp-2/internal/shared/money"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EmployeeFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*employee.Employee, error)
}

//go:generate mockgen -source=salary_service.go -destination=mock/salary_service_mock.go -package=mock
type Service interface {
	CreateComponent(ctx context.Context, req CreateComponentRequest) (ComponentResponse, error)
	ListComponents(ctx context.Context) ([]ComponentResponse, error)
	UpdateComponent(ctx context.Context, id string, req UpdateComponentRequest) (ComponentResponse, error)
	DeleteComponent(ctx context.Context, id string) error

	GetStructure(ctx context.Context, employeeID string) ([]StructureRowResponse, error)
	UpdateStructure(ctx context.Context, employeeID string, req UpdateStructureRequest) ([]StructureRowResponse, error)
}

type service struct {
	repo      Repository
	employees EmployeeFinder
}

func NewService(repo Repository, employees EmployeeFinder) Service {
	return &service{repo: repo, employees: employees}
}

func (s *service) CreateComponent(ctx context.Context, req CreateComponentRequest) (ComponentResponse, error) {
	if req.Amount < 0 {
		return ComponentResponse{}, salaryerrors.ErrNegativeAmount
	}

	component := &SalaryComponent{
		ID:              uuid.New(),
		Name:            req.Name,
		ComponentType:   req.ComponentType,
		CalculationType: req.CalculationType,
		Amount:          req.Amount,
	}

	if err := s.repo.CreateComponent(ctx, component); err != nil {
		return ComponentResponse{}, mapRepositoryError(err)
	}

	return mapComponentResponse(*component), nil
}

func (s *service) ListComponents(ctx context.Context) ([]ComponentResponse, error) {
	components, err := s.repo.ListComponents(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	resp := make([]ComponentResponse, len(components))
	for i, component := range components {
		resp[i] = mapComponentResponse(component)
	}
	return resp, nil
}

func (s *service) UpdateComponent(ctx context.Context, id string, req UpdateComponentRequest) (ComponentResponse, error) {
	componentID, err := uuid.Parse(id)
	if err != nil {
		return ComponentResponse{}, salaryerrors.ErrInvalidComponentID
	}
	if req.Amount < 0 {
		return ComponentResponse{}, salaryerrors.ErrNegativeAmount
	}

	component, err := s.repo.FindComponentByID(ctx, componentID)
	if err != nil {
		return ComponentResponse{}, mapRepositoryError(err)
	}

	component.Name = req.Name
	component.ComponentType = req.ComponentType
	component.CalculationType = req.CalculationType
	component.Amount = req.Amount

	if err := s.repo.UpdateComponent(ctx, component); err != nil {
		return ComponentResponse{}, mapRepositoryError(err)
	}

	return mapComponentResponse(*component), nil
}

func (s *service) DeleteComponent(ctx context.Context, id string) error {
	componentID, err := uuid.Parse(id)
	if err != nil {
		return salaryerrors.ErrInvalidComponentID
	}

	if err := s.repo.DeleteComponent(ctx, componentID); err != nil {
		return mapRepositoryError(err)
	}
	return nil
}

func (s *service) GetStructure(ctx context.Context, employeeID string) ([]StructureRowResponse, error) {
	empID, err := s.resolveEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.FindStructure(ctx, empID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	return mapStructureRows(rows), nil
}

func (s *service) UpdateStructure(ctx context.Context, employeeID string, req UpdateStructureRequest) ([]StructureRowResponse, error) {
	empID, err := s.resolveEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	rows := make([]EmployeeSalaryStructure, 0, len(req.Components))
	for _, input := range req.Components {
		if input.Amount < 0 {
			return nil, salaryerrors.ErrNegativeAmount
		}
		componentID, err := uuid.Parse(input.ComponentID)
		if err != nil {
			return nil, salaryerrors.ErrInvalidComponentID
		}
		rows = append(rows, EmployeeSalaryStructure{
			ID:          uuid.New(),
			EmployeeID:  empID,
			ComponentID: componentID,
			Amount:      input.Amount,
		})
	}

	if err := s.repo.ReplaceStructure(ctx, empID, rows); err != nil {
		return nil, mapRepositoryError(err)
	}

	saved, err := s.repo.FindStructure(ctx, empID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapStructureRows(saved), nil
}

// resolveEmployeeID parses the path parameter and confirms the employee
// actually exists before any structure read or write.
func (s *service) resolveEmployeeID(ctx context.Context, employeeID string) (uuid.UUID, error) {
	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return uuid.Nil, salaryerrors.ErrInvalidEmployeeID
	}

	if s.employees != nil {
		if _, err := s.employees.FindByID(ctx, empID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return uuid.Nil, employeeerrors.ErrEmployeeNotFound
			}
			return uuid.Nil, err
		}
	}

	return empID, nil
}

func mapStructureRows(rows []EmployeeSalaryStructure) []StructureRowResponse {
	resp := make([]StructureRowResponse, 0, len(rows))
	for _, row := range rows {
		if row.Component == nil {
			continue
		}
		resp = append(resp, StructureRowResponse{
			ComponentID:     row.ComponentID.String(),
			Name:            row.Component.Name,
			ComponentType:   row.Component.ComponentType,
			CalculationType: row.Component.CalculationType,
			Amount:          money.Format(row.Amount),
		})
	}
	return resp
}
