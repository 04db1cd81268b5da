package salary_test

import (
	"context"
	"testing"

	"github.com/gaurisankartarasia/emp-2/internal/employee"
	employeeerrors "github.com/gaurisankartarasia/emp-2/internal/employee/errors"
	"github.com/gaurisankartarasia/emp-2/internal/salary"
	salaryerrors "github.com/gaurisankartarasia/emp-2/internal/salary/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestSalaryService_CreateComponent(t *testing.T) {
	ctx := context.Background()

	repo := &fakeSalaryRepository{
		createComponentFn: func(ctx context.Context, component *salary.SalaryComponent) error {
			assert.Equal(t, "Basic", component.Name)
			assert.Equal(t, salary.TypeEarning, component.ComponentType)
			assert.Equal(t, salary.CalcFixed, component.CalculationType)
			return nil
		},
	}

	resp, err := salary.NewService(repo, nil).CreateComponent(ctx, salary.CreateComponentRequest{
		Name:            "Basic",
		ComponentType:   salary.TypeEarning,
		CalculationType: salary.CalcFixed,
		Amount:          40000,
	})

	assert.NoError(t, err)
	assert.Equal(t, "Basic", resp.Name)
	assert.Equal(t, "40000.00", resp.Amount)
	assert.NotEmpty(t, resp.ID)
}

func TestSalaryService_CreateComponent_NegativeAmount(t *testing.T) {
	ctx := context.Background()

	_, err := salary.NewService(&fakeSalaryRepository{}, nil).CreateComponent(ctx, salary.CreateComponentRequest{
		Name:            "Basic",
		ComponentType:   salary.TypeEarning,
		CalculationType: salary.CalcFixed,
		Amount:          -1,
	})

	assert.ErrorIs(t, err, salaryerrors.ErrNegativeAmount)
}

func TestSalaryService_CreateComponent_DuplicateName(t *testing.T) {
	ctx := context.Background()

	repo := &fakeSalaryRepository{
		createComponentFn: func(ctx context.Context, component *salary.SalaryComponent) error {
			return &pgconn.PgError{Code: "23505", ConstraintName: "uq_salary_component_name"}
		},
	}

	_, err := salary.NewService(repo, nil).CreateComponent(ctx, salary.CreateComponentRequest{
		Name:            "Basic",
		ComponentType:   salary.TypeEarning,
		CalculationType: salary.CalcFixed,
		Amount:          100,
	})

	assert.ErrorIs(t, err, salaryerrors.ErrComponentNameTaken)
}

func TestSalaryService_DeleteComponent_InUse(t *testing.T) {
	ctx := context.Background()

	repo := &fakeSalaryRepository{
		deleteComponentFn: func(ctx context.Context, id uuid.UUID) error {
			return &pgconn.PgError{Code: "23503"}
		},
	}

	err := salary.NewService(repo, nil).DeleteComponent(ctx, uuid.New().String())
	assert.ErrorIs(t, err, salaryerrors.ErrComponentInUse)
}

func TestSalaryService_UpdateComponent_NotFound(t *testing.T) {
	ctx := context.Background()

	repo := &fakeSalaryRepository{
		findComponentByIDFn: func(ctx context.Context, id uuid.UUID) (*salary.SalaryComponent, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	_, err := salary.NewService(repo, nil).UpdateComponent(ctx, uuid.New().String(), salary.UpdateComponentRequest{
		Name:            "Basic",
		ComponentType:   salary.TypeEarning,
		CalculationType: salary.CalcFixed,
		Amount:          100,
	})

	assert.ErrorIs(t, err, salaryerrors.ErrComponentNotFound)
}

func TestSalaryService_UpdateComponent_InvalidID(t *testing.T) {
	ctx := context.Background()

	_, err := salary.NewService(&fakeSalaryRepository{}, nil).UpdateComponent(ctx, "not-a-uuid", salary.UpdateComponentRequest{})
	assert.ErrorIs(t, err, salaryerrors.ErrInvalidComponentID)
}

func TestSalaryService_UpdateStructure(t *testing.T) {
	ctx := context.Background()
	empID := uuid.New()
	componentID := uuid.New()

	var replaced []salary.EmployeeSalaryStructure
	repo := &fakeSalaryRepository{
		replaceStructureFn: func(ctx context.Context, id uuid.UUID, rows []salary.EmployeeSalaryStructure) error {
			assert.Equal(t, empID, id)
			replaced = rows
			return nil
		},
		findStructureFn: func(ctx context.Context, id uuid.UUID) ([]salary.EmployeeSalaryStructure, error) {
			return []salary.EmployeeSalaryStructure{
				{
					ID:          uuid.New(),
					EmployeeID:  empID,
					ComponentID: componentID,
					Amount:      40000,
					Component: &salary.SalaryComponent{
						ID:              componentID,
						Name:            "Basic",
						ComponentType:   salary.TypeEarning,
						CalculationType: salary.CalcFixed,
					},
				},
			}, nil
		},
	}

	resp, err := salary.NewService(repo, nil).UpdateStructure(ctx, empID.String(), salary.UpdateStructureRequest{
		Components: []salary.StructureComponentInput{
			{ComponentID: componentID.String(), Amount: 40000},
		},
	})

	assert.NoError(t, err)
	assert.Len(t, replaced, 1)
	assert.Len(t, resp, 1)
	assert.Equal(t, "Basic", resp[0].Name)
	assert.Equal(t, "40000.00", resp[0].Amount)
}

type fakeEmployeeFinder struct {
	findByIDFn func(ctx context.Context, id uuid.UUID) (*employee.Employee, error)
}

func (f *fakeEmployeeFinder) FindByID(ctx context.Context, id uuid.UUID) (*employee.Employee, error) {
	return f.findByIDFn(ctx, id)
}

func TestSalaryService_UpdateStructure_UnknownEmployee(t *testing.T) {
	ctx := context.Background()

	finder := &fakeEmployeeFinder{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*employee.Employee, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	_, err := salary.NewService(&fakeSalaryRepository{}, finder).UpdateStructure(ctx, uuid.New().String(), salary.UpdateStructureRequest{})
	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
}

func TestSalaryService_UpdateStructure_EmptySetClears(t *testing.T) {
	ctx := context.Background()
	empID := uuid.New()

	var replaceCalled bool
	repo := &fakeSalaryRepository{
		replaceStructureFn: func(ctx context.Context, id uuid.UUID, rows []salary.EmployeeSalaryStructure) error {
			replaceCalled = true
			assert.Empty(t, rows)
			return nil
		},
	}

	resp, err := salary.NewService(repo, nil).UpdateStructure(ctx, empID.String(), salary.UpdateStructureRequest{})

	assert.NoError(t, err)
	assert.True(t, replaceCalled)
	assert.Empty(t, resp)
}
