package employee_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/gaurisankartarasia/emp-2/internal/employee"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeEmployeeRepository struct {
	listActiveFn func(ctx context.Context, search string) ([]employee.Employee, error)
	findByIDFn   func(ctx context.Context, id uuid.UUID) (*employee.Employee, error)
	optionsFn    func(ctx context.Context) ([]employee.Employee, error)
}

func (f *fakeEmployeeRepository) ListActive(ctx context.Context, search string) ([]employee.Employee, error) {
	if f.listActiveFn != nil {
		return f.listActiveFn(ctx, search)
	}
	return nil, nil
}

func (f *fakeEmployeeRepository) FindByID(ctx context.Context, id uuid.UUID) (*employee.Employee, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (f *fakeEmployeeRepository) Options(ctx context.Context) ([]employee.Employee, error) {
	if f.optionsFn != nil {
		return f.optionsFn(ctx)
	}
	return nil, nil
}

func TestEmployeeService_GetOptions_CacheMiss(t *testing.T) {
	ctx := context.Background()
	rdb, mock := redismock.NewClientMock()

	empID := uuid.New()
	repo := &fakeEmployeeRepository{
		optionsFn: func(ctx context.Context) ([]employee.Employee, error) {
			return []employee.Employee{{ID: empID, Name: "Asha"}}, nil
		},
	}

	expected := []employee.EmployeeOption{{ID: empID.String(), Name: "Asha"}}
	payload, err := json.Marshal(expected)
	assert.NoError(t, err)

	mock.ExpectGet(employee.OptionsCacheKey).RedisNil()
	mock.ExpectSet(employee.OptionsCacheKey, payload, time.Hour).SetVal("OK")

	options, err := employee.NewService(repo, rdb).GetOptions(ctx)

	assert.NoError(t, err)
	assert.Equal(t, expected, options)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeService_GetOptions_CacheHit(t *testing.T) {
	ctx := context.Background()
	rdb, mock := redismock.NewClientMock()

	cached := []employee.EmployeeOption{{ID: uuid.New().String(), Name: "Mira"}}
	payload, err := json.Marshal(cached)
	assert.NoError(t, err)

	mock.ExpectGet(employee.OptionsCacheKey).SetVal(string(payload))

	repoCalled := false
	repo := &fakeEmployeeRepository{
		optionsFn: func(ctx context.Context) ([]employee.Employee, error) {
			repoCalled = true
			return nil, nil
		},
	}

	options, err := employee.NewService(repo, rdb).GetOptions(ctx)

	assert.NoError(t, err)
	assert.Equal(t, cached, options)
	assert.False(t, repoCalled)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeService_GetOptions_NoRedis(t *testing.T) {
	ctx := context.Background()

	repo := &fakeEmployeeRepository{
		optionsFn: func(ctx context.Context) ([]employee.Employee, error) {
			return []employee.Employee{{ID: uuid.New(), Name: "Dev"}}, nil
		},
	}

	options, err := employee.NewService(repo, nil).GetOptions(ctx)

	assert.NoError(t, err)
	assert.Len(t, options, 1)
	assert.Equal(t, "Dev", options[0].Name)
}
