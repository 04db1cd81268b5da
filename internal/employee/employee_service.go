package employee

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gaurisankartarasia/emp-2/internal/shared/contextutil"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const OptionsCacheKey = "employees:options"

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	// GetOptions feeds the payroll UI's employee picker. Served from redis
	// when possible; concurrent cache misses are collapsed by singleflight.
	GetOptions(ctx context.Context) ([]EmployeeOption, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client) Service {
	return &service{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: zap.L().Named("employee.service"),
	}
}

func (s *service) GetOptions(ctx context.Context) ([]EmployeeOption, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, OptionsCacheKey).Result(); err == nil {
			var options []EmployeeOption
			if err := json.Unmarshal([]byte(cached), &options); err == nil {
				return options, nil
			}
		}
	}

	v, err, _ := s.sf.Do(OptionsCacheKey, func() (interface{}, error) {
		employees, err := s.repo.Options(ctx)
		if err != nil {
			return nil, err
		}

		options := make([]EmployeeOption, len(employees))
		for i, emp := range employees {
			options[i] = EmployeeOption{ID: emp.ID.String(), Name: emp.Name}
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(options); err == nil {
				s.rdb.Set(ctx, OptionsCacheKey, jsonData, 1*time.Hour)
			}
		}

		return options, nil
	})
	if err != nil {
		s.logger.Error("load employee options failed",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.Error(err),
		)
		return nil, err
	}

	return v.([]EmployeeOption), nil
}
