package task

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=task_repo.go -destination=mock/task_repo_mock.go -package=mock
type Repository interface {
	// AverageRatings returns the mean completion_rating over completed tasks
	// per employee. Employees with no completed tasks are absent from the map.
	AverageRatings(ctx context.Context, employeeIDs []uuid.UUID) (map[uuid.UUID]float64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

type avgRow struct {
	EmployeeID uuid.UUID
	AvgRating  float64
}

func (r *repository) AverageRatings(ctx context.Context, employeeIDs []uuid.UUID) (map[uuid.UUID]float64, error) {
	ratings := make(map[uuid.UUID]float64, len(employeeIDs))
	if len(employeeIDs) == 0 {
		return ratings, nil
	}

	var rows []avgRow
	err := r.db.WithContext(ctx).
		Model(&Task{}).
		Select("employee_id", "AVG(completion_rating) AS avg_rating").
		Where("employee_id IN ?", employeeIDs).
		Where("status = ?", StatusCompleted).
		Where("completion_rating IS NOT NULL").
		Group("employee_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		ratings[row.EmployeeID] = row.AvgRating
	}
	return ratings, nil
}
