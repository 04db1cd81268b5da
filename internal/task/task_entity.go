package task

import (
	"time"

	"github.com/google/uuid"
)

const StatusCompleted = "completed"

type Task struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	Title            string     `gorm:"type:varchar(200);not null"`
	Status           string     `gorm:"type:varchar(20);not null;default:'assigned';index"`
	CompletionRating *float64   // set only when status is completed
	CompletedAt      *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (Task) TableName() string {
	return "tasks"
}
