package increment

import (
	"time"

	"github.com/google/uuid"
)

// IncrementScheme maps an integer performance rating to a raise percentage.
// Rating 0 is reserved as the default tier applied when an employee's
// rounded rating has no exact entry.
type IncrementScheme struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Rating     int       `gorm:"not null;uniqueIndex:uq_increment_scheme_rating"`
	Percentage float64   `gorm:"type:numeric(6,2);not null;default:0"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (IncrementScheme) TableName() string {
	return "increment_schemes"
}
