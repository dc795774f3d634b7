package db_models

import (
	"math"
	"time"

	"github.com/google/uuid"
)

type GoalType string

const (
	GoalWeight   GoalType = "weight"
	GoalWorkout  GoalType = "workout"
	GoalDistance GoalType = "distance"
	GoalStrength GoalType = "strength"
	GoalCustom   GoalType = "custom"
)

type Goal struct {
	BaseModel
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_goals_user_deadline,priority:1"`
	Name      string    `gorm:"not null"`
	Type      GoalType  `gorm:"type:varchar(16);not null"`
	Target    float64   `gorm:"not null"`
	Unit      string    `gorm:"not null"`
	Deadline  time.Time `gorm:"not null;index:idx_goals_user_deadline,priority:2"`
	Progress  float64   `gorm:"not null;default:0"`
	Completed bool      `gorm:"not null;default:false"`
}

// ProgressPercent is progress/target as a rounded percentage. Targets are
// validated positive on write; a non-positive target reads as 0%.
func (g *Goal) ProgressPercent() int {
	if g.Target <= 0 {
		return 0
	}
	pct := math.Round(g.Progress / g.Target * 100)
	if pct > math.MaxInt32 {
		return math.MaxInt32
	}
	if pct < 0 {
		return 0
	}
	return int(pct)
}
