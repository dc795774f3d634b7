package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WorkoutType string

const (
	WorkoutStrength    WorkoutType = "strength"
	WorkoutCardio      WorkoutType = "cardio"
	WorkoutFlexibility WorkoutType = "flexibility"
	WorkoutSports      WorkoutType = "sports"
	WorkoutOther       WorkoutType = "other"
)

type Workout struct {
	BaseModel
	UserID         uuid.UUID   `gorm:"type:uuid;not null;index:idx_workouts_user_date,priority:1"`
	Date           time.Time   `gorm:"not null;index:idx_workouts_user_date,priority:2"`
	Type           WorkoutType `gorm:"type:varchar(16);not null"`
	Name           string      `gorm:"not null"`
	Duration       int         `gorm:"not null"`
	CaloriesBurned *int
	Notes          *string
	Exercises      []Exercise `gorm:"foreignKey:WorkoutID;constraint:OnDelete:CASCADE"`
}

// Exercise rows only exist as part of their workout; Position keeps the
// order the client sent them in.
type Exercise struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	WorkoutID uuid.UUID `gorm:"type:uuid;not null;index"`
	Position  int       `gorm:"not null"`
	Name      string    `gorm:"not null"`
	Sets      *int
	Reps      *int
	Weight    *float64
	Duration  *float64
	Distance  *float64
}

func (Exercise) TableName() string {
	return "workout_exercises"
}

func (e *Exercise) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
