package client

import (
	"math"
	"time"
)

type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type AuthResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type Exercise struct {
	Name     string   `json:"name"`
	Sets     *int     `json:"sets,omitempty"`
	Reps     *int     `json:"reps,omitempty"`
	Weight   *float64 `json:"weight,omitempty"`
	Duration *float64 `json:"duration,omitempty"`
	Distance *float64 `json:"distance,omitempty"`
}

type Workout struct {
	ID             string     `json:"id"`
	UserID         string     `json:"userId"`
	Date           time.Time  `json:"date"`
	Type           string     `json:"type"`
	Name           string     `json:"name"`
	Duration       int        `json:"duration"`
	CaloriesBurned *int       `json:"caloriesBurned,omitempty"`
	Notes          *string    `json:"notes,omitempty"`
	Exercises      []Exercise `json:"exercises"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// WorkoutInput is the body of a create; on update only non-zero pointer
// fields are sent.
type WorkoutInput struct {
	Date           string     `json:"date"`
	Type           string     `json:"type"`
	Name           string     `json:"name"`
	Duration       int        `json:"duration"`
	CaloriesBurned *int       `json:"caloriesBurned,omitempty"`
	Notes          *string    `json:"notes,omitempty"`
	Exercises      []Exercise `json:"exercises,omitempty"`
}

type WorkoutPatch struct {
	Date           *string     `json:"date,omitempty"`
	Type           *string     `json:"type,omitempty"`
	Name           *string     `json:"name,omitempty"`
	Duration       *int        `json:"duration,omitempty"`
	CaloriesBurned *int        `json:"caloriesBurned,omitempty"`
	Notes          *string     `json:"notes,omitempty"`
	Exercises      *[]Exercise `json:"exercises,omitempty"`
}

type WorkoutFilter struct {
	Type   string
	From   string
	To     string
	Search string
}

type Goal struct {
	ID              string    `json:"id"`
	UserID          string    `json:"userId"`
	Name            string    `json:"name"`
	Type            string    `json:"type"`
	Target          float64   `json:"target"`
	Unit            string    `json:"unit"`
	Deadline        time.Time `json:"deadline"`
	Progress        float64   `json:"progress"`
	ProgressPercent int       `json:"progressPercent"`
	Completed       bool      `json:"completed"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type GoalInput struct {
	Name     string   `json:"name"`
	Type     string   `json:"type"`
	Target   float64  `json:"target"`
	Unit     string   `json:"unit"`
	Deadline string   `json:"deadline"`
	Progress *float64 `json:"progress,omitempty"`
}

type GoalPatch struct {
	Name      *string  `json:"name,omitempty"`
	Type      *string  `json:"type,omitempty"`
	Target    *float64 `json:"target,omitempty"`
	Unit      *string  `json:"unit,omitempty"`
	Deadline  *string  `json:"deadline,omitempty"`
	Progress  *float64 `json:"progress,omitempty"`
	Completed *bool    `json:"completed,omitempty"`
}

type GoalFilter struct {
	Status string // "completed" or "in-progress"
	Type   string
	Search string
}

// ProfilePatch changes the password only when CurrentPassword matches.
type ProfilePatch struct {
	Name            *string `json:"name,omitempty"`
	Email           *string `json:"email,omitempty"`
	Password        *string `json:"password,omitempty"`
	CurrentPassword *string `json:"currentPassword,omitempty"`
}

type DailyActivity struct {
	Date     string `json:"date"`
	Minutes  int64  `json:"minutes"`
	Calories int64  `json:"calories"`
}

type TypeCount struct {
	Type  string `json:"type"`
	Count int64  `json:"count"`
}

type Summary struct {
	From           time.Time       `json:"from"`
	To             time.Time       `json:"to"`
	Days           int             `json:"days"`
	TotalWorkouts  int64           `json:"totalWorkouts"`
	WorkoutDays    int             `json:"workoutDays"`
	ActiveMinutes  int64           `json:"activeMinutes"`
	AverageMinutes int64           `json:"averageMinutesPerWorkoutDay"`
	CaloriesBurned int64           `json:"caloriesBurned"`
	ByType         []TypeCount     `json:"byType"`
	Daily          []DailyActivity `json:"daily"`
	Goals          struct {
		Total              int64 `json:"total"`
		Completed          int64 `json:"completed"`
		AverageProgressPct int   `json:"averageProgressPercent"`
	} `json:"goals"`
}

// ProgressPercent is progress/target as a whole percentage, uncapped.
// A non-positive target yields 0.
func ProgressPercent(g Goal) int {
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
