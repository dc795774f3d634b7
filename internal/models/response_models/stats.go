package response_models

import "time"

type DailyActivity struct {
	Date     string `json:"date"`
	Minutes  int64  `json:"minutes"`
	Calories int64  `json:"calories"`
}

type TypeCount struct {
	Type  string `json:"type"`
	Count int64  `json:"count"`
}

type GoalSummary struct {
	Total              int64 `json:"total"`
	Completed          int64 `json:"completed"`
	AverageProgressPct int   `json:"averageProgressPercent"`
}

type ActivitySummary struct {
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
	Goals          GoalSummary     `json:"goals"`
}
