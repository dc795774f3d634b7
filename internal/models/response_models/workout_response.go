package response_models

import (
	"time"

	"fittrack/internal/models/db_models"
)

type ExerciseResponse struct {
	Name     string   `json:"name"`
	Sets     *int     `json:"sets,omitempty"`
	Reps     *int     `json:"reps,omitempty"`
	Weight   *float64 `json:"weight,omitempty"`
	Duration *float64 `json:"duration,omitempty"`
	Distance *float64 `json:"distance,omitempty"`
}

type WorkoutResponse struct {
	ID             string             `json:"id"`
	UserID         string             `json:"userId"`
	Date           time.Time          `json:"date"`
	Type           string             `json:"type"`
	Name           string             `json:"name"`
	Duration       int                `json:"duration"`
	CaloriesBurned *int               `json:"caloriesBurned,omitempty"`
	Notes          *string            `json:"notes,omitempty"`
	Exercises      []ExerciseResponse `json:"exercises"`
	CreatedAt      time.Time          `json:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt"`
}

func NewWorkoutResponse(w *db_models.Workout) WorkoutResponse {
	exercises := make([]ExerciseResponse, 0, len(w.Exercises))
	for _, e := range w.Exercises {
		exercises = append(exercises, ExerciseResponse{
			Name:     e.Name,
			Sets:     e.Sets,
			Reps:     e.Reps,
			Weight:   e.Weight,
			Duration: e.Duration,
			Distance: e.Distance,
		})
	}

	return WorkoutResponse{
		ID:             w.ID.String(),
		UserID:         w.UserID.String(),
		Date:           w.Date.UTC(),
		Type:           string(w.Type),
		Name:           w.Name,
		Duration:       w.Duration,
		CaloriesBurned: w.CaloriesBurned,
		Notes:          w.Notes,
		Exercises:      exercises,
		CreatedAt:      w.CreatedAt,
		UpdatedAt:      w.UpdatedAt,
	}
}

func NewWorkoutListResponse(workouts []db_models.Workout) []WorkoutResponse {
	out := make([]WorkoutResponse, 0, len(workouts))
	for i := range workouts {
		out = append(out, NewWorkoutResponse(&workouts[i]))
	}
	return out
}
