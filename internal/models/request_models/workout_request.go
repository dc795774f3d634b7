package request_models

type ExerciseRequest struct {
	Name     string   `json:"name" binding:"required,max=120"`
	Sets     *int     `json:"sets" binding:"omitempty,gte=0"`
	Reps     *int     `json:"reps" binding:"omitempty,gte=0"`
	Weight   *float64 `json:"weight" binding:"omitempty,gte=0"`
	Duration *float64 `json:"duration" binding:"omitempty,gte=0"`
	Distance *float64 `json:"distance" binding:"omitempty,gte=0"`
}

type CreateWorkoutRequest struct {
	Date           string            `json:"date" binding:"required"`
	Type           string            `json:"type" binding:"required,oneof=strength cardio flexibility sports other"`
	Name           string            `json:"name" binding:"required,max=120"`
	Duration       int               `json:"duration" binding:"required,gt=0"`
	CaloriesBurned *int              `json:"caloriesBurned" binding:"omitempty,gte=0"`
	Notes          *string           `json:"notes" binding:"omitempty,max=2000"`
	Exercises      []ExerciseRequest `json:"exercises" binding:"omitempty,dive"`
}

// UpdateWorkoutRequest is a partial update. A present exercises array
// replaces the stored sequence.
type UpdateWorkoutRequest struct {
	Date           *string            `json:"date"`
	Type           *string            `json:"type" binding:"omitempty,oneof=strength cardio flexibility sports other"`
	Name           *string            `json:"name" binding:"omitempty,max=120"`
	Duration       *int               `json:"duration" binding:"omitempty,gt=0"`
	CaloriesBurned *int               `json:"caloriesBurned" binding:"omitempty,gte=0"`
	Notes          *string            `json:"notes" binding:"omitempty,max=2000"`
	Exercises      *[]ExerciseRequest `json:"exercises" binding:"omitempty,dive"`
}

type ListWorkoutsQuery struct {
	Type string `form:"type" binding:"omitempty,oneof=strength cardio flexibility sports other"`
	From string `form:"from"`
	To   string `form:"to"`
	Q    string `form:"q" binding:"omitempty,max=120"`
}
