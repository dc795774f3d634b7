package request_models

type CreateGoalRequest struct {
	Name      string   `json:"name" binding:"required,max=120"`
	Type      string   `json:"type" binding:"required,oneof=weight workout distance strength custom"`
	Target    *float64 `json:"target" binding:"required"`
	Unit      string   `json:"unit" binding:"required,max=32"`
	Deadline  string   `json:"deadline" binding:"required"`
	Progress  *float64 `json:"progress" binding:"omitempty,gte=0"`
	Completed *bool    `json:"completed"`
}

type UpdateGoalRequest struct {
	Name      *string  `json:"name" binding:"omitempty,max=120"`
	Type      *string  `json:"type" binding:"omitempty,oneof=weight workout distance strength custom"`
	Target    *float64 `json:"target"`
	Unit      *string  `json:"unit" binding:"omitempty,max=32"`
	Deadline  *string  `json:"deadline"`
	Progress  *float64 `json:"progress" binding:"omitempty,gte=0"`
	Completed *bool    `json:"completed"`
}

type ListGoalsQuery struct {
	Status string `form:"status" binding:"omitempty,oneof=completed in-progress"`
	Type   string `form:"type" binding:"omitempty,oneof=weight workout distance strength custom"`
	Q      string `form:"q" binding:"omitempty,max=120"`
}
