package response_models

import (
	"time"

	"fittrack/internal/models/db_models"
)

type GoalResponse struct {
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

func NewGoalResponse(g *db_models.Goal) GoalResponse {
	return GoalResponse{
		ID:              g.ID.String(),
		UserID:          g.UserID.String(),
		Name:            g.Name,
		Type:            string(g.Type),
		Target:          g.Target,
		Unit:            g.Unit,
		Deadline:        g.Deadline.UTC(),
		Progress:        g.Progress,
		ProgressPercent: g.ProgressPercent(),
		Completed:       g.Completed,
		CreatedAt:       g.CreatedAt,
		UpdatedAt:       g.UpdatedAt,
	}
}

func NewGoalListResponse(goals []db_models.Goal) []GoalResponse {
	out := make([]GoalResponse, 0, len(goals))
	for i := range goals {
		out = append(out, NewGoalResponse(&goals[i]))
	}
	return out
}
