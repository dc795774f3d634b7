package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"fittrack/internal/models/db_models"
	"fittrack/internal/models/request_models"
	"fittrack/internal/models/response_models"
	"fittrack/internal/repositories"
	"fittrack/pkg/utils"
)

type GoalServiceInterface interface {
	ListGoals(ctx context.Context, ownerID uuid.UUID, query request_models.ListGoalsQuery) ([]response_models.GoalResponse, error)
	GetGoal(ctx context.Context, ownerID, goalID uuid.UUID) (*response_models.GoalResponse, error)
	CreateGoal(ctx context.Context, ownerID uuid.UUID, request request_models.CreateGoalRequest) (*response_models.GoalResponse, error)
	UpdateGoal(ctx context.Context, ownerID, goalID uuid.UUID, request request_models.UpdateGoalRequest) (*response_models.GoalResponse, error)
	DeleteGoal(ctx context.Context, ownerID, goalID uuid.UUID) error
}

type GoalService struct {
	goalRepo repositories.GoalRepositoryInterface
}

func NewGoalService(goalRepo repositories.GoalRepositoryInterface) GoalServiceInterface {
	return &GoalService{goalRepo: goalRepo}
}

func (s *GoalService) ListGoals(ctx context.Context, ownerID uuid.UUID, query request_models.ListGoalsQuery) ([]response_models.GoalResponse, error) {
	filter := repositories.GoalFilter{
		Type:   db_models.GoalType(query.Type),
		Search: strings.TrimSpace(query.Q),
	}
	switch query.Status {
	case "completed":
		completed := true
		filter.Completed = &completed
	case "in-progress":
		completed := false
		filter.Completed = &completed
	}

	goals, err := s.goalRepo.ListForAccount(ctx, ownerID, filter)
	if err != nil {
		return nil, utils.DatabaseError("list goals", err)
	}

	return response_models.NewGoalListResponse(goals), nil
}

func (s *GoalService) GetGoal(ctx context.Context, ownerID, goalID uuid.UUID) (*response_models.GoalResponse, error) {
	goal, err := s.goalRepo.GetForAccount(ctx, ownerID, goalID)
	if err != nil {
		return nil, utils.DatabaseError("get goal", err)
	}
	if goal == nil {
		return nil, utils.ErrGoalNotFound
	}

	resp := response_models.NewGoalResponse(goal)
	return &resp, nil
}

func (s *GoalService) CreateGoal(ctx context.Context, ownerID uuid.UUID, request request_models.CreateGoalRequest) (*response_models.GoalResponse, error) {
	name := strings.TrimSpace(request.Name)
	if name == "" {
		return nil, utils.NewValidationError("name", "name is required")
	}
	unit := strings.TrimSpace(request.Unit)
	if unit == "" {
		return nil, utils.NewValidationError("unit", "unit is required")
	}
	if *request.Target <= 0 {
		return nil, utils.ErrInvalidGoalTarget
	}

	deadline, err := utils.ParseDate(request.Deadline)
	if err != nil {
		return nil, utils.NewValidationError("deadline", "deadline must be an ISO-8601 date")
	}

	goal := &db_models.Goal{
		Name:     name,
		Type:     db_models.GoalType(request.Type),
		Target:   *request.Target,
		Unit:     unit,
		Deadline: deadline,
	}
	if request.Progress != nil {
		goal.Progress = *request.Progress
	}
	if request.Completed != nil {
		goal.Completed = *request.Completed
	}

	if err := s.goalRepo.CreateForAccount(ctx, ownerID, goal); err != nil {
		return nil, utils.DatabaseError("create goal", err)
	}

	resp := response_models.NewGoalResponse(goal)
	return &resp, nil
}

func (s *GoalService) UpdateGoal(ctx context.Context, ownerID, goalID uuid.UUID, request request_models.UpdateGoalRequest) (*response_models.GoalResponse, error) {
	fields := map[string]interface{}{}

	if request.Name != nil {
		name := strings.TrimSpace(*request.Name)
		if name == "" {
			return nil, utils.NewValidationError("name", "name is required")
		}
		fields["name"] = name
	}
	if request.Type != nil {
		fields["type"] = db_models.GoalType(*request.Type)
	}
	if request.Target != nil {
		if *request.Target <= 0 {
			return nil, utils.ErrInvalidGoalTarget
		}
		fields["target"] = *request.Target
	}
	if request.Unit != nil {
		unit := strings.TrimSpace(*request.Unit)
		if unit == "" {
			return nil, utils.NewValidationError("unit", "unit is required")
		}
		fields["unit"] = unit
	}
	if request.Deadline != nil {
		deadline, err := utils.ParseDate(*request.Deadline)
		if err != nil {
			return nil, utils.NewValidationError("deadline", "deadline must be an ISO-8601 date")
		}
		fields["deadline"] = deadline
	}
	if request.Progress != nil {
		fields["progress"] = *request.Progress
	}
	if request.Completed != nil {
		fields["completed"] = *request.Completed
	}

	goal, err := s.goalRepo.UpdateForAccount(ctx, ownerID, goalID, fields)
	if err != nil {
		return nil, utils.DatabaseError("update goal", err)
	}
	if goal == nil {
		return nil, utils.ErrGoalNotFound
	}

	resp := response_models.NewGoalResponse(goal)
	return &resp, nil
}

func (s *GoalService) DeleteGoal(ctx context.Context, ownerID, goalID uuid.UUID) error {
	deleted, err := s.goalRepo.DeleteForAccount(ctx, ownerID, goalID)
	if err != nil {
		return utils.DatabaseError("delete goal", err)
	}
	if !deleted {
		return utils.ErrGoalNotFound
	}
	return nil
}
