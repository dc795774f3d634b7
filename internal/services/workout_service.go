package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"fittrack/internal/models/db_models"
	"fittrack/internal/models/request_models"
	"fittrack/internal/models/response_models"
	"fittrack/internal/repositories"
	"fittrack/pkg/utils"
)

type WorkoutServiceInterface interface {
	ListWorkouts(ctx context.Context, ownerID uuid.UUID, query request_models.ListWorkoutsQuery) ([]response_models.WorkoutResponse, error)
	GetWorkout(ctx context.Context, ownerID, workoutID uuid.UUID) (*response_models.WorkoutResponse, error)
	CreateWorkout(ctx context.Context, ownerID uuid.UUID, request request_models.CreateWorkoutRequest) (*response_models.WorkoutResponse, error)
	UpdateWorkout(ctx context.Context, ownerID, workoutID uuid.UUID, request request_models.UpdateWorkoutRequest) (*response_models.WorkoutResponse, error)
	DeleteWorkout(ctx context.Context, ownerID, workoutID uuid.UUID) error
}

type WorkoutService struct {
	workoutRepo repositories.WorkoutRepository
}

func NewWorkoutService(workoutRepo repositories.WorkoutRepository) WorkoutServiceInterface {
	return &WorkoutService{workoutRepo: workoutRepo}
}

func (s *WorkoutService) ListWorkouts(ctx context.Context, ownerID uuid.UUID, query request_models.ListWorkoutsQuery) ([]response_models.WorkoutResponse, error) {
	filter := repositories.WorkoutFilter{
		Type:   db_models.WorkoutType(query.Type),
		Search: strings.TrimSpace(query.Q),
	}

	if query.From != "" {
		from, err := utils.ParseDate(query.From)
		if err != nil {
			return nil, utils.NewValidationError("from", "from must be a date (YYYY-MM-DD)")
		}
		from = utils.StartOfDayUTC(from)
		filter.From = &from
	}
	if query.To != "" {
		to, err := utils.ParseDate(query.To)
		if err != nil {
			return nil, utils.NewValidationError("to", "to must be a date (YYYY-MM-DD)")
		}
		// inclusive of the whole "to" day
		to = utils.StartOfDayUTC(to).AddDate(0, 0, 1)
		filter.To = &to
	}
	if filter.From != nil && filter.To != nil && !filter.From.Before(*filter.To) {
		return nil, utils.NewValidationError("from", "from must not be after to")
	}

	workouts, err := s.workoutRepo.ListForAccount(ctx, ownerID, filter)
	if err != nil {
		return nil, utils.DatabaseError("list workouts", err)
	}

	return response_models.NewWorkoutListResponse(workouts), nil
}

func (s *WorkoutService) GetWorkout(ctx context.Context, ownerID, workoutID uuid.UUID) (*response_models.WorkoutResponse, error) {
	workout, err := s.workoutRepo.GetForAccount(ctx, ownerID, workoutID)
	if err != nil {
		return nil, utils.DatabaseError("get workout", err)
	}
	if workout == nil {
		return nil, utils.ErrWorkoutNotFound
	}

	resp := response_models.NewWorkoutResponse(workout)
	return &resp, nil
}

func (s *WorkoutService) CreateWorkout(ctx context.Context, ownerID uuid.UUID, request request_models.CreateWorkoutRequest) (*response_models.WorkoutResponse, error) {
	date, err := utils.ParseDate(request.Date)
	if err != nil {
		return nil, utils.NewValidationError("date", "date must be an ISO-8601 date")
	}

	name := strings.TrimSpace(request.Name)
	if name == "" {
		return nil, utils.NewValidationError("name", "name is required")
	}

	exercises, err := toExercises(request.Exercises)
	if err != nil {
		return nil, err
	}

	workout := &db_models.Workout{
		Date:           date,
		Type:           db_models.WorkoutType(request.Type),
		Name:           name,
		Duration:       request.Duration,
		CaloriesBurned: request.CaloriesBurned,
		Notes:          trimmedOrNil(request.Notes),
		Exercises:      exercises,
	}

	if err := s.workoutRepo.CreateForAccount(ctx, ownerID, workout); err != nil {
		return nil, utils.DatabaseError("create workout", err)
	}

	resp := response_models.NewWorkoutResponse(workout)
	return &resp, nil
}

func (s *WorkoutService) UpdateWorkout(ctx context.Context, ownerID, workoutID uuid.UUID, request request_models.UpdateWorkoutRequest) (*response_models.WorkoutResponse, error) {
	fields := map[string]interface{}{}

	if request.Date != nil {
		date, err := utils.ParseDate(*request.Date)
		if err != nil {
			return nil, utils.NewValidationError("date", "date must be an ISO-8601 date")
		}
		fields["date"] = date
	}
	if request.Type != nil {
		fields["type"] = db_models.WorkoutType(*request.Type)
	}
	if request.Name != nil {
		name := strings.TrimSpace(*request.Name)
		if name == "" {
			return nil, utils.NewValidationError("name", "name is required")
		}
		fields["name"] = name
	}
	if request.Duration != nil {
		fields["duration"] = *request.Duration
	}
	if request.CaloriesBurned != nil {
		fields["calories_burned"] = *request.CaloriesBurned
	}
	if request.Notes != nil {
		fields["notes"] = trimmedOrNil(request.Notes)
	}

	var exercises *[]db_models.Exercise
	if request.Exercises != nil {
		converted, err := toExercises(*request.Exercises)
		if err != nil {
			return nil, err
		}
		exercises = &converted
	}

	workout, err := s.workoutRepo.UpdateForAccount(ctx, ownerID, workoutID, fields, exercises)
	if err != nil {
		return nil, utils.DatabaseError("update workout", err)
	}
	if workout == nil {
		return nil, utils.ErrWorkoutNotFound
	}

	resp := response_models.NewWorkoutResponse(workout)
	return &resp, nil
}

func (s *WorkoutService) DeleteWorkout(ctx context.Context, ownerID, workoutID uuid.UUID) error {
	deleted, err := s.workoutRepo.DeleteForAccount(ctx, ownerID, workoutID)
	if err != nil {
		return utils.DatabaseError("delete workout", err)
	}
	if !deleted {
		return utils.ErrWorkoutNotFound
	}
	return nil
}

func toExercises(reqs []request_models.ExerciseRequest) ([]db_models.Exercise, error) {
	exercises := make([]db_models.Exercise, 0, len(reqs))
	for i, e := range reqs {
		name := strings.TrimSpace(e.Name)
		if name == "" {
			field := fmt.Sprintf("exercises[%d].name", i)
			return nil, utils.NewValidationError(field, field+" is required")
		}
		exercises = append(exercises, db_models.Exercise{
			Position: i,
			Name:     name,
			Sets:     e.Sets,
			Reps:     e.Reps,
			Weight:   e.Weight,
			Duration: e.Duration,
			Distance: e.Distance,
		})
	}
	return exercises, nil
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
