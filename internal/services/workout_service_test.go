package services

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"fittrack/internal/models/request_models"
	"fittrack/internal/repositories"
	"fittrack/internal/testutil"
	"fittrack/pkg/utils"
)

func intPtr(v int) *int { return &v }

func newWorkoutService(t *testing.T) WorkoutServiceInterface {
	t.Helper()
	return NewWorkoutService(repositories.NewWorkoutRepository(testutil.NewDB(t)))
}

func runRequest() request_models.CreateWorkoutRequest {
	return request_models.CreateWorkoutRequest{
		Date:     "2024-01-01",
		Type:     "cardio",
		Name:     "Run",
		Duration: 30,
	}
}

func TestWorkoutService_CreateAndList(t *testing.T) {
	svc := newWorkoutService(t)
	ctx := context.Background()
	owner := uuid.New()

	req := runRequest()
	req.Notes = strPtr("   ")
	req.Exercises = []request_models.ExerciseRequest{
		{Name: "Warm-up", Duration: floatPtr(5)},
		{Name: "Intervals", Sets: intPtr(6)},
	}
	created, err := svc.CreateWorkout(ctx, owner, req)
	require.NoError(t, err)
	assert.Equal(t, "Run", created.Name)
	assert.Nil(t, created.Notes)
	require.Len(t, created.Exercises, 2)
	assert.Equal(t, "Warm-up", created.Exercises[0].Name)

	list, err := svc.ListWorkouts(ctx, owner, request_models.ListWorkoutsQuery{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)

	others, err := svc.ListWorkouts(ctx, uuid.New(), request_models.ListWorkoutsQuery{})
	require.NoError(t, err)
	assert.Empty(t, others)
}

func TestWorkoutService_ListToIsInclusive(t *testing.T) {
	svc := newWorkoutService(t)
	ctx := context.Background()
	owner := uuid.New()

	_, err := svc.CreateWorkout(ctx, owner, runRequest())
	require.NoError(t, err)

	list, err := svc.ListWorkouts(ctx, owner, request_models.ListWorkoutsQuery{From: "2024-01-01", To: "2024-01-01"})
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = svc.ListWorkouts(ctx, owner, request_models.ListWorkoutsQuery{From: "2024-02-01", To: "2024-01-01"})
	var verr *utils.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "from", verr.Field)
}

func TestWorkoutService_CreateValidation(t *testing.T) {
	svc := newWorkoutService(t)
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*request_models.CreateWorkoutRequest)
		field  string
	}{
		{"bad date", func(r *request_models.CreateWorkoutRequest) { r.Date = "yesterday" }, "date"},
		{"blank name", func(r *request_models.CreateWorkoutRequest) { r.Name = "  " }, "name"},
		{"blank exercise name", func(r *request_models.CreateWorkoutRequest) {
			r.Exercises = []request_models.ExerciseRequest{{Name: "ok"}, {Name: ""}}
		}, "exercises[1].name"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := runRequest()
			tc.mutate(&req)
			_, err := svc.CreateWorkout(ctx, uuid.New(), req)
			var verr *utils.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.field, verr.Field)
		})
	}
}

func TestWorkoutService_UpdateIsIdempotentAndOwnerScoped(t *testing.T) {
	svc := newWorkoutService(t)
	ctx := context.Background()
	owner := uuid.New()

	created, err := svc.CreateWorkout(ctx, owner, runRequest())
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	patch := request_models.UpdateWorkoutRequest{Duration: intPtr(45), Name: strPtr("Long run")}
	first, err := svc.UpdateWorkout(ctx, owner, id, patch)
	require.NoError(t, err)
	second, err := svc.UpdateWorkout(ctx, owner, id, patch)
	require.NoError(t, err)

	assert.Equal(t, 45, second.Duration)
	assert.Equal(t, first.Name, second.Name)
	assert.Equal(t, first.Date, second.Date)
	assert.Equal(t, first.Exercises, second.Exercises)

	_, err = svc.UpdateWorkout(ctx, uuid.New(), id, patch)
	assert.ErrorIs(t, err, utils.ErrWorkoutNotFound)

	assert.ErrorIs(t, svc.DeleteWorkout(ctx, uuid.New(), id), utils.ErrWorkoutNotFound)
	require.NoError(t, svc.DeleteWorkout(ctx, owner, id))

	_, err = svc.GetWorkout(ctx, owner, id)
	assert.ErrorIs(t, err, utils.ErrWorkoutNotFound)
}

func TestWorkoutService_StoreFailureIsDatabaseError(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "workouts"`)).WillReturnError(errors.New("connection reset"))

	svc := NewWorkoutService(repositories.NewWorkoutRepository(db))
	_, err = svc.GetWorkout(context.Background(), uuid.New(), uuid.New())

	assert.ErrorIs(t, err, utils.ErrDatabaseError)
	assert.NotErrorIs(t, err, utils.ErrWorkoutNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
