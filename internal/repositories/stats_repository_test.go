package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fittrack/internal/models/db_models"
	"fittrack/internal/testutil"
)

func TestStatsRepository_WorkoutActivityWindow(t *testing.T) {
	db := testutil.NewDB(t)
	workouts := NewWorkoutRepository(db)
	stats := NewStatsRepository(db)
	ctx := context.Background()
	owner := uuid.New()

	burn := 300
	inWindow := newWorkout("2024-01-02", "in")
	inWindow.CaloriesBurned = &burn
	require.NoError(t, workouts.CreateForAccount(ctx, owner, inWindow))
	require.NoError(t, workouts.CreateForAccount(ctx, owner, newWorkout("2024-01-07", "end is exclusive")))
	require.NoError(t, workouts.CreateForAccount(ctx, owner, newWorkout("2023-12-31", "before")))
	require.NoError(t, workouts.CreateForAccount(ctx, uuid.New(), newWorkout("2024-01-03", "foreign")))

	rows, err := stats.WorkoutActivity(ctx, owner, day("2024-01-01"), day("2024-01-07"))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(45), rows[0].Duration)
	require.NotNil(t, rows[0].CaloriesBurned)
	assert.Equal(t, int64(300), *rows[0].CaloriesBurned)
}

func TestStatsRepository_TypeCountsAndGoals(t *testing.T) {
	db := testutil.NewDB(t)
	workouts := NewWorkoutRepository(db)
	goals := NewGoalRepository(db)
	stats := NewStatsRepository(db)
	ctx := context.Background()
	owner := uuid.New()

	for _, d := range []string{"2024-01-01", "2024-01-02"} {
		w := newWorkout(d, "run")
		w.Type = db_models.WorkoutCardio
		require.NoError(t, workouts.CreateForAccount(ctx, owner, w))
	}
	require.NoError(t, workouts.CreateForAccount(ctx, owner, newWorkout("2024-01-03", "lift")))

	counts, err := stats.WorkoutTypeCounts(ctx, owner, day("2024-01-01"), day("2024-01-08"))
	require.NoError(t, err)
	require.Len(t, counts, 2)
	assert.Equal(t, TypeCountRow{Type: "cardio", Count: 2}, counts[0])
	assert.Equal(t, TypeCountRow{Type: "strength", Count: 1}, counts[1])

	g := newGoal("Lose 5kg", "2024-12-31")
	g.Progress = 2
	require.NoError(t, goals.CreateForAccount(ctx, owner, g))

	progress, err := stats.GoalProgress(ctx, owner)
	require.NoError(t, err)
	require.Len(t, progress, 1)
	assert.Equal(t, GoalProgressRow{Target: 5, Progress: 2}, progress[0])
}
