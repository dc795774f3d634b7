package workout_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"fittrack/internal/api/controllers"
	"fittrack/internal/repositories"
	"fittrack/internal/services"
)

var Module = fx.Provide(
	provideWorkoutRepo, provideWorkoutService, provideWorkoutController,
)

func provideWorkoutRepo(db *gorm.DB) repositories.WorkoutRepository {
	return repositories.NewWorkoutRepository(db)
}

func provideWorkoutService(workoutRepo repositories.WorkoutRepository) services.WorkoutServiceInterface {
	return services.NewWorkoutService(workoutRepo)
}

func provideWorkoutController(workoutService services.WorkoutServiceInterface) *controllers.WorkoutController {
	return controllers.NewWorkoutController(workoutService)
}
