package goal_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"fittrack/internal/api/controllers"
	"fittrack/internal/repositories"
	"fittrack/internal/services"
)

var Module = fx.Provide(
	provideGoalRepo, provideGoalService, provideGoalController,
)

func provideGoalRepo(db *gorm.DB) repositories.GoalRepositoryInterface {
	return repositories.NewGoalRepository(db)
}

func provideGoalService(goalRepo repositories.GoalRepositoryInterface) services.GoalServiceInterface {
	return services.NewGoalService(goalRepo)
}

func provideGoalController(goalService services.GoalServiceInterface) *controllers.GoalController {
	return controllers.NewGoalController(goalService)
}
