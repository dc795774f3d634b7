package stats_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"fittrack/internal/api/controllers"
	"fittrack/internal/repositories"
	"fittrack/internal/services"
)

var Module = fx.Provide(
	provideStatsRepo, provideStatsService, provideStatsController,
)

func provideStatsRepo(db *gorm.DB) repositories.StatsRepository {
	return repositories.NewStatsRepository(db)
}

func provideStatsService(statsRepo repositories.StatsRepository) services.StatsService {
	return services.NewStatsService(statsRepo)
}

func provideStatsController(statsService services.StatsService) *controllers.StatsController {
	return controllers.NewStatsController(statsService)
}
