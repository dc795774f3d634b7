package controllers_fx

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"fittrack/internal/api"
	"fittrack/internal/api/controllers"
	"fittrack/internal/config"
	"fittrack/internal/services"
)

var Module = fx.Options(
	fx.Provide(provideHealthController),
	fx.Provide(provideRouter))

func provideHealthController(db *gorm.DB, logger *zap.Logger) (*controllers.HealthController, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	return controllers.NewHealthController(sqlDB, logger), nil
}

type routerIn struct {
	fx.In

	Config   *config.Config
	Logger   *zap.Logger
	Registry *prometheus.Registry
	Accounts services.AccountServiceInterface

	AccountController *controllers.AccountController
	WorkoutController *controllers.WorkoutController
	GoalController    *controllers.GoalController
	StatsController   *controllers.StatsController
	HealthController  *controllers.HealthController
}

func provideRouter(in routerIn) *gin.Engine {
	if !in.Config.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	return api.NewRouter(api.RouterParams{
		Logger:             in.Logger,
		Registry:           in.Registry,
		CORSAllowedOrigins: in.Config.CORSAllowedOrigins,
		Authenticator:      in.Accounts,
		Accounts:           in.AccountController,
		Workouts:           in.WorkoutController,
		Goals:              in.GoalController,
		Stats:              in.StatsController,
		Health:             in.HealthController,
	})
}
