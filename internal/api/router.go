package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"fittrack/internal/api/controllers"
	"fittrack/pkg/middleware"
	"fittrack/pkg/utils"
)

type RouterParams struct {
	Logger             *zap.Logger
	Registry           *prometheus.Registry
	CORSAllowedOrigins []string
	Authenticator      middleware.Authenticator

	Accounts *controllers.AccountController
	Workouts *controllers.WorkoutController
	Goals    *controllers.GoalController
	Stats    *controllers.StatsController
	Health   *controllers.HealthController
}

func NewRouter(p RouterParams) *gin.Engine {
	utils.UseJSONFieldNames()

	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(p.Logger))
	r.Use(middleware.Recovery(p.Logger))
	if p.Registry != nil {
		r.Use(middleware.NewHTTPMetrics(p.Registry).Handler())
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(p.Registry, promhttp.HandlerOpts{})))
	}
	r.Use(middleware.CORSMiddleware(p.CORSAllowedOrigins))

	RegisterRoutes(r, p)

	return r
}

func RegisterRoutes(r *gin.Engine, p RouterParams) {
	if p.Health != nil {
		r.GET("/healthz", p.Health.Health)
	}

	api := r.Group("/api")
	auth := middleware.JWTAuthMiddleware(p.Authenticator)

	users := api.Group("/users")
	users.POST("/register", p.Accounts.Register)
	users.POST("/login", p.Accounts.Login)
	users.GET("/profile", auth, p.Accounts.GetProfile)
	users.PATCH("/profile", auth, p.Accounts.UpdateProfile)

	workouts := api.Group("/workouts", auth)
	workouts.GET("", p.Workouts.ListWorkouts)
	workouts.POST("", p.Workouts.CreateWorkout)
	workouts.GET("/:id", p.Workouts.GetWorkout)
	workouts.PATCH("/:id", p.Workouts.UpdateWorkout)
	workouts.DELETE("/:id", p.Workouts.DeleteWorkout)

	goals := api.Group("/goals", auth)
	goals.GET("", p.Goals.ListGoals)
	goals.POST("", p.Goals.CreateGoal)
	goals.GET("/:id", p.Goals.GetGoal)
	goals.PATCH("/:id", p.Goals.UpdateGoal)
	goals.DELETE("/:id", p.Goals.DeleteGoal)

	stats := api.Group("/stats", auth)
	stats.GET("/summary", p.Stats.Summary)
}
