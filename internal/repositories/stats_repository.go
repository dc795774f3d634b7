package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "fittrack/internal/models/db_models"
)

type StatsRepository interface {
	WorkoutActivity(ctx context.Context, ownerID uuid.UUID, start, end time.Time) ([]ActivityRow, error)
	WorkoutTypeCounts(ctx context.Context, ownerID uuid.UUID, start, end time.Time) ([]TypeCountRow, error)
	GoalProgress(ctx context.Context, ownerID uuid.UUID) ([]GoalProgressRow, error)
}

type statsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

// ---------- Row helpers ----------
type ActivityRow struct {
	Date           time.Time `gorm:"column:date"`
	Duration       int64     `gorm:"column:duration"`
	CaloriesBurned *int64    `gorm:"column:calories_burned"`
}

type TypeCountRow struct {
	Type  string `gorm:"column:type"`
	Count int64  `gorm:"column:count"`
}

type GoalProgressRow struct {
	Target    float64 `gorm:"column:target"`
	Progress  float64 `gorm:"column:progress"`
	Completed bool    `gorm:"column:completed"`
}

// WorkoutActivity returns one row per workout in [start, end); day bucketing
// is left to the caller so the query stays dialect neutral.
func (r *statsRepository) WorkoutActivity(ctx context.Context, ownerID uuid.UUID, start, end time.Time) ([]ActivityRow, error) {
	var rows []ActivityRow
	err := r.db.WithContext(ctx).
		Model(&dbm.Workout{}).
		Select("date, duration, calories_burned").
		Where("user_id = ? AND date >= ? AND date < ?", ownerID, start, end).
		Order("date ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *statsRepository) WorkoutTypeCounts(ctx context.Context, ownerID uuid.UUID, start, end time.Time) ([]TypeCountRow, error) {
	var rows []TypeCountRow
	err := r.db.WithContext(ctx).
		Model(&dbm.Workout{}).
		Select("type, COUNT(*) AS count").
		Where("user_id = ? AND date >= ? AND date < ?", ownerID, start, end).
		Group("type").
		Order("count DESC, type ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *statsRepository) GoalProgress(ctx context.Context, ownerID uuid.UUID) ([]GoalProgressRow, error) {
	var rows []GoalProgressRow
	err := r.db.WithContext(ctx).
		Model(&dbm.Goal{}).
		Select("target, progress, completed").
		Where("user_id = ?", ownerID).
		Scan(&rows).Error
	return rows, err
}
