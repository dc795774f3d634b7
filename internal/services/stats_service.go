package services

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"

	resp "fittrack/internal/models/response_models"
	"fittrack/internal/repositories"
	"fittrack/pkg/utils"
)

const DefaultSummaryDays = 7

type StatsService interface {
	BuildSummary(ctx context.Context, ownerID uuid.UUID, days int) (*resp.ActivitySummary, error)
}

type statsService struct {
	repo repositories.StatsRepository
	now  func() time.Time
}

func NewStatsService(repo repositories.StatsRepository) StatsService {
	return &statsService{repo: repo, now: time.Now}
}

// BuildSummary aggregates the caller's last `days` calendar days (UTC),
// today included.
func (s *statsService) BuildSummary(ctx context.Context, ownerID uuid.UUID, days int) (*resp.ActivitySummary, error) {
	if days <= 0 {
		days = DefaultSummaryDays
	}

	end := utils.StartOfDayUTC(s.now()).AddDate(0, 0, 1)
	start := end.AddDate(0, 0, -days)

	// ---------- Workouts ----------
	rows, err := s.repo.WorkoutActivity(ctx, ownerID, start, end)
	if err != nil {
		return nil, utils.DatabaseError("workout activity", err)
	}

	daily := make([]resp.DailyActivity, days)
	for i := range daily {
		daily[i].Date = utils.FormatDate(start.AddDate(0, 0, i))
	}

	summary := &resp.ActivitySummary{
		From: start,
		To:   end,
		Days: days,
	}
	for _, r := range rows {
		idx := int(utils.StartOfDayUTC(r.Date).Sub(start).Hours() / 24)
		if idx < 0 || idx >= days {
			continue
		}
		daily[idx].Minutes += r.Duration
		summary.TotalWorkouts++
		summary.ActiveMinutes += r.Duration
		if r.CaloriesBurned != nil {
			daily[idx].Calories += *r.CaloriesBurned
			summary.CaloriesBurned += *r.CaloriesBurned
		}
	}
	for _, d := range daily {
		if d.Minutes > 0 {
			summary.WorkoutDays++
		}
	}
	if summary.WorkoutDays > 0 {
		summary.AverageMinutes = int64(math.Round(float64(summary.ActiveMinutes) / float64(summary.WorkoutDays)))
	}
	summary.Daily = daily

	typeRows, err := s.repo.WorkoutTypeCounts(ctx, ownerID, start, end)
	if err != nil {
		return nil, utils.DatabaseError("workout type counts", err)
	}
	summary.ByType = make([]resp.TypeCount, 0, len(typeRows))
	for _, r := range typeRows {
		summary.ByType = append(summary.ByType, resp.TypeCount{Type: r.Type, Count: r.Count})
	}

	// ---------- Goals ----------
	goalRows, err := s.repo.GoalProgress(ctx, ownerID)
	if err != nil {
		return nil, utils.DatabaseError("goal progress", err)
	}
	var pctSum float64
	for _, g := range goalRows {
		summary.Goals.Total++
		if g.Completed {
			summary.Goals.Completed++
		}
		if g.Target > 0 {
			pctSum += math.Min(g.Progress/g.Target, 1) * 100
		}
	}
	if summary.Goals.Total > 0 {
		summary.Goals.AverageProgressPct = int(math.Round(pctSum / float64(summary.Goals.Total)))
	}

	return summary, nil
}
