package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fittrackhq/fittrack/internal/common"
	"github.com/fittrackhq/fittrack/internal/server/models"
	"github.com/fittrackhq/fittrack/internal/server/repositories/repomanager"
)

// ActivitySource supplies the workout/meal activity shown on the dashboard.
// The production pipeline does not exist yet; MockActivitySource stands in
// until it does.
type ActivitySource interface {
	WeeklyProgress(ctx context.Context, userID string) ([]models.DayProgress, error)
	TodaysMeals(ctx context.Context, userID string) ([]models.Meal, error)
	TodaysWorkout(ctx context.Context, userID string) (models.Workout, error)
}

// UpdateGoalsParams carries a goals update from the settings form.
type UpdateGoalsParams struct {
	CurrentWeight float64
	TargetWeight  float64
	CalorieGoal   int
}

// DashboardService assembles the dashboard payload: persisted goals merged
// with activity data.
type DashboardService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	activity    ActivitySource
}

func NewDashboardService(db *sql.DB, m repomanager.RepositoryManager, activity ActivitySource) *DashboardService {
	return &DashboardService{
		db:          db,
		repomanager: m,
		activity:    activity,
	}
}

// Overview returns the full dashboard payload for a user.
func (s *DashboardService) Overview(ctx context.Context, userID string) (*models.Overview, error) {
	goals, err := s.repomanager.Goals(s.db).GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// users created before the goals table existed
			goals = models.DefaultGoals(userID)
		} else {
			return nil, common.ErrorInternal
		}
	}

	week, err := s.activity.WeeklyProgress(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error loading weekly progress: %v", err)
	}
	meals, err := s.activity.TodaysMeals(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error loading meals: %v", err)
	}
	workout, err := s.activity.TodaysWorkout(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error loading workout: %v", err)
	}

	totalWorkouts, totalMeals, todayCalories := summarize(week, meals)

	return &models.Overview{
		WeeklyProgress: week,
		Stats: models.Stats{
			TotalWorkouts: totalWorkouts,
			TotalMeals:    totalMeals,
			CurrentWeight: goals.CurrentWeight,
			TargetWeight:  goals.TargetWeight,
			TodayCalories: todayCalories,
			CalorieGoal:   goals.CalorieGoal,
		},
		TodaysMeals:   meals,
		TodaysWorkout: workout,
	}, nil
}

// UpdateGoals persists new targets for a user.
func (s *DashboardService) UpdateGoals(ctx context.Context, userID string, p UpdateGoalsParams) (*models.Goals, error) {
	g := &models.Goals{
		UserID:        userID,
		CurrentWeight: p.CurrentWeight,
		TargetWeight:  p.TargetWeight,
		CalorieGoal:   p.CalorieGoal,
	}

	if err := s.repomanager.Goals(s.db).Update(ctx, g); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}

	return g, nil
}

// summarize derives the headline counters from activity data. Calories count
// completed meals only.
func summarize(week []models.DayProgress, meals []models.Meal) (workouts, totalMeals, todayCalories int) {
	for _, d := range week {
		workouts += d.Workouts
		totalMeals += d.Meals
	}
	for _, m := range meals {
		if m.Completed {
			todayCalories += m.Calories
		}
	}
	return workouts, totalMeals, todayCalories
}
