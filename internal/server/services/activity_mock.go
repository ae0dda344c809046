package services

import (
	"context"

	"github.com/fittrackhq/fittrack/internal/server/models"
)

// MockActivitySource serves canned workout/meal data for every user. It
// keeps the dashboard renderable until the real activity pipeline lands;
// swap it out at the App wiring level.
type MockActivitySource struct{}

func NewMockActivitySource() *MockActivitySource {
	return &MockActivitySource{}
}

func (m *MockActivitySource) WeeklyProgress(ctx context.Context, userID string) ([]models.DayProgress, error) {
	return []models.DayProgress{
		{Day: "Mon", Workouts: 1, Meals: 3},
		{Day: "Tue", Workouts: 0, Meals: 4},
		{Day: "Wed", Workouts: 2, Meals: 3},
		{Day: "Thu", Workouts: 1, Meals: 4},
		{Day: "Fri", Workouts: 1, Meals: 3},
		{Day: "Sat", Workouts: 0, Meals: 2},
		{Day: "Sun", Workouts: 1, Meals: 3},
	}, nil
}

func (m *MockActivitySource) TodaysMeals(ctx context.Context, userID string) ([]models.Meal, error) {
	return []models.Meal{
		{ID: 1, Name: "Greek Yogurt Bowl", Type: "BREAKFAST", Calories: 320, Completed: true},
		{ID: 2, Name: "Grilled Chicken Salad", Type: "LUNCH", Calories: 450, Completed: true},
		{ID: 3, Name: "Protein Smoothie", Type: "SNACK", Calories: 280, Completed: false},
		{ID: 4, Name: "Salmon & Vegetables", Type: "DINNER", Calories: 520, Completed: false},
	}, nil
}

func (m *MockActivitySource) TodaysWorkout(ctx context.Context, userID string) (models.Workout, error) {
	return models.Workout{
		Name:     "Upper Body Strength",
		Duration: 45,
		Exercises: []models.Exercise{
			{Name: "Push-ups", Sets: 3, Reps: 15, Completed: true},
			{Name: "Pull-ups", Sets: 3, Reps: 8, Completed: true},
			{Name: "Dumbbell Press", Sets: 3, Reps: 12, Completed: false},
			{Name: "Bicep Curls", Sets: 3, Reps: 15, Completed: false},
		},
	}, nil
}
