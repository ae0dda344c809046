package models

import "time"

// Goals are the per-user fitness targets shown on the dashboard. A default
// row is created together with the user at registration.
type Goals struct {
	UserID        string    `json:"-"`
	CurrentWeight float64   `json:"currentWeight"`
	TargetWeight  float64   `json:"targetWeight"`
	CalorieGoal   int       `json:"calorieGoal"`
	UpdatedAt     time.Time `json:"-"`
}

// DefaultGoals returns the starting targets for a new user.
func DefaultGoals(userID string) *Goals {
	return &Goals{
		UserID:        userID,
		CurrentWeight: 75.5,
		TargetWeight:  70.0,
		CalorieGoal:   2200,
	}
}
