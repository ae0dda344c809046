package models

// DayProgress is one day's activity counts in the weekly progress strip.
type DayProgress struct {
	Day      string `json:"day"`
	Workouts int    `json:"workouts"`
	Meals    int    `json:"meals"`
}

// Meal is one planned meal of the current day.
type Meal struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	Calories  int    `json:"calories"`
	Completed bool   `json:"completed"`
}

// Exercise is one exercise within a workout.
type Exercise struct {
	Name      string `json:"name"`
	Sets      int    `json:"sets"`
	Reps      int    `json:"reps"`
	Completed bool   `json:"completed"`
}

// Workout is the day's planned workout.
type Workout struct {
	Name      string     `json:"name"`
	Duration  int        `json:"duration"`
	Exercises []Exercise `json:"exercises"`
}

// Stats are the headline numbers on the dashboard. Weight and calorie
// targets come from the persisted Goals; the rest from the activity source.
type Stats struct {
	TotalWorkouts int     `json:"totalWorkouts"`
	TotalMeals    int     `json:"totalMeals"`
	CurrentWeight float64 `json:"currentWeight"`
	TargetWeight  float64 `json:"targetWeight"`
	TodayCalories int     `json:"todayCalories"`
	CalorieGoal   int     `json:"calorieGoal"`
}

// Overview is the full dashboard payload.
type Overview struct {
	WeeklyProgress []DayProgress `json:"weeklyProgress"`
	Stats          Stats         `json:"stats"`
	TodaysMeals    []Meal        `json:"todaysMeals"`
	TodaysWorkout  Workout       `json:"todaysWorkout"`
}
