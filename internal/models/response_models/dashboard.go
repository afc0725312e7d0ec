package response_models

// Role-shaped dashboard payloads. Exactly one of these is returned from
// GET /dashboard depending on the account's role.

type RecentSession struct {
	WorkoutType     string `json:"workout_type"`
	Glyph           string `json:"glyph"`
	DurationMinutes int64  `json:"duration_minutes"`
	PerformedAt     int64  `json:"performed_at"`
}

type ActivityView struct {
	TodaySteps int64 `json:"today_steps"`
	// WeeklySteps is always length 7, index 0 = Monday .. 6 = Sunday,
	// zero-filled for days without a record.
	WeeklySteps       [7]int64        `json:"weekly_steps"`
	SessionsThisWeek  int64           `json:"sessions_this_week"`
	SessionsThisYear  int64           `json:"sessions_this_year"`
	RecentSessions    []RecentSession `json:"recent_sessions"`
	EstimatedCalories float64         `json:"estimated_calories"`
}

type DietView struct {
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
}

type AssignmentView struct {
	Title    string `json:"title"`
	StartsAt int64  `json:"starts_at"`
	EndsAt   int64  `json:"ends_at"`
}

type TrainingView struct {
	LifetimeSessions int64            `json:"lifetime_sessions"`
	SessionsByType   map[string]int64 `json:"sessions_by_type"`
	UpcomingPlans    []AssignmentView `json:"upcoming_plans"`
}

type MemberDashboard struct {
	Activity ActivityView `json:"activity"`
	Diet     DietView     `json:"diet"`
	Training TrainingView `json:"training"`
}

// GymOwnerDashboard with HasGym=false and zero counts is the documented
// valid state for an owner who has not created a gym yet.
type GymOwnerDashboard struct {
	HasGym                 bool   `json:"has_gym"`
	GymName                string `json:"gym_name,omitempty"`
	ActiveSubscriptions    int64  `json:"active_subscriptions"`
	ActivePlanRevenueMinor int64  `json:"active_plan_revenue_minor"`
	TodayCheckIns          int64  `json:"today_check_ins"`
}

type TrainerDashboard struct {
	EstimatedMonthlyEarningsMinor int64 `json:"estimated_monthly_earnings_minor"`
	ActiveSubscribers             int64 `json:"active_subscribers"`
	PlanCount                     int64 `json:"plan_count"`
}

type AdminDashboard struct {
	TotalAccounts              int64 `json:"total_accounts"`
	TotalMembers               int64 `json:"total_members"`
	TotalTrainers              int64 `json:"total_trainers"`
	TotalGyms                  int64 `json:"total_gyms"`
	ActiveGymSubscriptions     int64 `json:"active_gym_subscriptions"`
	ActiveTrainerSubscriptions int64 `json:"active_trainer_subscriptions"`
	TodayCheckIns              int64 `json:"today_check_ins"`
}
