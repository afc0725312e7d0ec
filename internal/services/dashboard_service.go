package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/anskp/Flexi-Fit-sub001/internal/models/db_models"
	"github.com/anskp/Flexi-Fit-sub001/internal/models/response_models"
	"github.com/anskp/Flexi-Fit-sub001/internal/repositories"
	"github.com/anskp/Flexi-Fit-sub001/pkg/utils"
)

const (
	caloriesPerStep         = 0.04
	caloriesPerActiveMinute = 8.5
	recentSessionLimit      = 3
)

var workoutGlyphs = map[string]string{
	"cardio":   "🏃",
	"strength": "🏋️",
	"yoga":     "🧘",
	"cycling":  "🚴",
	"swimming": "🏊",
}

func glyphForWorkout(workoutType string) string {
	if g, ok := workoutGlyphs[workoutType]; ok {
		return g
	}
	return "💪"
}

// DashboardService dispatches to the role-matching dashboard builder. The
// returned payload shape depends on the account's role.
type DashboardService interface {
	GetDashboard(ctx context.Context, accountID uuid.UUID) (interface{}, error)
}

type dashboardService struct {
	accountRepo repositories.AccountRepository
	repo        repositories.DashboardRepository
	now         func() time.Time
}

func NewDashboardService(accountRepo repositories.AccountRepository, repo repositories.DashboardRepository) DashboardService {
	return &dashboardService{
		accountRepo: accountRepo,
		repo:        repo,
		now:         time.Now,
	}
}

func (s *dashboardService) GetDashboard(ctx context.Context, accountID uuid.UUID) (interface{}, error) {
	account, err := s.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	// One "now" snapshot per request; every sub-build derives its day and
	// week boundaries from it so the views agree on what "today" means.
	now := s.now()

	if account.IsAdmin {
		return s.buildAdminDashboard(ctx, now)
	}

	switch account.Role {
	case db_models.RoleMember, db_models.RoleMultiGymMember:
		return s.buildMemberDashboard(ctx, account.ID, now)
	case db_models.RoleGymOwner:
		return s.buildGymOwnerDashboard(ctx, account.ID, now)
	case db_models.RoleTrainer:
		return s.buildTrainerDashboard(ctx, account.ID, now)
	default:
		return nil, utils.ErrNoDashboard
	}
}

// buildMemberDashboard runs the three independent sub-builds concurrently;
// they read disjoint data, so the composed cost is bounded by the slowest
// one rather than their sum.
func (s *dashboardService) buildMemberDashboard(ctx context.Context, accountID uuid.UUID, now time.Time) (*response_models.MemberDashboard, error) {
	var dashboard response_models.MemberDashboard

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		activity, err := s.buildActivityView(gctx, accountID, now)
		if err != nil {
			return err
		}
		dashboard.Activity = *activity
		return nil
	})
	g.Go(func() error {
		diet, err := s.buildDietView(gctx, accountID, now)
		if err != nil {
			return err
		}
		dashboard.Diet = *diet
		return nil
	})
	g.Go(func() error {
		training, err := s.buildTrainingView(gctx, accountID, now)
		if err != nil {
			return err
		}
		dashboard.Training = *training
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &dashboard, nil
}

func (s *dashboardService) buildActivityView(ctx context.Context, accountID uuid.UUID, now time.Time) (*response_models.ActivityView, error) {
	dayStart := utils.StartOfDay(now)
	dayEnd := dayStart.AddDate(0, 0, 1)
	weekStart := utils.StartOfWeek(now)
	weekEnd := weekStart.AddDate(0, 0, 7)
	yearStart := utils.StartOfYear(now)

	todaySteps, err := s.repo.StepsForDay(ctx, accountID, dayStart.Unix())
	if err != nil {
		return nil, err
	}

	stepRows, err := s.repo.StepsBetween(ctx, accountID, weekStart.Unix(), weekEnd.Unix())
	if err != nil {
		return nil, err
	}
	var weekly [7]int64
	for _, row := range stepRows {
		idx := utils.MondayIndex(time.Unix(row.Day, 0).In(now.Location()).Weekday())
		weekly[idx] = row.Steps
	}

	sessionsThisWeek, err := s.repo.CountSessionsBetween(ctx, accountID, weekStart.Unix(), weekEnd.Unix())
	if err != nil {
		return nil, err
	}

	sessionsThisYear, err := s.repo.CountSessionsBetween(ctx, accountID, yearStart.Unix(), dayEnd.Unix())
	if err != nil {
		return nil, err
	}

	sessions, err := s.repo.RecentSessions(ctx, accountID, recentSessionLimit)
	if err != nil {
		return nil, err
	}
	recent := make([]response_models.RecentSession, 0, len(sessions))
	for _, sess := range sessions {
		recent = append(recent, response_models.RecentSession{
			WorkoutType:     sess.WorkoutType,
			Glyph:           glyphForWorkout(sess.WorkoutType),
			DurationMinutes: sess.DurationMinutes,
			PerformedAt:     sess.PerformedAt,
		})
	}

	activeMinutes, err := s.repo.SumSessionMinutesBetween(ctx, accountID, weekStart.Unix(), weekEnd.Unix())
	if err != nil {
		return nil, err
	}

	return &response_models.ActivityView{
		TodaySteps:        todaySteps,
		WeeklySteps:       weekly,
		SessionsThisWeek:  sessionsThisWeek,
		SessionsThisYear:  sessionsThisYear,
		RecentSessions:    recent,
		EstimatedCalories: float64(todaySteps)*caloriesPerStep + float64(activeMinutes)*caloriesPerActiveMinute,
	}, nil
}

func (s *dashboardService) buildDietView(ctx context.Context, accountID uuid.UUID, now time.Time) (*response_models.DietView, error) {
	dayStart := utils.StartOfDay(now)
	dayEnd := dayStart.AddDate(0, 0, 1)

	totals, err := s.repo.SumMealsBetween(ctx, accountID, dayStart.Unix(), dayEnd.Unix())
	if err != nil {
		return nil, err
	}

	return &response_models.DietView{
		Calories: totals.Calories,
		ProteinG: totals.ProteinG,
		CarbsG:   totals.CarbsG,
		FatG:     totals.FatG,
	}, nil
}

func (s *dashboardService) buildTrainingView(ctx context.Context, accountID uuid.UUID, now time.Time) (*response_models.TrainingView, error) {
	lifetime, err := s.repo.CountSessionsTotal(ctx, accountID)
	if err != nil {
		return nil, err
	}

	typeRows, err := s.repo.SessionCountsByType(ctx, accountID)
	if err != nil {
		return nil, err
	}
	byType := make(map[string]int64, len(typeRows))
	for _, row := range typeRows {
		byType[row.WorkoutType] = row.Count
	}

	assignments, err := s.repo.UpcomingAssignments(ctx, accountID, now.Unix())
	if err != nil {
		return nil, err
	}
	upcoming := make([]response_models.AssignmentView, 0, len(assignments))
	for _, a := range assignments {
		upcoming = append(upcoming, response_models.AssignmentView{
			Title:    a.Title,
			StartsAt: a.StartsAt,
			EndsAt:   a.EndsAt,
		})
	}

	return &response_models.TrainingView{
		LifetimeSessions: lifetime,
		SessionsByType:   byType,
		UpcomingPlans:    upcoming,
	}, nil
}

func (s *dashboardService) buildGymOwnerDashboard(ctx context.Context, accountID uuid.UUID, now time.Time) (*response_models.GymOwnerDashboard, error) {
	gym, err := s.repo.GymByManager(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if gym == nil {
		// No gym yet is a valid state for a freshly onboarded owner.
		return &response_models.GymOwnerDashboard{}, nil
	}

	nowUnix := now.Unix()
	activeSubs, err := s.repo.CountActiveGymSubscriptions(ctx, gym.ID, nowUnix)
	if err != nil {
		return nil, err
	}

	revenue, err := s.repo.SubscribedGymPlanRevenue(ctx, gym.ID, nowUnix)
	if err != nil {
		return nil, err
	}

	dayStart := utils.StartOfDay(now)
	checkIns, err := s.repo.CountGymCheckInsBetween(ctx, gym.ID, dayStart.Unix(), dayStart.AddDate(0, 0, 1).Unix())
	if err != nil {
		return nil, err
	}

	return &response_models.GymOwnerDashboard{
		HasGym:                 true,
		GymName:                gym.Name,
		ActiveSubscriptions:    activeSubs,
		ActivePlanRevenueMinor: revenue,
		TodayCheckIns:          checkIns,
	}, nil
}

func (s *dashboardService) buildTrainerDashboard(ctx context.Context, accountID uuid.UUID, now time.Time) (*response_models.TrainerDashboard, error) {
	profile, err := s.repo.TrainerProfileByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return &response_models.TrainerDashboard{}, nil
	}

	rows, err := s.repo.TrainerPlanSubscriberCounts(ctx, profile.ID, now.Unix())
	if err != nil {
		return nil, err
	}

	dashboard := &response_models.TrainerDashboard{PlanCount: int64(len(rows))}
	for _, row := range rows {
		dashboard.EstimatedMonthlyEarningsMinor += row.PriceMinor * row.ActiveSubscribers
		dashboard.ActiveSubscribers += row.ActiveSubscribers
	}
	return dashboard, nil
}

func (s *dashboardService) buildAdminDashboard(ctx context.Context, now time.Time) (*response_models.AdminDashboard, error) {
	totalAccounts, err := s.repo.CountAccounts(ctx)
	if err != nil {
		return nil, err
	}
	totalMembers, err := s.repo.CountMemberProfiles(ctx)
	if err != nil {
		return nil, err
	}
	totalTrainers, err := s.repo.CountTrainerProfiles(ctx)
	if err != nil {
		return nil, err
	}
	totalGyms, err := s.repo.CountGyms(ctx)
	if err != nil {
		return nil, err
	}

	gymSubs, trainerSubs, err := s.repo.CountActiveSubscriptions(ctx, now.Unix())
	if err != nil {
		return nil, err
	}

	dayStart := utils.StartOfDay(now)
	checkIns, err := s.repo.CountAllCheckInsBetween(ctx, dayStart.Unix(), dayStart.AddDate(0, 0, 1).Unix())
	if err != nil {
		return nil, err
	}

	return &response_models.AdminDashboard{
		TotalAccounts:              totalAccounts,
		TotalMembers:               totalMembers,
		TotalTrainers:              totalTrainers,
		TotalGyms:                  totalGyms,
		ActiveGymSubscriptions:     gymSubs,
		ActiveTrainerSubscriptions: trainerSubs,
		TodayCheckIns:              checkIns,
	}, nil
}
