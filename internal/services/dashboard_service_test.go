package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/anskp/Flexi-Fit-sub001/internal/models/db_models"
	"github.com/anskp/Flexi-Fit-sub001/internal/models/response_models"
	"github.com/anskp/Flexi-Fit-sub001/internal/repositories"
	"github.com/anskp/Flexi-Fit-sub001/pkg/utils"
)

// A Thursday afternoon, so the Monday-anchored week window is non-trivial.
var fixedNow = time.Date(2025, time.March, 6, 15, 30, 0, 0, time.UTC)

func newDashboardServiceForTest(repo *fakeDashboardRepo) (DashboardService, *fakeAccountRepo) {
	accountRepo := newFakeAccountRepo()
	svc := &dashboardService{
		accountRepo: accountRepo,
		repo:        repo,
		now:         func() time.Time { return fixedNow },
	}
	return svc, accountRepo
}

func seedRoleAccount(t *testing.T, repo *fakeAccountRepo, role db_models.Role, isAdmin bool) *db_models.Account {
	t.Helper()
	account := &db_models.Account{Email: "d@x.com", PasswordHash: "x", Role: role, IsAdmin: isAdmin}
	require.NoError(t, repo.Insert(context.Background(), account))
	return account
}

func TestGetDashboardWithoutRole(t *testing.T) {
	svc, accountRepo := newDashboardServiceForTest(&fakeDashboardRepo{})
	account := seedRoleAccount(t, accountRepo, "", false)

	_, err := svc.GetDashboard(context.Background(), account.ID)
	require.ErrorIs(t, err, utils.ErrNoDashboard)
}

func TestGetDashboardUnknownAccount(t *testing.T) {
	svc, _ := newDashboardServiceForTest(&fakeDashboardRepo{})

	_, err := svc.GetDashboard(context.Background(), uuid.New())
	require.ErrorIs(t, err, utils.ErrAccountNotFound)
}

func TestMemberDashboardWeeklyStepsMondayIndexed(t *testing.T) {
	weekStart := utils.StartOfWeek(fixedNow) // Monday 2025-03-03
	repo := &fakeDashboardRepo{
		stepRows: []repositories.DayStepsRow{
			{Day: weekStart.Unix(), Steps: 1000},                    // Monday
			{Day: weekStart.AddDate(0, 0, 2).Unix(), Steps: 3000},   // Wednesday
			{Day: weekStart.AddDate(0, 0, 6).Unix(), Steps: 500},    // Sunday
			{Day: weekStart.AddDate(0, 0, -1).Unix(), Steps: 99999}, // previous week, outside window
		},
	}
	svc, accountRepo := newDashboardServiceForTest(repo)
	account := seedRoleAccount(t, accountRepo, db_models.RoleMember, false)

	result, err := svc.GetDashboard(context.Background(), account.ID)
	require.NoError(t, err)

	dashboard, ok := result.(*response_models.MemberDashboard)
	require.True(t, ok)
	require.Equal(t, [7]int64{1000, 0, 3000, 0, 0, 0, 500}, dashboard.Activity.WeeklySteps)
}

func TestMemberDashboardCalorieEstimate(t *testing.T) {
	dayStart := utils.StartOfDay(fixedNow)
	repo := &fakeDashboardRepo{
		stepsByDay:     map[int64]int64{dayStart.Unix(): 5000},
		sessionMinutes: 60,
	}
	svc, accountRepo := newDashboardServiceForTest(repo)
	account := seedRoleAccount(t, accountRepo, db_models.RoleMember, false)

	result, err := svc.GetDashboard(context.Background(), account.ID)
	require.NoError(t, err)

	dashboard := result.(*response_models.MemberDashboard)
	require.Equal(t, int64(5000), dashboard.Activity.TodaySteps)
	// 5000 steps * 0.04 + 60 active minutes * 8.5
	require.InDelta(t, 710.0, dashboard.Activity.EstimatedCalories, 0.001)
}

func TestMemberDashboardRecentSessionsGlyphs(t *testing.T) {
	repo := &fakeDashboardRepo{
		recent: []db_models.WorkoutSession{
			{WorkoutType: "yoga", DurationMinutes: 45, PerformedAt: fixedNow.Unix()},
			{WorkoutType: "parkour", DurationMinutes: 30, PerformedAt: fixedNow.Unix() - 3600},
		},
	}
	svc, accountRepo := newDashboardServiceForTest(repo)
	account := seedRoleAccount(t, accountRepo, db_models.RoleMember, false)

	result, err := svc.GetDashboard(context.Background(), account.ID)
	require.NoError(t, err)

	recent := result.(*response_models.MemberDashboard).Activity.RecentSessions
	require.Len(t, recent, 2)
	require.Equal(t, "🧘", recent[0].Glyph)
	require.Equal(t, "💪", recent[1].Glyph) // unknown type falls back
}

func TestMultiGymMemberGetsMemberDashboard(t *testing.T) {
	svc, accountRepo := newDashboardServiceForTest(&fakeDashboardRepo{})
	account := seedRoleAccount(t, accountRepo, db_models.RoleMultiGymMember, false)

	result, err := svc.GetDashboard(context.Background(), account.ID)
	require.NoError(t, err)
	require.IsType(t, &response_models.MemberDashboard{}, result)
}

func TestGymOwnerDashboardWithoutGym(t *testing.T) {
	svc, accountRepo := newDashboardServiceForTest(&fakeDashboardRepo{})
	account := seedRoleAccount(t, accountRepo, db_models.RoleGymOwner, false)

	result, err := svc.GetDashboard(context.Background(), account.ID)
	require.NoError(t, err)

	dashboard := result.(*response_models.GymOwnerDashboard)
	require.False(t, dashboard.HasGym)
	require.Zero(t, dashboard.ActiveSubscriptions)
	require.Zero(t, dashboard.ActivePlanRevenueMinor)
}

func TestGymOwnerDashboardPopulated(t *testing.T) {
	repo := &fakeDashboardRepo{
		gym:           &db_models.Gym{Name: "Iron Temple"},
		activeGymSubs: 12,
		gymRevenue:    35988,
		gymCheckIns:   7,
	}
	svc, accountRepo := newDashboardServiceForTest(repo)
	account := seedRoleAccount(t, accountRepo, db_models.RoleGymOwner, false)

	result, err := svc.GetDashboard(context.Background(), account.ID)
	require.NoError(t, err)

	dashboard := result.(*response_models.GymOwnerDashboard)
	require.True(t, dashboard.HasGym)
	require.Equal(t, "Iron Temple", dashboard.GymName)
	require.Equal(t, int64(12), dashboard.ActiveSubscriptions)
	require.Equal(t, int64(35988), dashboard.ActivePlanRevenueMinor)
	require.Equal(t, int64(7), dashboard.TodayCheckIns)
}

func TestTrainerDashboardEarnings(t *testing.T) {
	repo := &fakeDashboardRepo{
		trainerProfile: &db_models.TrainerProfile{},
		planRows: []repositories.PlanSubscribersRow{
			{PlanID: "a", PriceMinor: 4999, ActiveSubscribers: 3},
			{PlanID: "b", PriceMinor: 9999, ActiveSubscribers: 1},
			{PlanID: "c", PriceMinor: 24999, ActiveSubscribers: 0},
		},
	}
	svc, accountRepo := newDashboardServiceForTest(repo)
	account := seedRoleAccount(t, accountRepo, db_models.RoleTrainer, false)

	result, err := svc.GetDashboard(context.Background(), account.ID)
	require.NoError(t, err)

	dashboard := result.(*response_models.TrainerDashboard)
	require.Equal(t, int64(3*4999+9999), dashboard.EstimatedMonthlyEarningsMinor)
	require.Equal(t, int64(4), dashboard.ActiveSubscribers)
	require.Equal(t, int64(3), dashboard.PlanCount)
}

func TestAdminDashboardAggregates(t *testing.T) {
	repo := &fakeDashboardRepo{
		totalAccounts:      100,
		totalMembers:       60,
		totalTrainers:      15,
		totalGyms:          5,
		activeGymCount:     40,
		activeTrainerCount: 10,
		checkInsAcrossGyms: 22,
	}
	svc, accountRepo := newDashboardServiceForTest(repo)
	// Admin dispatch keys off the flag, not the role.
	account := seedRoleAccount(t, accountRepo, db_models.RoleMember, true)

	result, err := svc.GetDashboard(context.Background(), account.ID)
	require.NoError(t, err)

	dashboard := result.(*response_models.AdminDashboard)
	require.Equal(t, int64(100), dashboard.TotalAccounts)
	require.Equal(t, int64(40), dashboard.ActiveGymSubscriptions)
	require.Equal(t, int64(10), dashboard.ActiveTrainerSubscriptions)
	require.Equal(t, int64(22), dashboard.TodayCheckIns)
}
