package services

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/anskp/Flexi-Fit-sub001/internal/models/db_models"
	"github.com/anskp/Flexi-Fit-sub001/internal/repositories"
)

// In-memory fakes used across the service tests.

type fakeAccountRepo struct {
	mu       sync.Mutex
	accounts map[uuid.UUID]*db_models.Account

	// insertErr, when set, fails the next Insert the way a translated
	// unique-index violation would.
	insertErr error
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: make(map[uuid.UUID]*db_models.Account)}
}

func (f *fakeAccountRepo) Insert(_ context.Context, account *db_models.Account) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insertErr != nil {
		return f.insertErr
	}
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	cp := *account
	f.accounts[account.ID] = &cp
	return nil
}

func (f *fakeAccountRepo) FindByID(_ context.Context, id uuid.UUID) (*db_models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if a, ok := f.accounts[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeAccountRepo) FindByEmail(_ context.Context, email string) (*db_models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.accounts {
		if a.Email == email {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) FindByGoogleID(_ context.Context, googleID string) (*db_models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.accounts {
		if a.GoogleID != nil && *a.GoogleID == googleID {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) FindByValidResetToken(_ context.Context, token string, now int64) (*db_models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.accounts {
		if a.ResetToken != nil && *a.ResetToken == token &&
			a.ResetTokenExpiresAt != nil && *a.ResetTokenExpiresAt > now {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) UpdateRole(_ context.Context, id uuid.UUID, role db_models.Role) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.accounts[id].Role = role
	return nil
}

func (f *fakeAccountRepo) SetResetToken(_ context.Context, id uuid.UUID, token string, expiresAt int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.accounts[id].ResetToken = &token
	f.accounts[id].ResetTokenExpiresAt = &expiresAt
	return nil
}

func (f *fakeAccountRepo) ResetPassword(_ context.Context, id uuid.UUID, passwordHash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	a := f.accounts[id]
	a.PasswordHash = passwordHash
	a.ResetToken = nil
	a.ResetTokenExpiresAt = nil
	return nil
}

func (f *fakeAccountRepo) UpdatePasswordHash(_ context.Context, id uuid.UUID, passwordHash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.accounts[id].PasswordHash = passwordHash
	return nil
}

var _ repositories.AccountRepository = (*fakeAccountRepo)(nil)

type fakeProfileRepo struct {
	mu sync.Mutex

	memberProfiles   map[uuid.UUID]*db_models.MemberProfile
	trainerProfiles  map[uuid.UUID]*db_models.TrainerProfile
	gyms             map[uuid.UUID]*db_models.Gym
	multiGymProfiles map[uuid.UUID]*db_models.MultiGymMemberProfile
	trainerPlans     []db_models.TrainerPlan
	gymPlans         []db_models.GymPlan

	// createErr, when set, fails the provisioning call after the point
	// where a non-transactional implementation would have written the
	// parent row; the fake rolls nothing in, mirroring the transactional
	// contract.
	createErr error
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{
		memberProfiles:   make(map[uuid.UUID]*db_models.MemberProfile),
		trainerProfiles:  make(map[uuid.UUID]*db_models.TrainerProfile),
		gyms:             make(map[uuid.UUID]*db_models.Gym),
		multiGymProfiles: make(map[uuid.UUID]*db_models.MultiGymMemberProfile),
	}
}

func (f *fakeProfileRepo) CreateMemberProfile(_ context.Context, profile *db_models.MemberProfile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	profile.ID = uuid.New()
	f.memberProfiles[profile.AccountID] = profile
	return nil
}

func (f *fakeProfileRepo) CreateMultiGymProfile(_ context.Context, profile *db_models.MultiGymMemberProfile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	profile.ID = uuid.New()
	f.multiGymProfiles[profile.AccountID] = profile
	return nil
}

func (f *fakeProfileRepo) CreateTrainerProfile(_ context.Context, profile *db_models.TrainerProfile, plans []db_models.TrainerPlan) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	profile.ID = uuid.New()
	f.trainerProfiles[profile.AccountID] = profile
	for i := range plans {
		plans[i].TrainerProfileID = profile.ID
	}
	f.trainerPlans = append(f.trainerPlans, plans...)
	return nil
}

func (f *fakeProfileRepo) CreateGym(_ context.Context, gym *db_models.Gym, plans []db_models.GymPlan) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	gym.ID = uuid.New()
	f.gyms[gym.ManagerAccountID] = gym
	for i := range plans {
		plans[i].GymID = gym.ID
	}
	f.gymPlans = append(f.gymPlans, plans...)
	return nil
}

func (f *fakeProfileRepo) HasMemberProfile(_ context.Context, accountID uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.memberProfiles[accountID]
	return ok, nil
}

func (f *fakeProfileRepo) HasTrainerProfile(_ context.Context, accountID uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.trainerProfiles[accountID]
	return ok, nil
}

func (f *fakeProfileRepo) HasGymForManager(_ context.Context, accountID uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.gyms[accountID]
	return ok, nil
}

func (f *fakeProfileRepo) HasMultiGymProfile(_ context.Context, accountID uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.multiGymProfiles[accountID]
	return ok, nil
}

var _ repositories.ProfileRepository = (*fakeProfileRepo)(nil)

type fakeMailService struct {
	mu   sync.Mutex
	sent []string // recipient addresses
	err  error
}

func (f *fakeMailService) SendPasswordResetMail(to, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, to)
	return nil
}

var _ IMailService = (*fakeMailService)(nil)

// fakeDashboardRepo returns canned aggregates. Window-scoped queries key
// their answers by the window start so tests can pin values to the exact
// boundaries the service is expected to compute.
type fakeDashboardRepo struct {
	stepsByDay     map[int64]int64
	stepRows       []repositories.DayStepsRow
	sessionCounts  map[int64]int64 // keyed by window start
	sessionMinutes int64
	recent         []db_models.WorkoutSession

	mealTotals repositories.MealTotalsRow

	totalSessions int64
	typeCounts    []repositories.TypeCountRow
	assignments   []db_models.TrainingAssignment

	gym           *db_models.Gym
	activeGymSubs int64
	gymRevenue    int64
	gymCheckIns   int64

	trainerProfile *db_models.TrainerProfile
	planRows       []repositories.PlanSubscribersRow

	totalAccounts      int64
	totalMembers       int64
	totalTrainers      int64
	totalGyms          int64
	activeGymCount     int64
	activeTrainerCount int64
	checkInsAcrossGyms int64
}

func (f *fakeDashboardRepo) StepsForDay(_ context.Context, _ uuid.UUID, dayStart int64) (int64, error) {
	return f.stepsByDay[dayStart], nil
}

func (f *fakeDashboardRepo) StepsBetween(_ context.Context, _ uuid.UUID, from, to int64) ([]repositories.DayStepsRow, error) {
	var rows []repositories.DayStepsRow
	for _, row := range f.stepRows {
		if row.Day >= from && row.Day < to {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

func (f *fakeDashboardRepo) CountSessionsBetween(_ context.Context, _ uuid.UUID, from, _ int64) (int64, error) {
	return f.sessionCounts[from], nil
}

func (f *fakeDashboardRepo) SumSessionMinutesBetween(_ context.Context, _ uuid.UUID, _, _ int64) (int64, error) {
	return f.sessionMinutes, nil
}

func (f *fakeDashboardRepo) RecentSessions(_ context.Context, _ uuid.UUID, limit int) ([]db_models.WorkoutSession, error) {
	if len(f.recent) > limit {
		return f.recent[:limit], nil
	}
	return f.recent, nil
}

func (f *fakeDashboardRepo) SumMealsBetween(_ context.Context, _ uuid.UUID, _, _ int64) (repositories.MealTotalsRow, error) {
	return f.mealTotals, nil
}

func (f *fakeDashboardRepo) CountSessionsTotal(_ context.Context, _ uuid.UUID) (int64, error) {
	return f.totalSessions, nil
}

func (f *fakeDashboardRepo) SessionCountsByType(_ context.Context, _ uuid.UUID) ([]repositories.TypeCountRow, error) {
	return f.typeCounts, nil
}

func (f *fakeDashboardRepo) UpcomingAssignments(_ context.Context, _ uuid.UUID, _ int64) ([]db_models.TrainingAssignment, error) {
	return f.assignments, nil
}

func (f *fakeDashboardRepo) GymByManager(_ context.Context, _ uuid.UUID) (*db_models.Gym, error) {
	return f.gym, nil
}

func (f *fakeDashboardRepo) CountActiveGymSubscriptions(_ context.Context, _ uuid.UUID, _ int64) (int64, error) {
	return f.activeGymSubs, nil
}

func (f *fakeDashboardRepo) SubscribedGymPlanRevenue(_ context.Context, _ uuid.UUID, _ int64) (int64, error) {
	return f.gymRevenue, nil
}

func (f *fakeDashboardRepo) CountGymCheckInsBetween(_ context.Context, _ uuid.UUID, _, _ int64) (int64, error) {
	return f.gymCheckIns, nil
}

func (f *fakeDashboardRepo) TrainerProfileByAccount(_ context.Context, _ uuid.UUID) (*db_models.TrainerProfile, error) {
	return f.trainerProfile, nil
}

func (f *fakeDashboardRepo) TrainerPlanSubscriberCounts(_ context.Context, _ uuid.UUID, _ int64) ([]repositories.PlanSubscribersRow, error) {
	return f.planRows, nil
}

func (f *fakeDashboardRepo) CountAccounts(_ context.Context) (int64, error) {
	return f.totalAccounts, nil
}

func (f *fakeDashboardRepo) CountMemberProfiles(_ context.Context) (int64, error) {
	return f.totalMembers, nil
}

func (f *fakeDashboardRepo) CountTrainerProfiles(_ context.Context) (int64, error) {
	return f.totalTrainers, nil
}

func (f *fakeDashboardRepo) CountGyms(_ context.Context) (int64, error) {
	return f.totalGyms, nil
}

func (f *fakeDashboardRepo) CountActiveSubscriptions(_ context.Context, _ int64) (int64, int64, error) {
	return f.activeGymCount, f.activeTrainerCount, nil
}

func (f *fakeDashboardRepo) CountAllCheckInsBetween(_ context.Context, _, _ int64) (int64, error) {
	return f.checkInsAcrossGyms, nil
}

var _ repositories.DashboardRepository = (*fakeDashboardRepo)(nil)
