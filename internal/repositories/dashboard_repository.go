package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/anskp/Flexi-Fit-sub001/internal/models/db_models"
)

// DashboardRepository serves the read side of the per-role dashboards.
// Boundaries (day start, week start, "now") are computed by the caller and
// passed in as unix seconds so every query in one request shares them.
type DashboardRepository interface {
	// Member: activity
	StepsForDay(ctx context.Context, accountID uuid.UUID, dayStart int64) (int64, error)
	StepsBetween(ctx context.Context, accountID uuid.UUID, from, to int64) ([]DayStepsRow, error)
	CountSessionsBetween(ctx context.Context, accountID uuid.UUID, from, to int64) (int64, error)
	SumSessionMinutesBetween(ctx context.Context, accountID uuid.UUID, from, to int64) (int64, error)
	RecentSessions(ctx context.Context, accountID uuid.UUID, limit int) ([]db_models.WorkoutSession, error)

	// Member: diet
	SumMealsBetween(ctx context.Context, accountID uuid.UUID, from, to int64) (MealTotalsRow, error)

	// Member: training
	CountSessionsTotal(ctx context.Context, accountID uuid.UUID) (int64, error)
	SessionCountsByType(ctx context.Context, accountID uuid.UUID) ([]TypeCountRow, error)
	UpcomingAssignments(ctx context.Context, accountID uuid.UUID, now int64) ([]db_models.TrainingAssignment, error)

	// Gym owner
	GymByManager(ctx context.Context, accountID uuid.UUID) (*db_models.Gym, error)
	CountActiveGymSubscriptions(ctx context.Context, gymID uuid.UUID, now int64) (int64, error)
	SubscribedGymPlanRevenue(ctx context.Context, gymID uuid.UUID, now int64) (int64, error)
	CountGymCheckInsBetween(ctx context.Context, gymID uuid.UUID, from, to int64) (int64, error)

	// Trainer
	TrainerProfileByAccount(ctx context.Context, accountID uuid.UUID) (*db_models.TrainerProfile, error)
	TrainerPlanSubscriberCounts(ctx context.Context, trainerProfileID uuid.UUID, now int64) ([]PlanSubscribersRow, error)

	// Admin
	CountAccounts(ctx context.Context) (int64, error)
	CountMemberProfiles(ctx context.Context) (int64, error)
	CountTrainerProfiles(ctx context.Context) (int64, error)
	CountGyms(ctx context.Context) (int64, error)
	CountActiveSubscriptions(ctx context.Context, now int64) (gym int64, trainer int64, err error)
	CountAllCheckInsBetween(ctx context.Context, from, to int64) (int64, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

// ---------- Row helpers ----------

type DayStepsRow struct {
	Day   int64 `gorm:"column:day"`
	Steps int64 `gorm:"column:steps"`
}

type MealTotalsRow struct {
	Calories float64 `gorm:"column:calories"`
	ProteinG float64 `gorm:"column:protein_g"`
	CarbsG   float64 `gorm:"column:carbs_g"`
	FatG     float64 `gorm:"column:fat_g"`
}

type TypeCountRow struct {
	WorkoutType string `gorm:"column:workout_type"`
	Count       int64  `gorm:"column:count"`
}

type PlanSubscribersRow struct {
	PlanID            string `gorm:"column:plan_id"`
	PriceMinor        int64  `gorm:"column:price_minor"`
	ActiveSubscribers int64  `gorm:"column:active_subscribers"`
}

// ---------- Member: activity ----------

func (r *dashboardRepository) StepsForDay(ctx context.Context, accountID uuid.UUID, dayStart int64) (int64, error) {
	var rec db_models.StepRecord
	err := r.db.WithContext(ctx).
		First(&rec, "account_id = ? AND day = ?", accountID, dayStart).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return rec.Steps, nil
}

func (r *dashboardRepository) StepsBetween(ctx context.Context, accountID uuid.UUID, from, to int64) ([]DayStepsRow, error) {
	var rows []DayStepsRow
	err := r.db.WithContext(ctx).
		Table("step_records").
		Select("day, steps").
		Where("account_id = ?", accountID).
		Where("day >= ? AND day < ?", from, to).
		Order("day ASC").
		Find(&rows).Error
	return rows, err
}

func (r *dashboardRepository) CountSessionsBetween(ctx context.Context, accountID uuid.UUID, from, to int64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&db_models.WorkoutSession{}).
		Where("account_id = ?", accountID).
		Where("performed_at >= ? AND performed_at < ?", from, to).
		Count(&n).Error
	return n, err
}

func (r *dashboardRepository) SumSessionMinutesBetween(ctx context.Context, accountID uuid.UUID, from, to int64) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&db_models.WorkoutSession{}).
		Select("COALESCE(SUM(duration_minutes), 0)").
		Where("account_id = ?", accountID).
		Where("performed_at >= ? AND performed_at < ?", from, to).
		Scan(&total).Error
	return total, err
}

func (r *dashboardRepository) RecentSessions(ctx context.Context, accountID uuid.UUID, limit int) ([]db_models.WorkoutSession, error) {
	var sessions []db_models.WorkoutSession
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("performed_at DESC").
		Limit(limit).
		Find(&sessions).Error
	return sessions, err
}

// ---------- Member: diet ----------

func (r *dashboardRepository) SumMealsBetween(ctx context.Context, accountID uuid.UUID, from, to int64) (MealTotalsRow, error) {
	var row MealTotalsRow
	err := r.db.WithContext(ctx).
		Table("meal_logs").
		Select(`
			COALESCE(SUM(calories), 0) AS calories,
			COALESCE(SUM(protein_g), 0) AS protein_g,
			COALESCE(SUM(carbs_g), 0) AS carbs_g,
			COALESCE(SUM(fat_g), 0) AS fat_g`).
		Where("account_id = ?", accountID).
		Where("eaten_at >= ? AND eaten_at < ?", from, to).
		Scan(&row).Error
	return row, err
}

// ---------- Member: training ----------

func (r *dashboardRepository) CountSessionsTotal(ctx context.Context, accountID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&db_models.WorkoutSession{}).
		Where("account_id = ?", accountID).
		Count(&n).Error
	return n, err
}

func (r *dashboardRepository) SessionCountsByType(ctx context.Context, accountID uuid.UUID) ([]TypeCountRow, error) {
	var rows []TypeCountRow
	err := r.db.WithContext(ctx).
		Table("workout_sessions").
		Select("workout_type, COUNT(*) AS count").
		Where("account_id = ?", accountID).
		Group("workout_type").
		Order("count DESC").
		Find(&rows).Error
	return rows, err
}

func (r *dashboardRepository) UpcomingAssignments(ctx context.Context, accountID uuid.UUID, now int64) ([]db_models.TrainingAssignment, error) {
	var assignments []db_models.TrainingAssignment
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Where("ends_at >= ?", now).
		Order("starts_at ASC").
		Find(&assignments).Error
	return assignments, err
}

// ---------- Gym owner ----------

func (r *dashboardRepository) GymByManager(ctx context.Context, accountID uuid.UUID) (*db_models.Gym, error) {
	var gym db_models.Gym
	err := r.db.WithContext(ctx).First(&gym, "manager_account_id = ?", accountID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &gym, nil
}

func (r *dashboardRepository) CountActiveGymSubscriptions(ctx context.Context, gymID uuid.UUID, now int64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Table("gym_subscriptions s").
		Joins("JOIN gym_plans p ON p.id = s.gym_plan_id").
		Where("p.gym_id = ?", gymID).
		Where("s.status = ?", db_models.SubStatusActive).
		Where("s.starts_at <= ? AND s.ends_at >= ?", now, now).
		Count(&n).Error
	return n, err
}

func (r *dashboardRepository) SubscribedGymPlanRevenue(ctx context.Context, gymID uuid.UUID, now int64) (int64, error) {
	// Sum of prices of plans with at least one active subscription.
	var total int64
	err := r.db.WithContext(ctx).
		Table("gym_plans p").
		Select("COALESCE(SUM(p.price_minor), 0)").
		Where("p.gym_id = ?", gymID).
		Where(`EXISTS (
			SELECT 1 FROM gym_subscriptions s
			WHERE s.gym_plan_id = p.id
			  AND s.status = ?
			  AND s.starts_at <= ? AND s.ends_at >= ?)`,
			db_models.SubStatusActive, now, now).
		Scan(&total).Error
	return total, err
}

func (r *dashboardRepository) CountGymCheckInsBetween(ctx context.Context, gymID uuid.UUID, from, to int64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&db_models.GymCheckIn{}).
		Where("gym_id = ?", gymID).
		Where("checked_in_at >= ? AND checked_in_at < ?", from, to).
		Count(&n).Error
	return n, err
}

// ---------- Trainer ----------

func (r *dashboardRepository) TrainerProfileByAccount(ctx context.Context, accountID uuid.UUID) (*db_models.TrainerProfile, error) {
	var profile db_models.TrainerProfile
	err := r.db.WithContext(ctx).First(&profile, "account_id = ?", accountID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *dashboardRepository) TrainerPlanSubscriberCounts(ctx context.Context, trainerProfileID uuid.UUID, now int64) ([]PlanSubscribersRow, error) {
	var rows []PlanSubscribersRow
	err := r.db.WithContext(ctx).
		Table("trainer_plans p").
		Select(`
			p.id AS plan_id,
			p.price_minor,
			COUNT(s.id) FILTER (WHERE s.status = ? AND s.starts_at <= ? AND s.ends_at >= ?) AS active_subscribers`,
			db_models.SubStatusActive, now, now).
		Joins("LEFT JOIN trainer_subscriptions s ON s.trainer_plan_id = p.id").
		Where("p.trainer_profile_id = ?", trainerProfileID).
		Group("p.id, p.price_minor").
		Find(&rows).Error
	return rows, err
}

// ---------- Admin ----------

func (r *dashboardRepository) CountAccounts(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&db_models.Account{}).Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountMemberProfiles(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&db_models.MemberProfile{}).Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountTrainerProfiles(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&db_models.TrainerProfile{}).Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountGyms(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&db_models.Gym{}).Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountActiveSubscriptions(ctx context.Context, now int64) (int64, int64, error) {
	var gym, trainer int64
	err := r.db.WithContext(ctx).
		Model(&db_models.GymSubscription{}).
		Where("status = ?", db_models.SubStatusActive).
		Where("starts_at <= ? AND ends_at >= ?", now, now).
		Count(&gym).Error
	if err != nil {
		return 0, 0, err
	}
	err = r.db.WithContext(ctx).
		Model(&db_models.TrainerSubscription{}).
		Where("status = ?", db_models.SubStatusActive).
		Where("starts_at <= ? AND ends_at >= ?", now, now).
		Count(&trainer).Error
	return gym, trainer, err
}

func (r *dashboardRepository) CountAllCheckInsBetween(ctx context.Context, from, to int64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&db_models.GymCheckIn{}).
		Where("checked_in_at >= ? AND checked_in_at < ?", from, to).
		Count(&n).Error
	return n, err
}
