package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/anskp/Flexi-Fit-sub001/internal/models/db_models"
)

// ProfileRepository owns role-profile rows and their dependent plan rows.
// Trainer and gym provisioning span two inserts and must commit or roll
// back as one unit; no reader may observe a profile without its plans.
type ProfileRepository interface {
	CreateMemberProfile(ctx context.Context, profile *db_models.MemberProfile) error
	CreateMultiGymProfile(ctx context.Context, profile *db_models.MultiGymMemberProfile) error
	CreateTrainerProfile(ctx context.Context, profile *db_models.TrainerProfile, plans []db_models.TrainerPlan) error
	CreateGym(ctx context.Context, gym *db_models.Gym, plans []db_models.GymPlan) error

	HasMemberProfile(ctx context.Context, accountID uuid.UUID) (bool, error)
	HasTrainerProfile(ctx context.Context, accountID uuid.UUID) (bool, error)
	HasGymForManager(ctx context.Context, accountID uuid.UUID) (bool, error)
	HasMultiGymProfile(ctx context.Context, accountID uuid.UUID) (bool, error)
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) CreateMemberProfile(ctx context.Context, profile *db_models.MemberProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *profileRepository) CreateMultiGymProfile(ctx context.Context, profile *db_models.MultiGymMemberProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *profileRepository) CreateTrainerProfile(ctx context.Context, profile *db_models.TrainerProfile, plans []db_models.TrainerPlan) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(profile).Error; err != nil {
			return err
		}
		if len(plans) == 0 {
			return nil
		}
		for i := range plans {
			plans[i].TrainerProfileID = profile.ID
		}
		return tx.Create(&plans).Error
	})
}

func (r *profileRepository) CreateGym(ctx context.Context, gym *db_models.Gym, plans []db_models.GymPlan) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(gym).Error; err != nil {
			return err
		}
		if len(plans) == 0 {
			return nil
		}
		for i := range plans {
			plans[i].GymID = gym.ID
		}
		return tx.Create(&plans).Error
	})
}

func (r *profileRepository) HasMemberProfile(ctx context.Context, accountID uuid.UUID) (bool, error) {
	return r.exists(ctx, &db_models.MemberProfile{}, "account_id = ?", accountID)
}

func (r *profileRepository) HasTrainerProfile(ctx context.Context, accountID uuid.UUID) (bool, error) {
	return r.exists(ctx, &db_models.TrainerProfile{}, "account_id = ?", accountID)
}

func (r *profileRepository) HasGymForManager(ctx context.Context, accountID uuid.UUID) (bool, error) {
	return r.exists(ctx, &db_models.Gym{}, "manager_account_id = ?", accountID)
}

func (r *profileRepository) HasMultiGymProfile(ctx context.Context, accountID uuid.UUID) (bool, error) {
	return r.exists(ctx, &db_models.MultiGymMemberProfile{}, "account_id = ?", accountID)
}

func (r *profileRepository) exists(ctx context.Context, model interface{}, query string, accountID uuid.UUID) (bool, error) {
	err := r.db.WithContext(ctx).Select("id").First(model, query, accountID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
