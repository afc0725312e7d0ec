package services

import (
	"context"

	"github.com/anskp/Flexi-Fit-sub001/internal/models/db_models"
	"github.com/anskp/Flexi-Fit-sub001/internal/repositories"
)

const (
	RedirectSelectRole = "/select-role"
	RedirectDashboard  = "/dashboard"
)

// OnboardingResolver decides whether an account still has onboarding ahead
// of it. The answer is recomputed from storage on every call: the matching
// role profile is created in a request strictly after role selection, so
// neither the account snapshot nor the token may cache it.
type OnboardingResolver interface {
	NeedsOnboarding(ctx context.Context, account *db_models.Account) (bool, error)
}

type onboardingResolver struct {
	profileRepo repositories.ProfileRepository
}

func NewOnboardingResolver(profileRepo repositories.ProfileRepository) OnboardingResolver {
	return &onboardingResolver{profileRepo: profileRepo}
}

func (o *onboardingResolver) NeedsOnboarding(ctx context.Context, account *db_models.Account) (bool, error) {
	switch account.Role {
	case db_models.RoleMember:
		has, err := o.profileRepo.HasMemberProfile(ctx, account.ID)
		return !has, err
	case db_models.RoleTrainer:
		has, err := o.profileRepo.HasTrainerProfile(ctx, account.ID)
		return !has, err
	case db_models.RoleGymOwner:
		has, err := o.profileRepo.HasGymForManager(ctx, account.ID)
		return !has, err
	case db_models.RoleMultiGymMember:
		has, err := o.profileRepo.HasMultiGymProfile(ctx, account.ID)
		return !has, err
	case db_models.RoleAdmin:
		// Admins have no role profile to provision.
		return false, nil
	default:
		// Role not chosen yet.
		return true, nil
	}
}

// RedirectFor maps onboarding state to the client destination.
func RedirectFor(needsOnboarding bool) string {
	if needsOnboarding {
		return RedirectSelectRole
	}
	return RedirectDashboard
}
