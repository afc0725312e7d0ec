package profile_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/anskp/Flexi-Fit-sub001/internal/repositories"
	"github.com/anskp/Flexi-Fit-sub001/internal/services"
)

var Module = fx.Provide(
	provideProfileRepo, provideProfileService)

func provideProfileRepo(db *gorm.DB) repositories.ProfileRepository {
	return repositories.NewProfileRepository(db)
}

func provideProfileService(accountRepo repositories.AccountRepository, profileRepo repositories.ProfileRepository, resolver services.OnboardingResolver) services.ProfileServiceInterface {
	return services.NewProfileService(accountRepo, profileRepo, resolver)
}
