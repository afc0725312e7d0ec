package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/anskp/Flexi-Fit-sub001/internal/repositories"
	"github.com/anskp/Flexi-Fit-sub001/internal/services"
)

var Module = fx.Provide(
	provideAccountRepo, provideOnboardingResolver, provideAccountService)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideOnboardingResolver(profileRepo repositories.ProfileRepository) services.OnboardingResolver {
	return services.NewOnboardingResolver(profileRepo)
}

func provideAccountService(accountRepo repositories.AccountRepository, resolver services.OnboardingResolver, mailService services.IMailService) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, resolver, mailService)
}
