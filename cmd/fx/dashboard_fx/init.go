package dashboard_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/anskp/Flexi-Fit-sub001/internal/repositories"
	"github.com/anskp/Flexi-Fit-sub001/internal/services"
)

var Module = fx.Provide(
	provideDashboardRepo, provideDashboardService,
)

func provideDashboardRepo(db *gorm.DB) repositories.DashboardRepository {
	return repositories.NewDashboardRepository(db)
}

func provideDashboardService(accountRepo repositories.AccountRepository, dashboardRepo repositories.DashboardRepository) services.DashboardService {
	return services.NewDashboardService(accountRepo, dashboardRepo)
}
