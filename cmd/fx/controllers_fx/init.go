package controllers_fx

import (
	"go.uber.org/fx"

	"github.com/anskp/Flexi-Fit-sub001/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewProfileController),
	fx.Provide(controllers.NewDashboardController))
