package controllersfx

import (
	"go.uber.org/fx"
	"swoon/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewVenuesController),
	fx.Provide(controllers.NewSwipeController),
	fx.Provide(controllers.NewProfileController),
	fx.Provide(controllers.NewShortlistController),
	fx.Provide(controllers.NewCrawlController))
