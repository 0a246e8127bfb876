package swipefx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"swoon/internal/repositories"
	"swoon/internal/services"
	mem "swoon/pkg/memcache"
)

var Module = fx.Provide(
	provideSwipeRepo, provideSwipeService)

func provideSwipeRepo(db *gorm.DB) repositories.SwipeRepositoryInterface {
	return repositories.NewSwipeRepository(db)
}

func provideSwipeService(
	swipeRepo repositories.SwipeRepositoryInterface,
	venueRepo repositories.VenueRepositoryInterface,
	shortlistRepo repositories.ShortlistRepositoryInterface,
	sessionCache mem.SessionCacheInterface,
) services.SwipeServiceInterface {
	return services.NewSwipeService(swipeRepo, venueRepo, shortlistRepo, sessionCache)
}
