package shortlistfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"swoon/internal/repositories"
	"swoon/internal/services"
	mem "swoon/pkg/memcache"
)

var Module = fx.Provide(
	provideShortlistRepo, provideShortlistService)

func provideShortlistRepo(db *gorm.DB) repositories.ShortlistRepositoryInterface {
	return repositories.NewShortlistRepository(db)
}

func provideShortlistService(
	shortlistRepo repositories.ShortlistRepositoryInterface,
	venueRepo repositories.VenueRepositoryInterface,
	profileRepo repositories.ProfileRepositoryInterface,
	embeddings services.EmbeddingServiceInterface,
	sessionCache mem.SessionCacheInterface,
) services.ShortlistServiceInterface {
	return services.NewShortlistService(shortlistRepo, venueRepo, profileRepo, embeddings, sessionCache)
}
