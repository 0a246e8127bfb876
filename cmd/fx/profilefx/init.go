package profilefx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"swoon/internal/repositories"
	"swoon/internal/services"
)

var Module = fx.Provide(
	provideProfileRepo, provideProfileService)

func provideProfileRepo(db *gorm.DB) repositories.ProfileRepositoryInterface {
	return repositories.NewProfileRepository(db)
}

func provideProfileService(
	profileRepo repositories.ProfileRepositoryInterface,
	swipeRepo repositories.SwipeRepositoryInterface,
	venueRepo repositories.VenueRepositoryInterface,
	embeddings services.EmbeddingServiceInterface,
) services.ProfileServiceInterface {
	return services.NewProfileService(profileRepo, swipeRepo, venueRepo, embeddings)
}
