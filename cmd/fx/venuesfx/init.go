package venuesfx

import (
	"os"

	"go.uber.org/fx"
	"gorm.io/gorm"
	"swoon/internal/repositories"
	"swoon/internal/services"
	"swoon/pkg/utils"
)

var Module = fx.Provide(
	provideVenueRepo,
	provideEmbeddingRepo,
	provideEmbeddingService,
	provideEmbeddingClient,
	provideExtractionClient,
	provideVenueService,
)

func provideVenueRepo(db *gorm.DB) repositories.VenueRepositoryInterface {
	return repositories.NewVenueRepository(db)
}

func provideEmbeddingRepo(db *gorm.DB) repositories.VenueEmbeddingRepositoryInterface {
	return repositories.NewVenueEmbeddingRepository(db)
}

func provideEmbeddingService(embeddingRepo repositories.VenueEmbeddingRepositoryInterface) services.EmbeddingServiceInterface {
	return services.NewEmbeddingService(embeddingRepo)
}

func provideEmbeddingClient() utils.EmbeddingClientInterface {
	return utils.NewOpenAIEmbeddingClient(os.Getenv("OPENAI_API_KEY"))
}

func provideExtractionClient() (utils.ExtractionClientInterface, error) {
	return utils.NewGeminiExtractionClient(os.Getenv("GEMINI_API_KEY"), os.Getenv("GEMINI_MODEL"))
}

func provideVenueService(
	venueRepo repositories.VenueRepositoryInterface,
	profileRepo repositories.ProfileRepositoryInterface,
	embeddings services.EmbeddingServiceInterface,
	extractor utils.ExtractionClientInterface,
	embedder utils.EmbeddingClientInterface,
) services.VenueServiceInterface {
	return services.NewVenueService(venueRepo, profileRepo, embeddings, extractor, embedder)
}
