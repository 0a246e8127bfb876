package crawlfx

import (
	"os"

	"go.uber.org/fx"
	"gorm.io/gorm"
	"swoon/internal/infra"
	"swoon/internal/repositories"
	"swoon/internal/services"
)

var Module = fx.Provide(
	provideTileLedger, provideTileFetcher, provideCrawlService)

func provideTileLedger(db *gorm.DB) repositories.TileLedgerInterface {
	return repositories.NewTileLedger(db)
}

func provideTileFetcher() services.TileFetcher {
	return infra.NewCrawlerClient(os.Getenv("CRAWLER_URL"))
}

func provideCrawlService(
	ledger repositories.TileLedgerInterface,
	fetcher services.TileFetcher,
	venues services.VenueServiceInterface,
) services.CrawlServiceInterface {
	return services.NewCrawlService(ledger, fetcher, venues)
}
