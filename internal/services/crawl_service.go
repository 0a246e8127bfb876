package services

import (
	"context"
	"log"
	"sort"
	"sync"
	"time"

	"swoon/internal/models/request_models"
	"swoon/internal/models/response_models"
	"swoon/internal/repositories"
	"swoon/pkg/keylock"
	"swoon/pkg/tilegrid"
	"swoon/pkg/utils"
)

const (
	defaultStalenessDays = 30
	defaultCrawlWorkers  = 4
	defaultFetchTimeout  = 30 * time.Second
)

// TileFetcher is the external crawl collaborator: it fetches the raw venue
// records found inside one tile's clipped bounds.
type TileFetcher interface {
	FetchTile(ctx context.Context, tile tilegrid.Tile) ([]request_models.RawVenueRecord, error)
}

type CrawlServiceInterface interface {
	Plan(ctx context.Context, req request_models.CrawlRequest) (response_models.CrawlPlan, error)
	Run(ctx context.Context, req request_models.CrawlRequest) (response_models.CrawlReport, error)
}

type CrawlService struct {
	ledger    repositories.TileLedgerInterface
	fetcher   TileFetcher
	venues    VenueServiceInterface
	tileLocks *keylock.KeyLock
	now       func() time.Time
}

func NewCrawlService(
	ledger repositories.TileLedgerInterface,
	fetcher TileFetcher,
	venues VenueServiceInterface,
) CrawlServiceInterface {
	return &CrawlService{
		ledger:    ledger,
		fetcher:   fetcher,
		venues:    venues,
		tileLocks: keylock.New(),
		now:       time.Now,
	}
}

func regionOf(req request_models.CrawlRequest) tilegrid.BBox {
	return tilegrid.BBox{
		MinLon: req.MinLon,
		MinLat: req.MinLat,
		MaxLon: req.MaxLon,
		MaxLat: req.MaxLat,
	}
}

func stalenessOf(req request_models.CrawlRequest) time.Duration {
	days := req.StalenessDays
	if days <= 0 {
		days = defaultStalenessDays
	}
	return time.Duration(days) * 24 * time.Hour
}

// Plan decomposes the region and returns the tiles still needing
// collection: absent from the ledger, or collected longer ago than the
// staleness window. Fresh tiles are never re-fetched.
func (c *CrawlService) Plan(ctx context.Context, req request_models.CrawlRequest) (response_models.CrawlPlan, error) {
	pending, total, err := c.pendingTiles(ctx, req)
	if err != nil {
		return response_models.CrawlPlan{}, err
	}

	keys := make([]string, 0, len(pending))
	for _, tile := range pending {
		keys = append(keys, tile.Key)
	}
	sort.Strings(keys)

	return response_models.CrawlPlan{
		TotalTiles:   total,
		PendingTiles: keys,
		FreshTiles:   total - len(pending),
	}, nil
}

// Run fetches every pending tile through a bounded worker pool. Each tile
// is fetched under its own key lock with a per-fetch timeout; a failed or
// timed-out tile is reported and left out of the ledger so it stays
// eligible next run, and never blocks the other tiles.
func (c *CrawlService) Run(ctx context.Context, req request_models.CrawlRequest) (response_models.CrawlReport, error) {
	pending, total, err := c.pendingTiles(ctx, req)
	if err != nil {
		return response_models.CrawlReport{}, err
	}

	workers := req.Workers
	if workers <= 0 {
		workers = defaultCrawlWorkers
	}
	timeout := defaultFetchTimeout
	if req.TimeoutSeconds > 0 {
		timeout = time.Duration(req.TimeoutSeconds) * time.Second
	}
	staleness := stalenessOf(req)

	jobs := make(chan tilegrid.Tile)
	var mu sync.Mutex
	report := response_models.CrawlReport{
		Collected: []response_models.CollectedTile{},
		Failed:    []string{},
		Skipped:   total - len(pending),
	}

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for tile := range jobs {
				count, err := c.collectTile(ctx, tile, timeout, staleness)
				mu.Lock()
				if err != nil {
					report.Failed = append(report.Failed, tile.Key)
				} else if count >= 0 {
					report.Collected = append(report.Collected, response_models.CollectedTile{
						TileKey:      tile.Key,
						ElementCount: count,
					})
				} else {
					report.Skipped++
				}
				mu.Unlock()
			}
		}()
	}

	for _, tile := range pending {
		jobs <- tile
	}
	close(jobs)
	wg.Wait()

	sort.Slice(report.Collected, func(i, j int) bool {
		return report.Collected[i].TileKey < report.Collected[j].TileKey
	})
	sort.Strings(report.Failed)

	return report, nil
}

// collectTile serializes on the tile key, re-checks the ledger (another
// worker or run may have just collected it), fetches, ingests and records.
// Returns -1 when the tile turned out to be fresh under the lock.
func (c *CrawlService) collectTile(ctx context.Context, tile tilegrid.Tile, timeout, staleness time.Duration) (int, error) {
	c.tileLocks.Lock(tile.Key)
	defer c.tileLocks.Unlock(tile.Key)

	record, err := c.ledger.Lookup(ctx, tile.Key)
	if err != nil {
		log.Printf("Error looking up tile %s: %v", tile.Key, err)
		return 0, utils.ErrDatabaseError
	}
	if record != nil && c.now().Sub(record.CollectedAt) < staleness {
		return -1, nil
	}

	fetchCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	records, err := c.fetcher.FetchTile(fetchCtx, tile)
	if err != nil {
		log.Printf("Tile %s fetch failed: %v", tile.Key, err)
		return 0, utils.ErrFetchFailed
	}

	for _, rec := range records {
		if err := c.venues.IngestRecord(ctx, rec); err != nil {
			// One bad record does not fail the tile; it was logged by
			// the ingest path.
			continue
		}
	}

	if err := c.ledger.Record(ctx, tile.Key, len(records), c.now()); err != nil {
		log.Printf("Error recording tile %s: %v", tile.Key, err)
		return 0, utils.ErrDatabaseError
	}
	return len(records), nil
}

func (c *CrawlService) pendingTiles(ctx context.Context, req request_models.CrawlRequest) ([]tilegrid.Tile, int, error) {
	tiles, err := tilegrid.Decompose(regionOf(req), req.EdgeDegrees)
	if err != nil {
		return nil, 0, utils.ErrInvalidRegion
	}

	staleness := stalenessOf(req)
	now := c.now()

	pending := make([]tilegrid.Tile, 0, len(tiles))
	for _, tile := range tiles {
		record, err := c.ledger.Lookup(ctx, tile.Key)
		if err != nil {
			log.Printf("Error looking up tile %s: %v", tile.Key, err)
			return nil, 0, utils.ErrDatabaseError
		}
		if record == nil || now.Sub(record.CollectedAt) >= staleness {
			pending = append(pending, tile)
		}
	}
	return pending, len(tiles), nil
}
